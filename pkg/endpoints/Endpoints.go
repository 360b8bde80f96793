package endpoints

import (
	"net"
	"strconv"

	"github.com/wildme/dockerctl/pkg/platforms"
)

// Resolve turns runtime inspection data into connectable endpoints.
//
// Network addresses come first, in network order, followed by published host bindings in
// port-key order. Only the first binding carrying both a host IP and a host port is used
// for each port key. When hint is set it becomes the port of every endpoint that has none,
// since in-network addresses are reached on the internal port directly.
// The result is not deduplicated.
func Resolve(container *platforms.Container, hint int) []Endpoint {
	if container == nil {
		return nil
	}

	result := make([]Endpoint, 0, len(container.Networks)+len(container.Ports))

	for _, network := range container.Networks {
		if network.IPAddress == "" {
			continue
		}

		result = append(result, Endpoint{Host: network.IPAddress})
	}

	for _, mapping := range container.Ports {
		for _, binding := range mapping.Bindings {
			if binding.HostIP == "" || binding.HostPort == "" {
				continue
			}

			port, err := strconv.Atoi(binding.HostPort)

			if err != nil {
				continue
			}

			result = append(result, Endpoint{Host: binding.HostIP, Port: port})
			break
		}
	}

	if hint > 0 {
		for i := range result {
			if result[i].Port == 0 {
				result[i].Port = hint
			}
		}
	}

	return result
}

func (endpoint Endpoint) String() string {
	if endpoint.Port == 0 {
		return endpoint.Host
	}

	return net.JoinHostPort(endpoint.Host, strconv.Itoa(endpoint.Port))
}

func Strings(endpoints []Endpoint) []string {
	result := make([]string, 0, len(endpoints))

	for _, endpoint := range endpoints {
		result = append(result, endpoint.String())
	}

	return result
}

// Ports collects the non-zero ports of all endpoints.
func Ports(endpoints []Endpoint) []int {
	result := make([]int, 0, len(endpoints))

	for _, endpoint := range endpoints {
		if endpoint.Port != 0 {
			result = append(result, endpoint.Port)
		}
	}

	return result
}
