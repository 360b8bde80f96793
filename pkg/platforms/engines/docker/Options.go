package docker

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	TDContainer "github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	units "github.com/docker/go-units"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/static"
)

const (
	OPTION_ENVIRONMENT = "environment"
	OPTION_COMMAND     = "command"
	OPTION_ENTRYPOINT  = "entrypoint"
	OPTION_VOLUMES     = "volumes"
	OPTION_LABELS      = "labels"
	OPTION_NETWORK     = "network"
	OPTION_RUNTIME     = "runtime"
	OPTION_PRIVILEGED  = "privileged"
	OPTION_SHM_SIZE    = "shm_size"
)

var ErrInvalidOption = errors.New("invalid run option")

func buildLaunchConfig(request *platforms.LaunchRequest) (*launchConfig, error) {
	launch := &launchConfig{
		Config: &TDContainer.Config{
			Hostname: request.Name,
			Image:    request.Image,
			Labels:   map[string]string{},
			Tty:      false,
		},
		HostConfig: &TDContainer.HostConfig{},
	}

	if request.InternalPort > 0 {
		port, err := nat.NewPort("tcp", strconv.Itoa(request.InternalPort))

		if err != nil {
			return nil, errors.Wrapf(ErrInvalidOption, "internal port %d", request.InternalPort)
		}

		launch.Config.ExposedPorts = nat.PortSet{port: struct{}{}}

		if request.ExternalPort > 0 {
			launch.HostConfig.PortBindings = nat.PortMap{
				port: []nat.PortBinding{{HostPort: strconv.Itoa(request.ExternalPort)}},
			}
		}
	}

	keys := make([]string, 0, len(request.Options))
	for key := range request.Options {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if err := launch.apply(key, request.Options[key]); err != nil {
			return nil, errors.Wrapf(ErrInvalidOption, "%s: %s", key, err)
		}
	}

	for k, v := range request.Labels {
		launch.Config.Labels[k] = v
	}

	return launch, nil
}

func (launch *launchConfig) apply(key string, value interface{}) error {
	var err error

	switch key {
	case static.RUN_ARG_DETACH:
		// Containers are always started detached.
	case static.RUN_ARG_RESTART_POLICY:
		launch.HostConfig.RestartPolicy, err = restartPolicy(value)
	case OPTION_ENVIRONMENT:
		launch.Config.Env, err = environment(value)
	case OPTION_COMMAND:
		launch.Config.Cmd, err = words(value)
	case OPTION_ENTRYPOINT:
		launch.Config.Entrypoint, err = words(value)
	case OPTION_VOLUMES:
		launch.HostConfig.Binds, err = binds(value)
	case OPTION_LABELS:
		var labels map[string]string
		labels, err = stringMap(value)

		for k, v := range labels {
			launch.Config.Labels[k] = v
		}
	case OPTION_NETWORK:
		var network string
		network, err = str(value)
		launch.HostConfig.NetworkMode = TDContainer.NetworkMode(network)
	case OPTION_RUNTIME:
		launch.HostConfig.Runtime, err = str(value)
	case OPTION_PRIVILEGED:
		launch.HostConfig.Privileged, err = boolean(value)
	case OPTION_SHM_SIZE:
		launch.HostConfig.ShmSize, err = size(value)
	default:
		launch.Ignored = append(launch.Ignored, key)
	}

	return err
}

// restartPolicy accepts "on-failure" or {"Name": "on-failure", "MaximumRetryCount": 3}.
func restartPolicy(value interface{}) (TDContainer.RestartPolicy, error) {
	switch v := value.(type) {
	case string:
		return TDContainer.RestartPolicy{Name: TDContainer.RestartPolicyMode(v)}, nil
	case map[string]interface{}:
		policy := TDContainer.RestartPolicy{}

		for k, item := range v {
			switch strings.ToLower(k) {
			case "name":
				name, err := str(item)
				if err != nil {
					return policy, err
				}

				policy.Name = TDContainer.RestartPolicyMode(name)
			case "maximumretrycount", "maximum_retry_count":
				count, err := integer(item)
				if err != nil {
					return policy, err
				}

				policy.MaximumRetryCount = int(count)
			}
		}

		return policy, nil
	default:
		return TDContainer.RestartPolicy{}, fmt.Errorf("unsupported restart policy %v", value)
	}
}

// environment accepts a KEY=VALUE list or a map, which is emitted sorted by key.
func environment(value interface{}) ([]string, error) {
	if list, err := stringList(value); err == nil {
		return list, nil
	}

	env, err := stringMap(value)

	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(env))

	for k, v := range env {
		result = append(result, k+"="+v)
	}

	sort.Strings(result)

	return result, nil
}

// words splits a shell-style command string, or takes a list as is.
func words(value interface{}) ([]string, error) {
	if s, ok := value.(string); ok {
		return shellwords.Parse(s)
	}

	return stringList(value)
}

// binds accepts "host:container[:mode]" strings, or a map of host path to
// {"bind": path, "mode": "rw"}.
func binds(value interface{}) ([]string, error) {
	if list, err := stringList(value); err == nil {
		return list, nil
	}

	volumes, ok := value.(map[string]interface{})

	if !ok {
		return nil, fmt.Errorf("unsupported volumes %v", value)
	}

	result := make([]string, 0, len(volumes))

	for host, raw := range volumes {
		spec, ok := raw.(map[string]interface{})

		if !ok {
			return nil, fmt.Errorf("unsupported volume %s", host)
		}

		bind, err := str(spec["bind"])

		if err != nil {
			return nil, err
		}

		entry := host + ":" + bind

		if mode, ok := spec["mode"].(string); ok && mode != "" {
			entry += ":" + mode
		}

		result = append(result, entry)
	}

	sort.Strings(result)

	return result, nil
}

func size(value interface{}) (int64, error) {
	if s, ok := value.(string); ok {
		return units.RAMInBytes(s)
	}

	return integer(value)
}

func str(value interface{}) (string, error) {
	s, ok := value.(string)

	if !ok {
		return "", fmt.Errorf("expected a string, got %v", value)
	}

	return s, nil
}

func boolean(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("expected a bool, got %v", value)
	}
}

func integer(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %v", value)
	}
}

func stringList(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []interface{}:
		result := make([]string, 0, len(v))

		for _, item := range v {
			s, err := str(item)
			if err != nil {
				return nil, err
			}

			result = append(result, s)
		}

		return result, nil
	default:
		return nil, fmt.Errorf("expected a list, got %v", value)
	}
}

func stringMap(value interface{}) (map[string]string, error) {
	switch v := value.(type) {
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		result := make(map[string]string, len(v))

		for k, item := range v {
			result[k] = fmt.Sprint(item)
		}

		return result, nil
	default:
		return nil, fmt.Errorf("expected a map, got %v", value)
	}
}
