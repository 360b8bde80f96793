package platforms

import (
	"github.com/docker/go-connections/nat"
)

// Container is a point-in-time view of one runtime unit. Adapters build it from the
// engine's inspection payload; callers must not cache it across calls.
type Container struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Image    string            `json:"image"`
	Status   string            `json:"status"`
	Networks []Network         `json:"networks"`
	Ports    []PortMapping     `json:"ports"`
	Labels   map[string]string `json:"labels"`
}

// Network is one network attachment, ordered by network name.
type Network struct {
	Name      string `json:"name"`
	IPAddress string `json:"ip_address"`
}

// PortMapping holds the host bindings published for one internal port key (e.g. 6000/tcp).
type PortMapping struct {
	Port     nat.Port          `json:"port"`
	Bindings []nat.PortBinding `json:"bindings"`
}

// LaunchRequest is everything the runtime needs to start a managed container.
// Options carries engine options verbatim; private directives are already stripped.
type LaunchRequest struct {
	Name         string
	Image        string
	InternalPort int
	ExternalPort int
	Labels       map[string]string
	Options      map[string]interface{}
}
