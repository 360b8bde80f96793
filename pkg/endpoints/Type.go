package endpoints

// Endpoint is one way to reach a running service. Port 0 means the port is unknown.
type Endpoint struct {
	Host string `json:"host"`
	Port int    `json:"port,omitempty"`
}
