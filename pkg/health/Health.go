package health

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/static"
)

var ErrUnknownType = errors.New("unknown health check type")

const (
	TYPE_HTTP = "http"
	TYPE_TCP  = "tcp"
)

// HTTP builds a check that GETs http://<endpoint><path> and expects the given status code.
func HTTP(client *http.Client, path string, expect int, timeout time.Duration) registry.CheckFunc {
	if client == nil {
		client = http.DefaultClient
	}

	if expect == 0 {
		expect = http.StatusOK
	}

	if timeout <= 0 {
		timeout = static.DEFAULT_PROBE_TIMEOUT
	}

	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return func(ctx context.Context, endpoint string) bool {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+endpoint+path, nil)
		if err != nil {
			return false
		}

		resp, err := client.Do(req)
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		return resp.StatusCode == expect
	}
}

// TCP builds a check that only requires the endpoint to accept a connection.
func TCP(timeout time.Duration) registry.CheckFunc {
	if timeout <= 0 {
		timeout = static.DEFAULT_PROBE_TIMEOUT
	}

	return func(ctx context.Context, endpoint string) bool {
		dialer := net.Dialer{Timeout: timeout}

		conn, err := dialer.DialContext(ctx, "tcp", endpoint)
		if err != nil {
			return false
		}

		conn.Close()
		return true
	}
}

// New builds the check named by kind. An empty kind means the service has no check.
func New(kind string, path string, expect int, timeout time.Duration) (registry.CheckFunc, error) {
	switch strings.ToLower(kind) {
	case "":
		return nil, nil
	case TYPE_HTTP:
		return HTTP(nil, path, expect, timeout), nil
	case TYPE_TCP:
		return TCP(timeout), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, kind)
	}
}
