package ports

import (
	"context"
	"errors"
	"time"
)

const MAX_PORT = 65535

var ErrNoPortAvailable = errors.New("no free port left in the tcp range")

// Prober reports whether something accepts TCP connections on host:port.
type Prober interface {
	Bound(ctx context.Context, host string, port int) bool
}

type Allocator struct {
	Prober    Prober
	Addresses []string
}

type DialProber struct {
	Timeout time.Duration
}
