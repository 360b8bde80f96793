package ports

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/wildme/dockerctl/pkg/static"
)

func New(prober Prober, addresses []string) *Allocator {
	if prober == nil {
		prober = &DialProber{Timeout: static.PORT_PROBE_TIMEOUT}
	}

	if len(addresses) == 0 {
		addresses = static.PROBE_ADDRESSES
	}

	return &Allocator{
		Prober:    prober,
		Addresses: addresses,
	}
}

// FindOpenPort scans upward from preferred and returns the first port that is neither
// blacklisted nor accepting connections on any probe address.
func (allocator *Allocator) FindOpenPort(ctx context.Context, preferred int, blacklist []int) (int, error) {
	if preferred <= 0 {
		preferred = static.DEFAULT_PORT_BASE
	}

	skip := make(map[int]struct{}, len(blacklist))
	for _, port := range blacklist {
		skip[port] = struct{}{}
	}

	for port := preferred; port <= MAX_PORT; port++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if _, ok := skip[port]; ok {
			continue
		}

		if allocator.bound(ctx, port) {
			continue
		}

		return port, nil
	}

	return 0, fmt.Errorf("%w: starting at %d", ErrNoPortAvailable, preferred)
}

func (allocator *Allocator) bound(ctx context.Context, port int) bool {
	for _, address := range allocator.Addresses {
		if allocator.Prober.Bound(ctx, address, port) {
			return true
		}
	}

	return false
}

func (prober *DialProber) Bound(ctx context.Context, host string, port int) bool {
	dialer := net.Dialer{Timeout: prober.Timeout}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))

	if err != nil {
		return false
	}

	conn.Close()
	return true
}
