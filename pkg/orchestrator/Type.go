package orchestrator

import (
	"sync"
	"time"

	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/ports"
	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/status"
	"go.uber.org/zap"
)

type Orchestrator struct {
	Runtime   platforms.Runtime
	Images    platforms.ImageManager
	Registry  *registry.Registry
	Allocator *ports.Allocator
	Retries   int
	Interval  time.Duration
	PortBase  int
	Session   string

	states     map[string]*status.Status
	statesLock sync.Mutex
	locks      *KeyedLock
	// launchLock spans port allocation and start, so concurrent launches see each other's ports.
	launchLock sync.Mutex
	logger     *zap.Logger
}

type EnsureOptions struct {
	Clone *uint64
	// SkipVerify returns the resolved endpoints without running the health check.
	SkipVerify bool
	// EnsureNew refuses to adopt an existing container that holds the name.
	EnsureNew bool
}

// CheckOptions overrides the health check budget. Zero values fall back to the
// service config, then to the orchestrator defaults.
type CheckOptions struct {
	Clone    *uint64
	Retries  int
	Interval time.Duration
}

type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}
