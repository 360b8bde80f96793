package orchestrator

import (
	"github.com/google/uuid"
	"github.com/wildme/dockerctl/pkg/logger"
	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/ports"
	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/static"
	"github.com/wildme/dockerctl/pkg/status"
	"go.uber.org/zap"
)

func New(runtime platforms.Runtime, images platforms.ImageManager, reg *registry.Registry, allocator *ports.Allocator, log *zap.Logger) *Orchestrator {
	log = logger.OrNop(log)

	if reg == nil {
		reg = registry.New(nil, log)
	}

	if allocator == nil {
		allocator = ports.New(nil, nil)
	}

	return &Orchestrator{
		Runtime:   runtime,
		Images:    images,
		Registry:  reg,
		Allocator: allocator,
		Retries:   static.DEFAULT_CHECK_RETRIES,
		Interval:  static.DEFAULT_CHECK_INTERVAL,
		PortBase:  static.DEFAULT_PORT_BASE,
		Session:   uuid.NewString(),
		states:    make(map[string]*status.Status),
		locks:     NewKeyedLock(),
		logger:    log,
	}
}

func (o *Orchestrator) Register(config registry.ServiceConfig, ensureNew bool) error {
	return o.Registry.Register(config, ensureNew)
}

// State reports where the service instance is in its lifecycle as seen by this process.
func (o *Orchestrator) State(name string, clone *uint64) string {
	return o.lifecycle(registry.NameClone(name, clone)).GetState()
}

func (o *Orchestrator) lifecycle(runtimeName string) *status.Status {
	o.statesLock.Lock()
	defer o.statesLock.Unlock()

	s, ok := o.states[runtimeName]

	if !ok {
		s = status.New()
		o.states[runtimeName] = s
	}

	return s
}
