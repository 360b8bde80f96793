package registry

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CheckFunc decides whether a service answers correctly on one endpoint ("host" or "host:port").
type CheckFunc func(ctx context.Context, endpoint string) bool

// LaunchSpec holds the port directives consumed by the orchestrator itself.
type LaunchSpec struct {
	InternalPort     int `json:"internal_port" validate:"omitempty,min=1,max=65535"`
	ExternalPortHint int `json:"external_port_hint" validate:"omitempty,min=1,max=65535"`
}

type ServiceConfig struct {
	Name     string                 `json:"name" validate:"required"`
	Image    string                 `json:"image"`
	Launch   LaunchSpec             `json:"launch"`
	RunArgs  map[string]interface{} `json:"run_args"`
	Check    CheckFunc              `json:"-" diff:"-"`
	Retries  int                    `json:"retries" validate:"gte=0"`
	Interval time.Duration          `json:"interval" validate:"gte=0"`
}

type Registry struct {
	Services map[string]*ServiceConfig
	Prefixes []string
	Lock     sync.RWMutex
	validate *validator.Validate
	logger   *zap.Logger
}
