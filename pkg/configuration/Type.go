package configuration

import (
	"time"
)

type Configuration struct {
	Log           string              `yaml:"log" mapstructure:"log"`
	Platform      string              `yaml:"platform" mapstructure:"platform" validate:"oneof=docker"`
	ImagePrefixes []string            `yaml:"imagePrefixes" mapstructure:"imagePrefixes"`
	PortBase      int                 `yaml:"portBase" mapstructure:"portBase" validate:"min=1,max=65535"`
	Retries       int                 `yaml:"retries" mapstructure:"retries" validate:"min=1"`
	Interval      time.Duration       `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
	Listen        string              `yaml:"listen" mapstructure:"listen" validate:"required"`
	Services      []ServiceDefinition `yaml:"services" mapstructure:"services" validate:"dive"`
}

// ServiceDefinition is how a service is described in the config file. Command, Environment
// and Volumes are shorthands for the matching run args.
type ServiceDefinition struct {
	Name         string                 `yaml:"name" mapstructure:"name" validate:"required"`
	Image        string                 `yaml:"image" mapstructure:"image" validate:"required"`
	InternalPort int                    `yaml:"internalPort,omitempty" mapstructure:"internalPort" validate:"omitempty,min=1,max=65535"`
	ExternalPort int                    `yaml:"externalPort,omitempty" mapstructure:"externalPort" validate:"omitempty,min=1,max=65535"`
	Command      string                 `yaml:"command,omitempty" mapstructure:"command"`
	Environment  map[string]string      `yaml:"environment,omitempty" mapstructure:"environment"`
	Volumes      []string               `yaml:"volumes,omitempty" mapstructure:"volumes"`
	RunArgs      map[string]interface{} `yaml:"runArgs,omitempty" mapstructure:"runArgs"`
	EnsureNew    bool                   `yaml:"ensureNew,omitempty" mapstructure:"ensureNew"`
	Retries      int                    `yaml:"retries,omitempty" mapstructure:"retries" validate:"gte=0"`
	Interval     time.Duration          `yaml:"interval,omitempty" mapstructure:"interval" validate:"gte=0"`
	Health       HealthDefinition       `yaml:"health,omitempty" mapstructure:"health"`
}

type HealthDefinition struct {
	Type    string        `yaml:"type,omitempty" mapstructure:"type" validate:"omitempty,oneof=http tcp"`
	Path    string        `yaml:"path,omitempty" mapstructure:"path"`
	Status  int           `yaml:"status,omitempty" mapstructure:"status"`
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout"`
}
