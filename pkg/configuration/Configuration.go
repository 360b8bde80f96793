package configuration

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/wildme/dockerctl/pkg/health"
	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/static"
)

func NewConfig() *Configuration {
	return &Configuration{
		Log:           static.DEFAULT_LOG_LEVEL,
		Platform:      static.PLATFORM_DOCKER,
		ImagePrefixes: append([]string(nil), static.DEFAULT_IMAGE_PREFIXES...),
		PortBase:      static.DEFAULT_PORT_BASE,
		Retries:       static.DEFAULT_CHECK_RETRIES,
		Interval:      static.DEFAULT_CHECK_INTERVAL,
		Listen:        static.DEFAULT_LISTEN,
		Services:      []ServiceDefinition{},
	}
}

func (config *Configuration) Validate() error {
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, err)
	}

	return nil
}

func (config *Configuration) Service(name string) (*ServiceDefinition, bool) {
	for i := range config.Services {
		if config.Services[i].Name == name {
			return &config.Services[i], true
		}
	}

	return nil, false
}

// ToServiceConfig builds the registry entry, health check included.
func (definition *ServiceDefinition) ToServiceConfig() (registry.ServiceConfig, error) {
	check, err := health.New(definition.Health.Type, definition.Health.Path, definition.Health.Status, definition.Health.Timeout)

	if err != nil {
		return registry.ServiceConfig{}, fmt.Errorf("service %s: %w", definition.Name, err)
	}

	args := make(map[string]interface{}, len(definition.RunArgs)+3)

	for k, v := range definition.RunArgs {
		args[k] = v
	}

	if definition.Command != "" {
		args["command"] = definition.Command
	}

	if len(definition.Environment) > 0 {
		args["environment"] = definition.Environment
	}

	if len(definition.Volumes) > 0 {
		args["volumes"] = definition.Volumes
	}

	return registry.ServiceConfig{
		Name:  definition.Name,
		Image: definition.Image,
		Launch: registry.LaunchSpec{
			InternalPort:     definition.InternalPort,
			ExternalPortHint: definition.ExternalPort,
		},
		RunArgs:  args,
		Check:    check,
		Retries:  definition.Retries,
		Interval: definition.Interval,
	}, nil
}
