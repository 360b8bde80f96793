package commands

import (
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/configuration"
	"github.com/wildme/dockerctl/pkg/image"
	"github.com/wildme/dockerctl/pkg/logger"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/ports"
	"github.com/wildme/dockerctl/pkg/registry"
	"go.uber.org/zap"
)

// Bootstrap loads the configuration, connects to the runtime and registers every
// configured service.
func Bootstrap(env *command.Environment, args []string) error {
	if env.Orchestrator != nil {
		return nil
	}

	if err := configuration.LoadDotEnv(""); err != nil {
		return err
	}

	config, err := configuration.Load(env.Viper, env.Viper.GetString("config"))

	if err != nil {
		return err
	}

	env.Config = config

	if env.Logger == nil {
		env.Logger, err = logger.NewLogger(config.Log, []string{"stderr"}, []string{"stderr"})

		if err != nil {
			return err
		}

		logger.Log = env.Logger
	}

	if env.Runtime == nil {
		runtime, err := env.NewRuntime(env.Logger)

		if err != nil {
			return err
		}

		env.Runtime = runtime
	}

	o := orchestrator.New(
		env.Runtime,
		image.New(env.Runtime, env.Logger),
		registry.New(config.ImagePrefixes, env.Logger),
		ports.New(nil, nil),
		env.Logger,
	)

	o.Retries = config.Retries
	o.Interval = config.Interval
	o.PortBase = config.PortBase

	for _, definition := range config.Services {
		service, err := definition.ToServiceConfig()

		if err != nil {
			return err
		}

		if err = o.Register(service, false); err != nil {
			return err
		}

		env.Logger.Debug("service registered", zap.String("service", service.Name), zap.String("image", service.Image))
	}

	env.Orchestrator = o

	return nil
}
