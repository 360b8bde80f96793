package main

import (
	"os"

	"github.com/wildme/dockerctl/internal/helpers"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/commands"
	"github.com/wildme/dockerctl/pkg/configuration"
	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/platforms/engines/docker"
	"go.uber.org/zap"
)

func main() {
	env := &command.Environment{
		Viper: configuration.NewViper(),
		Out:   os.Stdout,
		NewRuntime: func(log *zap.Logger) (platforms.Runtime, error) {
			runtime, err := docker.New(log)

			if err != nil {
				return nil, err
			}

			return runtime, nil
		},
	}

	commands.PreloadCommands()
	err := commands.Run(env, command.New())

	if env.Runtime != nil {
		env.Runtime.Close()
	}

	if env.Logger != nil {
		env.Logger.Sync()
	}

	os.Exit(helpers.PrintError(os.Stderr, err))
}
