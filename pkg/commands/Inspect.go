package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/platforms"
	"github.com/wildme/dockerctl/pkg/registry"
)

func Inspect() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("inspect").
			Short("Print what the runtime reports for a service container").
			Args(cobra.ExactArgs(1)).
			Flags(cloneFlag).
			DependsOn(Bootstrap).
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				clone, err := cloneValue(cmd)

				if err != nil {
					return err
				}

				runtimeName := registry.NameClone(args[0], clone)

				container, err := env.Runtime.Inspect(cmd.Context(), runtimeName)

				if err != nil {
					return err
				}

				if container == nil {
					return fmt.Errorf("%w: %s", platforms.ErrNotFound, runtimeName)
				}

				data, err := container.ToJSON()

				if err != nil {
					return err
				}

				fmt.Fprintln(env.Out, string(data))

				return nil
			}).
			BuildWithValidation(),
	)
}
