package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/registry"
)

func Status() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("status").
			Short("Print the runtime status of a service").
			Args(cobra.ExactArgs(1)).
			Flags(cloneFlag).
			DependsOn(Bootstrap).
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				clone, err := cloneValue(cmd)

				if err != nil {
					return err
				}

				if _, err = env.Orchestrator.Registry.Get(args[0]); err != nil {
					return err
				}

				status, found, err := env.Orchestrator.Status(cmd.Context(), args[0], clone)

				if err != nil {
					return err
				}

				if !found {
					status = "absent"
				}

				fmt.Fprintln(env.Out, status)

				return nil
			}).
			BuildWithValidation(),
	)
}

func URLs() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("urls").
			Short("Print the endpoints of a running service").
			Args(cobra.ExactArgs(1)).
			Flags(cloneFlag).
			DependsOn(Bootstrap).
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				clone, err := cloneValue(cmd)

				if err != nil {
					return err
				}

				urls, running, err := env.Orchestrator.URLs(cmd.Context(), args[0], clone)

				if err != nil {
					return err
				}

				if !running {
					return fmt.Errorf("%s is not running", registry.NameClone(args[0], clone))
				}

				fmt.Fprintln(env.Out, strings.Join(urls, "\n"))

				return nil
			}).
			BuildWithValidation(),
	)
}
