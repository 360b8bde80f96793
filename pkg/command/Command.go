package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wildme/dockerctl/pkg/static"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:           static.PROJECT,
		Short:         "Manage named service containers on the local docker engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// ToCobra wires the command against env. Dependencies run before the command body.
func (command Command) ToCobra(env *Environment) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   command.Name,
		Short: command.Short,
		Args:  command.Args,
		PreRunE: func(c *cobra.Command, args []string) error {
			if !command.Condition(env) {
				return fmt.Errorf("condition failed for command %s", c.Use)
			}

			var bindErr error

			c.Flags().VisitAll(func(flag *pflag.Flag) {
				if err := env.Viper.BindPFlag(flag.Name, flag); err != nil && bindErr == nil {
					bindErr = fmt.Errorf("failed to bind flag '%s': %w", flag.Name, err)
				}
			})

			if bindErr != nil {
				return bindErr
			}

			for _, dep := range command.DependsOn {
				if err := dep(env, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return command.Command(env, c, args)
		},
	}

	command.Flags(cobraCmd)

	return cobraCmd
}
