package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/registry"
	"golang.org/x/sync/errgroup"
)

func Ensure() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("ensure").
			Short("Start services if needed and print their endpoints").
			Args(cobra.MinimumNArgs(1)).
			Flags(func(cmd *cobra.Command) {
				cloneFlag(cmd)
				cmd.Flags().Bool("no-verify", false, "Return endpoints without running the health check")
				cmd.Flags().Bool("new", false, "Fail instead of adopting an existing container with the same name")
			}).
			DependsOn(Bootstrap).
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				clone, err := cloneValue(cmd)

				if err != nil {
					return err
				}

				results := make([][]string, len(args))
				g, ctx := errgroup.WithContext(cmd.Context())

				for i, name := range args {
					i, name := i, name
					opts := orchestrator.EnsureOptions{
						Clone:      clone,
						SkipVerify: env.Viper.GetBool("no-verify"),
						EnsureNew:  env.Viper.GetBool("new"),
					}

					if definition, ok := env.Config.Service(name); ok && definition.EnsureNew {
						opts.EnsureNew = true
					}

					g.Go(func() error {
						urls, err := env.Orchestrator.Ensure(ctx, name, opts)

						if err != nil {
							return err
						}

						results[i] = urls
						return nil
					})
				}

				if err = g.Wait(); err != nil {
					return err
				}

				tbl := newTable(env, "Service", "URLs")

				for i, name := range args {
					tbl.AddRow(registry.NameClone(name, clone), strings.Join(results[i], " "))
				}

				tbl.Print()

				return nil
			}).
			BuildWithValidation(),
	)
}
