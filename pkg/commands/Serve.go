package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/api"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/static"
)

func Serve() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("serve").
			Short("Serve the HTTP API").
			Flags(func(cmd *cobra.Command) {
				cmd.Flags().String("listen", static.DEFAULT_LISTEN, "Address the API listens on")
			}).
			DependsOn(Bootstrap).
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				return api.NewApi(env.Orchestrator, env.Config, env.Logger).ListenAndServe(ctx, env.Config.Listen)
			}).
			BuildWithValidation(),
	)
}
