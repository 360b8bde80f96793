package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/version"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("version").
			Short("Print the dockerctl version").
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				fmt.Fprintln(env.Out, version.New().String())
				return nil
			}).
			BuildWithValidation(),
	)
}
