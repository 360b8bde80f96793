package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/static"
)

var Commands []command.Command

func PreloadCommands() {
	Commands = nil

	Ensure()
	Status()
	URLs()
	Ps()
	Images()
	Inspect()
	Serve()
	Version()
}

func SetupGlobalFlags(env *command.Environment, rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ./dockerctl.yaml)")
	rootCmd.PersistentFlags().String("log", static.DEFAULT_LOG_LEVEL, "Log level: debug, info, warn, error")

	env.Viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	env.Viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log"))
}

// Build attaches every preloaded command to root.
func Build(env *command.Environment, root *cobra.Command) {
	SetupGlobalFlags(env, root)

	for _, cmd := range Commands {
		parent := findCommand(root, cmd.Parent)

		if parent == nil {
			parent = root
		}

		parent.AddCommand(cmd.ToCobra(env))
	}
}

func Run(env *command.Environment, root *cobra.Command) error {
	Build(env, root)
	root.SetArgs(os.Args[1:])

	return root.Execute()
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Use == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}
