package command

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wildme/dockerctl/pkg/configuration"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/platforms"
	"go.uber.org/zap"
)

// Environment is what every command runs against. It is filled lazily by the
// dependencies a command declares.
type Environment struct {
	Viper        *viper.Viper
	Config       *configuration.Configuration
	Runtime      platforms.Runtime
	Orchestrator *orchestrator.Orchestrator
	NewRuntime   func(log *zap.Logger) (platforms.Runtime, error)
	Out          io.Writer
	Logger       *zap.Logger
}

type Command struct {
	Parent    string
	Name      string
	Short     string
	Args      cobra.PositionalArgs
	Flags     func(cmd *cobra.Command)
	Condition func(*Environment) bool
	Command   func(*Environment, *cobra.Command, []string) error
	DependsOn []func(*Environment, []string) error
}

type Builder struct {
	parent    string
	name      string
	short     string
	flags     func(cmd *cobra.Command)
	args      cobra.PositionalArgs
	condition func(*Environment) bool
	command   func(*Environment, *cobra.Command, []string) error
	dependsOn []func(*Environment, []string) error
}
