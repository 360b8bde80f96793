package commands

import (
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/command"
	"github.com/wildme/dockerctl/pkg/registry"
)

func newTable(env *command.Environment, columns ...interface{}) table.Table {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New(columns...).WithWriter(env.Out)
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	return tbl
}

func cloneFlag(cmd *cobra.Command) {
	cmd.Flags().Uint64("clone", 0, "Clone index; omit for the primary instance")
}

func cloneValue(cmd *cobra.Command) (*uint64, error) {
	if !cmd.Flags().Changed("clone") {
		return nil, nil
	}

	clone, err := cmd.Flags().GetUint64("clone")

	if err != nil {
		return nil, err
	}

	return registry.CloneIndex(clone), nil
}
