package commands

import (
	"sort"

	"github.com/spf13/cobra"
	"github.com/wildme/dockerctl/pkg/command"
)

func Ps() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("ps").
			Short("List containers grouped by status").
			DependsOn(Bootstrap).
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				buckets, err := env.Orchestrator.Containers(cmd.Context())

				if err != nil {
					return err
				}

				statuses := make([]string, 0, len(buckets))

				for status := range buckets {
					statuses = append(statuses, status)
				}

				sort.Strings(statuses)

				tbl := newTable(env, "Name", "Status")

				for _, status := range statuses {
					for _, name := range buckets[status] {
						tbl.AddRow(name, status)
					}
				}

				tbl.Print()

				return nil
			}).
			BuildWithValidation(),
	)
}

func Images() {
	Commands = append(Commands,
		command.NewBuilder().
			Parent("dockerctl").
			Name("images").
			Short("List local image tags").
			DependsOn(Bootstrap).
			Function(func(env *command.Environment, cmd *cobra.Command, args []string) error {
				tags, err := env.Orchestrator.ImageTags(cmd.Context())

				if err != nil {
					return err
				}

				tbl := newTable(env, "Tag")

				for _, tag := range tags {
					tbl.AddRow(tag)
				}

				tbl.Print()

				return nil
			}).
			BuildWithValidation(),
	)
}
