package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/commands/options"
	"tableflip.dev/appt/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "all"},
		Short:   "List every appointment.",
		Example: `
appt list
appt list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			l := list.List{
				Scheduler: e.scheduler,
				Printer:   oo.Printer(),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
