package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/commands/options"
	"tableflip.dev/appt/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete an appointment and show the refreshed list.",
		Example: `
appt delete 12
`,
		Args: options.IDArg(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			r := remove.Remove{
				ID:        io.ID,
				Scheduler: e.scheduler,
				Printer:   oo.Printer(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
