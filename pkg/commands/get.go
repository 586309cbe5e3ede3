package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/commands/options"
	"tableflip.dev/appt/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Look up one appointment by id.",
		Example: `
appt get 12
appt get 12 --json
`,
		Args: options.IDArg(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			g := get.Get{
				ID:        io.ID,
				Scheduler: e.scheduler,
				Printer:   oo.Printer(),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
