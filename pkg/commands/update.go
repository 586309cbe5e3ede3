package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/commands/options"
	"tableflip.dev/appt/pkg/runner/update"
)

func addUpdate(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	ao := &options.AppointmentOptions{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing appointment.",
		Long:  "Fetch the appointment, overlay the given flags and send the whole record back.",
		Example: `
appt update 12 --status Completed
appt update 12 --date 2024-05-02 --time 10:30
`,
		Args: options.IDArg(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			u := update.Update{
				ID:        io.ID,
				Fields:    ao.Values(),
				Scheduler: e.scheduler,
				Printer:   oo.Printer(),
			}
			return oo.HandleError(u.Do(cmd.Context()))
		},
	}

	options.AddAppointmentArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
