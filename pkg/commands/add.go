package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/commands/options"
	"tableflip.dev/appt/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	ao := &options.AppointmentOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an appointment from flags.",
		Long:  "Create an appointment in one step. Every field is required; the id is assigned by the service.",
		Example: `
appt add --patient-name Jane --doctor-name "Dr. Lee" --department Cardiology \
  --date 2024-05-01 --time 09:00 --reason Checkup --status Scheduled \
  --contact 555-1234 --email jane@x.com
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			a := add.Add{
				Fields:    ao.Values(),
				Scheduler: e.scheduler,
				Printer:   oo.Printer(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddAppointmentArgs(cmd, ao)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
