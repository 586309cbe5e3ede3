package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/commands/options"
	"tableflip.dev/appt/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where the service is and where drafts are stored.",
		Example: `
appt info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := newEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			p, err := e.persistence()
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config:      e.cfg,
				Persistence: p,
				Printer:     oo.Printer(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
