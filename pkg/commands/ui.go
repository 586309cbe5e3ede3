package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
appt ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(true)
			if err != nil {
				return err
			}
			defer e.close()
			i := ui.UI{Scheduler: e.scheduler}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
