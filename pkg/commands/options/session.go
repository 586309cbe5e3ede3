package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/store"
)

// SessionOptions
type SessionOptions struct {
	Name string
}

func AddSessionArg(cmd *cobra.Command, o *SessionOptions) {
	cmd.PersistentFlags().StringVar(&o.Name, "session", store.DefaultSession,
		"Name of the saved draft to work on.")
}
