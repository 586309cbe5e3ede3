package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ID string
}

// IDArg accepts exactly one non-blank appointment id.
func IDArg(o *IDOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		o.ID = strings.TrimSpace(args[0])
		if o.ID == "" {
			return errors.New("appointment id must not be blank")
		}
		return nil
	}
}
