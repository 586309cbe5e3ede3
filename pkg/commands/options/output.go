package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// Printer returns a printer honoring --json.
func (o *OutputOptions) Printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{JSON: o.JSON}
}

// HandleError prints err as a JSON object when --json is set. The error is
// always returned so the process still exits non-zero.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
	}
	return err
}
