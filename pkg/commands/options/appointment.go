package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/appt/pkg/appointment"
)

// AppointmentOptions holds one flag per user-editable field.
type AppointmentOptions struct {
	values map[appointment.Field]*string
	cmd    *cobra.Command
}

// FlagName is the kebab-case flag for a field, e.g. --patient-name.
func FlagName(f appointment.Field) string {
	var b strings.Builder
	for i, r := range string(f) {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func AddAppointmentArgs(cmd *cobra.Command, o *AppointmentOptions) {
	o.cmd = cmd
	o.values = make(map[appointment.Field]*string, len(appointment.UserFields()))
	for _, f := range appointment.UserFields() {
		v := new(string)
		o.values[f] = v
		usage := fmt.Sprintf("%s of the appointment.", f.Label())
		if f.IsChoice() {
			usage = fmt.Sprintf("%s, one of %s.", f.Label(), strings.Join(f.Choices(), ", "))
		}
		cmd.Flags().StringVar(v, FlagName(f), "", usage)
		if f.IsChoice() {
			choices := f.Choices()
			_ = cmd.RegisterFlagCompletionFunc(FlagName(f), func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
				return Complete(choices, toComplete), cobra.ShellCompDirectiveNoFileComp
			})
		}
	}
}

// Provided returns the fields whose flags were set on the command line, in
// canonical order.
func (o *AppointmentOptions) Provided() []appointment.Field {
	if o.cmd == nil {
		return nil
	}
	out := make([]appointment.Field, 0, len(o.values))
	for _, f := range appointment.UserFields() {
		if o.cmd.Flags().Changed(FlagName(f)) {
			out = append(out, f)
		}
	}
	return out
}

// Values returns the provided flag values keyed by field.
func (o *AppointmentOptions) Values() map[appointment.Field]string {
	out := make(map[appointment.Field]string)
	for _, f := range o.Provided() {
		out[f] = *o.values[f]
	}
	return out
}

// Complete filters candidates by a case-insensitive prefix.
func Complete(candidates []string, toComplete string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(toComplete)) {
			out = append(out, c)
		}
	}
	return out
}
