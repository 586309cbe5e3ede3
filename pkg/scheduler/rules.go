package scheduler

import (
	"strings"

	"tableflip.dev/appt/pkg/appointment"
)

// Check reports whether a raw field value is acceptable.
type Check func(value string) bool

// Rule binds a check to one draft field.
type Rule struct {
	Field appointment.Field
	Check Check
}

// NonBlank rejects values that are empty after trimming whitespace.
func NonBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Rules returns the ordered rule list for mode. The identifier is only
// required when editing, since creates never carry one.
func Rules(mode Mode) []Rule {
	fields := appointment.UserFields()
	if mode.Editing() {
		fields = appointment.FieldOrder()
	}
	rules := make([]Rule, 0, len(fields))
	for _, f := range fields {
		rules = append(rules, Rule{Field: f, Check: NonBlank})
	}
	return rules
}

// Validate applies rules to draft in order and reports the first failure.
func Validate(draft appointment.Appointment, rules []Rule) error {
	for _, r := range rules {
		if !r.Check(draft.Get(r.Field)) {
			return &ValidationError{Field: r.Field}
		}
	}
	return nil
}
