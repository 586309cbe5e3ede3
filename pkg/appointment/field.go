package appointment

import (
	"fmt"
	"strings"
)

// Field names one attribute of an Appointment. The value is the wire name.
type Field string

const (
	FieldID          Field = "id"
	FieldPatientName Field = "patientName"
	FieldDoctorName  Field = "doctorName"
	FieldDepartment  Field = "department"
	FieldDate        Field = "date"
	FieldTime        Field = "time"
	FieldReason      Field = "reason"
	FieldStatus      Field = "status"
	FieldContact     Field = "contact"
	FieldEmail       Field = "email"
)

var fieldLabels = map[Field]string{
	FieldID:          "ID",
	FieldPatientName: "Patient Name",
	FieldDoctorName:  "Doctor Name",
	FieldDepartment:  "Department",
	FieldDate:        "Date",
	FieldTime:        "Time",
	FieldReason:      "Reason for Visit",
	FieldStatus:      "Status",
	FieldContact:     "Contact",
	FieldEmail:       "Email",
}

// FieldOrder returns every field in canonical record order.
func FieldOrder() []Field {
	return []Field{
		FieldID,
		FieldPatientName,
		FieldDoctorName,
		FieldDepartment,
		FieldDate,
		FieldTime,
		FieldReason,
		FieldStatus,
		FieldContact,
		FieldEmail,
	}
}

// UserFields returns the fields a user fills in, in canonical order. The
// identifier is excluded since the remote assigns it.
func UserFields() []Field {
	return FieldOrder()[1:]
}

// ParseField resolves a wire name, case-insensitively.
func ParseField(raw string) (Field, error) {
	name := strings.TrimSpace(raw)
	for _, f := range FieldOrder() {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("appointment: unknown field %q", raw)
}

// Label is the human-readable name used for placeholders and headings.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// IsChoice reports whether the field only takes values from a closed set.
func (f Field) IsChoice() bool {
	return f == FieldDepartment || f == FieldStatus
}

// Choices returns the closed set for choice fields and nil otherwise.
func (f Field) Choices() []string {
	switch f {
	case FieldDepartment:
		out := make([]string, 0, 4)
		for _, d := range AllDepartments() {
			out = append(out, string(d))
		}
		return out
	case FieldStatus:
		out := make([]string, 0, 3)
		for _, s := range AllStatuses() {
			out = append(out, string(s))
		}
		return out
	}
	return nil
}
