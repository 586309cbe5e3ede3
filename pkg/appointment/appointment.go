// Package appointment defines the scheduling record shared by the remote
// client, the scheduler and every presentation binding.
package appointment

import (
	"fmt"
	"strings"
)

// Appointment is one scheduling record. Every field is a string in the draft
// representation; an unset field is the empty string, never a missing key.
type Appointment struct {
	ID          ID         `json:"id,omitempty"`
	PatientName string     `json:"patientName"`
	DoctorName  string     `json:"doctorName"`
	Department  Department `json:"department"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Reason      string     `json:"reason"`
	Status      Status     `json:"status"`
	Contact     string     `json:"contact"`
	Email       string     `json:"email"`
}

// Blank returns the all-empty record used as the initial draft.
func Blank() Appointment {
	return Appointment{}
}

// IsBlank reports whether every field is empty.
func (a Appointment) IsBlank() bool {
	return a == Appointment{}
}

// WithoutID returns a copy with the identifier cleared. Identifiers are
// assigned by the remote, so creates never send one.
func (a Appointment) WithoutID() Appointment {
	a.ID = ""
	return a
}

// Get returns the raw value of the named field.
func (a Appointment) Get(f Field) string {
	switch f {
	case FieldID:
		return string(a.ID)
	case FieldPatientName:
		return a.PatientName
	case FieldDoctorName:
		return a.DoctorName
	case FieldDepartment:
		return string(a.Department)
	case FieldDate:
		return a.Date
	case FieldTime:
		return a.Time
	case FieldReason:
		return a.Reason
	case FieldStatus:
		return string(a.Status)
	case FieldContact:
		return a.Contact
	case FieldEmail:
		return a.Email
	}
	return ""
}

// Set assigns value to the named field verbatim. Unknown fields are an error;
// values are never checked here.
func (a *Appointment) Set(f Field, value string) error {
	switch f {
	case FieldID:
		a.ID = ID(value)
	case FieldPatientName:
		a.PatientName = value
	case FieldDoctorName:
		a.DoctorName = value
	case FieldDepartment:
		a.Department = Department(value)
	case FieldDate:
		a.Date = value
	case FieldTime:
		a.Time = value
	case FieldReason:
		a.Reason = value
	case FieldStatus:
		a.Status = Status(value)
	case FieldContact:
		a.Contact = value
	case FieldEmail:
		a.Email = value
	default:
		return fmt.Errorf("appointment: unknown field %q", string(f))
	}
	return nil
}

// Values returns the field values in canonical order.
func (a Appointment) Values() []string {
	order := FieldOrder()
	out := make([]string, 0, len(order))
	for _, f := range order {
		out = append(out, a.Get(f))
	}
	return out
}

func (a Appointment) String() string {
	id := strings.TrimSpace(string(a.ID))
	if id == "" {
		id = "new"
	}
	return fmt.Sprintf("#%s %s with %s (%s %s)", id, a.PatientName, a.DoctorName, a.Date, a.Time)
}
