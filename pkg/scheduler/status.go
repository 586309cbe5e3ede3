package scheduler

import (
	"fmt"
	"strings"
)

const (
	msgAdded         = "Appointment added successfully."
	msgAddFailed     = "Error adding appointment. Check the log for details."
	msgUpdated       = "Appointment updated successfully."
	msgUpdateFailed  = "Error updating appointment."
	msgDeleted       = "Appointment deleted successfully."
	msgDeleteFailed  = "Error deleting appointment."
	msgFetchFailed   = "Failed to fetch appointments."
	msgNotFound      = "Appointment not found."
	msgEditingFormat = "Editing appointment with ID %s"
	msgFillFormat    = "Please fill out the %s field."
)

// Status is the single banner line describing the last outcome.
type Status struct {
	Text string
}

// IsError classifies the banner. Any text mentioning "error" is an error.
func (s Status) IsError() bool {
	return strings.Contains(strings.ToLower(s.Text), "error")
}

// Empty reports whether there is nothing to show.
func (s Status) Empty() bool {
	return strings.TrimSpace(s.Text) == ""
}

func (s Status) String() string {
	return s.Text
}

func editingStatus(id string) Status {
	return Status{Text: fmt.Sprintf(msgEditingFormat, id)}
}
