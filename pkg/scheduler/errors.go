package scheduler

import (
	"errors"
	"fmt"

	"tableflip.dev/appt/pkg/appointment"
)

// Operation names carried by RemoteError.
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpLookup = "lookup"
)

var (
	// ErrEditing is returned by SubmitCreate while a record is being edited.
	ErrEditing = errors.New("scheduler: draft is editing an existing appointment")
	// ErrNotEditing is returned by SubmitUpdate outside of edit mode.
	ErrNotEditing = errors.New("scheduler: draft is not editing an appointment")
	// ErrNoRemote is wrapped when the scheduler was built without a remote.
	ErrNoRemote = errors.New("scheduler: no remote configured")
	// ErrBlankID is wrapped when an operation is given an empty identifier.
	ErrBlankID = errors.New("scheduler: blank appointment id")
	// ErrNotFound is wrapped when a lookup yields no record.
	ErrNotFound = errors.New("scheduler: appointment not found")
)

// ValidationError names the first draft field that failed its rule.
type ValidationError struct {
	Field appointment.Field
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(msgFillFormat, e.Field)
}

// RemoteError wraps a failed call to the remote service.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("scheduler: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
