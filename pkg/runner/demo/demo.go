// Package demo seeds the service with sample appointments.
package demo

import (
	"context"
	"errors"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
)

// StaticDemo returns a small, varied set of appointments without ids.
func StaticDemo() []appointment.Appointment {
	return []appointment.Appointment{
		{PatientName: "Jane Doe", DoctorName: "Dr. Lee", Department: appointment.DepartmentCardiology, Date: "2024-05-01", Time: "09:00", Reason: "Checkup", Status: appointment.StatusScheduled, Contact: "555-1234", Email: "jane@example.com"},
		{PatientName: "Omar Haddad", DoctorName: "Dr. Patel", Department: appointment.DepartmentNeurology, Date: "2024-05-01", Time: "10:30", Reason: "Migraine follow-up", Status: appointment.StatusScheduled, Contact: "555-9876", Email: "omar@example.com"},
		{PatientName: "Mia Chen", DoctorName: "Dr. Rossi", Department: appointment.DepartmentDermatology, Date: "2024-04-22", Time: "14:15", Reason: "Rash", Status: appointment.StatusCompleted, Contact: "555-2468", Email: "mia@example.com"},
		{PatientName: "Lars Nilsen", DoctorName: "Dr. Okafor", Department: appointment.DepartmentGeneral, Date: "2024-05-03", Time: "08:45", Reason: "Annual physical", Status: appointment.StatusCancelled, Contact: "555-1357", Email: "lars@example.com"},
	}
}

// Demo creates every StaticDemo appointment through the scheduler, so each
// goes through the same validation and refresh as a user-entered one.
type Demo struct {
	Scheduler *scheduler.Scheduler
	Printer   *printers.PrettyPrint
}

func (d *Demo) Do(ctx context.Context) error {
	if d.Scheduler == nil {
		return errors.New("can not seed, no scheduler")
	}
	pp := d.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	d.Scheduler.Cancel()
	for _, a := range StaticDemo() {
		for _, f := range appointment.UserFields() {
			if err := d.Scheduler.SetField(f, a.Get(f)); err != nil {
				return err
			}
		}
		if err := d.Scheduler.SubmitCreate(ctx); err != nil {
			pp.Status(d.Scheduler.Status())
			return err
		}
	}
	pp.Collection(d.Scheduler.Snapshot().Collection)
	return nil
}
