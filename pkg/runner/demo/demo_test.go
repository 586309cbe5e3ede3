package demo

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
)

type recordingRemote struct {
	created []appointment.Appointment
	failAt  int
}

func (r *recordingRemote) List(context.Context) ([]appointment.Appointment, error) {
	return append([]appointment.Appointment(nil), r.created...), nil
}

func (r *recordingRemote) Create(_ context.Context, a appointment.Appointment) (*appointment.Appointment, error) {
	if r.failAt > 0 && len(r.created)+1 == r.failAt {
		return nil, errors.New("boom")
	}
	r.created = append(r.created, a)
	return &a, nil
}

func (r *recordingRemote) Update(context.Context, appointment.Appointment) (*appointment.Appointment, error) {
	return nil, errors.New("unexpected update")
}

func (r *recordingRemote) Delete(context.Context, string) (string, error) {
	return "", errors.New("unexpected delete")
}

func (r *recordingRemote) Get(context.Context, string) (*appointment.Appointment, error) {
	return nil, errors.New("unexpected get")
}

func TestStaticDemoIsValid(t *testing.T) {
	for _, a := range StaticDemo() {
		assert.NoError(t, scheduler.Validate(a, scheduler.Rules(scheduler.ModeCreate)), a.String())
		assert.True(t, a.Department.Valid())
		assert.True(t, a.Status.Valid())
	}
}

func TestDemoSeeds(t *testing.T) {
	r := &recordingRemote{}
	s := scheduler.New(r)
	var buf bytes.Buffer

	d := Demo{Scheduler: s, Printer: &printers.PrettyPrint{Out: &buf, JSON: true}}
	require.NoError(t, d.Do(context.Background()))

	assert.Len(t, r.created, len(StaticDemo()))
	assert.Len(t, s.Snapshot().Collection, len(StaticDemo()))
	assert.Contains(t, buf.String(), "Omar Haddad")
	assert.True(t, s.Draft().IsBlank())
}

func TestDemoStopsOnFailure(t *testing.T) {
	r := &recordingRemote{failAt: 2}
	s := scheduler.New(r)
	var buf bytes.Buffer

	d := Demo{Scheduler: s, Printer: &printers.PrettyPrint{Out: &buf}}
	require.Error(t, d.Do(context.Background()))
	assert.Len(t, r.created, 1)
	assert.Contains(t, buf.String(), "Error adding appointment.")
}
