// Package update edits an existing appointment: the current record is fetched,
// the provided fields are overlaid and the result is sent back whole.
package update

import (
	"context"
	"errors"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
)

type Update struct {
	ID        string
	Fields    map[appointment.Field]string
	Scheduler *scheduler.Scheduler
	Printer   *printers.PrettyPrint
}

func (n *Update) Do(ctx context.Context) error {
	if n.Scheduler == nil {
		return errors.New("can not update, no scheduler")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	rec, err := n.Scheduler.FetchByID(ctx, n.ID)
	if err != nil {
		pp.Status(n.Scheduler.Status())
		return err
	}
	if rec.ID == "" {
		rec.ID = appointment.ID(n.ID)
	}
	n.Scheduler.EnterEditMode(*rec)

	for _, f := range appointment.UserFields() {
		v, ok := n.Fields[f]
		if !ok {
			continue
		}
		if err := n.Scheduler.SetField(f, v); err != nil {
			return err
		}
	}

	err = n.Scheduler.SubmitUpdate(ctx)
	pp.Status(n.Scheduler.Status())
	if err != nil {
		return err
	}
	pp.Collection(n.Scheduler.Snapshot().Collection)
	return nil
}
