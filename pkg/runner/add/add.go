// Package add creates an appointment in one shot from flag values.
package add

import (
	"context"
	"errors"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
)

type Add struct {
	Fields    map[appointment.Field]string
	Scheduler *scheduler.Scheduler
	Printer   *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Scheduler == nil {
		return errors.New("can not add, no scheduler")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	for _, f := range appointment.UserFields() {
		v, ok := n.Fields[f]
		if !ok {
			continue
		}
		if err := n.Scheduler.SetField(f, v); err != nil {
			return err
		}
	}

	err := n.Scheduler.SubmitCreate(ctx)
	pp.Status(n.Scheduler.Status())
	if err != nil {
		return err
	}
	pp.Collection(n.Scheduler.Snapshot().Collection)
	return nil
}
