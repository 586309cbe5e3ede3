// Package get looks up a single appointment by id.
package get

import (
	"context"
	"errors"

	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
)

type Get struct {
	ID        string
	Scheduler *scheduler.Scheduler
	Printer   *printers.PrettyPrint
}

func (n *Get) Do(ctx context.Context) error {
	if n.Scheduler == nil {
		return errors.New("can not get, no scheduler")
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
	pp.Record(rec)
	return nil
}
