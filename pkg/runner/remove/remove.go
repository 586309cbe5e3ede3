// Package remove deletes an appointment and shows the refreshed list.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
)

type Remove struct {
	ID        string
	Scheduler *scheduler.Scheduler
	Printer   *printers.PrettyPrint
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Scheduler == nil {
		return errors.New("can not remove, no scheduler")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	err := n.Scheduler.Remove(ctx, n.ID)
	pp.Status(n.Scheduler.Status())
	if err != nil {
		return err
	}
	pp.Collection(n.Scheduler.Snapshot().Collection)
	return nil
}
