// Package list prints every appointment known to the remote.
package list

import (
	"context"
	"errors"

	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
)

type List struct {
	Scheduler *scheduler.Scheduler
	Printer   *printers.PrettyPrint
}

func (n *List) Do(ctx context.Context) error {
	if n.Scheduler == nil {
		return errors.New("can not list, no scheduler")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if err := n.Scheduler.Refresh(ctx); err != nil {
		pp.Status(n.Scheduler.Status())
		return err
	}
	pp.Collection(n.Scheduler.Snapshot().Collection)
	return nil
}
