// Package draft works on a saved draft across separate CLI invocations. Each
// runner restores the named session into the scheduler, acts, and saves it.
package draft

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/printers"
	"tableflip.dev/appt/pkg/scheduler"
	"tableflip.dev/appt/pkg/store"
)

// Session binds a named saved draft to a scheduler.
type Session struct {
	Name        string
	Persistence store.Persistence
	Scheduler   *scheduler.Scheduler
	Printer     *printers.PrettyPrint
}

func (s *Session) printer() *printers.PrettyPrint {
	if s.Printer == nil {
		s.Printer = &printers.PrettyPrint{}
	}
	return s.Printer
}

func (s *Session) load() error {
	if s.Persistence == nil {
		return errors.New("draft: no persistence configured")
	}
	if s.Scheduler == nil {
		return errors.New("draft: no scheduler configured")
	}
	saved, err := s.Persistence.LoadSession(s.Name)
	if err != nil {
		return err
	}
	s.Scheduler.Resume(saved.Draft, saved.Mode)
	return nil
}

func (s *Session) save() error {
	st := s.Scheduler.Snapshot()
	return s.Persistence.SaveSession(s.Name, store.Session{Draft: st.Draft, Mode: st.Mode})
}

// Show prints the saved draft and its mode.
type Show struct {
	Session
}

func (n *Show) Do(_ context.Context) error {
	if err := n.load(); err != nil {
		return err
	}
	st := n.Scheduler.Snapshot()
	n.printer().Draft(st.Draft, st.Mode)
	if !n.printer().JSON {
		if err := n.Scheduler.Validate(); err != nil {
			n.printer().Hint(err.Error())
		}
	}
	return nil
}

// Set assigns one field of the saved draft.
type Set struct {
	Session
	Field appointment.Field
	Value string
}

func (n *Set) Do(_ context.Context) error {
	if err := n.load(); err != nil {
		return err
	}
	if err := n.Scheduler.SetField(n.Field, n.Value); err != nil {
		return err
	}
	return n.save()
}

// Edit loads an appointment from the list into the draft.
type Edit struct {
	Session
	ID string
}

func (n *Edit) Do(ctx context.Context) error {
	if err := n.load(); err != nil {
		return err
	}
	if err := n.Scheduler.Refresh(ctx); err != nil {
		n.printer().Status(n.Scheduler.Status())
		return err
	}
	for _, a := range n.Scheduler.Snapshot().Collection {
		if a.ID.String() == n.ID {
			n.Scheduler.EnterEditMode(a)
			if err := n.save(); err != nil {
				return err
			}
			n.printer().Status(n.Scheduler.Status())
			return nil
		}
	}
	return fmt.Errorf("draft: no appointment with id %q in the list", n.ID)
}

// Submit sends the saved draft as a create or update depending on its mode.
type Submit struct {
	Session
}

func (n *Submit) Do(ctx context.Context) error {
	if err := n.load(); err != nil {
		return err
	}
	err := n.Scheduler.Submit(ctx)
	if serr := n.save(); serr != nil {
		return serr
	}
	n.printer().Status(n.Scheduler.Status())
	if err != nil {
		return err
	}
	n.printer().Collection(n.Scheduler.Snapshot().Collection)
	return nil
}

// Cancel discards the saved draft and returns it to create mode.
type Cancel struct {
	Session
}

func (n *Cancel) Do(_ context.Context) error {
	if err := n.load(); err != nil {
		return err
	}
	n.Scheduler.Cancel()
	return n.save()
}

// List prints the names of every saved draft.
type List struct {
	Session
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("draft: no persistence configured")
	}
	names := n.Persistence.Sessions(ctx)
	if len(names) == 0 {
		n.printer().Hint("no saved drafts")
		return nil
	}
	for _, name := range names {
		n.printer().Line(name)
	}
	return nil
}
