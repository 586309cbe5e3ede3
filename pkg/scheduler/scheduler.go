// Package scheduler keeps a local appointment draft, a cached appointment list
// and a lookup result consistent with the remote service.
package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/appt/pkg/appointment"
)

// Remote is the authoritative appointment store.
type Remote interface {
	List(ctx context.Context) ([]appointment.Appointment, error)
	Create(ctx context.Context, a appointment.Appointment) (*appointment.Appointment, error)
	Update(ctx context.Context, a appointment.Appointment) (*appointment.Appointment, error)
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, id string) (*appointment.Appointment, error)
}

// State is a point-in-time copy of everything the Scheduler owns.
type State struct {
	Draft      appointment.Appointment
	Collection []appointment.Appointment
	Lookup     *appointment.Appointment
	Mode       Mode
	Status     Status
}

// Scheduler owns the draft, the collection cache and the lookup result.
// The mutex guards state only and is never held across a remote call, so
// overlapping refreshes may still land out of order.
type Scheduler struct {
	remote Remote
	log    *zap.Logger

	mu    sync.Mutex
	state State
}

// Option customizes a Scheduler.
type Option func(*Scheduler)

// WithLogger attaches a logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l.Named("scheduler")
		}
	}
}

// New creates a Scheduler in create mode with a blank draft.
func New(r Remote, opts ...Option) *Scheduler {
	s := &Scheduler{
		remote: r,
		log:    zap.NewNop(),
		state: State{
			Draft:      appointment.Blank(),
			Collection: []appointment.Appointment{},
			Mode:       ModeCreate,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Scheduler) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Collection = append([]appointment.Appointment(nil), s.state.Collection...)
	if out.Collection == nil {
		out.Collection = []appointment.Appointment{}
	}
	if s.state.Lookup != nil {
		cp := *s.state.Lookup
		out.Lookup = &cp
	}
	return out
}

// Draft returns the current draft.
func (s *Scheduler) Draft() appointment.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Draft
}

// Mode returns the current mode.
func (s *Scheduler) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Mode
}

// Status returns the current banner.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status
}

// Resume restores a draft and mode saved by an earlier session. An unknown
// mode falls back to create.
func (s *Scheduler) Resume(draft appointment.Appointment, mode Mode) {
	if mode != ModeEdit {
		mode = ModeCreate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = draft
	s.state.Mode = mode
}

// SetField assigns value to the named draft field without checking it.
func (s *Scheduler) SetField(f appointment.Field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Draft.Set(f, value)
}

// Validate checks the draft against the rules for the current mode.
func (s *Scheduler) Validate() error {
	s.mu.Lock()
	draft, mode := s.state.Draft, s.state.Mode
	s.mu.Unlock()
	return Validate(draft, Rules(mode))
}

// Submit sends the draft as a create or an update depending on the mode.
func (s *Scheduler) Submit(ctx context.Context) error {
	if s.Mode().Editing() {
		return s.SubmitUpdate(ctx)
	}
	return s.SubmitCreate(ctx)
}

// SubmitCreate validates the draft and posts it without its identifier.
func (s *Scheduler) SubmitCreate(ctx context.Context) error {
	draft, ok := s.prepare(ModeCreate)
	if !ok {
		return ErrEditing
	}
	if err := Validate(draft, Rules(ModeCreate)); err != nil {
		return s.rejectDraft(err)
	}
	if s.remote == nil {
		return s.fail(OpCreate, ErrNoRemote, msgAddFailed)
	}

	s.warnOutOfSet(draft)
	created, err := s.remote.Create(ctx, draft.WithoutID())
	if err != nil {
		return s.fail(OpCreate, err, msgAddFailed)
	}
	fields := []zap.Field{zap.String("patient", draft.PatientName)}
	if created != nil {
		fields = append(fields, zap.String("id", created.ID.String()))
	}
	s.log.Info("appointment created", fields...)

	s.setStatus(Status{Text: msgAdded})
	return s.resync(ctx, true)
}

// SubmitUpdate validates the draft and sends it with its identifier.
func (s *Scheduler) SubmitUpdate(ctx context.Context) error {
	draft, ok := s.prepare(ModeEdit)
	if !ok {
		return ErrNotEditing
	}
	if err := Validate(draft, Rules(ModeEdit)); err != nil {
		return s.rejectDraft(err)
	}
	if s.remote == nil {
		return s.fail(OpUpdate, ErrNoRemote, msgUpdateFailed)
	}

	s.warnOutOfSet(draft)
	if _, err := s.remote.Update(ctx, draft); err != nil {
		return s.fail(OpUpdate, err, msgUpdateFailed)
	}
	s.log.Info("appointment updated", zap.String("id", draft.ID.String()))

	s.setStatus(Status{Text: msgUpdated})
	return s.resync(ctx, true)
}

// EnterEditMode copies record into the draft verbatim and switches to edit.
func (s *Scheduler) EnterEditMode(record appointment.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = record
	s.state.Mode = ModeEdit
	s.state.Status = editingStatus(record.ID.String())
}

// Cancel discards the draft and returns to create mode.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = appointment.Blank()
	s.state.Mode = ModeCreate
}

// Refresh replaces the collection with the remote list. On failure the
// previous collection is kept.
func (s *Scheduler) Refresh(ctx context.Context) error {
	if s.remote == nil {
		return s.fail(OpList, ErrNoRemote, msgFetchFailed)
	}
	list, err := s.remote.List(ctx)
	if err != nil {
		return s.fail(OpList, err, msgFetchFailed)
	}
	if list == nil {
		list = []appointment.Appointment{}
	}
	s.mu.Lock()
	s.state.Collection = list
	s.mu.Unlock()
	s.log.Debug("collection refreshed", zap.Int("count", len(list)))
	return nil
}

// Remove deletes the appointment and, on success, refreshes the collection.
func (s *Scheduler) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return s.fail(OpDelete, ErrBlankID, msgDeleteFailed)
	}
	if s.remote == nil {
		return s.fail(OpDelete, ErrNoRemote, msgDeleteFailed)
	}
	msg, err := s.remote.Delete(ctx, id)
	if err != nil {
		return s.fail(OpDelete, err, msgDeleteFailed)
	}
	if strings.TrimSpace(msg) == "" {
		msg = msgDeleted
	}
	s.log.Info("appointment deleted", zap.String("id", id))

	s.setStatus(Status{Text: msg})
	return s.resync(ctx, false)
}

// FetchByID looks up a single appointment. It never touches the draft, the
// collection or the mode.
func (s *Scheduler) FetchByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	id = strings.TrimSpace(id)
	var (
		rec *appointment.Appointment
		err error
	)
	switch {
	case id == "":
		err = ErrBlankID
	case s.remote == nil:
		err = ErrNoRemote
	default:
		rec, err = s.remote.Get(ctx, id)
		if err == nil && rec == nil {
			err = ErrNotFound
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Debug("lookup failed", zap.String("id", id), zap.Error(err))
		s.state.Lookup = nil
		s.state.Status = Status{Text: msgNotFound}
		return nil, &RemoteError{Op: OpLookup, Err: err}
	}
	cp := *rec
	s.state.Lookup = &cp
	s.state.Status = Status{}
	out := cp
	return &out, nil
}

// resync concludes every successful mutation. The collection is always
// re-fetched, never patched; creates and updates also reset the draft.
func (s *Scheduler) resync(ctx context.Context, resetDraft bool) error {
	err := s.Refresh(ctx)
	if resetDraft {
		s.Cancel()
	}
	return err
}

// prepare copies the draft if the scheduler is in the wanted mode.
func (s *Scheduler) prepare(want Mode) (appointment.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Mode != want {
		return appointment.Appointment{}, false
	}
	return s.state.Draft, true
}

func (s *Scheduler) rejectDraft(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		s.log.Debug("draft rejected", zap.String("field", string(ve.Field)))
	}
	s.setStatus(Status{Text: err.Error()})
	return err
}

func (s *Scheduler) fail(op string, err error, text string) error {
	s.log.Warn("remote call failed", zap.String("op", op), zap.Error(err))
	s.setStatus(Status{Text: text})
	return &RemoteError{Op: op, Err: err}
}

func (s *Scheduler) setStatus(st Status) {
	s.mu.Lock()
	s.state.Status = st
	s.mu.Unlock()
}

func (s *Scheduler) warnOutOfSet(draft appointment.Appointment) {
	if !draft.Department.Valid() {
		s.log.Warn("department outside the known set", zap.String("department", string(draft.Department)))
	}
	if !draft.Status.Valid() {
		s.log.Warn("status outside the known set", zap.String("status", string(draft.Status)))
	}
}
