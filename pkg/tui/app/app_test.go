package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/scheduler"
)

type memoryRemote struct {
	mu      sync.Mutex
	counter int
	records []appointment.Appointment
}

func (r *memoryRemote) List(context.Context) ([]appointment.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]appointment.Appointment(nil), r.records...), nil
}

func (r *memoryRemote) Create(_ context.Context, a appointment.Appointment) (*appointment.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	a.ID = appointment.ID(fmt.Sprintf("%d", r.counter))
	r.records = append(r.records, a)
	return &a, nil
}

func (r *memoryRemote) Update(_ context.Context, a appointment.Appointment) (*appointment.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == a.ID {
			r.records[i] = a
			return &a, nil
		}
	}
	return nil, errors.New("missing")
}

func (r *memoryRemote) Delete(_ context.Context, id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID.String() == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return "", nil
		}
	}
	return "", errors.New("missing")
}

func (r *memoryRemote) Get(_ context.Context, id string) (*appointment.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.records {
		if a.ID.String() == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, errors.New("missing")
}

func jane(id string) appointment.Appointment {
	return appointment.Appointment{
		ID:          appointment.ID(id),
		PatientName: "Jane",
		DoctorName:  "Dr. Lee",
		Department:  appointment.DepartmentCardiology,
		Date:        "2024-05-01",
		Time:        "09:00",
		Reason:      "Checkup",
		Status:      appointment.StatusScheduled,
		Contact:     "555-1234",
		Email:       "jane@x.com",
	}
}

func newTestModel(t *testing.T, records ...appointment.Appointment) (*Model, *memoryRemote, *scheduler.Scheduler) {
	t.Helper()
	r := &memoryRemote{records: records, counter: len(records)}
	s := scheduler.New(r)
	m := New(context.Background(), s)
	steadyCursors(m)
	m = drainCommands(t, m, m.Init())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return assertModel(t, next), r, s
}

func drainCommands(t *testing.T, m *Model, cmds ...tea.Cmd) *Model {
	queue := append([]tea.Cmd(nil), cmds...)
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		msg := cmd()
		switch v := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, []tea.Cmd(v)...)
		default:
			next, nextCmd := m.Update(v)
			m = assertModel(t, next)
			if nextCmd != nil {
				queue = append(queue, nextCmd)
			}
		}
	}
	return m
}

func assertModel(t *testing.T, model tea.Model) *Model {
	t.Helper()
	m, ok := model.(*Model)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return m
}
// steadyCursors stops the inputs from blinking so drainCommands never waits
// on a blink timer.
func steadyCursors(m *Model) {
	for _, in := range m.inputs {
		_ = in.SetCursorMode(textinput.CursorStatic)
	}
	_ = m.lookup.SetCursorMode(textinput.CursorStatic)
}

func press(t *testing.T, m *Model, keys ...tea.KeyMsg) *Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = drainCommands(t, assertModel(t, next), cmd)
	}
	return m
}

func key(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitRefreshes(t *testing.T) {
	m, _, _ := newTestModel(t, jane("1"))

	if got := len(m.state.Collection); got != 1 {
		t.Fatalf("expected 1 appointment after init, got %d", got)
	}
	if m.busy != 0 {
		t.Fatalf("expected no operations in flight, got %d", m.busy)
	}
	view := m.View()
	if !strings.Contains(view, "Add Appointment") {
		t.Fatalf("expected create heading in view:\n%s", view)
	}
	if !strings.Contains(view, "Jane") {
		t.Fatalf("expected appointment row in view:\n%s", view)
	}
}

func TestEmptyTable(t *testing.T) {
	m, _, _ := newTestModel(t)

	if !strings.Contains(m.View(), "No appointments found.") {
		t.Fatalf("expected empty table message:\n%s", m.View())
	}
}

func TestTypingUpdatesDraft(t *testing.T) {
	m, _, s := newTestModel(t)

	m = press(t, m, runes("J"), runes("o"))
	if got := s.Draft().PatientName; got != "Jo" {
		t.Fatalf("expected patient name %q, got %q", "Jo", got)
	}
}

func TestChoiceCycling(t *testing.T) {
	m, _, s := newTestModel(t)

	m = press(t, m, key(tea.KeyTab), key(tea.KeyTab))
	if f := m.fields[m.focus]; f != appointment.FieldDepartment {
		t.Fatalf("expected department focus, got %s", f)
	}
	m = press(t, m, key(tea.KeyRight))
	if got := s.Draft().Department; got != appointment.DepartmentCardiology {
		t.Fatalf("expected Cardiology, got %q", got)
	}
	m = press(t, m, key(tea.KeyLeft), key(tea.KeyLeft))
	if got := s.Draft().Department; got != appointment.DepartmentGeneral {
		t.Fatalf("expected General after wrapping, got %q", got)
	}
	m = press(t, m, key(tea.KeyRight))
	if got := s.Draft().Department; got != "" {
		t.Fatalf("expected unset department, got %q", got)
	}
}

func TestSubmitCreate(t *testing.T) {
	m, r, s := newTestModel(t)
	for _, f := range appointment.UserFields() {
		if err := s.SetField(f, jane("").Get(f)); err != nil {
			t.Fatalf("set field: %v", err)
		}
	}

	m = press(t, m, key(tea.KeyEnter))

	if len(r.records) != 1 {
		t.Fatalf("expected remote to hold 1 appointment, got %d", len(r.records))
	}
	if got := m.state.Status.Text; got != "Appointment added successfully." {
		t.Fatalf("unexpected status %q", got)
	}
	if len(m.state.Collection) != 1 {
		t.Fatalf("expected refreshed collection, got %d", len(m.state.Collection))
	}
	if got := m.inputs[appointment.FieldPatientName].Value(); got != "" {
		t.Fatalf("expected cleared form, got %q", got)
	}
}

func TestSubmitValidationShowsBanner(t *testing.T) {
	m, r, _ := newTestModel(t)

	m = press(t, m, key(tea.KeyEnter))

	if len(r.records) != 0 {
		t.Fatalf("expected no remote create")
	}
	if got := m.state.Status.Text; got != "Please fill out the patientName field." {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestEditFromTableThenCancel(t *testing.T) {
	m, _, s := newTestModel(t, jane("1"))

	m = press(t, m, key(tea.KeyShiftTab))
	if m.area() != areaTable {
		t.Fatalf("expected table focus")
	}
	m = press(t, m, runes("e"))

	if s.Mode() != scheduler.ModeEdit {
		t.Fatalf("expected edit mode")
	}
	if m.focus != 0 {
		t.Fatalf("expected focus back on the form, got %d", m.focus)
	}
	if got := m.inputs[appointment.FieldPatientName].Value(); got != "Jane" {
		t.Fatalf("expected form to show record, got %q", got)
	}
	if !strings.Contains(m.View(), "Edit Appointment") || !strings.Contains(m.View(), "esc: cancel") {
		t.Fatalf("expected edit heading and cancel button:\n%s", m.View())
	}

	m = press(t, m, key(tea.KeyEsc))
	if s.Mode() != scheduler.ModeCreate {
		t.Fatalf("expected create mode after esc")
	}
	if !s.Draft().IsBlank() {
		t.Fatalf("expected blank draft after esc")
	}
}

func TestEditSubmitUpdates(t *testing.T) {
	m, r, s := newTestModel(t, jane("1"))

	m = press(t, m, key(tea.KeyShiftTab), runes("e"))
	if err := s.SetField(appointment.FieldReason, "Follow-up"); err != nil {
		t.Fatalf("set field: %v", err)
	}
	m = press(t, m, key(tea.KeyEnter))

	if got := r.records[0].Reason; got != "Follow-up" {
		t.Fatalf("expected updated reason, got %q", got)
	}
	if s.Mode() != scheduler.ModeCreate {
		t.Fatalf("expected create mode after update")
	}
	if got := m.state.Status.Text; got != "Appointment updated successfully." {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestDeleteFromTable(t *testing.T) {
	m, r, _ := newTestModel(t, jane("1"), jane("2"))

	m = press(t, m, key(tea.KeyShiftTab), key(tea.KeyDown), runes("d"))

	if len(r.records) != 1 || r.records[0].ID != "1" {
		t.Fatalf("expected appointment 2 removed, got %+v", r.records)
	}
	if got := m.state.Status.Text; got != "Appointment deleted successfully." {
		t.Fatalf("unexpected status %q", got)
	}
	if m.selected != 0 {
		t.Fatalf("expected selection clamped to 0, got %d", m.selected)
	}
}

func TestLookup(t *testing.T) {
	m, _, s := newTestModel(t, jane("1"))

	m = press(t, m, key(tea.KeyShiftTab), key(tea.KeyShiftTab))
	if m.area() != areaLookup {
		t.Fatalf("expected lookup focus")
	}
	m = press(t, m, runes("1"), key(tea.KeyEnter))

	if m.state.Lookup == nil || m.state.Lookup.PatientName != "Jane" {
		t.Fatalf("expected lookup result, got %+v", m.state.Lookup)
	}
	if !strings.Contains(m.View(), `"patientName": "Jane"`) {
		t.Fatalf("expected JSON lookup result in view:\n%s", m.View())
	}
	if !s.Draft().IsBlank() {
		t.Fatalf("lookup must not touch the draft")
	}

	m = press(t, m, key(tea.KeyBackspace), runes("9"), key(tea.KeyEnter))
	if m.state.Lookup != nil {
		t.Fatalf("expected lookup cleared on miss")
	}
	if got := m.state.Status.Text; got != "Appointment not found." {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestRefreshKey(t *testing.T) {
	m, r, _ := newTestModel(t)
	r.records = append(r.records, jane("5"))

	m = press(t, m, key(tea.KeyShiftTab), runes("r"))
	if len(m.state.Collection) != 1 {
		t.Fatalf("expected refreshed collection, got %d", len(m.state.Collection))
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(key(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestInputCommandsAreForwarded(t *testing.T) {
	r := &memoryRemote{}
	m := New(context.Background(), scheduler.New(r))

	if _, cmd := m.Update(runes("J")); cmd == nil {
		t.Fatal("expected the focused input to return a blink command")
	}
	if got := m.inputs[appointment.FieldPatientName].Value(); got != "J" {
		t.Fatalf("expected typed value, got %q", got)
	}

	for m.area() != areaLookup {
		m.advanceFocus(1)
	}
	if _, cmd := m.Update(runes("9")); cmd == nil {
		t.Fatal("expected the lookup input to return a blink command")
	}
	if got := m.lookup.Value(); got != "9" {
		t.Fatalf("expected lookup value, got %q", got)
	}
}
