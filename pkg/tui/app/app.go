// Package teaui hosts the Bubble Tea program for the appt TUI.
package teaui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/scheduler"
	"tableflip.dev/appt/pkg/tui/theme"
)

const unsetChoice = "(unset)"

type focusArea int

const (
	areaForm focusArea = iota
	areaLookup
	areaTable
)

// opDoneMsg reports that a remote operation finished. The scheduler has
// already recorded the outcome; the model only needs to re-read it.
type opDoneMsg struct {
	op  string
	err error
}

// Model is the root Bubble Tea model bound to one scheduler.
type Model struct {
	ctx   context.Context
	sched *scheduler.Scheduler
	theme theme.Theme

	width  int
	height int

	fields  []appointment.Field
	inputs  map[appointment.Field]*textinput.Model
	choices map[appointment.Field]int
	lookup  textinput.Model

	// focus indexes fields, then the lookup input, then the table.
	focus    int
	selected int
	busy     int

	state scheduler.State
}

// New builds the model. ctx bounds every remote call the UI issues.
func New(ctx context.Context, sched *scheduler.Scheduler) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:     ctx,
		sched:   sched,
		theme:   theme.Default(),
		fields:  appointment.UserFields(),
		inputs:  make(map[appointment.Field]*textinput.Model),
		choices: make(map[appointment.Field]int),
	}
	for _, f := range m.fields {
		if f.IsChoice() {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = f.Label()
		in.CharLimit = 256
		m.inputs[f] = &in
	}
	m.lookup = textinput.New()
	m.lookup.Prompt = ""
	m.lookup.Placeholder = "ID"
	m.lookup.CharLimit = 32

	m.reload()
	_ = m.applyFocus()
	return m
}

// Run starts the program on the alternate screen.
func Run(ctx context.Context, sched *scheduler.Scheduler) error {
	p := tea.NewProgram(New(ctx, sched), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.run(scheduler.OpList, m.sched.Refresh))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
	case opDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		m.reload()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	default:
		return m, m.forward(msg)
	}
	return m, nil
}

// forward hands other messages, such as cursor blinks, to the focused input.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.area() {
	case areaForm:
		if in, ok := m.inputs[m.fields[m.focus]]; ok {
			*in, cmd = in.Update(msg)
		}
	case areaLookup:
		m.lookup, cmd = m.lookup.Update(msg)
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		return m.advanceFocus(1)
	case "shift+tab":
		return m.advanceFocus(-1)
	}

	switch m.area() {
	case areaLookup:
		return m.handleLookupKey(msg)
	case areaTable:
		return m.handleTableKey(msg)
	}
	return m.handleFormKey(msg)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := m.fields[m.focus]
	switch msg.String() {
	case "enter":
		op := scheduler.OpCreate
		if m.state.Mode.Editing() {
			op = scheduler.OpUpdate
		}
		return m.run(op, m.sched.Submit)
	case "esc":
		if m.state.Mode.Editing() {
			m.sched.Cancel()
			m.reload()
		}
		return nil
	case "up":
		return m.advanceFocus(-1)
	case "down":
		return m.advanceFocus(1)
	}

	if f.IsChoice() {
		switch msg.String() {
		case "left":
			m.cycleChoice(f, -1)
		case "right", " ":
			m.cycleChoice(f, 1)
		}
		return nil
	}

	in := m.inputs[f]
	updated, cmd := in.Update(msg)
	*in = updated
	_ = m.sched.SetField(f, in.Value())
	m.state.Draft = m.sched.Draft()
	return cmd
}

func (m *Model) handleLookupKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		id := m.lookup.Value()
		return m.run(scheduler.OpLookup, func(ctx context.Context) error {
			_, err := m.sched.FetchByID(ctx, id)
			return err
		})
	}
	var cmd tea.Cmd
	m.lookup, cmd = m.lookup.Update(msg)
	return cmd
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	rows := m.state.Collection
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(rows)-1 {
			m.selected++
		}
	case "r":
		return m.run(scheduler.OpList, m.sched.Refresh)
	case "e":
		if rec, ok := m.selectedRecord(); ok {
			m.sched.EnterEditMode(rec)
			m.reload()
			m.focus = 0
			return m.applyFocus()
		}
	case "d":
		if rec, ok := m.selectedRecord(); ok {
			id := rec.ID.String()
			return m.run(scheduler.OpDelete, func(ctx context.Context) error {
				return m.sched.Remove(ctx, id)
			})
		}
	}
	return nil
}

// run wraps a scheduler operation as a command reporting back with opDoneMsg.
func (m *Model) run(op string, fn func(context.Context) error) tea.Cmd {
	m.busy++
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m *Model) selectedRecord() (appointment.Appointment, bool) {
	if m.selected < 0 || m.selected >= len(m.state.Collection) {
		return appointment.Appointment{}, false
	}
	return m.state.Collection[m.selected], true
}

// reload copies the scheduler state into the model and the form widgets.
func (m *Model) reload() {
	m.state = m.sched.Snapshot()
	for _, f := range m.fields {
		v := m.state.Draft.Get(f)
		if f.IsChoice() {
			m.choices[f] = choiceIndex(f, v)
			continue
		}
		if in := m.inputs[f]; in.Value() != v {
			in.SetValue(v)
		}
	}
	if m.selected >= len(m.state.Collection) {
		m.selected = len(m.state.Collection) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) cycleChoice(f appointment.Field, delta int) {
	options := append([]string{unsetChoice}, f.Choices()...)
	idx := (m.choices[f] + delta + len(options)) % len(options)
	m.choices[f] = idx
	value := ""
	if idx > 0 {
		value = options[idx]
	}
	_ = m.sched.SetField(f, value)
	m.state.Draft = m.sched.Draft()
}

// choiceIndex maps a value onto the selector. Index 0 is unset; a value outside
// the closed set also shows as unset.
func choiceIndex(f appointment.Field, value string) int {
	for i, c := range f.Choices() {
		if c == value {
			return i + 1
		}
	}
	return 0
}

func (m *Model) focusCount() int {
	return len(m.fields) + 2
}

func (m *Model) area() focusArea {
	switch {
	case m.focus < len(m.fields):
		return areaForm
	case m.focus == len(m.fields):
		return areaLookup
	}
	return areaTable
}

func (m *Model) advanceFocus(delta int) tea.Cmd {
	n := m.focusCount()
	m.focus = (m.focus + delta + n) % n
	return m.applyFocus()
}

// applyFocus focuses the active input and blurs the rest. The returned
// command starts the cursor blink.
func (m *Model) applyFocus() tea.Cmd {
	var cmds []tea.Cmd
	for i, f := range m.fields {
		in, ok := m.inputs[f]
		if !ok {
			continue
		}
		if i == m.focus {
			cmds = append(cmds, in.Focus())
		} else {
			in.Blur()
		}
	}
	if m.area() == areaLookup {
		cmds = append(cmds, m.lookup.Focus())
	} else {
		m.lookup.Blur()
	}
	return tea.Batch(cmds...)
}

func (m *Model) setSize(width, height int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	m.width = width
	m.height = height
	inputWidth := width/2 - 22
	if inputWidth < 12 {
		inputWidth = 12
	}
	for _, in := range m.inputs {
		in.Width = inputWidth
	}
	m.lookup.Width = 12
}
