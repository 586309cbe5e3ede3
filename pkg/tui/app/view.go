package teaui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/printers"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 100
	}
	half := width/2 - 2
	if half < 30 {
		half = 30
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel(m.area() == areaForm, half, m.renderForm()),
		m.panel(m.area() == areaLookup, half, m.renderLookup(half-4)),
	)
	sections := []string{
		m.renderBanner(),
		top,
		m.panel(m.area() == areaTable, width-2, m.renderTable()),
		m.theme.Footer.Help.Render("tab/shift+tab: move focus  table: ↑/↓ select, e edit, d delete, r refresh  ctrl+c: quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) panel(focused bool, width int, body string) string {
	style := m.theme.Panel.Frame
	if focused {
		style = m.theme.Panel.FocusedFrame
	}
	return style.Copy().Width(width).Render(body)
}

func (m *Model) renderBanner() string {
	line := " "
	if st := m.state.Status; !st.Empty() {
		if st.IsError() {
			line = m.theme.Banner.Error.Render(st.Text)
		} else {
			line = m.theme.Banner.Success.Render(st.Text)
		}
	}
	if m.busy > 0 {
		line += "  " + m.theme.Banner.Busy.Render("working…")
	}
	return line
}

func (m *Model) renderForm() string {
	lines := []string{m.theme.Panel.Title.Render(printers.Heading(m.state.Mode)), ""}
	for i, f := range m.fields {
		label := fmt.Sprintf("%-17s", f.Label())
		marker := "  "
		if i == m.focus {
			label = m.theme.Form.FocusedLabel.Render(label)
			marker = "> "
		} else {
			label = m.theme.Form.Label.Render(label)
		}
		lines = append(lines, marker+label+" "+m.renderValue(f))
	}

	lines = append(lines, "")
	if m.state.Mode.Editing() {
		lines = append(lines, m.theme.Form.Button.Render("enter: update")+"  "+m.theme.Form.Button.Render("esc: cancel"))
	} else {
		lines = append(lines, m.theme.Form.Button.Render("enter: add"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderValue(f appointment.Field) string {
	if !f.IsChoice() {
		return m.inputs[f].View()
	}
	idx := m.choices[f]
	value := unsetChoice
	if idx > 0 {
		value = f.Choices()[idx-1]
	}
	if raw := m.state.Draft.Get(f); idx == 0 && raw != "" {
		value = raw
	}
	return m.theme.Form.Choice.Render("‹ " + value + " ›")
}

func (m *Model) renderLookup(width int) string {
	lines := []string{
		m.theme.Panel.Title.Render("Find Appointment"),
		"",
		"ID: " + m.lookup.View(),
		"",
	}
	if rec := m.state.Lookup; rec != nil {
		b, err := json.MarshalIndent(rec, "", "  ")
		if err == nil {
			lines = append(lines, wordwrap.String(string(b), width))
		}
	} else {
		lines = append(lines, m.theme.Form.Placeholder.Render("enter: fetch by id"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTable() string {
	title := m.theme.Panel.Title.Render("Appointments")
	if len(m.state.Collection) == 0 {
		return title + "\n\n" + m.theme.Table.Empty.Render("No appointments found.")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 18
	header := make([]interface{}, 0, len(appointment.FieldOrder()))
	for _, f := range appointment.FieldOrder() {
		header = append(header, f.Label())
	}
	tbl.AddRow(header...)
	for _, a := range m.state.Collection {
		row := make([]interface{}, 0, len(header))
		for _, v := range a.Values() {
			row = append(row, v)
		}
		tbl.AddRow(row...)
	}

	rendered := strings.Split(tbl.String(), "\n")
	lines := []string{title, ""}
	for i, line := range rendered {
		switch {
		case i == 0:
			lines = append(lines, m.theme.Table.Header.Render(line))
		case i-1 == m.selected && m.area() == areaTable:
			lines = append(lines, m.theme.Table.Selected.Render(line))
		default:
			lines = append(lines, m.theme.Table.Row.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
