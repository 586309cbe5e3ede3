package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/scheduler"
)

const wrapWidth = 80

type PrettyPrint struct {
	// JSON prints records and collections as indented JSON.
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Line prints text as is.
func (pp *PrettyPrint) Line(text string) {
	_, _ = fmt.Fprintln(pp.out(), text)
}

// Hint prints secondary text, dimmed.
func (pp *PrettyPrint) Hint(text string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(pp.out(), text)
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Status prints the banner, red when it reads as an error.
func (pp *PrettyPrint) Status(st scheduler.Status) {
	if st.Empty() {
		return
	}
	if pp.JSON {
		pp.json(map[string]any{"status": st.Text, "error": st.IsError()})
		return
	}
	c := color.New(color.FgGreen)
	if st.IsError() {
		c = color.New(color.FgRed, color.Bold)
	}
	_, _ = c.Fprintln(pp.out(), st.Text)
}

// Collection prints every appointment as a table in canonical field order.
func (pp *PrettyPrint) Collection(list []appointment.Appointment) {
	if pp.JSON {
		if list == nil {
			list = []appointment.Appointment{}
		}
		pp.json(list)
		return
	}
	if len(list) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "No appointments found.")
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 24
	tbl.Wrap = true

	header := make([]interface{}, 0, len(appointment.FieldOrder()))
	for _, f := range appointment.FieldOrder() {
		header = append(header, bold.Sprint(f.Label()))
	}
	tbl.AddRow(header...)
	for _, a := range list {
		row := make([]interface{}, 0, len(header))
		for _, v := range a.Values() {
			row = append(row, v)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Record prints one `label: value` line per field.
func (pp *PrettyPrint) Record(a *appointment.Appointment) {
	if pp.JSON {
		pp.json(a)
		return
	}
	if a == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "none")
		return
	}

	key := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, f := range appointment.FieldOrder() {
		v := a.Get(f)
		if v == "" {
			v = "-"
		}
		tbl.AddRow(key.Sprint(f.Label()+":"), wordwrap.String(v, wrapWidth))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Draft prints the draft under a heading that names the mode.
func (pp *PrettyPrint) Draft(draft appointment.Appointment, mode scheduler.Mode) {
	if pp.JSON {
		pp.json(map[string]any{"mode": mode, "draft": draft})
		return
	}
	pp.Title(Heading(mode))
	pp.Record(&draft)
}

// Heading names the form for mode.
func Heading(mode scheduler.Mode) string {
	if mode.Editing() {
		return "Edit Appointment"
	}
	return "Add Appointment"
}

// Wrap folds long text at 80 columns.
func Wrap(s string) string {
	return strings.TrimRight(wordwrap.String(s, wrapWidth), "\n")
}

func (pp *PrettyPrint) json(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(pp.out(), "{\"error\": %q}\n", err.Error())
		return
	}
	_, _ = fmt.Fprintln(pp.out(), string(b))
}
