package printers

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/scheduler"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func sample() appointment.Appointment {
	return appointment.Appointment{
		ID:          "1",
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

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Status(scheduler.Status{})
	assert.Empty(t, buf.String())

	pp.Status(scheduler.Status{Text: "Error deleting appointment."})
	assert.Equal(t, "Error deleting appointment.\n", buf.String())
}

func TestStatusJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, JSON: true}

	pp.Status(scheduler.Status{Text: "Error updating appointment."})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["error"])
	assert.Equal(t, "Error updating appointment.", got["status"])
}

func TestCollectionEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Collection(nil)
	assert.Equal(t, "No appointments found.\n", buf.String())
}

func TestCollectionTable(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Collection([]appointment.Appointment{sample()})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[0], "Patient Name")
	assert.Contains(t, lines[1], "Jane")
	assert.Contains(t, lines[1], "jane@x.com")
}

func TestCollectionJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, JSON: true}

	pp.Collection(nil)
	assert.Equal(t, "[]\n", buf.String())
}

func TestRecord(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	a := sample()
	a.Reason = ""
	pp.Record(&a)
	out := buf.String()
	assert.Contains(t, out, "Patient Name:")
	assert.Contains(t, out, "Dr. Lee")
	assert.Contains(t, out, "Reason for Visit:")
	assert.Contains(t, out, " -")
}

func TestRecordJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, JSON: true}

	a := sample()
	pp.Record(&a)

	var got appointment.Appointment
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, a, got)
}

func TestDraftHeading(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}

	pp.Draft(appointment.Blank(), scheduler.ModeCreate)
	assert.True(t, strings.HasPrefix(buf.String(), "Add Appointment\n"))

	buf.Reset()
	pp.Draft(sample(), scheduler.ModeEdit)
	assert.True(t, strings.HasPrefix(buf.String(), "Edit Appointment\n"))
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("word ", 40)
	for _, line := range strings.Split(Wrap(long), "\n") {
		assert.LessOrEqual(t, len(line), 80)
	}
}
