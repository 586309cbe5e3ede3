package scheduler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/appt/pkg/appointment"
	"tableflip.dev/appt/pkg/remote"
)

// textService answers add and update with a plain status line instead of the
// stored record.
type textService struct {
	mu      sync.Mutex
	records []appointment.Appointment
	lists   int
}

func newTextService(t *testing.T, seed ...appointment.Appointment) (*textService, *remote.Client) {
	t.Helper()
	ts := &textService{records: seed}
	mux := http.NewServeMux()
	mux.HandleFunc("/appointmentapi/all", func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		defer ts.mu.Unlock()
		ts.lists++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ts.records)
	})
	mux.HandleFunc("/appointmentapi/add", func(w http.ResponseWriter, r *http.Request) {
		var a appointment.Appointment
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&a))
		ts.mu.Lock()
		a.ID = appointment.ID("7")
		ts.records = append(ts.records, a)
		ts.mu.Unlock()
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Appointment added successfully"))
	})
	mux.HandleFunc("/appointmentapi/update", func(w http.ResponseWriter, r *http.Request) {
		var a appointment.Appointment
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&a))
		ts.mu.Lock()
		for i := range ts.records {
			if ts.records[i].ID == a.ID {
				ts.records[i] = a
			}
		}
		ts.mu.Unlock()
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Appointment updated successfully"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return ts, remote.New(srv.URL)
}

func (ts *textService) listCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.lists
}

func TestSubmitCreateAcceptsStatusText(t *testing.T) {
	ts, c := newTextService(t)
	s := New(c)
	fillDraft(t, s, jane())

	require.NoError(t, s.SubmitCreate(context.Background()))

	st := s.Snapshot()
	assert.Equal(t, 1, ts.listCount())
	assert.True(t, st.Draft.IsBlank())
	assert.Equal(t, ModeCreate, st.Mode)
	assert.Equal(t, "Appointment added successfully.", st.Status.Text)
	require.Len(t, st.Collection, 1)
	assert.Equal(t, appointment.ID("7"), st.Collection[0].ID)
}

func TestSubmitUpdateAcceptsStatusText(t *testing.T) {
	existing := jane()
	existing.ID = "3"
	ts, c := newTextService(t, existing)
	s := New(c)

	s.EnterEditMode(existing)
	require.NoError(t, s.SetField(appointment.FieldStatus, string(appointment.StatusCompleted)))
	require.NoError(t, s.SubmitUpdate(context.Background()))

	st := s.Snapshot()
	assert.Equal(t, 1, ts.listCount())
	assert.Equal(t, ModeCreate, st.Mode)
	assert.True(t, st.Draft.IsBlank())
	assert.Equal(t, "Appointment updated successfully.", st.Status.Text)
	require.Len(t, st.Collection, 1)
	assert.Equal(t, appointment.StatusCompleted, st.Collection[0].Status)
}
