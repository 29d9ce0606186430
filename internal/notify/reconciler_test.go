package notify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/model"
)

func makeNotifications(n int) []model.Notificacion {
	out := make([]model.Notificacion, n)
	for i := range out {
		out[i] = model.Notificacion{ID: i + 1, Prioridad: model.PrioridadMedia}
	}
	return out
}

func TestSummarizeTruncatesPreview(t *testing.T) {
	list := &api.NotificacionList{
		Notificaciones: makeNotifications(8),
		TotalNoLeidas:  8,
	}

	msg := summarize(list)
	if msg.Unread != 8 {
		t.Errorf("unread = %d, want 8", msg.Unread)
	}
	if len(msg.Preview) != PreviewLimit {
		t.Fatalf("preview length = %d, want %d", len(msg.Preview), PreviewLimit)
	}
	// The preview is the head of the list in server order.
	for i, n := range msg.Preview {
		if n.ID != i+1 {
			t.Errorf("preview[%d].ID = %d, want %d", i, n.ID, i+1)
		}
	}
}

func TestSummarizeShortListKeptWhole(t *testing.T) {
	list := &api.NotificacionList{
		Notificaciones: makeNotifications(3),
		TotalNoLeidas:  3,
	}

	msg := summarize(list)
	if len(msg.Preview) != 3 {
		t.Errorf("preview length = %d, want 3", len(msg.Preview))
	}
}

func TestFilterPriority(t *testing.T) {
	list := []model.Notificacion{
		{ID: 1, Prioridad: model.PrioridadAlta},
		{ID: 2, Prioridad: model.PrioridadCritica},
		{ID: 3, Prioridad: model.PrioridadAlta},
		{ID: 4, Prioridad: model.PrioridadBaja},
	}

	got := FilterPriority(list, model.PrioridadAlta)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("order changed: got %d, %d", got[0].ID, got[1].ID)
	}
}

func TestFilterPriorityEmptyPassesThrough(t *testing.T) {
	list := makeNotifications(4)
	got := FilterPriority(list, "")
	if len(got) != len(list) {
		t.Errorf("got %d entries, want %d", len(got), len(list))
	}
}

// stubBackend serves the two endpoints a poll tick touches.
type stubBackend struct {
	created     int
	generateErr bool
	unread      []model.Notificacion
}

func (s *stubBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/notificaciones/generar-automaticas":
			if s.generateErr {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"success": false, "error": "boom"}`)
				return
			}
			fmt.Fprintf(w, `{"success": true, "data": {"notificaciones_creadas": %d}}`, s.created)
		case "/api/notificaciones":
			data, _ := json.Marshal(s.unread)
			fmt.Fprintf(w,
				`{"success": true, "data": {"notificaciones": %s, "total_no_leidas": %d}}`,
				data, len(s.unread),
			)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"success": false, "error": "not found"}`)
		}
	}
}

func newTestReconciler(t *testing.T, backend *stubBackend) *Reconciler {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, "", nil)
	return New(client, nil, time.Hour)
}

func receive(t *testing.T, r *Reconciler) tea.Msg {
	t.Helper()
	select {
	case msg := <-r.resultCh:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a poller message")
		return nil
	}
}

func TestTickEmitsGeneratedThenSummary(t *testing.T) {
	backend := &stubBackend{created: 2, unread: makeNotifications(2)}
	r := newTestReconciler(t, backend)

	r.tick()

	gen, ok := receive(t, r).(GeneratedMsg)
	if !ok {
		t.Fatal("first message is not GeneratedMsg")
	}
	if gen.Created != 2 {
		t.Errorf("created = %d, want 2", gen.Created)
	}

	sum, ok := receive(t, r).(SummaryMsg)
	if !ok {
		t.Fatal("second message is not SummaryMsg")
	}
	if sum.Unread != 2 {
		t.Errorf("unread = %d, want 2", sum.Unread)
	}
}

func TestTickSkipsGeneratedWhenNothingCreated(t *testing.T) {
	backend := &stubBackend{created: 0, unread: makeNotifications(1)}
	r := newTestReconciler(t, backend)

	r.tick()

	if _, ok := receive(t, r).(SummaryMsg); !ok {
		t.Fatal("expected SummaryMsg as the only message")
	}
	select {
	case msg := <-r.resultCh:
		t.Errorf("unexpected extra message %T", msg)
	default:
	}
}

func TestTickSummaryDespiteGenerationFailure(t *testing.T) {
	// A failed generation round must not block the summary refresh.
	backend := &stubBackend{generateErr: true, unread: makeNotifications(3)}
	r := newTestReconciler(t, backend)

	r.tick()

	sum, ok := receive(t, r).(SummaryMsg)
	if !ok {
		t.Fatal("expected SummaryMsg")
	}
	if sum.Unread != 3 {
		t.Errorf("unread = %d, want 3", sum.Unread)
	}
}

func TestLoadFullListAppliesPriorityFilter(t *testing.T) {
	backend := &stubBackend{unread: []model.Notificacion{
		{ID: 1, Prioridad: model.PrioridadCritica},
		{ID: 2, Prioridad: model.PrioridadBaja},
		{ID: 3, Prioridad: model.PrioridadCritica},
	}}
	r := newTestReconciler(t, backend)

	msg, ok := r.LoadFullList(model.PrioridadCritica, true)().(FullListMsg)
	if !ok {
		t.Fatal("expected FullListMsg")
	}
	if msg.Err != nil {
		t.Fatalf("err = %v", msg.Err)
	}
	if len(msg.Notificaciones) != 2 {
		t.Fatalf("got %d entries, want 2", len(msg.Notificaciones))
	}
	if msg.Notificaciones[0].ID != 1 || msg.Notificaciones[1].ID != 3 {
		t.Errorf("order changed: got %d, %d", msg.Notificaciones[0].ID, msg.Notificaciones[1].ID)
	}
	// The unread total reflects the whole fetch, not the filtered view.
	if msg.Unread != 3 {
		t.Errorf("unread = %d, want 3", msg.Unread)
	}
}

func TestActionReportsServerFailure(t *testing.T) {
	backend := &stubBackend{}
	r := newTestReconciler(t, backend)

	msg, ok := r.MarkRead(99)().(ActionDoneMsg)
	if !ok {
		t.Fatal("expected ActionDoneMsg")
	}
	if msg.Action != ActionMarkRead {
		t.Errorf("action = %q, want %q", msg.Action, ActionMarkRead)
	}
	if msg.Err == nil {
		t.Error("expected an error from the stub's 404")
	}
}

func TestStartIsIdempotent(t *testing.T) {
	backend := &stubBackend{unread: makeNotifications(1)}
	r := newTestReconciler(t, backend)

	if cmd := r.Start(); cmd == nil {
		t.Fatal("first Start returned nil command")
	}
	if cmd := r.Start(); cmd != nil {
		t.Error("second Start should be a no-op")
	}
	r.Stop()
}
