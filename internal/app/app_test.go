package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/catalog"
	"github.com/jfarias/avicontrol/internal/notify"
)

// newTestModel builds a root model against a stub backend that counts
// notification list fetches.
func newTestModel(t *testing.T) (Model, *int32) {
	t.Helper()

	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/api/notificaciones" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"success": false, "error": "not found"}`)
			return
		}
		atomic.AddInt32(&fetches, 1)
		fmt.Fprint(w, `{"success": true, "data": {"notificaciones": [], "total_no_leidas": 0}}`)
	}))
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, "", nil)
	recon := notify.New(client, nil, time.Hour)
	return New(client, catalog.NewCache(nil, nil), recon), &fetches
}

// collect runs a command tree and gathers every message it produces.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestActionDoneReloadsListOnNotificationsView(t *testing.T) {
	m, fetches := newTestModel(t)
	m.currentView = ViewNotificaciones

	_, cmd := m.Update(notify.ActionDoneMsg{Action: notify.ActionMarkRead})

	var sawSummary, sawFullList bool
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case notify.SummaryMsg:
			sawSummary = true
		case notify.FullListMsg:
			sawFullList = true
		}
	}
	if !sawSummary {
		t.Error("summary was not refreshed after the action")
	}
	if !sawFullList {
		t.Error("full list was not reloaded while the notifications view is active")
	}
	if n := atomic.LoadInt32(fetches); n != 2 {
		t.Errorf("backend fetches = %d, want 2", n)
	}
}

func TestActionDoneSkipsListReloadOnOtherViews(t *testing.T) {
	m, fetches := newTestModel(t)
	m.currentView = ViewDashboard

	_, cmd := m.Update(notify.ActionDoneMsg{Action: notify.ActionDelete})

	var sawSummary bool
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case notify.SummaryMsg:
			sawSummary = true
		case notify.FullListMsg:
			t.Error("full list reloaded while another view is active")
		}
	}
	if !sawSummary {
		t.Error("summary was not refreshed after the action")
	}
	if n := atomic.LoadInt32(fetches); n != 1 {
		t.Errorf("backend fetches = %d, want 1", n)
	}
}

func TestActionDoneFailureOnlyToasts(t *testing.T) {
	m, fetches := newTestModel(t)

	model, _ := m.Update(notify.ActionDoneMsg{
		Action: notify.ActionMarkRead,
		Err:    errors.New("dial tcp: connection refused"),
	})

	root := model.(Model)
	if root.toast == "" || !root.toastErr {
		t.Errorf("toast = %q, toastErr = %v, want an error toast", root.toast, root.toastErr)
	}
	if n := atomic.LoadInt32(fetches); n != 0 {
		t.Errorf("backend fetches = %d, want none after a failed action", n)
	}
}
