// Package notify keeps the unread-notification badge and preview list
// reconciled with the server of record. A single repeating poller asks
// the backend to materialize automatic notifications and re-fetches the
// unread summary; user actions (mark read, delete) are fire-and-forget
// requests followed by a refresh, never optimistic local mutations.
package notify

import (
	"context"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/model"
)

// PreviewLimit bounds the badge preview list.
const PreviewLimit = 5

// DefaultInterval is the poll period. Fixed; never reset on user
// activity.
const DefaultInterval = 30 * time.Second

// tickTimeout bounds one poll round trip.
const tickTimeout = 25 * time.Second

// SummaryMsg carries a fresh unread summary to the UI. Preview holds at
// most PreviewLimit entries in exactly the server's order.
type SummaryMsg struct {
	Unread  int
	Preview []model.Notificacion
}

// GeneratedMsg reports that the server materialized new automatic
// notifications on a poll tick. Only sent when the count is positive.
type GeneratedMsg struct {
	Created int
}

// FullListMsg carries the full (optionally filtered) notification list
// for the dedicated notifications view.
type FullListMsg struct {
	Notificaciones []model.Notificacion
	Unread         int
	Err            error
}

// Action identifies a user-initiated notification state transition.
type Action string

const (
	ActionMarkRead    Action = "mark-read"
	ActionMarkAllRead Action = "mark-all-read"
	ActionDelete      Action = "delete"
)

// ActionDoneMsg reports completion of a user action. On success the app
// refreshes the summary and, when the notifications view is active, the
// full list; stale views are tolerated, not blocked.
type ActionDoneMsg struct {
	Action Action
	Err    error
}

// Reconciler polls the backend on a fixed interval and bridges results
// into the Bubble Tea runtime over a channel.
type Reconciler struct {
	client   *api.Client
	log      *logrus.Logger
	interval time.Duration

	resultCh  chan tea.Msg
	triggerCh chan struct{}
	stopCh    chan struct{}

	mu      sync.Mutex
	running bool
}

// New creates a Reconciler. A non-positive interval falls back to
// DefaultInterval.
func New(client *api.Client, log *logrus.Logger, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Reconciler{
		client:    client,
		log:       log,
		interval:  interval,
		resultCh:  make(chan tea.Msg, 16),
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the polling goroutine and returns a command that waits
// for its first result. Starting twice is a no-op.
func (r *Reconciler) Start() tea.Cmd {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.mu.Unlock()

	go r.loop()

	return r.waitForResult()
}

// Stop halts the polling goroutine.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	close(r.stopCh)
	r.running = false
}

// Refresh triggers an immediate poll tick without waiting for the next
// interval.
func (r *Reconciler) Refresh() {
	select {
	case r.triggerCh <- struct{}{}:
	default:
	}
}

// loop runs ticks until stopped. The first tick fires immediately.
func (r *Reconciler) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.tick()
		case <-r.triggerCh:
			r.tick()
		}
	}
}

// tick performs one poll round: ask the server to generate automatic
// notifications, then re-fetch the unread summary. The two calls have
// no ordering dependency on the server side; generation goes first only
// so the summary can already include anything it created. Failures are
// logged and swallowed: the badge keeps its last known value and the
// next tick self-corrects.
func (r *Reconciler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	created, err := r.client.GenerateAutomaticas(ctx)
	if err != nil {
		r.log.WithError(err).Debug("generating automatic notifications")
	} else if created > 0 {
		r.send(GeneratedMsg{Created: created})
	}

	list, err := r.client.ListNotificaciones(ctx, true)
	if err != nil {
		r.log.WithError(err).Debug("refreshing unread summary")
		return
	}

	r.send(summarize(list))
}

// summarize truncates the unread listing to the badge preview.
func summarize(list *api.NotificacionList) SummaryMsg {
	preview := list.Notificaciones
	if len(preview) > PreviewLimit {
		preview = preview[:PreviewLimit]
	}
	return SummaryMsg{Unread: list.TotalNoLeidas, Preview: preview}
}

// send delivers a message without blocking the poll loop.
func (r *Reconciler) send(msg tea.Msg) {
	select {
	case r.resultCh <- msg:
	default:
		// Drop if the channel is full; the next tick resends fresher state.
	}
}

// waitForResult returns a command that waits for the next poller
// message.
func (r *Reconciler) waitForResult() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-r.resultCh
		if !ok {
			return nil
		}
		return msg
	}
}

// WaitForNextResult re-subscribes to poller results. Call after
// processing each SummaryMsg or GeneratedMsg to keep listening.
func (r *Reconciler) WaitForNextResult() tea.Cmd {
	return r.waitForResult()
}

// RefreshSummary fetches the unread summary once, outside the poll
// loop. Used after user actions so the badge reflects confirmed server
// state. Errors are logged and swallowed; the badge keeps its last
// value until the next tick.
func (r *Reconciler) RefreshSummary() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
		defer cancel()

		list, err := r.client.ListNotificaciones(ctx, true)
		if err != nil {
			r.log.WithError(err).Debug("refreshing unread summary")
			return nil
		}
		return summarize(list)
	}
}

// LoadFullList fetches the list for the notifications view. unreadOnly
// maps to the server's read-state filter; priority is applied
// client-side after the fetch because the server cannot filter on it.
// Server-given relative order is preserved.
func (r *Reconciler) LoadFullList(priority string, unreadOnly bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
		defer cancel()

		list, err := r.client.ListNotificaciones(ctx, unreadOnly)
		if err != nil {
			return FullListMsg{Err: err}
		}
		return FullListMsg{
			Notificaciones: FilterPriority(list.Notificaciones, priority),
			Unread:         list.TotalNoLeidas,
		}
	}
}

// MarkRead requests the read transition for one notification.
func (r *Reconciler) MarkRead(id int) tea.Cmd {
	return r.action(ActionMarkRead, func(ctx context.Context) error {
		return r.client.MarkNotificacionLeida(ctx, id)
	})
}

// MarkAllRead requests the bulk read transition.
func (r *Reconciler) MarkAllRead() tea.Cmd {
	return r.action(ActionMarkAllRead, func(ctx context.Context) error {
		return r.client.MarkTodasLeidas(ctx)
	})
}

// Delete removes a notification. The caller is responsible for having
// confirmed with the user first.
func (r *Reconciler) Delete(id int) tea.Cmd {
	return r.action(ActionDelete, func(ctx context.Context) error {
		return r.client.DeleteNotificacion(ctx, id)
	})
}

func (r *Reconciler) action(a Action, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
		defer cancel()

		return ActionDoneMsg{Action: a, Err: fn(ctx)}
	}
}

// FilterPriority narrows a notification list to one priority,
// preserving relative order. An empty priority returns the list
// unchanged.
func FilterPriority(list []model.Notificacion, priority string) []model.Notificacion {
	if priority == "" {
		return list
	}
	out := make([]model.Notificacion, 0, len(list))
	for _, n := range list {
		if n.Prioridad == priority {
			out = append(out, n)
		}
	}
	return out
}
