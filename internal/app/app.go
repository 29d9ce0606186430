// Package app holds the root Bubble Tea model: view routing, the
// notification poller bridge, toast and confirmation handling, and the
// form-to-API dispatch.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/catalog"
	"github.com/jfarias/avicontrol/internal/keys"
	"github.com/jfarias/avicontrol/internal/notify"
	"github.com/jfarias/avicontrol/internal/theme"
	"github.com/jfarias/avicontrol/internal/ui"
	"github.com/jfarias/avicontrol/internal/ui/clientes"
	"github.com/jfarias/avicontrol/internal/ui/creditos"
	"github.com/jfarias/avicontrol/internal/ui/cronograma"
	"github.com/jfarias/avicontrol/internal/ui/dashboard"
	"github.com/jfarias/avicontrol/internal/ui/forms"
	"github.com/jfarias/avicontrol/internal/ui/lotes"
	"github.com/jfarias/avicontrol/internal/ui/notificaciones"
)

// toastDuration is how long a toast stays on the status bar.
const toastDuration = 4 * time.Second

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewLotes
	ViewCronograma
	ViewNotificaciones
	ViewClientes
	ViewCreditos
)

// toastExpiredMsg clears the toast whose sequence number it carries.
type toastExpiredMsg struct {
	seq int
}

// catalogRefreshedMsg reports a completed background catalog refresh.
type catalogRefreshedMsg struct{}

// pendingConfirm is a confirmation prompt awaiting a y/n answer.
type pendingConfirm struct {
	prompt string
	cmd    tea.Cmd
}

// Model is the root Bubble Tea model.
type Model struct {
	layout ui.Layout
	keys   *keys.KeyMap
	client *api.Client
	cache  *catalog.Cache
	recon  *notify.Reconciler

	currentView    ViewState
	dashboard      dashboard.Model
	lotes          lotes.Model
	cronograma     cronograma.Model
	notificaciones notificaciones.Model
	clientes       clientes.Model
	creditos       creditos.Model
	form           forms.Model

	unread   int
	toast    string
	toastErr bool
	toastSeq int
	confirm  *pendingConfirm
	ready    bool
}

// New creates the root application model.
func New(client *api.Client, cache *catalog.Cache, recon *notify.Reconciler) Model {
	k := keys.DefaultKeyMap()

	return Model{
		keys:           k,
		client:         client,
		cache:          cache,
		recon:          recon,
		currentView:    ViewDashboard,
		dashboard:      dashboard.New(client, k, 80, 24),
		lotes:          lotes.New(client, cache, k, 80, 24),
		cronograma:     cronograma.New(client, k, 80, 24),
		notificaciones: notificaciones.New(recon, k, 80, 24),
		clientes:       clientes.New(client, cache, k, 80, 24),
		creditos:       creditos.New(client, k, 80, 24),
		form:           forms.New(80, 24),
	}
}

// Init starts the notification poller and loads the dashboard.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.recon.Start(),
		m.dashboard.Init(),
	)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.dashboard.SetSize(w, h)
		m.lotes.SetSize(w, h)
		m.cronograma.SetSize(w, h)
		m.notificaciones.SetSize(w, h)
		m.clientes.SetSize(w, h)
		m.creditos.SetSize(w, h)
		m.form.SetSize(w, h)
		return m, nil
	}

	// A pending confirmation swallows all keys until answered.
	if m.confirm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirmKey(keyMsg)
		}
	}

	// An open form owns the keyboard.
	if m.form.Kind() != forms.KindNone {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case notify.SummaryMsg:
		m.unread = msg.Unread
		m.dashboard.SetAlerts(msg.Preview)
		return m, m.recon.WaitForNextResult()

	case notify.GeneratedMsg:
		toastCmd := m.setToast(
			fmt.Sprintf("%d new notifications", msg.Created), false,
		)
		return m, tea.Batch(m.recon.WaitForNextResult(), toastCmd)

	case notify.ActionDoneMsg:
		return m.handleActionDone(msg)

	case ui.ConfirmRequestMsg:
		m.confirm = &pendingConfirm{prompt: msg.Prompt, cmd: msg.Cmd}
		return m, nil

	case ui.OpDoneMsg:
		return m.handleOpDone(msg)

	case lotes.SelectedLoteMsg:
		m.currentView = ViewCronograma
		return m, m.cronograma.SetLote(msg.LoteID)

	case creditos.PagoRequestedMsg:
		return m, m.form.StartPago(msg.Credito)

	case forms.VentaMsg:
		client := m.client
		req := msg.Req
		return m, ui.Do("Sale registered", func(ctx context.Context) error {
			_, err := client.CreateVenta(ctx, req)
			return err
		})

	case forms.CompraMsg:
		client := m.client
		req := msg.Req
		return m, ui.Do("Purchase registered", func(ctx context.Context) error {
			_, err := client.CreateCompra(ctx, req)
			return err
		})

	case forms.MortalidadMsg:
		client := m.client
		req := msg.Req
		return m, ui.Do("Mortality recorded", func(ctx context.Context) error {
			_, err := client.CreateMortalidad(ctx, req)
			return err
		})

	case forms.PagoMsg:
		client := m.client
		req := msg.Req
		return m, ui.Do("Payment recorded", func(ctx context.Context) error {
			_, err := client.CreatePago(ctx, req)
			return err
		})

	case forms.LoteMsg:
		client := m.client
		req := msg.Req
		return m, ui.Do("Batch registered", func(ctx context.Context) error {
			_, err := client.CreateLote(ctx, req)
			return err
		})

	case forms.ClienteMsg:
		client := m.client
		req := msg.Req
		return m, ui.Do("Customer registered", func(ctx context.Context) error {
			_, err := client.CreateCliente(ctx, req)
			return err
		})

	case forms.CancelMsg:
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case catalogRefreshedMsg:
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleConfirmKey resolves a pending confirmation.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		cmd := m.confirm.cmd
		m.confirm = nil
		return m, cmd
	case "n", "N", "esc", "q":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

// handleActionDone reacts to a finished notification action: refresh
// the badge from the server and, when the notifications view is on
// screen, its full list as well.
func (m Model) handleActionDone(msg notify.ActionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.setToast(ui.ErrorText(msg.Err), true)
	}

	cmds := []tea.Cmd{m.recon.RefreshSummary()}
	if m.currentView == ViewNotificaciones {
		cmds = append(cmds, m.notificaciones.Reload())
	}
	return m, tea.Batch(cmds...)
}

// handleOpDone toasts the outcome and lets the active view reload. On
// success the selector catalog is refreshed in the background so forms
// opened next see the new data.
func (m Model) handleOpDone(msg ui.OpDoneMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if msg.Err != nil {
		cmds = append(cmds, m.setToast(ui.ErrorText(msg.Err), true))
	} else {
		cmds = append(cmds, m.setToast(msg.Notice, false), m.refreshCatalog())
	}

	model, viewCmd := m.updateActiveView(msg)
	root := model.(Model)
	cmds = append(cmds, viewCmd)
	return root, tea.Batch(cmds...)
}

// handleGlobalKeys processes keys that work regardless of the active
// view. The third return value reports whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case msg.String() == "ctrl+c":
		m.recon.Stop()
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Quit):
		m.recon.Stop()
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Back):
		if m.currentView == ViewCronograma {
			m.currentView = ViewLotes
			return m, m.lotes.Load(), true
		}
		m.currentView = ViewDashboard
		return m, m.dashboard.Load(), true

	case key.Matches(msg, m.keys.Dashboard):
		m.currentView = ViewDashboard
		return m, m.dashboard.Load(), true

	case key.Matches(msg, m.keys.Lotes):
		m.currentView = ViewLotes
		return m, m.lotes.Load(), true

	case key.Matches(msg, m.keys.Notificaciones):
		m.currentView = ViewNotificaciones
		return m, m.notificaciones.Reload(), true

	case key.Matches(msg, m.keys.Clientes):
		m.currentView = ViewClientes
		return m, m.clientes.Load(), true

	case key.Matches(msg, m.keys.Creditos):
		m.currentView = ViewCreditos
		return m, m.creditos.Load(), true

	case key.Matches(msg, m.keys.New):
		switch m.currentView {
		case ViewLotes:
			return m, m.form.StartLote(), true
		case ViewClientes:
			return m, m.form.StartCliente(), true
		}
		return m, nil, false

	case key.Matches(msg, m.keys.Venta):
		return m, m.form.StartVenta(m.cache.ActiveLotes(), m.cache.Clientes()), true

	case key.Matches(msg, m.keys.Compra):
		return m, m.form.StartCompra(m.cache.ActiveLotes()), true

	case key.Matches(msg, m.keys.Mortalidad):
		return m, m.form.StartMortalidad(m.cache.ActiveLotes()), true
	}

	return m, nil, false
}

// updateActiveView dispatches the message to the open form, when there
// is one, or to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.form.Kind() != forms.KindNone {
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	switch m.currentView {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewLotes:
		m.lotes, cmd = m.lotes.Update(msg)
	case ViewCronograma:
		m.cronograma, cmd = m.cronograma.Update(msg)
	case ViewNotificaciones:
		m.notificaciones, cmd = m.notificaciones.Update(msg)
	case ViewClientes:
		m.clientes, cmd = m.clientes.Update(msg)
	case ViewCreditos:
		m.creditos, cmd = m.creditos.Update(msg)
	}

	return m, cmd
}

// refreshCatalog refetches the selector caches in the background.
// Failures are tolerated; the cache keeps its previous snapshot.
func (m Model) refreshCatalog() tea.Cmd {
	client := m.client
	cache := m.cache
	return func() tea.Msg {
		ctx := context.Background()
		if lotes, err := client.ListLotes(ctx); err == nil {
			cache.SetLotes(ctx, lotes)
		}
		if clientes, err := client.ListClientes(ctx); err == nil {
			cache.SetClientes(ctx, clientes)
		}
		return catalogRefreshedMsg{}
	}
}

// setToast replaces the status-bar toast and schedules its expiry.
func (m *Model) setToast(text string, isErr bool) tea.Cmd {
	m.toast = text
	m.toastErr = isErr
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.headerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints(), m.statusToast())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

func (m Model) headerTitle() string {
	switch m.currentView {
	case ViewLotes:
		return "avicontrol / batches"
	case ViewCronograma:
		return "avicontrol / schedule"
	case ViewNotificaciones:
		return "avicontrol / notifications"
	case ViewClientes:
		return "avicontrol / customers"
	case ViewCreditos:
		return "avicontrol / credits"
	default:
		return "avicontrol"
	}
}

func (m Model) headerStatus() string {
	if m.unread == 0 {
		return "no unread"
	}
	return fmt.Sprintf("%d unread", m.unread)
}

// renderContent returns the rendered string for the active view, with
// an open form taking over the content area.
func (m Model) renderContent() string {
	if m.form.Kind() != forms.KindNone {
		return m.form.View()
	}

	switch m.currentView {
	case ViewLotes:
		return m.lotes.View()
	case ViewCronograma:
		return m.cronograma.View()
	case ViewNotificaciones:
		return m.notificaciones.View()
	case ViewClientes:
		return m.clientes.View()
	case ViewCreditos:
		return m.creditos.View()
	default:
		return m.dashboard.View()
	}
}

// statusToast returns the styled toast or confirmation prompt, empty
// when neither is active.
func (m Model) statusToast() string {
	if m.confirm != nil {
		return theme.ToastInfoStyle.Render(m.confirm.prompt + " (y/n)")
	}
	if m.toast == "" {
		return ""
	}
	if m.toastErr {
		return theme.ToastErrorStyle.Render(m.toast)
	}
	return theme.ToastInfoStyle.Render(m.toast)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.form.Kind() != forms.KindNone {
		return "enter next | shift+tab back | esc cancel"
	}

	switch m.currentView {
	case ViewLotes:
		return "enter schedule | n new | C close | d delete | r refresh | 1-5 views | q quit"
	case ViewCronograma:
		return "x complete | v sale | c purchase | t mortality | r refresh | esc back"
	case ViewNotificaciones:
		return "m read | M all read | d delete | u unread only | p priority | r refresh"
	case ViewClientes:
		return "n new | d delete | r refresh | 1-5 views | q quit"
	case ViewCreditos:
		return "g payment | r refresh | 1-5 views | q quit"
	default:
		return "1 dashboard | 2 batches | 3 notifications | 4 customers | 5 credits | v sale | q quit"
	}
}
