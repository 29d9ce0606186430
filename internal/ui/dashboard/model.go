// Package dashboard is the landing view: headline stats, upcoming
// schedule events across all active batches, and the most recent unread
// alerts from the notification poller.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/keys"
	"github.com/jfarias/avicontrol/internal/model"
	"github.com/jfarias/avicontrol/internal/schedule"
	"github.com/jfarias/avicontrol/internal/theme"
	"github.com/jfarias/avicontrol/internal/ui"
)

// StatsLoadedMsg carries the headline numbers.
type StatsLoadedMsg struct {
	Stats *model.DashboardStats
	Err   error
}

// PendingLoadedMsg carries the cross-batch pending events.
type PendingLoadedMsg struct {
	Eventos []model.EventoPendienteLote
	Err     error
}

// ResumenLoadedMsg carries the per-batch summary rows.
type ResumenLoadedMsg struct {
	Rows []model.ResumenLote
	Err  error
}

// Model is the dashboard view component.
type Model struct {
	client *api.Client
	keys   *keys.KeyMap

	stats   *model.DashboardStats
	eventos []model.EventoPendienteLote
	resumen []model.ResumenLote
	alerts  []model.Notificacion
	loadErr error

	width  int
	height int
}

// New creates a dashboard model.
func New(client *api.Client, k *keys.KeyMap, width, height int) Model {
	return Model{client: client, keys: k, width: width, height: height}
}

// Init returns the commands that load the dashboard data.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load refetches all three dashboard queries.
func (m Model) Load() tea.Cmd {
	client := m.client
	return tea.Batch(
		func() tea.Msg {
			stats, err := client.GetEstadisticas(context.Background())
			return StatsLoadedMsg{Stats: stats, Err: err}
		},
		func() tea.Msg {
			eventos, err := client.ListEventosPendientes(context.Background())
			return PendingLoadedMsg{Eventos: eventos, Err: err}
		},
		func() tea.Msg {
			rows, err := client.GetResumenLotes(context.Background())
			return ResumenLoadedMsg{Rows: rows, Err: err}
		},
	)
}

// SetAlerts replaces the unread-alert preview shown on the dashboard.
// The slice comes straight from the poller; order is the server's.
func (m *Model) SetAlerts(alerts []model.Notificacion) {
	m.alerts = alerts
}

// Update handles messages for the dashboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatsLoadedMsg:
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
		}
		return m, nil

	case PendingLoadedMsg:
		if msg.Err == nil {
			m.eventos = msg.Eventos
		}
		return m, nil

	case ResumenLoadedMsg:
		if msg.Err == nil {
			m.resumen = msg.Rows
		}
		return m, nil

	case ui.OpDoneMsg:
		if msg.Err == nil {
			return m, m.Load()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.Load()
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	sections := []string{
		m.renderStats(),
		m.renderPending(),
		m.renderAlerts(),
		m.renderResumen(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStats draws the headline cards.
func (m Model) renderStats() string {
	if m.stats == nil {
		if m.loadErr != nil {
			return theme.PanelStyle.Render(
				lipgloss.NewStyle().Foreground(theme.ColorRed).
					Render("Could not load stats. Press r to retry."),
			)
		}
		return theme.PanelStyle.Render("Loading...")
	}

	cards := []string{
		statCard("Active batches", fmt.Sprintf("%d", m.stats.LotesActivos)),
		statCard("Live birds", fmt.Sprintf("%d", m.stats.PollosActivos)),
		statCard("Capital", fmt.Sprintf("%.2f", m.stats.CapitalTotal)),
		statCard("Expenses this month", fmt.Sprintf("%.2f", m.stats.GastosMes)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func statCard(label, value string) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.HelpStyle.Render(label),
		lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render(value),
	)
	return theme.PanelStyle.Render(body)
}

// renderPending draws the events due across all batches in the coming
// week, colored by urgency.
func (m Model) renderPending() string {
	title := lipgloss.NewStyle().Bold(true).Render("Upcoming events")
	if len(m.eventos) == 0 {
		return theme.PanelStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left, title,
				theme.HelpStyle.Render("Nothing due this week.")),
		)
	}

	now := time.Now()
	lines := []string{title}
	for _, e := range m.eventos {
		status := schedule.ClassifyEvent(e.EventoCronograma, now)
		label := theme.EventStatusStyle(status.Category).Render(status.Label)
		lines = append(lines, fmt.Sprintf(
			"%s  %s  %s", label, e.LoteNombre, e.Description,
		))
	}
	return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderAlerts draws the unread-notification preview fed by the poller.
func (m Model) renderAlerts() string {
	title := lipgloss.NewStyle().Bold(true).Render("Recent alerts")
	if len(m.alerts) == 0 {
		return theme.PanelStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left, title,
				theme.HelpStyle.Render("No unread notifications.")),
		)
	}

	lines := []string{title}
	for _, n := range m.alerts {
		badge := theme.PriorityStyle(n.Prioridad).Render(n.Prioridad)
		lines = append(lines, fmt.Sprintf("%s  %s", badge, n.Titulo))
	}
	return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderResumen draws the per-batch financial summary rows.
func (m Model) renderResumen() string {
	if len(m.resumen) == 0 {
		return ""
	}

	lines := []string{lipgloss.NewStyle().Bold(true).Render("Batch summary")}
	for _, r := range m.resumen {
		estado := theme.EstadoStyle(r.Estado).Render(r.Estado)
		lines = append(lines, fmt.Sprintf(
			"%-20s %s  capital %.2f  purchases %.2f  sales %.2f",
			r.Name, estado, r.CapitalActual, r.TotalCompras, r.TotalVentas,
		))
	}
	return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
