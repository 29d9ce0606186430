// Package cronograma is the per-batch schedule view: cycle progress,
// the ordered event list with derived urgency labels, and event
// completion. The server's pending/completed state stays authoritative;
// completing an event always re-fetches the whole schedule rather than
// mutating the local copy.
package cronograma

import (
	"context"
	"fmt"
	"strings"
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

// progressBarWidth is the character width of the cycle progress bar.
const progressBarWidth = 40

// LoadedMsg carries a freshly fetched schedule.
type LoadedMsg struct {
	Cron *api.Cronograma
	Err  error
}

// Model is the schedule view component for one batch.
type Model struct {
	client *api.Client
	keys   *keys.KeyMap

	loteID  int
	cron    *api.Cronograma
	cursor  int
	loadErr error

	width  int
	height int
}

// New creates a schedule model. SetLote must be called before the view
// is shown.
func New(client *api.Client, k *keys.KeyMap, width, height int) Model {
	return Model{client: client, keys: k, width: width, height: height}
}

// SetLote points the view at a batch and returns the load command.
func (m *Model) SetLote(loteID int) tea.Cmd {
	m.loteID = loteID
	m.cron = nil
	m.cursor = 0
	m.loadErr = nil
	return m.Load()
}

// Load fetches the batch's schedule.
func (m Model) Load() tea.Cmd {
	client := m.client
	id := m.loteID
	return func() tea.Msg {
		cron, err := client.GetCronograma(context.Background(), id)
		return LoadedMsg{Cron: cron, Err: err}
	}
}

// Update handles messages for the schedule view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.cron = msg.Cron
			if m.cursor >= len(m.cron.Eventos) {
				m.cursor = 0
			}
		}
		return m, nil

	case ui.OpDoneMsg:
		if msg.Err == nil {
			return m, m.Load()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cron != nil && m.cursor < len(m.cron.Eventos)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.Load()

	case key.Matches(msg, m.keys.Complete):
		return m.completeSelected()
	}
	return m, nil
}

// completeSelected asks for confirmation and marks the event executed
// today. Already-completed events are skipped.
func (m Model) completeSelected() (Model, tea.Cmd) {
	if m.cron == nil || m.cursor >= len(m.cron.Eventos) {
		return m, nil
	}
	ev := m.cron.Eventos[m.cursor]
	if ev.Completed() {
		return m, nil
	}

	client := m.client
	id := ev.ID
	return m, ui.Confirm(
		fmt.Sprintf("Mark %q as done?", ev.Description),
		ui.Do("Event completed", func(ctx context.Context) error {
			return client.CompleteEvento(ctx, id, model.Today())
		}),
	)
}

// View renders the schedule view.
func (m Model) View() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorRed).
			Render("Could not load the schedule.\nPress r to retry.")
	}
	if m.cron == nil {
		return theme.HelpStyle.Render("Loading schedule...")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderSummary(),
		m.renderEvents(),
	)
}

// renderSummary draws the batch header with age and cycle progress.
func (m Model) renderSummary() string {
	lote := m.cron.Lote

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(lote.Name),
		fmt.Sprintf("Day %d of the cycle", m.cron.DiasEdad),
	}
	if m.cron.DiasRestantes != nil {
		lines = append(lines, fmt.Sprintf("%d days to estimated exit", *m.cron.DiasRestantes))
	}

	if pct, ok := schedule.CycleProgress(lote, m.cron.DiasEdad); ok {
		lines = append(lines, renderProgressBar(pct))
	} else {
		lines = append(lines, theme.HelpStyle.Render("No estimated exit date; progress unavailable."))
	}

	return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderProgressBar draws a fixed-width bar for a percentage already
// clamped to [0, 100].
func renderProgressBar(pct float64) string {
	filled := int(pct / 100 * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return fmt.Sprintf("%s %.0f%%", bar, pct)
}

// renderEvents draws the ordered event list with derived status labels.
func (m Model) renderEvents() string {
	now := time.Now()
	lines := make([]string, 0, len(m.cron.Eventos))

	for i, ev := range m.cron.Eventos {
		status := schedule.ClassifyEvent(ev, now)
		label := theme.EventStatusStyle(status.Category).Render(status.Label)

		tag := ""
		if t, ok := schedule.TagFor(ev.TipoEvento); ok {
			tag = theme.HelpStyle.Render("[" + string(t) + "]")
		}

		line := fmt.Sprintf(
			"%s  %s %s %s", ev.ScheduledDate, label, ev.Description, tag,
		)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return theme.HelpStyle.Render("The schedule has no events.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
