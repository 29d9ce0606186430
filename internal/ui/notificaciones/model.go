// Package notificaciones is the full notification list view with
// read-state and priority filters. All state transitions go through the
// reconciler: the view never flips a read flag locally, it requests the
// change and redisplays whatever the server returns.
package notificaciones

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jfarias/avicontrol/internal/keys"
	"github.com/jfarias/avicontrol/internal/model"
	"github.com/jfarias/avicontrol/internal/notify"
	"github.com/jfarias/avicontrol/internal/theme"
	"github.com/jfarias/avicontrol/internal/ui"
)

// priorityCycle is the order the p key walks the priority filter,
// starting and ending at "no filter".
var priorityCycle = []string{
	"",
	model.PrioridadCritica,
	model.PrioridadAlta,
	model.PrioridadMedia,
	model.PrioridadBaja,
}

// Model is the notification list view component.
type Model struct {
	recon *notify.Reconciler
	keys  *keys.KeyMap

	items      []model.Notificacion
	unread     int
	cursor     int
	unreadOnly bool
	priorityIx int
	loadErr    error

	width  int
	height int
}

// New creates a notification list model.
func New(recon *notify.Reconciler, k *keys.KeyMap, width, height int) Model {
	return Model{recon: recon, keys: k, width: width, height: height}
}

// Init returns a command that loads the list with the current filters.
func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches the list with the current filters. The priority
// filter is applied client-side after the fetch.
func (m Model) Reload() tea.Cmd {
	return m.recon.LoadFullList(m.priority(), m.unreadOnly)
}

func (m Model) priority() string {
	return priorityCycle[m.priorityIx]
}

// Update handles messages for the notification list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notify.FullListMsg:
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.items = msg.Notificaciones
			m.unread = msg.Unread
			if m.cursor >= len(m.items) {
				m.cursor = 0
			}
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
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.Reload()

	case key.Matches(msg, m.keys.ToggleRead):
		m.unreadOnly = !m.unreadOnly
		m.cursor = 0
		return m, m.Reload()

	case key.Matches(msg, m.keys.Priority):
		m.priorityIx = (m.priorityIx + 1) % len(priorityCycle)
		m.cursor = 0
		return m, m.Reload()

	case key.Matches(msg, m.keys.MarkRead):
		if n, ok := m.selected(); ok && !n.Leida {
			return m, m.recon.MarkRead(n.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.MarkAll):
		return m, m.recon.MarkAllRead()

	case key.Matches(msg, m.keys.Delete):
		n, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, ui.Confirm(
			fmt.Sprintf("Delete notification %q?", n.Titulo),
			m.recon.Delete(n.ID),
		)
	}
	return m, nil
}

func (m Model) selected() (model.Notificacion, bool) {
	if m.cursor >= len(m.items) {
		return model.Notificacion{}, false
	}
	return m.items[m.cursor], true
}

// View renders the notification list.
func (m Model) View() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorRed).
			Render("Could not load notifications.\nPress r to retry.")
	}

	lines := []string{m.renderFilterLine()}

	if len(m.items) == 0 {
		lines = append(lines, theme.HelpStyle.Render("Nothing to show with the current filters."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, n := range m.items {
		lines = append(lines, m.renderItem(i, n))
		if i == m.cursor && n.Mensaje != "" {
			lines = append(lines, theme.HelpStyle.PaddingLeft(4).Render(n.Mensaje))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFilterLine shows the active filters and unread count.
func (m Model) renderFilterLine() string {
	scope := "all"
	if m.unreadOnly {
		scope = "unread only"
	}
	prio := m.priority()
	if prio == "" {
		prio = "any priority"
	}
	return theme.HelpStyle.Render(
		fmt.Sprintf("%d unread | showing %s, %s", m.unread, scope, prio),
	)
}

// renderItem draws one notification line.
func (m Model) renderItem(index int, n model.Notificacion) string {
	marker := " "
	if !n.Leida {
		marker = "●"
	}
	badge := theme.PriorityStyle(n.Prioridad).Render(fmt.Sprintf("%-7s", n.Prioridad))

	line := fmt.Sprintf(
		"%s %s %s  %s", marker, badge, n.Titulo, relativeAge(n.CreatedAt),
	)
	if index == m.cursor {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
