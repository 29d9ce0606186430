// Package creditos is the outstanding-credit view: every credit sale
// with a pending balance, plus the entry point for recording payments.
package creditos

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/keys"
	"github.com/jfarias/avicontrol/internal/model"
	"github.com/jfarias/avicontrol/internal/theme"
	"github.com/jfarias/avicontrol/internal/ui"
)

// LoadedMsg carries the outstanding credits.
type LoadedMsg struct {
	Creditos []model.CreditoPendiente
	Err      error
}

// PagoRequestedMsg asks the root model to open the payment form for the
// selected credit.
type PagoRequestedMsg struct {
	Credito model.CreditoPendiente
}

// Model is the outstanding-credit view component.
type Model struct {
	client *api.Client
	keys   *keys.KeyMap

	items   []model.CreditoPendiente
	cursor  int
	loadErr error

	width  int
	height int
}

// New creates an outstanding-credit model.
func New(client *api.Client, k *keys.KeyMap, width, height int) Model {
	return Model{client: client, keys: k, width: width, height: height}
}

// Init returns a command that loads the credits.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load fetches the outstanding credits.
func (m Model) Load() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		creditos, err := client.ListCreditosPendientes(context.Background())
		return LoadedMsg{Creditos: creditos, Err: err}
	}
}

// Update handles messages for the credit view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.items = msg.Creditos
			if m.cursor >= len(m.items) {
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
		return m, m.Load()

	case key.Matches(msg, m.keys.Pago), key.Matches(msg, m.keys.Select):
		if m.cursor >= len(m.items) {
			return m, nil
		}
		credito := m.items[m.cursor]
		return m, func() tea.Msg {
			return PagoRequestedMsg{Credito: credito}
		}
	}
	return m, nil
}

// View renders the credit view.
func (m Model) View() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorRed).
			Render("Could not load credits.\nPress r to retry.")
	}

	if len(m.items) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGreen).
			Render("No outstanding credits.")
	}

	lines := make([]string, 0, len(m.items))
	for i, c := range m.items {
		estado := theme.EstadoStyle(c.EstadoDeuda).Render(c.EstadoDeuda)
		line := fmt.Sprintf(
			"%s  %s  %s  owes %.2f of %.2f",
			c.ClienteNombre, c.LoteNombre, estado, c.ValorPendiente, c.ValorTotal,
		)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
