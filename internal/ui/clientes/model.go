// Package clientes is the customer listing view.
package clientes

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/catalog"
	"github.com/jfarias/avicontrol/internal/keys"
	"github.com/jfarias/avicontrol/internal/model"
	"github.com/jfarias/avicontrol/internal/theme"
	"github.com/jfarias/avicontrol/internal/ui"
)

// ClientesLoadedMsg is sent when the customer listing has been fetched.
type ClientesLoadedMsg struct {
	Clientes []model.Cliente
	Err      error
}

// ClienteItem wraps a model.Cliente so it can be used in a bubbles/list.
type ClienteItem struct {
	Cliente model.Cliente
}

// FilterValue returns the string used for fuzzy filtering.
func (i ClienteItem) FilterValue() string { return i.Cliente.Name }

// Title returns the customer name for the list.
func (i ClienteItem) Title() string { return i.Cliente.Name }

// Description returns the contact line for the list.
func (i ClienteItem) Description() string {
	if i.Cliente.Phone == "" {
		return i.Cliente.Address
	}
	return i.Cliente.Phone + "  " + i.Cliente.Address
}

// ItemDelegate renders one customer per line.
type ItemDelegate struct{}

func (d ItemDelegate) Height() int                             { return 1 }
func (d ItemDelegate) Spacing() int                            { return 0 }
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single customer line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(ClienteItem)
	if !ok {
		return
	}

	line := li.Title()
	if desc := li.Description(); desc != "" {
		line += "  " + theme.HelpStyle.Render(desc)
	}

	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(line))
		return
	}
	fmt.Fprint(w, theme.ListItemStyle.Render(line))
}

// Model is the customer list view component.
type Model struct {
	list    list.Model
	client  *api.Client
	cache   *catalog.Cache
	keys    *keys.KeyMap
	loadErr error
	width   int
	height  int
}

// New creates a customer list model.
func New(client *api.Client, cache *catalog.Cache, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Customers"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		client: client,
		cache:  cache,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the customers.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load fetches the customer listing and refreshes the selector cache as
// a side effect.
func (m Model) Load() tea.Cmd {
	client := m.client
	cache := m.cache
	return func() tea.Msg {
		ctx := context.Background()
		clientes, err := client.ListClientes(ctx)
		if err != nil {
			return ClientesLoadedMsg{Err: err}
		}
		cache.SetClientes(ctx, clientes)
		return ClientesLoadedMsg{Clientes: clientes}
	}
}

// Update handles messages for the customer list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClientesLoadedMsg:
		m.loadErr = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Clientes))
		for i, c := range msg.Clientes {
			items[i] = ClienteItem{Cliente: c}
		}
		return m, m.list.SetItems(items)

	case ui.OpDoneMsg:
		if msg.Err == nil {
			return m, m.Load()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m, m.Load()

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(ClienteItem)
		if !ok {
			return m, nil
		}
		id := item.Cliente.ID
		client := m.client
		return m, ui.Confirm(
			fmt.Sprintf("Delete customer %q?", item.Cliente.Name),
			ui.Do("Customer deleted", func(ctx context.Context) error {
				return client.DeleteCliente(ctx, id)
			}),
		)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the customer list.
func (m Model) View() string {
	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorRed).
			Render("Could not load customers.\nPress r to retry.")
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No customers yet.\n\nPress n to register one.")
	}
	return m.list.View()
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}
