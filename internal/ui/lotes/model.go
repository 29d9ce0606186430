// Package lotes is the batch listing view. Selecting a batch opens its
// schedule; the listing also carries the close and delete actions.
package lotes

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jfarias/avicontrol/internal/api"
	"github.com/jfarias/avicontrol/internal/catalog"
	"github.com/jfarias/avicontrol/internal/keys"
	"github.com/jfarias/avicontrol/internal/theme"
	"github.com/jfarias/avicontrol/internal/ui"
)

// LotesLoadedMsg is sent when the batch listing has been fetched.
type LotesLoadedMsg struct {
	Lotes []LoteItem
	Err   error
}

// SelectedLoteMsg is sent when the user opens a batch's schedule.
type SelectedLoteMsg struct {
	LoteID int
}

// Model is the batch list view component.
type Model struct {
	list    list.Model
	client  *api.Client
	cache   *catalog.Cache
	keys    *keys.KeyMap
	loadErr error
	width   int
	height  int
}

// New creates a batch list model.
func New(client *api.Client, cache *catalog.Cache, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Batches"
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

// Init returns a command that loads the batches.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load fetches the batch listing and refreshes the selector cache as a
// side effect.
func (m Model) Load() tea.Cmd {
	client := m.client
	cache := m.cache
	return func() tea.Msg {
		ctx := context.Background()
		lotes, err := client.ListLotes(ctx)
		if err != nil {
			return LotesLoadedMsg{Err: err}
		}
		cache.SetLotes(ctx, lotes)

		items := make([]LoteItem, len(lotes))
		for i, l := range lotes {
			items[i] = LoteItem{Lote: l}
		}
		return LotesLoadedMsg{Lotes: items}
	}
}

// Update handles messages for the batch list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LotesLoadedMsg:
		m.loadErr = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Lotes))
		for i, it := range msg.Lotes {
			items[i] = it
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
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(LoteItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedLoteMsg{LoteID: item.Lote.ID}
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.Load()

	case key.Matches(msg, m.keys.Close):
		item, ok := m.list.SelectedItem().(LoteItem)
		if !ok {
			return m, nil
		}
		id := item.Lote.ID
		client := m.client
		return m, ui.Confirm(
			fmt.Sprintf("Close batch %q?", item.Lote.Name),
			ui.Do("Batch closed", func(ctx context.Context) error {
				return client.CloseLote(ctx, id)
			}),
		)

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(LoteItem)
		if !ok {
			return m, nil
		}
		id := item.Lote.ID
		client := m.client
		return m, ui.Confirm(
			fmt.Sprintf("Delete batch %q and all its records?", item.Lote.Name),
			ui.Do("Batch deleted", func(ctx context.Context) error {
				return client.DeleteLote(ctx, id)
			}),
		)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the batch list view.
func (m Model) View() string {
	if m.loadErr != nil {
		return m.renderError()
	}
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

func (m Model) renderError() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorRed).
		Render("Could not load batches.\nPress r to retry.")
}

func (m Model) renderEmptyState() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray).
		Render("No batches yet.\n\nPress n to register the first one.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}
