package lotes

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfarias/avicontrol/internal/model"
	"github.com/jfarias/avicontrol/internal/theme"
)

// LoteItem wraps a model.Lote so it can be used in a bubbles/list.
type LoteItem struct {
	Lote model.Lote
}

// FilterValue returns the string used for fuzzy filtering.
func (i LoteItem) FilterValue() string { return i.Lote.Name }

// Title returns the batch name for the list.
func (i LoteItem) Title() string { return i.Lote.Name }

// Description returns a short summary line for the list.
func (i LoteItem) Description() string {
	parts := []string{
		i.Lote.Estado,
		fmt.Sprintf("%d birds", i.Lote.InitialQuantity),
		"started " + i.Lote.StartDate.String(),
	}
	return strings.Join(parts, " | ")
}

// ItemDelegate renders one batch per line with a state-colored badge.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single batch line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(LoteItem)
	if !ok {
		return
	}

	estado := theme.EstadoStyle(li.Lote.Estado).Render(li.Lote.Estado)
	line := fmt.Sprintf("%s  %s  %s", li.Title(), estado, li.Description())

	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(line))
		return
	}
	fmt.Fprint(w, theme.ListItemStyle.Render(line))
}
