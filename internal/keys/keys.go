package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Help toggle
	Help key.Binding

	// Manual refresh
	Refresh key.Binding

	// Views
	Dashboard      key.Binding
	Lotes          key.Binding
	Notificaciones key.Binding
	Clientes       key.Binding
	Creditos       key.Binding

	// Actions
	New        key.Binding
	Complete   key.Binding
	Close      key.Binding
	Delete     key.Binding
	MarkRead   key.Binding
	MarkAll    key.Binding
	ToggleRead key.Binding
	Priority   key.Binding
	Venta      key.Binding
	Compra     key.Binding
	Mortalidad key.Binding
	Pago       key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		Lotes: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "batches"),
		),
		Notificaciones: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "notifications"),
		),
		Clientes: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "customers"),
		),
		Creditos: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "credits"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "complete event"),
		),
		Close: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "close batch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MarkRead: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark read"),
		),
		MarkAll: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "mark all read"),
		),
		ToggleRead: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unread only"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle priority filter"),
		),
		Venta: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "new sale"),
		),
		Compra: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "new purchase"),
		),
		Mortalidad: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "record mortality"),
		),
		Pago: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "record payment"),
		),
	}
}
