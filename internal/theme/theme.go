package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jfarias/avicontrol/internal/model"
	"github.com/jfarias/avicontrol/internal/schedule"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps detail/summary content areas.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ToastInfoStyle renders transient informational messages.
var ToastInfoStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorGreen)

// ToastErrorStyle renders transient failure messages.
var ToastErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// PriorityStyle returns a color-coded style for a notification
// priority. Urgency is visual only; ordering stays the server's.
func PriorityStyle(prioridad string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch prioridad {
	case model.PrioridadCritica:
		return base.Foreground(ColorRed)
	case model.PrioridadAlta:
		return base.Foreground(ColorOrange)
	case model.PrioridadMedia:
		return base.Foreground(ColorYellow)
	case model.PrioridadBaja:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// EventStatusStyle returns a color-coded style for a derived schedule
// category.
func EventStatusStyle(cat schedule.Category) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch cat {
	case schedule.CategoryCompleted:
		return base.Foreground(ColorGreen)
	case schedule.CategoryDueToday:
		return base.Foreground(ColorYellow)
	case schedule.CategoryOverdue:
		return base.Foreground(ColorRed)
	case schedule.CategoryUpcomingSoon:
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGray)
	}
}

// EstadoStyle returns a color-coded style for a batch or debt state.
func EstadoStyle(estado string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch estado {
	case model.LoteActivo:
		return base.Foreground(ColorGreen)
	case model.LoteCerrado:
		return base.Foreground(ColorGray)
	case model.DeudaPendiente:
		return base.Foreground(ColorRed)
	case model.DeudaParcial:
		return base.Foreground(ColorYellow)
	case model.DeudaPagada:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}
