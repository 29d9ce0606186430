package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfarias/avicontrol/internal/api"
)

// ConfirmRequestMsg asks the root model to show a yes/no prompt and run
// Cmd only on confirmation. Destructive operations (deletes, closing a
// batch, completing an event) always go through this path.
type ConfirmRequestMsg struct {
	Prompt string
	Cmd    tea.Cmd
}

// Confirm wraps a command in a confirmation request.
func Confirm(prompt string, cmd tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return ConfirmRequestMsg{Prompt: prompt, Cmd: cmd}
	}
}

// OpDoneMsg reports the outcome of a user-initiated backend operation.
// The root model turns it into a toast; the active view reloads on
// success so the screen reflects confirmed server state.
type OpDoneMsg struct {
	Notice string
	Err    error
}

// Do runs a backend operation and reports its outcome. The API client's
// own timeout bounds the call.
func Do(notice string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return OpDoneMsg{Notice: notice, Err: fn(context.Background())}
	}
}

// ErrorText maps an operation failure to status-bar text. Application
// errors surface the backend's message verbatim; transport and parse
// failures collapse to one generic line so raw Go error chains never
// reach the screen.
func ErrorText(err error) string {
	if api.IsAppError(err) {
		var apiErr *api.Error
		errors.As(err, &apiErr)
		return apiErr.Error()
	}
	return "Request failed. Check that the backend is reachable."
}
