package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jfarias/avicontrol/internal/api"
)

func TestErrorTextSurfacesServerMessage(t *testing.T) {
	err := &api.Error{Status: 400, Message: "El lote ya está cerrado"}
	if got := ErrorText(err); got != "El lote ya está cerrado" {
		t.Errorf("ErrorText = %q, want the server message verbatim", got)
	}
}

func TestErrorTextUnwrapsServerMessage(t *testing.T) {
	err := fmt.Errorf("completing event: %w",
		&api.Error{Status: 409, Message: "evento ya completado"})
	if got := ErrorText(err); got != "evento ya completado" {
		t.Errorf("ErrorText = %q, want the wrapped server message", got)
	}
}

func TestErrorTextGenericForTransportFailures(t *testing.T) {
	got := ErrorText(errors.New("dial tcp 127.0.0.1:5000: connection refused"))
	if got != "Request failed. Check that the backend is reachable." {
		t.Errorf("ErrorText = %q, want the generic line", got)
	}
}
