package api

import (
	"context"
	"fmt"

	"github.com/jfarias/avicontrol/internal/model"
)

// Cronograma is a batch's full schedule as served by the backend,
// together with the server-computed cycle ages. DiasRestantes is nil
// when the batch has no estimated exit date.
type Cronograma struct {
	Lote          model.Lote               `json:"lote"`
	DiasEdad      int                      `json:"dias_edad"`
	DiasRestantes *int                     `json:"dias_restantes"`
	Eventos       []model.EventoCronograma `json:"eventos"`
}

// GetCronograma returns a batch's schedule, events ordered by their
// scheduled date.
func (c *Client) GetCronograma(ctx context.Context, loteID int) (*Cronograma, error) {
	var cron Cronograma
	path := fmt.Sprintf("/api/cronograma/lote/%d", loteID)
	if err := c.Get(ctx, path, &cron); err != nil {
		return nil, err
	}
	return &cron, nil
}

// CompleteEvento marks a schedule event completed with the given
// execution date, defaulting to today when the date is absent. Repeat
// calls against an already-completed event are the server's concern.
func (c *Client) CompleteEvento(ctx context.Context, eventoID int, executed model.Date) error {
	if executed.IsZero() {
		executed = model.Today()
	}
	body := struct {
		FechaEjecutada model.Date `json:"fecha_ejecutada"`
	}{FechaEjecutada: executed}

	path := fmt.Sprintf("/api/cronograma/evento/%d/completar", eventoID)
	return c.Post(ctx, path, body, nil)
}

// ListEventosPendientes returns pending events across all active
// batches due within the next week, with days-until precomputed
// server-side.
func (c *Client) ListEventosPendientes(ctx context.Context) ([]model.EventoPendienteLote, error) {
	var eventos []model.EventoPendienteLote
	if err := c.Get(ctx, "/api/cronograma/eventos-pendientes", &eventos); err != nil {
		return nil, err
	}
	return eventos, nil
}
