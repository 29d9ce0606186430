package api

import (
	"context"
	"fmt"

	"github.com/jfarias/avicontrol/internal/model"
)

// CreateMortalidadRequest is the payload for a daily mortality record.
// Running totals and the day's percentage are computed server-side.
type CreateMortalidadRequest struct {
	LoteID        int        `json:"id_lote"`
	Muertos       int        `json:"cantidad_muertos"`
	Date          model.Date `json:"fecha_registro,omitempty"`
	Causa         string     `json:"causa,omitempty"`
	Observaciones string     `json:"observaciones,omitempty"`
}

// MortalidadResult is the server's post-registration snapshot.
type MortalidadResult struct {
	PollosVivos   int     `json:"pollos_vivos_actual"`
	PorcentajeDia float64 `json:"porcentaje_mortalidad_dia"`
}

// MortalidadLote is a batch's mortality history with its accumulated
// statistics.
type MortalidadLote struct {
	Registros    []model.Mortalidad    `json:"registros"`
	Estadisticas model.MortalidadStats `json:"estadisticas"`
}

// CreateMortalidad registers a daily death count against a batch. The
// server may materialize a high-mortality notification as a side effect.
func (c *Client) CreateMortalidad(ctx context.Context, req CreateMortalidadRequest) (*MortalidadResult, error) {
	var result MortalidadResult
	if err := c.Post(ctx, "/api/mortalidad", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMortalidadLote returns a batch's mortality history, newest first.
func (c *Client) GetMortalidadLote(ctx context.Context, loteID int) (*MortalidadLote, error) {
	var hist MortalidadLote
	path := fmt.Sprintf("/api/mortalidad/lote/%d", loteID)
	if err := c.Get(ctx, path, &hist); err != nil {
		return nil, err
	}
	return &hist, nil
}
