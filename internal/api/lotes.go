package api

import (
	"context"
	"fmt"

	"github.com/jfarias/avicontrol/internal/model"
)

// CreateLoteRequest is the payload for registering a new batch. The
// backend creates the batch, its capital record, and its schedule.
type CreateLoteRequest struct {
	Name              string     `json:"nombre_lote"`
	InitialQuantity   int        `json:"cantidad_inicial"`
	StartDate         model.Date `json:"fecha_inicio"`
	EstimatedExitDate model.Date `json:"fecha_estimada_salida,omitempty"`
	CapitalInicial    float64    `json:"capital_inicial"`
}

// UpdateLoteRequest carries the editable batch fields.
type UpdateLoteRequest struct {
	Name              string     `json:"nombre_lote"`
	InitialQuantity   int        `json:"cantidad_inicial"`
	EstimatedExitDate model.Date `json:"fecha_estimada_salida,omitempty"`
}

// ListLotes returns all batches, newest first.
func (c *Client) ListLotes(ctx context.Context) ([]model.Lote, error) {
	var lotes []model.Lote
	if err := c.Get(ctx, "/api/lotes", &lotes); err != nil {
		return nil, err
	}
	return lotes, nil
}

// GetLote returns a single batch by id.
func (c *Client) GetLote(ctx context.Context, id int) (*model.Lote, error) {
	var lote model.Lote
	if err := c.Get(ctx, fmt.Sprintf("/api/lotes/%d", id), &lote); err != nil {
		return nil, err
	}
	return &lote, nil
}

// CreateLote registers a new batch and returns its id.
func (c *Client) CreateLote(ctx context.Context, req CreateLoteRequest) (int, error) {
	var created struct {
		ID int `json:"id_lote"`
	}
	if err := c.Post(ctx, "/api/lotes", req, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// UpdateLote edits an existing batch.
func (c *Client) UpdateLote(ctx context.Context, id int, req UpdateLoteRequest) error {
	return c.Put(ctx, fmt.Sprintf("/api/lotes/%d", id), req, nil)
}

// CloseLote transitions a batch to "cerrado". Destructive from the
// user's perspective; callers must confirm first.
func (c *Client) CloseLote(ctx context.Context, id int) error {
	return c.Post(ctx, fmt.Sprintf("/api/lotes/%d/cerrar", id), nil, nil)
}

// DeleteLote removes a batch and its dependent records.
func (c *Client) DeleteLote(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/lotes/%d", id))
}

// GetEstadisticas returns the dashboard headline numbers.
func (c *Client) GetEstadisticas(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.Get(ctx, "/api/dashboard/estadisticas", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetResumenLotes returns the server-computed per-batch summary rows.
func (c *Client) GetResumenLotes(ctx context.Context) ([]model.ResumenLote, error) {
	var rows []model.ResumenLote
	if err := c.Get(ctx, "/api/dashboard/resumen-lotes", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ListMovimientos returns a batch's capital ledger, newest first.
func (c *Client) ListMovimientos(ctx context.Context, loteID int) ([]model.MovimientoCapital, error) {
	var movs []model.MovimientoCapital
	path := fmt.Sprintf("/api/movimientos/lote/%d", loteID)
	if err := c.Get(ctx, path, &movs); err != nil {
		return nil, err
	}
	return movs, nil
}

// CreateMovimientoRequest is the payload for a manual capital movement.
type CreateMovimientoRequest struct {
	LoteID      int        `json:"id_lote"`
	Tipo        string     `json:"tipo_movimiento"`
	Valor       float64    `json:"valor"`
	Description string     `json:"descripcion,omitempty"`
	Date        model.Date `json:"fecha_movimiento"`
}

// CreateMovimiento records a manual capital movement against a batch.
func (c *Client) CreateMovimiento(ctx context.Context, req CreateMovimientoRequest) error {
	return c.Post(ctx, "/api/movimientos", req, nil)
}
