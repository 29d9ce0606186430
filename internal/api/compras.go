package api

import (
	"context"
	"fmt"

	"github.com/jfarias/avicontrol/internal/model"
)

// CreateCompraRequest is the payload for registering a supply purchase.
// The total is computed server-side from quantity and unit cost.
type CreateCompraRequest struct {
	LoteID        int        `json:"id_lote"`
	TipoMateria   string     `json:"tipo_materia"`
	Cantidad      float64    `json:"cantidad"`
	Unidad        string     `json:"unidad"`
	CostoUnitario float64    `json:"costo_unitario"`
	Date          model.Date `json:"fecha_compra"`
	Observaciones string     `json:"observaciones,omitempty"`
}

// CompraConLote is a purchase joined with its batch name, as returned
// by the all-purchases listing.
type CompraConLote struct {
	model.Compra
	LoteNombre string `json:"lote_nombre"`
}

// CreateCompra registers a purchase and returns its id.
func (c *Client) CreateCompra(ctx context.Context, req CreateCompraRequest) (int, error) {
	var created struct {
		ID int `json:"id_compra"`
	}
	if err := c.Post(ctx, "/api/compras", req, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// ListComprasLote returns a batch's purchases, newest first.
func (c *Client) ListComprasLote(ctx context.Context, loteID int) ([]model.Compra, error) {
	var compras []model.Compra
	if err := c.Get(ctx, fmt.Sprintf("/api/compras/lote/%d", loteID), &compras); err != nil {
		return nil, err
	}
	return compras, nil
}

// ListCompras returns the most recent purchases across all batches.
func (c *Client) ListCompras(ctx context.Context) ([]CompraConLote, error) {
	var compras []CompraConLote
	if err := c.Get(ctx, "/api/compras/todas", &compras); err != nil {
		return nil, err
	}
	return compras, nil
}

// DeleteCompra removes a purchase and reverts its capital movement.
// Callers must confirm first.
func (c *Client) DeleteCompra(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/compras/%d", id))
}
