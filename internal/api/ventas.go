package api

import (
	"context"
	"fmt"

	"github.com/jfarias/avicontrol/internal/model"
)

// CreateVentaRequest is the payload for registering a sale. The total
// is computed server-side from kilos and price; TipoPago selects cash
// ("contado") or credit ("credito") handling.
type CreateVentaRequest struct {
	LoteID         int        `json:"id_lote"`
	ClienteID      int        `json:"id_cliente"`
	CantidadPollos int        `json:"cantidad_pollos"`
	CantidadKilos  float64    `json:"cantidad_kilos"`
	PrecioKilo     float64    `json:"precio_kilo"`
	Date           model.Date `json:"fecha_venta"`
	TipoPago       string     `json:"tipo_pago"`

	// PagoInicial is the up-front payment on a credit sale; ignored for
	// cash sales.
	PagoInicial float64 `json:"valor_pagado_inicial,omitempty"`
}

// VentaConNombres is a sale joined with display names, as returned by
// the all-sales listing.
type VentaConNombres struct {
	model.Venta
	ClienteNombre string              `json:"cliente_nombre"`
	LoteNombre    string              `json:"lote_nombre"`
	Credito       *model.VentaCredito `json:"credito,omitempty"`
}

// CreateVenta registers a sale and returns its id.
func (c *Client) CreateVenta(ctx context.Context, req CreateVentaRequest) (int, error) {
	var created struct {
		ID int `json:"id_venta"`
	}
	if err := c.Post(ctx, "/api/ventas", req, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// ListVentas returns the most recent sales across all batches.
func (c *Client) ListVentas(ctx context.Context) ([]VentaConNombres, error) {
	var ventas []VentaConNombres
	if err := c.Get(ctx, "/api/ventas", &ventas); err != nil {
		return nil, err
	}
	return ventas, nil
}

// ListVentasLote returns a batch's sales.
func (c *Client) ListVentasLote(ctx context.Context, loteID int) ([]model.Venta, error) {
	var ventas []model.Venta
	if err := c.Get(ctx, fmt.Sprintf("/api/ventas/lote/%d", loteID), &ventas); err != nil {
		return nil, err
	}
	return ventas, nil
}

// DeleteVenta removes a sale and reverts its capital movement. Callers
// must confirm first.
func (c *Client) DeleteVenta(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/ventas/%d", id))
}

// ListCreditosPendientes returns all credits with an outstanding balance.
func (c *Client) ListCreditosPendientes(ctx context.Context) ([]model.CreditoPendiente, error) {
	var creditos []model.CreditoPendiente
	if err := c.Get(ctx, "/api/creditos/pendientes", &creditos); err != nil {
		return nil, err
	}
	return creditos, nil
}

// ListCreditosCliente returns a customer's outstanding credits.
func (c *Client) ListCreditosCliente(ctx context.Context, clienteID int) ([]model.CreditoPendiente, error) {
	var creditos []model.CreditoPendiente
	path := fmt.Sprintf("/api/creditos/cliente/%d", clienteID)
	if err := c.Get(ctx, path, &creditos); err != nil {
		return nil, err
	}
	return creditos, nil
}

// CreatePagoRequest is the payload for a payment against a credit.
type CreatePagoRequest struct {
	CreditoID     int        `json:"id_credito"`
	Valor         float64    `json:"valor_pago"`
	Date          model.Date `json:"fecha_pago"`
	Metodo        string     `json:"metodo_pago,omitempty"`
	Observaciones string     `json:"observaciones,omitempty"`
}

// PagoResult is the server's post-payment snapshot of the credit.
type PagoResult struct {
	SaldoPendiente float64 `json:"saldo_pendiente"`
	Estado         string  `json:"estado"`
}

// CreatePago applies a payment to a credit. The server rejects payments
// that exceed the outstanding balance.
func (c *Client) CreatePago(ctx context.Context, req CreatePagoRequest) (*PagoResult, error) {
	var result PagoResult
	if err := c.Post(ctx, "/api/pagos", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPagosCredito returns the payments applied to a credit, newest first.
func (c *Client) ListPagosCredito(ctx context.Context, creditoID int) ([]model.PagoCliente, error) {
	var pagos []model.PagoCliente
	path := fmt.Sprintf("/api/pagos/credito/%d", creditoID)
	if err := c.Get(ctx, path, &pagos); err != nil {
		return nil, err
	}
	return pagos, nil
}
