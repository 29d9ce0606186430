package api

import (
	"context"
	"fmt"

	"github.com/jfarias/avicontrol/internal/model"
)

// ClienteRequest carries the editable customer fields for create and
// update calls.
type ClienteRequest struct {
	Name    string `json:"nombre"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`
}

// ListClientes returns the active customers.
func (c *Client) ListClientes(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	if err := c.Get(ctx, "/api/clientes", &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// GetCliente returns a single customer by id.
func (c *Client) GetCliente(ctx context.Context, id int) (*model.Cliente, error) {
	var cliente model.Cliente
	if err := c.Get(ctx, fmt.Sprintf("/api/clientes/%d", id), &cliente); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// CreateCliente registers a new customer and returns its id.
func (c *Client) CreateCliente(ctx context.Context, req ClienteRequest) (int, error) {
	var created struct {
		ID int `json:"id_cliente"`
	}
	if err := c.Post(ctx, "/api/clientes", req, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// UpdateCliente edits an existing customer.
func (c *Client) UpdateCliente(ctx context.Context, id int, req ClienteRequest) error {
	return c.Put(ctx, fmt.Sprintf("/api/clientes/%d", id), req, nil)
}

// DeleteCliente removes a customer. Callers must confirm first.
func (c *Client) DeleteCliente(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/clientes/%d", id))
}
