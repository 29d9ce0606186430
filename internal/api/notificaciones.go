package api

import (
	"context"
	"fmt"

	"github.com/jfarias/avicontrol/internal/model"
)

// NotificacionList is the notification listing payload: the entries in
// server order plus the total unread count across the whole table.
type NotificacionList struct {
	Notificaciones []model.Notificacion `json:"notificaciones"`
	TotalNoLeidas  int                  `json:"total_no_leidas"`
}

// ListNotificaciones fetches notifications. When unreadOnly is set the
// server filters to unread entries; the unread total is returned either
// way. Ordering is the server's and is preserved as-is.
func (c *Client) ListNotificaciones(ctx context.Context, unreadOnly bool) (*NotificacionList, error) {
	path := "/api/notificaciones"
	if unreadOnly {
		path += "?no_leidas=true"
	}
	var list NotificacionList
	if err := c.Get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MarkNotificacionLeida requests the server-side read transition for
// one notification.
func (c *Client) MarkNotificacionLeida(ctx context.Context, id int) error {
	return c.Post(ctx, fmt.Sprintf("/api/notificaciones/%d/marcar-leida", id), nil, nil)
}

// MarkTodasLeidas requests the bulk read transition.
func (c *Client) MarkTodasLeidas(ctx context.Context) error {
	return c.Post(ctx, "/api/notificaciones/marcar-todas-leidas", nil, nil)
}

// DeleteNotificacion removes a notification. Callers must confirm first.
func (c *Client) DeleteNotificacion(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/notificaciones/%d", id))
}

// GenerateAutomaticas asks the server to evaluate its alert rules
// (schedule due-dates, overdue credits, mortality thresholds) and
// materialize any resulting notifications. Returns how many were
// created.
func (c *Client) GenerateAutomaticas(ctx context.Context) (int, error) {
	var result struct {
		Creadas int `json:"notificaciones_creadas"`
	}
	if err := c.Post(ctx, "/api/notificaciones/generar-automaticas", nil, &result); err != nil {
		return 0, err
	}
	return result.Creadas, nil
}
