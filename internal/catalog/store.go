package catalog

import (
	"context"

	"github.com/jfarias/avicontrol/internal/model"
)

// Store is the persistence contract for the reference-data snapshot.
// Saves replace the whole set; there is no per-row merging, matching
// the cache's last-fetch-wins semantics.
type Store interface {
	SaveLotes(ctx context.Context, lotes []model.Lote) error
	LoadLotes(ctx context.Context) ([]model.Lote, error)
	SaveClientes(ctx context.Context, clientes []model.Cliente) error
	LoadClientes(ctx context.Context) ([]model.Cliente, error)
	Close() error
}
