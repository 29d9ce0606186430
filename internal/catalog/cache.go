// Package catalog holds the client's only shared state: the active
// batches and active customers used to populate selection widgets. It
// is a soft cache with an explicit contract: Set overwrites the whole
// slice (last fetch wins), Get returns the latest completed fetch, and
// readers may observe data at most one navigation stale. A SQLite
// snapshot lets selectors populate on startup before the first fetch.
package catalog

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jfarias/avicontrol/internal/model"
)

// Cache is the in-memory reference-data store.
type Cache struct {
	mu       sync.RWMutex
	lotes    []model.Lote
	clientes []model.Cliente

	store Store
	log   *logrus.Logger
}

// NewCache creates a cache backed by the given snapshot store. store
// may be nil, in which case the cache is memory-only.
func NewCache(store Store, log *logrus.Logger) *Cache {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Cache{store: store, log: log}
}

// Warm loads the persisted snapshot into memory. Called once at
// startup; a missing or unreadable snapshot is not an error worth
// failing over, it only delays the selectors until the first fetch.
func (c *Cache) Warm(ctx context.Context) {
	if c.store == nil {
		return
	}

	lotes, err := c.store.LoadLotes(ctx)
	if err != nil {
		c.log.WithError(err).Debug("loading batch snapshot")
	}
	clientes, err := c.store.LoadClientes(ctx)
	if err != nil {
		c.log.WithError(err).Debug("loading customer snapshot")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(lotes) > 0 {
		c.lotes = lotes
	}
	if len(clientes) > 0 {
		c.clientes = clientes
	}
}

// SetLotes replaces the cached batch list and persists the snapshot.
func (c *Cache) SetLotes(ctx context.Context, lotes []model.Lote) {
	c.mu.Lock()
	c.lotes = lotes
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.SaveLotes(ctx, lotes); err != nil {
		c.log.WithError(err).Debug("saving batch snapshot")
	}
}

// Lotes returns the batches from the latest completed fetch.
func (c *Cache) Lotes() []model.Lote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lotes
}

// ActiveLotes returns only the batches still open for registration.
func (c *Cache) ActiveLotes() []model.Lote {
	c.mu.RLock()
	defer c.mu.RUnlock()

	active := make([]model.Lote, 0, len(c.lotes))
	for _, l := range c.lotes {
		if l.Estado == model.LoteActivo {
			active = append(active, l)
		}
	}
	return active
}

// SetClientes replaces the cached customer list and persists the
// snapshot.
func (c *Cache) SetClientes(ctx context.Context, clientes []model.Cliente) {
	c.mu.Lock()
	c.clientes = clientes
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.SaveClientes(ctx, clientes); err != nil {
		c.log.WithError(err).Debug("saving customer snapshot")
	}
}

// Clientes returns the customers from the latest completed fetch.
func (c *Cache) Clientes() []model.Cliente {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientes
}
