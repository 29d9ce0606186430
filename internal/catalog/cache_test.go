package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/jfarias/avicontrol/internal/catalog"
	"github.com/jfarias/avicontrol/internal/model"
	"github.com/jfarias/avicontrol/tests/testutil"
)

func sampleLotes() []model.Lote {
	return []model.Lote{
		{
			ID:                1,
			Name:              "Lote enero",
			InitialQuantity:   500,
			StartDate:         model.NewDate(2025, time.January, 5),
			EstimatedExitDate: model.NewDate(2025, time.February, 20),
			Estado:            model.LoteActivo,
		},
		{
			ID:              2,
			Name:            "Lote diciembre",
			InitialQuantity: 300,
			StartDate:       model.NewDate(2024, time.December, 1),
			Estado:          model.LoteCerrado,
		},
	}
}

func sampleClientes() []model.Cliente {
	return []model.Cliente{
		{ID: 1, Name: "Asadero El Buen Pollo", Phone: "3001234567", Estado: model.ClienteActivo},
		{ID: 2, Name: "Restaurante Doña Rosa", Address: "Calle 10", Estado: model.ClienteActivo},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)

	if err := store.SaveLotes(ctx, sampleLotes()); err != nil {
		t.Fatalf("SaveLotes: %v", err)
	}
	if err := store.SaveClientes(ctx, sampleClientes()); err != nil {
		t.Fatalf("SaveClientes: %v", err)
	}

	lotes, err := store.LoadLotes(ctx)
	if err != nil {
		t.Fatalf("LoadLotes: %v", err)
	}
	if len(lotes) != 2 {
		t.Fatalf("got %d batches, want 2", len(lotes))
	}
	if lotes[0].Name != "Lote enero" {
		t.Errorf("order: first batch = %q, want the newest", lotes[0].Name)
	}
	if lotes[0].EstimatedExitDate.IsZero() {
		t.Error("estimated exit date lost in the round trip")
	}
	if !lotes[1].EstimatedExitDate.IsZero() {
		t.Error("absent exit date came back non-zero")
	}

	clientes, err := store.LoadClientes(ctx)
	if err != nil {
		t.Fatalf("LoadClientes: %v", err)
	}
	if len(clientes) != 2 {
		t.Fatalf("got %d customers, want 2", len(clientes))
	}
}

func TestSaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)

	if err := store.SaveLotes(ctx, sampleLotes()); err != nil {
		t.Fatalf("SaveLotes: %v", err)
	}
	replacement := []model.Lote{{
		ID:        3,
		Name:      "Lote marzo",
		StartDate: model.NewDate(2025, time.March, 1),
		Estado:    model.LoteActivo,
	}}
	if err := store.SaveLotes(ctx, replacement); err != nil {
		t.Fatalf("SaveLotes (replacement): %v", err)
	}

	lotes, err := store.LoadLotes(ctx)
	if err != nil {
		t.Fatalf("LoadLotes: %v", err)
	}
	if len(lotes) != 1 || lotes[0].ID != 3 {
		t.Errorf("snapshot not replaced wholesale: %+v", lotes)
	}
}

func TestCacheWarm(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)

	if err := store.SaveLotes(ctx, sampleLotes()); err != nil {
		t.Fatalf("SaveLotes: %v", err)
	}
	if err := store.SaveClientes(ctx, sampleClientes()); err != nil {
		t.Fatalf("SaveClientes: %v", err)
	}

	cache := catalog.NewCache(store, nil)
	cache.Warm(ctx)

	if got := len(cache.Lotes()); got != 2 {
		t.Errorf("warmed batches = %d, want 2", got)
	}
	if got := len(cache.Clientes()); got != 2 {
		t.Errorf("warmed customers = %d, want 2", got)
	}
}

func TestCacheLastFetchWins(t *testing.T) {
	ctx := context.Background()
	cache := catalog.NewCache(nil, nil)

	cache.SetLotes(ctx, sampleLotes())
	cache.SetLotes(ctx, sampleLotes()[:1])

	if got := len(cache.Lotes()); got != 1 {
		t.Errorf("batches = %d, want the latest fetch only", got)
	}
}

func TestActiveLotes(t *testing.T) {
	ctx := context.Background()
	cache := catalog.NewCache(nil, nil)
	cache.SetLotes(ctx, sampleLotes())

	active := cache.ActiveLotes()
	if len(active) != 1 {
		t.Fatalf("active batches = %d, want 1", len(active))
	}
	if active[0].Estado != model.LoteActivo {
		t.Errorf("estado = %q, want %q", active[0].Estado, model.LoteActivo)
	}
}
