package testutil

import (
	"testing"

	"github.com/jfarias/avicontrol/internal/catalog"
)

// NewTestStore creates an in-memory snapshot store with all migrations
// applied. It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *catalog.SQLiteStore {
	t.Helper()

	s, err := catalog.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
