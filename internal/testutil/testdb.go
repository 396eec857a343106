package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/nhb-tools/sitedesk/internal/db"
	"github.com/nhb-tools/sitedesk/internal/repository"
	"github.com/nhb-tools/sitedesk/internal/state"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a loaded state store backed by an in-memory database.
func NewTestStore(t *testing.T) *state.Store {
	t.Helper()
	store := state.NewStore(repository.NewSQLiteBlobRepo(NewTestDB(t)))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load test store: %v", err)
	}
	return store
}
