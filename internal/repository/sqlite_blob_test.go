package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/nhb-tools/sitedesk/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func TestBlobRepo_GetAbsent(t *testing.T) {
	repo := NewSQLiteBlobRepo(newTestDB(t))
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "cm_projects")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlobRepo_SetAndGet(t *testing.T) {
	repo := NewSQLiteBlobRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cm_projects", `[{"id":"p1"}]`))

	value, ok, err := repo.Get(ctx, "cm_projects")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"p1"}]`, value)
}

func TestBlobRepo_SetOverwrites(t *testing.T) {
	repo := NewSQLiteBlobRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cm_tasks", `[]`))
	require.NoError(t, repo.Set(ctx, "cm_tasks", `[{"id":"t1"}]`))

	value, ok, err := repo.Get(ctx, "cm_tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"t1"}]`, value)
}

func TestBlobRepo_KeysAreIndependent(t *testing.T) {
	repo := NewSQLiteBlobRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "cm_projects", `[1]`))
	require.NoError(t, repo.Set(ctx, "cm_expenses", `[2]`))

	projects, _, err := repo.Get(ctx, "cm_projects")
	require.NoError(t, err)
	expenses, _, err := repo.Get(ctx, "cm_expenses")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, projects)
	assert.Equal(t, `[2]`, expenses)
}
