package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nhb-tools/sitedesk/internal/backup"
	"github.com/nhb-tools/sitedesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupExport(t *testing.T) {
	store := testutil.NewTestStore(t)
	projects := NewProjectService(store)
	backups := NewBackupService(store)
	ctx := context.Background()

	_, err := projects.Create(ctx, CreateProjectInput{
		Name: "Barn", Client: "Ann", Budget: "100", Status: "Planning",
	})
	require.NoError(t, err)

	file, err := backups.Export(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^construction_manager_backup_\d{4}-\d{2}-\d{2}\.json$`, file.Name)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(file.Data, &out))
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "expenses")
	assert.Contains(t, out, "tasks")
}

func TestBackupExport_EmptyStateWritesEmptyArrays(t *testing.T) {
	backups := NewBackupService(testutil.NewTestStore(t))

	file, err := backups.Export(context.Background())
	require.NoError(t, err)

	var out struct {
		Projects []json.RawMessage `json:"projects"`
		Expenses []json.RawMessage `json:"expenses"`
		Tasks    []json.RawMessage `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(file.Data, &out))
	assert.NotNil(t, out.Projects)
	assert.Empty(t, out.Projects)
}

func TestBackupExportToDirAndRestoreFile(t *testing.T) {
	store := testutil.NewTestStore(t)
	projects := NewProjectService(store)
	backups := NewBackupService(store)
	ctx := context.Background()

	created, err := projects.Create(ctx, CreateProjectInput{
		Name: "Barn", Client: "Ann", Budget: "100", Status: "Planning",
	})
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := backups.ExportToDir(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	_, err = os.Stat(path)
	require.NoError(t, err)

	// Restoring into a fresh store reproduces the exported state.
	other := testutil.NewTestStore(t)
	otherBackups := NewBackupService(other)
	require.NoError(t, otherBackups.RestoreFile(ctx, path))
	restored := other.Projects()
	require.Len(t, restored, 1)
	assert.Equal(t, created.ID, restored[0].ID)
	assert.Equal(t, "Barn", restored[0].Name)
}

func TestBackupRestore_MalformedLeavesStateIntact(t *testing.T) {
	store := testutil.NewTestStore(t)
	projects := NewProjectService(store)
	backups := NewBackupService(store)
	ctx := context.Background()

	_, err := projects.Create(ctx, CreateProjectInput{
		Name: "Barn", Client: "Ann", Budget: "100", Status: "Planning",
	})
	require.NoError(t, err)

	// Valid JSON but missing the expenses collection.
	err = backups.Restore(ctx, []byte(`{"projects":[]}`))
	require.ErrorIs(t, err, backup.ErrMalformedBackup)

	list, err := projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBackupRestore_MinimalArchive(t *testing.T) {
	store := testutil.NewTestStore(t)
	backups := NewBackupService(store)
	ctx := context.Background()

	// Tasks are optional; projects and expenses may be empty.
	require.NoError(t, backups.Restore(ctx, []byte(`{"projects":[],"expenses":[]}`)))
	assert.Empty(t, store.Projects())
	assert.Empty(t, store.Tasks())
}

func TestBackupRestore_ReplacesEverything(t *testing.T) {
	store := testutil.NewTestStore(t)
	projects := NewProjectService(store)
	tasks := NewTaskService(store)
	backups := NewBackupService(store)
	ctx := context.Background()

	p, err := projects.Create(ctx, CreateProjectInput{
		Name: "Old", Client: "Ann", Budget: "100", Status: "Planning",
	})
	require.NoError(t, err)
	_, err = tasks.Add(ctx, p.ID, "Old task")
	require.NoError(t, err)

	blob := `{
	  "projects": [{"id":"np","name":"New","client":"Bob","budget":5,"status":"Completed","createdAt":"2026-01-01T00:00:00Z"}],
	  "expenses": [],
	  "tasks": []
	}`
	require.NoError(t, backups.Restore(ctx, []byte(blob)))

	list := store.Projects()
	require.Len(t, list, 1)
	assert.Equal(t, "np", list[0].ID)
	assert.Empty(t, store.Tasks())
}
