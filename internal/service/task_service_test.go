package service

import (
	"context"
	"testing"

	"github.com/nhb-tools/sitedesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskAdd(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()

	task, err := svc.Add(ctx, "p1", "  Pour footings  ")
	require.NoError(t, err)
	assert.Equal(t, "Pour footings", task.Text)
	assert.False(t, task.Completed)

	list, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTaskAdd_Rejections(t *testing.T) {
	svc := NewTaskService(testutil.NewTestStore(t))
	ctx := context.Background()

	_, err := svc.Add(ctx, "", "Pour footings")
	assert.Error(t, err)

	_, err = svc.Add(ctx, "p1", "   ")
	assert.Error(t, err)
}

func TestTaskListByProject_FiltersAndKeepsOrder(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, "p1", "first")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "p2", "other project")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "p1", "second")
	require.NoError(t, err)

	list, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
}

func TestTaskToggle(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()

	task, err := svc.Add(ctx, "p1", "Pour footings")
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(ctx, task.ID))
	list, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, list[0].Completed)

	require.NoError(t, svc.Toggle(ctx, task.ID))
	list, err = svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, list[0].Completed)

	// Missing id is a no-op.
	require.NoError(t, svc.Toggle(ctx, "nonexistent"))
}

func TestTaskDelete(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewTaskService(store)
	ctx := context.Background()

	task, err := svc.Add(ctx, "p1", "Pour footings")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	list, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, svc.Delete(ctx, task.ID))
}
