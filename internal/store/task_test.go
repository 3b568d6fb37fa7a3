package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhub/apiserver/types"
)

func TestTaskRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewTaskRepository()
	ctx := context.Background()

	task, err := repo.Create(ctx, types.Task{UserID: "u1", Title: "write report"})
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())

	got, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestTaskRepository_ListByUser(t *testing.T) {
	t.Parallel()

	repo := NewTaskRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, types.Task{UserID: "u1", Title: "first"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, types.Task{UserID: "u1", Title: "second"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, types.Task{UserID: "u2", Title: "other user"})
	require.NoError(t, err)

	tasks, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, []string{tasks[0].ID, tasks[1].ID})

	empty, err := repo.ListByUser(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTaskRepository_UpdatePreservesOwnerAndCreation(t *testing.T) {
	t.Parallel()

	repo := NewTaskRepository()
	ctx := context.Background()

	task, err := repo.Create(ctx, types.Task{UserID: "u1", Title: "draft"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, types.Task{
		ID:        task.ID,
		UserID:    "someone-else",
		Title:     "final",
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", updated.UserID)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "final", updated.Title)
	assert.True(t, updated.Completed)
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	t.Parallel()

	repo := NewTaskRepository()

	_, err := repo.Update(context.Background(), types.Task{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewTaskRepository()
	ctx := context.Background()

	task, err := repo.Create(ctx, types.Task{UserID: "u1", Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err = repo.Get(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, task.ID), ErrNotFound)
}
