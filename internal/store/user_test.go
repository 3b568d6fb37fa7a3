package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_InsertAndGet(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	user, err := repo.Insert(ctx, "alice", "hash-1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash-1", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	byUsername, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user, byUsername)
}

func TestUserRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Insert(ctx, "Alice", "hash-1")
	require.NoError(t, err)

	_, err = repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Insert(ctx, "alice", "hash-2")
	assert.NoError(t, err)
}

func TestUserRepository_DuplicateInsert(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Insert(ctx, "alice", "hash-1")
	require.NoError(t, err)

	_, err = repo.Insert(ctx, "alice", "hash-2")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, repo.Count())
}

func TestUserRepository_ConcurrentInsertSameUsername(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Insert(ctx, "alice", "hash")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrConflict)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, repo.Count())
}
