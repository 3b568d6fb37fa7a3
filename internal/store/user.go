package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/apiserver/types"
)

// UserRepository handles persistence for users. Records live in process
// memory only; nothing survives a restart.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[string]types.User
	byUsername map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]types.User),
		byUsername: make(map[string]string),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return types.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return types.User{}, ErrNotFound
	}
	return r.byID[id], nil
}

// Insert creates a user with a freshly generated id. The duplicate-username
// check and the write happen under one lock, so concurrent registrations of
// the same username cannot both succeed.
func (r *UserRepository) Insert(ctx context.Context, username, passwordHash string) (types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[username]; exists {
		return types.User{}, ErrConflict
	}

	now := time.Now()
	user := types.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.byID[user.ID] = user
	r.byUsername[username] = user.ID
	return user, nil
}

// Count reports the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
