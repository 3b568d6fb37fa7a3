package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/apiserver/types"
)

// TaskRepository handles persistence for tasks.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]types.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[string]types.Task)}
}

func (r *TaskRepository) Get(ctx context.Context, id string) (types.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return types.Task{}, ErrNotFound
	}
	return task, nil
}

// ListByUser returns the user's tasks ordered by creation time.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]types.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]types.Task, 0)
	for _, task := range r.tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task types.Task) (types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now

	r.tasks[task.ID] = task
	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task types.Task) (types.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.tasks[task.ID]
	if !ok {
		return types.Task{}, ErrNotFound
	}

	task.UserID = current.UserID
	task.CreatedAt = current.CreatedAt
	task.UpdatedAt = time.Now()

	r.tasks[task.ID] = task
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}
