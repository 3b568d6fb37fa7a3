package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhub/apiserver/internal/store"
	"github.com/taskhub/apiserver/types"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Get(ctx context.Context, id string) (types.Task, error)
	ListByUser(ctx context.Context, userID string) ([]types.Task, error)
	Create(ctx context.Context, task types.Task) (types.Task, error)
	Update(ctx context.Context, task types.Task) (types.Task, error)
	Delete(ctx context.Context, id string) error
}

// TaskService encapsulates task use-cases. Every operation is scoped to the
// requesting user; a task owned by someone else behaves as if it does not
// exist.
type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context, userID string) ([]types.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, userID, taskID string) (types.Task, error) {
	return s.getOwned(ctx, userID, taskID)
}

func (s *TaskService) Create(ctx context.Context, userID string, task types.Task) (types.Task, error) {
	task.UserID = userID
	return s.repo.Create(ctx, task)
}

func (s *TaskService) Update(ctx context.Context, userID string, task types.Task) (types.Task, error) {
	if _, err := s.getOwned(ctx, userID, task.ID); err != nil {
		return types.Task{}, err
	}
	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if _, err := s.getOwned(ctx, userID, taskID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, taskID)
}

func (s *TaskService) getOwned(ctx context.Context, userID, taskID string) (types.Task, error) {
	task, err := s.repo.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Task{}, store.ErrNotFound
		}
		return types.Task{}, fmt.Errorf("fetching task: %w", err)
	}
	if task.UserID != userID {
		return types.Task{}, store.ErrNotFound
	}
	return task, nil
}
