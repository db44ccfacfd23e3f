// Package taskline wires the task store into services consumed by the
// console commands.
package taskline

import (
	"context"
	"fmt"

	"github.com/kcwebb/taskline/internal/core/task"
	"github.com/rs/zerolog"
)

// TaskService wraps task.Store with operational logging. The store itself
// stays silent; everything worth observing is logged here, at the boundary
// the commands call into.
type TaskService struct {
	store task.Store
	log   zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(store task.Store, log zerolog.Logger) *TaskService {
	return &TaskService{
		store: store,
		log:   log.With().Str("component", "task-service").Logger(),
	}
}

// Add creates a new task from raw description text.
func (s *TaskService) Add(ctx context.Context, description string) (task.Task, error) {
	t, err := s.store.Add(ctx, description)
	if err != nil {
		s.log.Debug().Err(err).Msg("add task rejected")
		return task.Task{}, fmt.Errorf("add task: %w", err)
	}

	s.log.Info().Int64("id", t.ID).Msg("task added")
	return t, nil
}

// List returns all tasks in creation order.
func (s *TaskService) List(ctx context.Context) []task.Task {
	return s.store.List(ctx)
}

// Get returns a single task by id.
func (s *TaskService) Get(ctx context.Context, id int64) (task.Task, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

// Update replaces a task's description.
func (s *TaskService) Update(ctx context.Context, id int64, description string) (task.Task, error) {
	t, err := s.store.Update(ctx, id, description)
	if err != nil {
		s.log.Debug().Err(err).Int64("id", id).Msg("update task rejected")
		return task.Task{}, fmt.Errorf("update task %d: %w", id, err)
	}

	s.log.Info().Int64("id", id).Msg("task updated")
	return t, nil
}

// Delete removes a task by id. Returns false when no such task exists.
func (s *TaskService) Delete(ctx context.Context, id int64) bool {
	deleted := s.store.Delete(ctx, id)
	if deleted {
		s.log.Info().Int64("id", id).Msg("task deleted")
	}
	return deleted
}

// ToggleComplete flips a task's completion flag.
func (s *TaskService) ToggleComplete(ctx context.Context, id int64) (task.Task, error) {
	t, err := s.store.ToggleComplete(ctx, id)
	if err != nil {
		return task.Task{}, fmt.Errorf("toggle task %d: %w", id, err)
	}

	s.log.Info().Int64("id", id).Bool("complete", t.Complete).Msg("task toggled")
	return t, nil
}

// Count returns the current number of tasks.
func (s *TaskService) Count(ctx context.Context) int {
	return s.store.Len(ctx)
}
