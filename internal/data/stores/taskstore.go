// Package stores contains concrete store implementations behind the domain
// store interfaces.
package stores

import (
	"context"
	"sync"

	"github.com/kcwebb/taskline/internal/core/task"
)

// TaskStore implements task.Store with an in-process ordered collection.
// Nothing is persisted; the collection lives exactly as long as the process.
//
// Tasks are held in a slice ordered by insertion time with a side index from
// id to slice position, so lookup and replace-at-index are both O(1) after a
// single map probe, and List never has to sort.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []task.Task
	index  map[int64]int // id -> position in tasks
	nextID int64
}

var _ task.Store = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store. Ids start at 1.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:  []task.Task{},
		index:  make(map[int64]int),
		nextID: 1,
	}
}

// Add validates the description and appends a new task. The id counter
// advances only when construction succeeds, so failed Adds leave no gaps.
func (s *TaskStore) Add(_ context.Context, description string) (task.Task, error) {
	t, err := task.New(description, false)
	if err != nil {
		return task.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextID
	s.nextID++

	s.index[t.ID] = len(s.tasks)
	s.tasks = append(s.tasks, t)

	return t, nil
}

// List returns a copy of the task sequence in creation order.
func (s *TaskStore) List(_ context.Context) []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns a single task by id. Returns task.ErrNotFound if absent.
func (s *TaskStore) Get(_ context.Context, id int64) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}
	return s.tasks[pos], nil
}

// Update replaces the task's description in place, keeping its id, complete
// flag, and sequence position. On validation failure the entry is untouched.
func (s *TaskStore) Update(_ context.Context, id int64, description string) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}

	old := s.tasks[pos]
	t, err := task.New(description, old.Complete)
	if err != nil {
		return task.Task{}, err
	}
	t.ID = old.ID

	s.tasks[pos] = t
	return t, nil
}

// Delete removes the task with the given id. Returns false when absent.
// The deleted id is never handed out again.
func (s *TaskStore) Delete(_ context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return false
	}

	s.tasks = append(s.tasks[:pos], s.tasks[pos+1:]...)
	delete(s.index, id)

	// Entries after the removed one shift left by one.
	for i := pos; i < len(s.tasks); i++ {
		s.index[s.tasks[i].ID] = i
	}

	return true
}

// ToggleComplete flips the complete flag of the task with the given id.
// The description is already valid from a prior Add or Update, so it is not
// re-validated here.
func (s *TaskStore) ToggleComplete(_ context.Context, id int64) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return task.Task{}, task.ErrNotFound
	}

	t := s.tasks[pos]
	t.Complete = !t.Complete
	s.tasks[pos] = t

	return t, nil
}

// Len returns the current number of tasks.
func (s *TaskStore) Len(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
