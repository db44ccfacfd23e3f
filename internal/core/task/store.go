package task

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no task with the given id exists.
	ErrNotFound = errors.New("task not found")
	// ErrEmptyDescription is returned when a description is empty after trimming.
	ErrEmptyDescription = errors.New("task description is empty")
	// ErrDescriptionTooLong is returned when a trimmed description exceeds MaxDescriptionLen.
	ErrDescriptionTooLong = errors.New("task description exceeds maximum length")
)

// Store defines the interface for the task collection. The store is the sole
// owner of the collection: it assigns ids and nothing else mutates tasks.
//
// Every mutation leaves the store either fully updated or fully unchanged.
type Store interface {
	// Add validates the description, assigns the next sequential id, and
	// appends the task. The id counter advances only on success; a failed
	// Add never consumes an id.
	Add(ctx context.Context, description string) (Task, error)

	// List returns a snapshot of all tasks in creation order. Returns an
	// empty slice, never nil, when no tasks exist.
	List(ctx context.Context) []Task

	// Get returns the task with the given id.
	// Returns ErrNotFound if the task does not exist.
	Get(ctx context.Context, id int64) (Task, error)

	// Update replaces the task's description, subject to the same validation
	// as Add. Position in the sequence and the complete flag are preserved.
	// Returns ErrNotFound or a validation error; on failure the stored entry
	// is untouched.
	Update(ctx context.Context, id int64, description string) (Task, error)

	// Delete removes the task with the given id, preserving the relative
	// order of the remainder. Returns false when no such task exists.
	// A deleted id is never reassigned.
	Delete(ctx context.Context, id int64) bool

	// ToggleComplete flips the task's complete flag and returns the new
	// value. Returns ErrNotFound if the task does not exist.
	ToggleComplete(ctx context.Context, id int64) (Task, error)

	// Len returns the current number of tasks.
	Len(ctx context.Context) int
}
