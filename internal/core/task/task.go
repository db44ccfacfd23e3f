// Package task defines the task domain model for the in-memory todo engine.
package task

import (
	"strings"
	"unicode/utf8"
)

// MaxDescriptionLen is the maximum description length in characters,
// measured after surrounding whitespace is trimmed.
const MaxDescriptionLen = 500

// Task represents a single todo item. Values are immutable by convention:
// every state change is expressed as constructing a replacement Task that
// the store substitutes for the old one.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// New constructs a Task from raw description text. Surrounding whitespace is
// trimmed before validation and the trimmed value is what gets stored.
// Returns ErrEmptyDescription or ErrDescriptionTooLong on invalid input; an
// invalid Task is never observable, not even transiently.
//
// The ID is left unset. Only the store assigns ids.
func New(description string, complete bool) (Task, error) {
	trimmed := strings.TrimSpace(description)

	if trimmed == "" {
		return Task{}, ErrEmptyDescription
	}
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLen {
		return Task{}, ErrDescriptionTooLong
	}

	return Task{Description: trimmed, Complete: complete}, nil
}
