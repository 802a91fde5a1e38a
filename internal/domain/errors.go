package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaskStatus is returned when a task status is not one of
	// the defined lifecycle states.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrEmptyTaskID is returned when a task is missing its identifier.
	ErrEmptyTaskID = errors.New("task ID cannot be empty")
)
