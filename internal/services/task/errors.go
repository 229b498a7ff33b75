package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title cannot exceed 255 characters")
	ErrInvalidTaskID     = errors.New("invalid task ID")
	ErrInvalidListID     = errors.New("invalid list ID")
	ErrInvalidBoardID    = errors.New("invalid board ID")
	ErrNegativePomodoros = errors.New("pomodoro count cannot be negative")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
