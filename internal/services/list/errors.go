package list

import (
	"errors"

	"github.com/thenoetrevino/focusflow/internal/models"
)

// List-related errors
var (
	// Validation errors
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrTitleTooLong   = errors.New("title cannot exceed 255 characters")
	ErrInvalidListID  = errors.New("invalid list ID")
	ErrInvalidBoardID = errors.New("invalid board ID")

	// Business logic errors
	ErrListNotFound = errors.New("list not found")
	ErrListNotEmpty = models.ErrListNotEmpty
)
