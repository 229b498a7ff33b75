package models

import "errors"

// Domain errors shared by the store, the services and the reconciliation layer
var (
	// ErrListNotEmpty is returned when deleting a list that still owns tasks.
	// The user has to empty the list first.
	ErrListNotEmpty = errors.New("cannot delete list with tasks")

	// ErrInvalidReference indicates a dangling foreign key (unknown board or list)
	ErrInvalidReference = errors.New("invalid reference")
)
