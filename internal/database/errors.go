package database

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrStoreUnavailable indicates the local database could not be opened or reached
	ErrStoreUnavailable = errors.New("store unavailable")
)
