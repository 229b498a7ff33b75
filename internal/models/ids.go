package models

import "github.com/google/uuid"

// ID prefixes mirror the record kind so identifiers stay readable in logs
const (
	BoardIDPrefix = "board"
	ListIDPrefix  = "list"
	TaskIDPrefix  = "task"
)

// NewBoardID generates a board identifier
func NewBoardID() string { return newID(BoardIDPrefix) }

// NewListID generates a list identifier
func NewListID() string { return newID(ListIDPrefix) }

// NewTaskID generates a task identifier
func NewTaskID() string { return newID(TaskIDPrefix) }

// newID builds "<prefix>-<uuid v7>". v7 keeps ids roughly creation ordered.
// Collisions are treated as programming errors by the store (primary key violation).
func newID(prefix string) string {
	return prefix + "-" + uuid.Must(uuid.NewV7()).String()
}
