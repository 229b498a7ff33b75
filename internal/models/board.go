package models

import (
	"math"
	"time"
)

// Board is the top-level container on the kanban board.
// Order is optional: boards that were never reordered have no position and
// sort after every positioned board.
type Board struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	IsPinned  bool      `json:"is_pinned"`
	Order     *int      `json:"order,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the board identifier
func (b *Board) GetID() string { return b.ID }

// GetParentID returns an empty string, boards have no parent
func (b *Board) GetParentID() string { return "" }

// GetOrder returns the board position, or math.MaxInt when unset
func (b *Board) GetOrder() int {
	if b.Order == nil {
		return math.MaxInt
	}
	return *b.Order
}

// SetOrder assigns the board position
func (b *Board) SetOrder(order int) {
	b.Order = &order
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := *b
	if b.Order != nil {
		order := *b.Order
		c.Order = &order
	}
	return &c
}
