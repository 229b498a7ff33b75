package models

import "time"

// List is an ordered column within a board
type List struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"board_id"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *List) GetID() string       { return l.ID }
func (l *List) GetParentID() string { return l.BoardID }
func (l *List) GetOrder() int       { return l.Order }
func (l *List) SetOrder(order int)  { l.Order = order }

// Clone returns a copy of the list
func (l *List) Clone() *List {
	c := *l
	return &c
}
