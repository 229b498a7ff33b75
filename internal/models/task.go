package models

import "time"

// Task is a single card inside a list.
// BoardID is denormalized from the owning list and must always match it.
type Task struct {
	ID            string    `json:"id"`
	ListID        string    `json:"list_id"`
	BoardID       string    `json:"board_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Order         int       `json:"order"`
	IsRepeated    bool      `json:"is_repeated"`
	IsCompleted   bool      `json:"is_completed"`
	PomodoroCount int       `json:"pomodoro_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (t *Task) GetID() string       { return t.ID }
func (t *Task) GetParentID() string { return t.ListID }
func (t *Task) GetOrder() int       { return t.Order }
func (t *Task) SetOrder(order int)  { t.Order = order }

// Clone returns a copy of the task
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// MoveTo points the task at a new list, keeping BoardID in sync with it
func (t *Task) MoveTo(list *List) {
	t.ListID = list.ID
	t.BoardID = list.BoardID
}
