package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/focusflow/internal/database"
	"github.com/thenoetrevino/focusflow/internal/events"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/ordering"
)

const maxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context, boardID string) ([]*models.Task, error)
	ListTasksByList(ctx context.Context, listID string) ([]*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Card actions
	ToggleCompleted(ctx context.Context, id string) (*models.Task, error)
	IncrementPomodoro(ctx context.Context, id string) (*models.Task, error)
}

// CreateTaskRequest encapsulates data for creating a task.
// The board is derived from the list.
type CreateTaskRequest struct {
	ListID      string
	Title       string
	Description string
	IsRepeated  bool
}

// UpdateTaskRequest encapsulates data for updating a task. Nil fields are
// left unchanged. A new ListID appends the task to that list and rewrites
// its BoardID to match.
type UpdateTaskRequest struct {
	ID            string
	Title         *string
	Description   *string
	IsRepeated    *bool
	IsCompleted   *bool
	PomodoroCount *int
	ListID        *string
}

type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new task service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListTasks returns every task of a board, grouped by list in display order
func (s *service) ListTasks(ctx context.Context, boardID string) ([]*models.Task, error) {
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}
	tasks, err := s.repo.GetTasks(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksByList returns the tasks of one list in display order
func (s *service) ListTasksByList(ctx context.Context, listID string) ([]*models.Task, error) {
	if listID == "" {
		return nil, ErrInvalidListID
	}
	tasks, err := s.repo.GetTasksByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a specific task
func (s *service) GetTask(ctx context.Context, id string) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}
	t, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		return nil, err
	}
	return t, nil
}

// CreateTask appends a task to a list
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	list, err := s.resolveList(ctx, req.ListID)
	if err != nil {
		return nil, err
	}

	siblings, err := s.repo.GetTasksByList(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	t := &models.Task{
		ID:          models.NewTaskID(),
		Title:       title,
		Description: req.Description,
		IsRepeated:  req.IsRepeated,
	}
	t.MoveTo(list)

	res, err := ordering.Insert(siblings, t, len(siblings))
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, res.Writes); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publishTaskEvent(t.BoardID)
	return res.Items[len(res.Items)-1], nil
}

// UpdateTask applies the non-nil fields of req
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	t, err := s.GetTask(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	oldBoardID := t.BoardID

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		t.Title = title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.IsRepeated != nil {
		t.IsRepeated = *req.IsRepeated
	}
	if req.IsCompleted != nil {
		t.IsCompleted = *req.IsCompleted
	}
	if req.PomodoroCount != nil {
		if *req.PomodoroCount < 0 {
			return nil, ErrNegativePomodoros
		}
		t.PomodoroCount = *req.PomodoroCount
	}

	batch := []*models.Task{t}
	if req.ListID != nil && *req.ListID != t.ListID {
		moved, err := s.transfer(ctx, t, *req.ListID)
		if err != nil {
			return nil, err
		}
		batch = moved
		t = moved[0]
	}

	if err := s.repo.PutTasks(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.publishTaskEvent(t.BoardID)
	if oldBoardID != t.BoardID {
		s.publishTaskEvent(oldBoardID)
	}
	return t, nil
}

// transfer appends t to the end of list destID and renumbers the list it
// leaves. The moved task comes first in the returned batch.
func (s *service) transfer(ctx context.Context, t *models.Task, destID string) ([]*models.Task, error) {
	dest, err := s.resolveList(ctx, destID)
	if err != nil {
		return nil, err
	}

	source, err := s.repo.GetTasksByList(ctx, t.ListID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	destTasks, err := s.repo.GetTasksByList(ctx, dest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	// carry the edited fields into the sibling copy that gets moved
	from := ordering.IndexOf(source, t.ID)
	if from < 0 {
		return nil, fmt.Errorf("task %s: %w", t.ID, ordering.ErrUnknownID)
	}
	edited := t.Clone()
	edited.Order = source[from].Order
	source[from] = edited

	res, err := ordering.Transfer(source, destTasks, from, len(destTasks), func(m *models.Task) {
		m.MoveTo(dest)
	})
	if err != nil {
		return nil, err
	}

	batch := []*models.Task{res.Moved}
	for _, w := range res.Writes {
		if w.Item.ID != res.Moved.ID {
			batch = append(batch, w.Item)
		}
	}
	return batch, nil
}

// DeleteTask deletes a task and closes the gap in its list
func (s *service) DeleteTask(ctx context.Context, id string) error {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return err
	}

	siblings, err := s.repo.GetTasksByList(ctx, t.ListID)
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	res, _, err := ordering.Remove(siblings, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	renumbered := make([]*models.Task, len(res.Writes))
	for i, w := range res.Writes {
		renumbered[i] = w.Item
	}
	if err := s.repo.RemoveTask(ctx, id, renumbered); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.publishTaskEvent(t.BoardID)
	return nil
}

// ToggleCompleted flips the completed flag
func (s *service) ToggleCompleted(ctx context.Context, id string) (*models.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	done := !t.IsCompleted
	return s.UpdateTask(ctx, UpdateTaskRequest{ID: id, IsCompleted: &done})
}

// IncrementPomodoro records one finished focus session on the task
func (s *service) IncrementPomodoro(ctx context.Context, id string) (*models.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	count := t.PomodoroCount + 1
	return s.UpdateTask(ctx, UpdateTaskRequest{ID: id, PomodoroCount: &count})
}

// resolveList loads a list, reporting a dangling id as ErrInvalidReference
func (s *service) resolveList(ctx context.Context, listID string) (*models.List, error) {
	if listID == "" {
		return nil, ErrInvalidListID
	}
	list, err := s.repo.GetList(ctx, listID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("list %s: %w", listID, models.ErrInvalidReference)
		}
		return nil, err
	}
	return list, nil
}

func (s *service) persist(ctx context.Context, writes []ordering.Write[*models.Task]) error {
	if len(writes) == 0 {
		return nil
	}
	batch := make([]*models.Task, len(writes))
	for i, w := range writes {
		batch[i] = w.Item
	}
	return s.repo.PutTasks(ctx, batch)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func (s *service) publishTaskEvent(boardID string) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.SendEvent(events.Event{
		Type:    events.EventDataChanged,
		BoardID: boardID,
	}); err != nil {
		slog.Warn("failed to send task event", "board_id", boardID, "error", err)
	}
}
