package board

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

// Service defines all board-related business operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context) ([]*models.Board, error)
	GetBoard(ctx context.Context, id string) (*models.Board, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error)
	TogglePin(ctx context.Context, id string) (*models.Board, error)
	DeleteBoard(ctx context.Context, id string) error

	// Ordering
	ReorderBoards(ctx context.Context, boards []*models.Board) error
	MoveBoard(ctx context.Context, id string, toIndex int) ([]*models.Board, error)

	// ResetAll removes every board, list and task. Irreversible.
	ResetAll(ctx context.Context) error
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	Title    string
	Type     string
	IsPinned bool
	Lists    []string // Optional: titles of the initial lists, in order
}

// UpdateBoardRequest encapsulates data for updating a board.
// Nil fields are left unchanged.
type UpdateBoardRequest struct {
	ID       string
	Title    *string
	Type     *string
	IsPinned *bool
}

// service implements Service interface using the repository
type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new board service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListBoards returns every board, positioned boards first
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	boards, err := s.repo.GetAllBoards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// GetBoard retrieves a specific board
func (s *service) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	if id == "" {
		return nil, ErrInvalidBoardID
	}
	b, err := s.repo.GetBoard(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
		}
		return nil, err
	}
	return b, nil
}

// CreateBoard creates a board and its initial lists
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	for _, name := range req.Lists {
		if _, err := validateTitle(name); err != nil {
			return nil, fmt.Errorf("list %q: %w", name, err)
		}
	}

	b := &models.Board{
		ID:       models.NewBoardID(),
		Title:    title,
		Type:     req.Type,
		IsPinned: req.IsPinned,
	}
	if err := s.repo.CreateBoard(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if len(req.Lists) > 0 {
		lists := make([]*models.List, len(req.Lists))
		for i, name := range req.Lists {
			lists[i] = &models.List{
				ID:      models.NewListID(),
				BoardID: b.ID,
				Title:   strings.TrimSpace(name),
				Order:   i,
			}
		}
		if err := s.repo.PutLists(ctx, lists); err != nil {
			if derr := s.repo.DeleteBoard(ctx, b.ID); derr != nil {
				slog.Error("failed to remove half-created board", "board_id", b.ID, "error", derr)
			}
			return nil, fmt.Errorf("failed to create initial lists: %w", err)
		}
	}

	s.publishBoardEvent(b.ID)
	return b, nil
}

// UpdateBoard applies the non-nil fields of req
func (s *service) UpdateBoard(ctx context.Context, req UpdateBoardRequest) (*models.Board, error) {
	b, err := s.GetBoard(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		b.Title = title
	}
	if req.Type != nil {
		b.Type = *req.Type
	}
	if req.IsPinned != nil {
		b.IsPinned = *req.IsPinned
	}

	if err := s.repo.PutBoard(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	s.publishBoardEvent(b.ID)
	return b, nil
}

// TogglePin flips the pinned flag of a board
func (s *service) TogglePin(ctx context.Context, id string) (*models.Board, error) {
	b, err := s.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	pinned := !b.IsPinned
	return s.UpdateBoard(ctx, UpdateBoardRequest{ID: id, IsPinned: &pinned})
}

// DeleteBoard deletes a board together with its lists and tasks
func (s *service) DeleteBoard(ctx context.Context, id string) error {
	if _, err := s.GetBoard(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteBoard(ctx, id); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	s.publishBoardEvent(id)
	return nil
}

// ReorderBoards stores order = index for every board, atomically
func (s *service) ReorderBoards(ctx context.Context, boards []*models.Board) error {
	seen := make(map[string]bool, len(boards))
	for _, b := range boards {
		if b == nil || b.ID == "" {
			return ErrInvalidBoardID
		}
		if seen[b.ID] {
			return fmt.Errorf("board %s: %w", b.ID, ordering.ErrDuplicateID)
		}
		seen[b.ID] = true
	}

	if err := s.repo.ReorderBoards(ctx, boards); err != nil {
		return fmt.Errorf("failed to reorder boards: %w", err)
	}

	s.publishBoardEvent("")
	return nil
}

// MoveBoard moves a board to toIndex in the current display order and
// persists the whole sequence
func (s *service) MoveBoard(ctx context.Context, id string, toIndex int) ([]*models.Board, error) {
	boards, err := s.ListBoards(ctx)
	if err != nil {
		return nil, err
	}

	from := ordering.IndexOf(boards, id)
	if from < 0 {
		return nil, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}

	// ListBoards already sorted unpositioned boards last; pin that sequence
	// before moving so they take part in the renumbering
	for i, b := range boards {
		b.SetOrder(i)
	}
	res, err := ordering.Move(boards, from, toIndex)
	if err != nil {
		return nil, err
	}

	if err := s.ReorderBoards(ctx, res.Items); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// ResetAll clears every table
func (s *service) ResetAll(ctx context.Context) error {
	if err := s.repo.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}

	s.publishBoardEvent("")
	return nil
}

// validateTitle trims and checks a board or list title
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

// publishBoardEvent publishes a board event. Empty boardID means all boards.
func (s *service) publishBoardEvent(boardID string) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.SendEvent(events.Event{
		Type:    events.EventDataChanged,
		BoardID: boardID,
	}); err != nil {
		slog.Warn("failed to send board event", "board_id", boardID, "error", err)
	}
}
