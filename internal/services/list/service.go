package list

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

// Service defines all list-related business operations
type Service interface {
	// Read operations
	ListLists(ctx context.Context, boardID string) ([]*models.List, error)
	GetList(ctx context.Context, id string) (*models.List, error)

	// Write operations
	CreateList(ctx context.Context, req CreateListRequest) (*models.List, error)
	UpdateList(ctx context.Context, req UpdateListRequest) (*models.List, error)
	DeleteList(ctx context.Context, id string) error
}

// CreateListRequest encapsulates data for creating a list
type CreateListRequest struct {
	BoardID string
	Title   string
}

// UpdateListRequest encapsulates data for updating a list.
// Order is the target display position; siblings are renumbered around it.
type UpdateListRequest struct {
	ID    string
	Title *string
	Order *int
}

type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new list service
func NewService(repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		repo:        repo,
		eventClient: eventClient,
	}
}

// ListLists returns the lists of a board in display order
func (s *service) ListLists(ctx context.Context, boardID string) ([]*models.List, error) {
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}
	lists, err := s.repo.GetLists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// GetList retrieves a specific list
func (s *service) GetList(ctx context.Context, id string) (*models.List, error) {
	if id == "" {
		return nil, ErrInvalidListID
	}
	l, err := s.repo.GetList(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrListNotFound, id)
		}
		return nil, err
	}
	return l, nil
}

// CreateList appends a list to a board
func (s *service) CreateList(ctx context.Context, req CreateListRequest) (*models.List, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if req.BoardID == "" {
		return nil, ErrInvalidBoardID
	}
	if _, err := s.repo.GetBoard(ctx, req.BoardID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("board %s: %w", req.BoardID, models.ErrInvalidReference)
		}
		return nil, err
	}

	siblings, err := s.repo.GetLists(ctx, req.BoardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}

	l := &models.List{ID: models.NewListID(), BoardID: req.BoardID, Title: title}
	res, err := ordering.Insert(siblings, l, len(siblings))
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, res.Writes); err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	s.publishListEvent(req.BoardID)
	return res.Items[len(res.Items)-1], nil
}

// UpdateList renames and/or repositions a list
func (s *service) UpdateList(ctx context.Context, req UpdateListRequest) (*models.List, error) {
	l, err := s.GetList(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		l.Title = title
	}

	var writes []ordering.Write[*models.List]
	if req.Order != nil {
		siblings, err := s.repo.GetLists(ctx, l.BoardID)
		if err != nil {
			return nil, fmt.Errorf("failed to get lists: %w", err)
		}
		from := ordering.IndexOf(siblings, l.ID)
		res, err := ordering.Move(siblings, from, *req.Order)
		if err != nil {
			return nil, err
		}
		writes = res.Writes
		l.Order = res.Items[ordering.IndexOf(res.Items, l.ID)].Order
	}

	// the renamed list goes in the same batch as the renumbered siblings
	batch := []*models.List{l}
	for _, w := range writes {
		if w.Item.ID != l.ID {
			batch = append(batch, w.Item)
		}
	}
	if err := s.repo.PutLists(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}

	s.publishListEvent(l.BoardID)
	return l, nil
}

// DeleteList deletes an empty list and closes the gap it leaves
func (s *service) DeleteList(ctx context.Context, id string) error {
	l, err := s.GetList(ctx, id)
	if err != nil {
		return err
	}

	siblings, err := s.repo.GetLists(ctx, l.BoardID)
	if err != nil {
		return fmt.Errorf("failed to get lists: %w", err)
	}
	res, _, err := ordering.Remove(siblings, id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	renumbered := make([]*models.List, len(res.Writes))
	for i, w := range res.Writes {
		renumbered[i] = w.Item
	}
	// The emptiness check, the delete and the renumbering share one transaction
	if err := s.repo.RemoveList(ctx, id, renumbered); err != nil {
		if errors.Is(err, models.ErrListNotEmpty) {
			return ErrListNotEmpty
		}
		return fmt.Errorf("failed to delete list: %w", err)
	}

	s.publishListEvent(l.BoardID)
	return nil
}

// persist writes changed lists in one transaction
func (s *service) persist(ctx context.Context, writes []ordering.Write[*models.List]) error {
	if len(writes) == 0 {
		return nil
	}
	batch := make([]*models.List, len(writes))
	for i, w := range writes {
		batch[i] = w.Item
	}
	return s.repo.PutLists(ctx, batch)
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

func (s *service) publishListEvent(boardID string) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.SendEvent(events.Event{
		Type:    events.EventDataChanged,
		BoardID: boardID,
	}); err != nil {
		slog.Warn("failed to send list event", "board_id", boardID, "error", err)
	}
}
