package reconcile

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/ordering"
)

// Operation names, used in logs, events and errors
const (
	OpAddList      = "add_list"
	OpMoveList     = "move_list"
	OpRemoveList   = "remove_list"
	OpAddTask      = "add_task"
	OpMoveTask     = "move_task"
	OpTransferTask = "transfer_task"
	OpRemoveTask   = "remove_task"
	OpNormalize    = "normalize"
)

// AddList creates a list titled title at position atIndex (clamped).
func (s *Session) AddList(title string, atIndex int) (*models.List, *Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	list := &models.List{
		ID:        models.NewListID(),
		BoardID:   s.boardID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	prev := byID(cloneAll(s.current.lists))
	res, err := ordering.Insert(s.current.lists, list, atIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", OpAddList, err)
	}

	s.current.lists = res.Items
	s.current.tasks[list.ID] = []*models.Task{}
	added := res.Items[ordering.IndexOf(res.Items, list.ID)].Clone()

	p := s.enqueue(OpAddList, putWrites(s.listOps(), res.Writes, prev))
	return added, p, nil
}

// MoveList moves the list at fromIndex to toIndex
func (s *Session) MoveList(fromIndex, toIndex int) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	prev := byID(cloneAll(s.current.lists))
	res, err := ordering.Move(s.current.lists, fromIndex, toIndex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpMoveList, err)
	}
	if len(res.Writes) == 0 {
		return resolved(OpMoveList), nil
	}

	s.current.lists = res.Items
	return s.enqueue(OpMoveList, putWrites(s.listOps(), res.Writes, prev)), nil
}

// RemoveList deletes an empty list and renumbers the rest.
// Returns models.ErrListNotEmpty while the list owns tasks.
func (s *Session) RemoveList(listID string) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	if len(s.current.tasks[listID]) > 0 {
		return nil, models.ErrListNotEmpty
	}

	prev := byID(cloneAll(s.current.lists))
	res, removed, err := ordering.Remove(s.current.lists, listID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpRemoveList, err)
	}

	s.current.lists = res.Items
	delete(s.current.tasks, listID)

	ops := s.listOps()
	writes := append([]write{deleteWrite(ops, removed)}, putWrites(ops, res.Writes, prev)...)
	return s.enqueue(OpRemoveList, writes), nil
}

// AddTask creates a task from draft in listID at position atIndex (clamped).
// The task id is generated when draft has none; list and board ids are
// always taken from the target list.
func (s *Session) AddTask(listID string, draft models.Task, atIndex int) (*models.Task, *Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, nil, err
	}

	list := s.current.list(listID)
	if list == nil {
		return nil, nil, fmt.Errorf("%s: list %s: %w", OpAddTask, listID, models.ErrInvalidReference)
	}

	task := draft.Clone()
	if task.ID == "" {
		task.ID = models.NewTaskID()
	}
	task.MoveTo(list)
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	siblings := s.current.tasks[listID]
	prev := byID(cloneAll(siblings))
	res, err := ordering.Insert(siblings, task, atIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", OpAddTask, err)
	}

	s.current.tasks[listID] = res.Items
	added := res.Items[ordering.IndexOf(res.Items, task.ID)].Clone()

	p := s.enqueue(OpAddTask, putWrites(s.taskOps(), res.Writes, prev))
	return added, p, nil
}

// MoveTask reorders a task within one list
func (s *Session) MoveTask(listID string, fromIndex, toIndex int) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	return s.moveTask(listID, fromIndex, toIndex)
}

func (s *Session) moveTask(listID string, fromIndex, toIndex int) (*Pending, error) {
	siblings, ok := s.current.tasks[listID]
	if !ok {
		return nil, fmt.Errorf("%s: list %s: %w", OpMoveTask, listID, models.ErrInvalidReference)
	}

	prev := byID(cloneAll(siblings))
	res, err := ordering.Move(siblings, fromIndex, toIndex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpMoveTask, err)
	}
	if len(res.Writes) == 0 {
		return resolved(OpMoveTask), nil
	}

	s.current.tasks[listID] = res.Items
	return s.enqueue(OpMoveTask, putWrites(s.taskOps(), res.Writes, prev)), nil
}

// TransferTask moves the task at fromIndex of fromListID into toListID at
// toIndex (clamped). Both lists are renumbered and persisted as one
// operation: a failure rolls back both.
func (s *Session) TransferTask(fromListID, toListID string, fromIndex, toIndex int) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	if fromListID == toListID {
		return s.moveTask(fromListID, fromIndex, toIndex)
	}

	source, ok := s.current.tasks[fromListID]
	if !ok {
		return nil, fmt.Errorf("%s: list %s: %w", OpTransferTask, fromListID, models.ErrInvalidReference)
	}
	destList := s.current.list(toListID)
	if destList == nil {
		return nil, fmt.Errorf("%s: list %s: %w", OpTransferTask, toListID, models.ErrInvalidReference)
	}
	dest := s.current.tasks[toListID]

	prev := byID(cloneAll(source), cloneAll(dest))
	res, err := ordering.Transfer(source, dest, fromIndex, toIndex, func(t *models.Task) {
		t.MoveTo(destList)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpTransferTask, err)
	}

	s.current.tasks[fromListID] = res.Source
	s.current.tasks[toListID] = res.Dest
	return s.enqueue(OpTransferTask, putWrites(s.taskOps(), res.Writes, prev)), nil
}

// RemoveTask deletes a task and renumbers its list
func (s *Session) RemoveTask(taskID string) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}

	listID, _ := s.current.findTask(taskID)
	if listID == "" {
		return nil, fmt.Errorf("%s: task %s: %w", OpRemoveTask, taskID, ordering.ErrUnknownID)
	}

	siblings := s.current.tasks[listID]
	prev := byID(cloneAll(siblings))
	res, removed, err := ordering.Remove(siblings, taskID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpRemoveTask, err)
	}

	s.current.tasks[listID] = res.Items

	ops := s.taskOps()
	writes := append([]write{deleteWrite(ops, removed)}, putWrites(ops, res.Writes, prev)...)
	return s.enqueue(OpRemoveTask, writes), nil
}
