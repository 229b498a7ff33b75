package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thenoetrevino/focusflow/internal/models"
	listservice "github.com/thenoetrevino/focusflow/internal/services/list"
)

// ReadDescription returns description, reading stdin when it is "-"
func ReadDescription(description string, stdin io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// FindList resolves a list by ID or by case-insensitive title
func FindList(lists []*models.List, ref string) (*models.List, error) {
	for _, l := range lists {
		if l.ID == ref {
			return l, nil
		}
	}
	for _, l := range lists {
		if strings.EqualFold(l.Title, ref) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", listservice.ErrListNotFound, ref)
}

// FormatAvailableLists joins list titles for error suggestions
func FormatAvailableLists(lists []*models.List) string {
	names := make([]string, len(lists))
	for i, l := range lists {
		names[i] = l.Title
	}
	return strings.Join(names, ", ")
}

// ListTitle returns the title of the list with id, or the id itself
func ListTitle(lists []*models.List, id string) string {
	for _, l := range lists {
		if l.ID == id {
			return l.Title
		}
	}
	return id
}

// TaskIndex returns the position of the task with id, or -1
func TaskIndex(tasks []*models.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
