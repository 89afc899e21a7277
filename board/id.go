package board

import (
	"errors"
	"fmt"

	"github.com/TechieBelle/taskboard/internal/ids"
	"github.com/TechieBelle/taskboard/task"
)

var (
	// ErrTaskNotFound is returned when no task matches an ID prefix.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches
	// multiple tasks.
	ErrAmbiguousIDPrefix = errors.New("ambiguous task ID prefix")
)

// IDIndex indexes task IDs for prefix matching and display. The store's
// no-op contract for unknown IDs means callers that want an error for a
// bad ID resolve it here first.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from a slice of tasks.
func NewIDIndex(tasks []task.Task) IDIndex {
	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	return IDIndex{ids: taskIDs}
}

// Resolve returns the full task ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrTaskNotFound
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	}

	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}

// ResolveID resolves an ID prefix against the store's current tasks.
func (s *Store) ResolveID(prefix string) (string, error) {
	return NewIDIndex(s.tasks).Resolve(prefix)
}
