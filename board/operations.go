package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TechieBelle/taskboard/task"
)

// TaskData configures a new task. ID and CreatedAt are generated by the
// store and cannot be supplied.
type TaskData struct {
	// Title is the short summary (validated at the UI boundary).
	Title string

	// Description provides additional context.
	Description string

	// Priority is the importance level; empty means unset.
	Priority task.Priority

	// DueDate is an ISO calendar date; empty means no due date.
	DueDate string

	// Tags is the normalized tag list (see task.ParseTags).
	Tags []string

	// Column is the workflow stage; defaults to todo when empty.
	Column task.Column
}

// TaskUpdate configures fields to change on an existing task.
// Nil pointers mean "don't update this field". ID and CreatedAt are not
// representable here, which keeps them immutable by construction.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *task.Priority
	DueDate     *string
	Tags        *[]string
	Column      *task.Column
}

// Login authenticates the session against the fixed demo credentials.
// On success the auth flag and remember-me preference are persisted and
// the session becomes authenticated. On failure nothing changes.
func (s *Store) Login(email, password string, rememberMe bool) bool {
	if email != DemoEmail || password != DemoPassword {
		return false
	}
	s.storage.SaveAuth(true)
	s.storage.SaveRememberMe(rememberMe)
	s.isAuthenticated = true
	s.notify()
	return true
}

// Logout clears the persisted auth record and remember-me preference and
// ends the in-memory session. Tasks and activity are kept.
func (s *Store) Logout() {
	s.storage.ClearAuth()
	s.storage.SaveRememberMe(false)
	s.isAuthenticated = false
	s.notify()
}

// AddTask creates a task from data, assigning a fresh ID and creation
// timestamp, and logs a "created" activity entry.
func (s *Store) AddTask(data TaskData) task.Task {
	column := data.Column
	if column == "" {
		column = task.ColumnTodo
	}
	created := task.Task{
		ID:          newID(),
		Title:       data.Title,
		Description: data.Description,
		Priority:    data.Priority,
		DueDate:     data.DueDate,
		Tags:        data.Tags,
		CreatedAt:   timestamp(),
		Column:      column,
	}

	s.tasks = append(s.tasks, created)
	s.logActivity(task.ActivityEntry{
		ID:        newID(),
		Action:    task.ActionCreated,
		TaskTitle: created.Title,
		Timestamp: timestamp(),
	})
	return created
}

// UpdateTask applies updates to the task with the given ID and logs an
// "edited" activity entry with the post-update title. An unknown ID
// leaves all tasks unchanged; the entry is still logged with an empty
// title, matching delete-of-absent behavior.
func (s *Store) UpdateTask(id string, updates TaskUpdate) {
	var title string
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if updates.Title != nil {
			s.tasks[i].Title = *updates.Title
		}
		if updates.Description != nil {
			s.tasks[i].Description = *updates.Description
		}
		if updates.Priority != nil {
			s.tasks[i].Priority = *updates.Priority
		}
		if updates.DueDate != nil {
			s.tasks[i].DueDate = *updates.DueDate
		}
		if updates.Tags != nil {
			s.tasks[i].Tags = *updates.Tags
		}
		if updates.Column != nil {
			s.tasks[i].Column = *updates.Column
		}
		title = s.tasks[i].Title
		break
	}

	s.logActivity(task.ActivityEntry{
		ID:        newID(),
		Action:    task.ActionEdited,
		TaskTitle: title,
		Timestamp: timestamp(),
	})
}

// DeleteTask removes the task with the given ID and logs a "deleted"
// activity entry with the task's last-known title. An unknown ID is a
// no-op for the task list but still logs an entry with an empty title.
func (s *Store) DeleteTask(id string) {
	var title string
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID == id {
			title = t.Title
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept

	s.logActivity(task.ActivityEntry{
		ID:        newID(),
		Action:    task.ActionDeleted,
		TaskTitle: title,
		Timestamp: timestamp(),
	})
}

// MoveTask changes only the column of the task with the given ID and
// logs a "moved" activity entry with the display names of both columns.
// Moving to the current column is valid and still logs an entry.
func (s *Store) MoveTask(id string, newColumn task.Column) {
	var title string
	var fromColumn task.Column
	found := false
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		found = true
		title = s.tasks[i].Title
		fromColumn = s.tasks[i].Column
		s.tasks[i].Column = newColumn
		break
	}

	entry := task.ActivityEntry{
		ID:        newID(),
		Action:    task.ActionMoved,
		TaskTitle: title,
		Timestamp: timestamp(),
		ToColumn:  newColumn.DisplayName(),
	}
	if found {
		entry.FromColumn = fromColumn.DisplayName()
		entry.Details = fmt.Sprintf("from %s to %s", fromColumn.DisplayName(), newColumn.DisplayName())
	}
	s.logActivity(entry)
}

// SetSearchQuery updates the free-text title filter. No persistence, no
// activity entry.
func (s *Store) SetSearchQuery(query string) {
	s.searchQuery = query
	s.notify()
}

// SetPriorityFilter updates the priority filter. No persistence, no
// activity entry.
func (s *Store) SetPriorityFilter(filter task.PriorityFilter) {
	s.priorityFilter = filter
	s.notify()
}

// ResetBoard clears every persisted record and resets tasks, activity,
// and filters to their defaults. The session flags are kept: resetting
// the board does not log the user out.
func (s *Store) ResetBoard() {
	s.storage.ClearAll()
	s.tasks = nil
	s.activity = nil
	s.searchQuery = ""
	s.priorityFilter = task.FilterAll
	s.notify()
}

// FilteredTasks returns the tasks passing the current search and
// priority filters, sorted ascending by due date with dateless tasks
// last. The sort is stable: equal-date and dateless tasks keep their
// relative insertion order.
func (s *Store) FilteredTasks() []task.Task {
	query := strings.ToLower(s.searchQuery)

	filtered := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		if !s.priorityFilter.Matches(t.Priority) {
			continue
		}
		filtered = append(filtered, t)
	}

	// ISO dates compare correctly as strings.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].DueDate, filtered[j].DueDate
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})

	return filtered
}

// logActivity prepends an entry, truncates the log to the in-memory cap,
// and persists both the task list and the activity log.
func (s *Store) logActivity(entry task.ActivityEntry) {
	s.activity = append([]task.ActivityEntry{entry}, s.activity...)
	if len(s.activity) > task.MaxActivityEntries {
		s.activity = s.activity[:task.MaxActivityEntries]
	}
	s.storage.SaveTasks(s.tasks)
	s.storage.SaveActivity(s.activity)
	s.notify()
}
