// Package task defines the task board's data model - tasks, workflow
// columns, priorities, activity log entries - and the pure form-validation
// rules applied at the UI boundary before any store operation runs.
package task

// Column represents the workflow stage a task occupies.
type Column string

const (
	// ColumnTodo holds tasks that have not been started.
	ColumnTodo Column = "todo"

	// ColumnDoing holds tasks currently in progress.
	ColumnDoing Column = "doing"

	// ColumnDone holds finished tasks.
	ColumnDone Column = "done"
)

// ValidColumns returns all valid column values.
func ValidColumns() []Column {
	return []Column{ColumnTodo, ColumnDoing, ColumnDone}
}

// IsValid returns true if the column is a known valid value.
func (c Column) IsValid() bool {
	for _, valid := range ValidColumns() {
		if c == valid {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable label for the column.
func (c Column) DisplayName() string {
	switch c {
	case ColumnTodo:
		return "Todo"
	case ColumnDoing:
		return "In Progress"
	case ColumnDone:
		return "Done"
	default:
		return string(c)
	}
}

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow marks a task as low importance.
	PriorityLow Priority = "low"

	// PriorityMedium marks a task as medium importance.
	PriorityMedium Priority = "medium"

	// PriorityHigh marks a task as high importance.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityFilter selects which priorities FilteredTasks returns.
// It is either "all" or a single valid Priority value.
type PriorityFilter string

// FilterAll matches every task regardless of priority.
const FilterAll PriorityFilter = "all"

// IsValid returns true if the filter is "all" or a valid priority.
func (f PriorityFilter) IsValid() bool {
	return f == FilterAll || Priority(f).IsValid()
}

// Matches reports whether a task priority passes the filter.
func (f PriorityFilter) Matches(p Priority) bool {
	return f == FilterAll || Priority(f) == p
}

// Action represents the kind of mutation an activity entry records.
type Action string

const (
	// ActionCreated records a new task.
	ActionCreated Action = "created"

	// ActionEdited records a field update.
	ActionEdited Action = "edited"

	// ActionMoved records a column change.
	ActionMoved Action = "moved"

	// ActionDeleted records a removal.
	ActionDeleted Action = "deleted"
)

// ValidActions returns all valid action values.
func ValidActions() []Action {
	return []Action{ActionCreated, ActionEdited, ActionMoved, ActionDeleted}
}

// IsValid returns true if the action is a known valid value.
func (a Action) IsValid() bool {
	for _, valid := range ValidActions() {
		if a == valid {
			return true
		}
	}
	return false
}

const (
	// MinTitleLength is the minimum allowed length for a task title.
	MinTitleLength = 3

	// MaxTitleLength is the maximum allowed length for a task title.
	MaxTitleLength = 100

	// MaxDescriptionLength is the maximum allowed length for a description.
	MaxDescriptionLength = 500

	// MaxTags is the maximum number of tags per task.
	MaxTags = 10

	// MaxTagLength is the maximum allowed length for a single tag.
	MaxTagLength = 30

	// MaxActivityEntries is the number of activity entries kept in memory.
	MaxActivityEntries = 50
)
