package task

// Task represents a single unit of work on the board.
type Task struct {
	// ID is a unique identifier, immutable after creation.
	ID string `json:"id"`

	// Title is the short summary of the task (3-100 chars at the UI boundary).
	Title string `json:"title"`

	// Description provides additional context (max 500 chars).
	Description string `json:"description,omitempty"`

	// Priority is the importance level; empty means unset.
	Priority Priority `json:"priority,omitempty"`

	// DueDate is an ISO calendar date (2006-01-02); empty means no due date.
	DueDate string `json:"dueDate,omitempty"`

	// Tags is an ordered, deduplicated set of labels.
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is an RFC 3339 timestamp, set once at creation.
	CreatedAt string `json:"createdAt"`

	// Column is the workflow stage the task currently occupies.
	Column Column `json:"column"`
}

// ActivityEntry is an audit record of one task mutation, newest first in
// the log. Entries are never mutated after creation.
type ActivityEntry struct {
	// ID is a unique identifier for the entry.
	ID string `json:"id"`

	// Action is the kind of mutation recorded.
	Action Action `json:"action"`

	// TaskTitle is a snapshot of the task's title at the time of the action.
	TaskTitle string `json:"taskTitle"`

	// Timestamp is an RFC 3339 timestamp of when the action occurred.
	Timestamp string `json:"timestamp"`

	// FromColumn is the display name of the previous column (moved only).
	FromColumn string `json:"fromColumn,omitempty"`

	// ToColumn is the display name of the new column (moved only).
	ToColumn string `json:"toColumn,omitempty"`

	// Details is a human-readable summary like "from Todo to Done" (moved only).
	Details string `json:"details,omitempty"`
}
