package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/TechieBelle/taskboard/board"
	"github.com/TechieBelle/taskboard/internal/markdown"
	"github.com/TechieBelle/taskboard/internal/ui"
	"github.com/TechieBelle/taskboard/task"
)

const detailWidth = 80

// tagsCellWidth keeps the TAGS column near the single-tag length cap so
// long tag lists don't crowd out the title.
const tagsCellWidth = 32

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task, prefixLengths map[string]int) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, prefixLengths, ui.HighlightID))
}

func formatTaskTable(tasks []task.Task, prefixLengths map[string]int, highlight func(string, int) string) string {
	builder := ui.NewTableBuilder([]string{"ID", "COLUMN", "PRI", "DUE", "TAGS", "TITLE"}, len(tasks))

	if prefixLengths == nil {
		prefixLengths = board.NewIDIndex(tasks).PrefixLengths()
	}

	for _, t := range tasks {
		title := ui.TruncateTableCell(t.Title)
		highlighted := highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID))
		row := []string{
			highlighted,
			t.Column.DisplayName(),
			priorityShort(t.Priority),
			dueDateShort(t.DueDate),
			ui.TruncateTableCellTo(strings.Join(t.Tags, ","), tagsCellWidth),
			title,
		}
		builder.AddRow(row)
	}

	return builder.String()
}

// priorityShort returns a short representation of priority.
func priorityShort(p task.Priority) string {
	switch p {
	case task.PriorityLow:
		return "low"
	case task.PriorityMedium:
		return "med"
	case task.PriorityHigh:
		return "high"
	default:
		return "-"
	}
}

func dueDateShort(dueDate string) string {
	if dueDate == "" {
		return "-"
	}
	return dueDate
}

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, highlight func(string) string) {
	fmt.Printf("ID:       %s\n", highlight(t.ID))
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Column:   %s\n", t.Column.DisplayName())
	fmt.Printf("Priority: %s\n", priorityName(t.Priority))

	if t.DueDate != "" {
		fmt.Printf("Due:      %s\n", t.DueDate)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(t.Tags, ", "))
	}
	if created, err := time.Parse(time.RFC3339, t.CreatedAt); err == nil {
		fmt.Printf("Created:  %s\n", created.Local().Format("2006-01-02 15:04:05"))
	}

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", renderMarkdownOrDash(t.Description, detailWidth))
	}
}

func priorityName(p task.Priority) string {
	if p == "" {
		return "-"
	}
	return string(p)
}

func renderMarkdownOrDash(value string, width int) string {
	if width < 1 {
		width = 1
	}
	formatted := markdown.Render(width, value)
	if strings.TrimSpace(formatted) == "" {
		return "-"
	}
	return formatted
}

// highlightTaskID highlights the unique prefix of a task ID against the
// store's current ID set.
func highlightTaskID(store *board.Store, id string) string {
	tasks := store.Tasks()
	all := make([]string, len(tasks))
	for i, t := range tasks {
		all[i] = t.ID
	}
	return ui.HighlightUniquePrefix(id, all)
}
