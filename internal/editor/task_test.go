package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/TechieBelle/taskboard/task"
)

func TestRenderTaskTOML_Create(t *testing.T) {
	content, err := RenderTaskTOML(DefaultCreateData())
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	if !strings.Contains(content, `title = ""`) {
		t.Error("expected empty title")
	}
	if !strings.Contains(content, `priority = ""`) {
		t.Error("expected empty priority")
	}
	if !strings.Contains(content, "---") {
		t.Error("expected frontmatter separator")
	}
	// Column is only shown when editing an existing task.
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "column = ") {
			t.Error("column should not be present for create")
		}
	}
}

func TestRenderTaskTOML_Update(t *testing.T) {
	existing := task.Task{
		ID:          "abc123",
		Title:       "Write report",
		Priority:    task.PriorityHigh,
		DueDate:     "2026-09-15",
		Tags:        []string{"work", "urgent"},
		Column:      task.ColumnDoing,
		Description: "Quarterly numbers.",
	}

	content, err := RenderTaskTOML(DataFromTask(&existing))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	for _, want := range []string{
		`title = "Write report"`,
		`priority = "high"`,
		`due = "2026-09-15"`,
		`tags = "work, urgent"`,
		`column = "doing"`,
		"Quarterly numbers.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered content missing %q:\n%s", want, content)
		}
	}
}

func TestParseTaskTOML(t *testing.T) {
	content := `title = "Write report"
priority = "HIGH"
due = "2027-01-15"
tags = "work, urgent"
---
Quarterly numbers.

With details.
`

	parsed, err := ParseTaskTOML(content, "")
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Title != "Write report" {
		t.Errorf("Title = %q", parsed.Title)
	}
	if parsed.Priority != "high" {
		t.Errorf("Priority = %q, want normalized high", parsed.Priority)
	}
	if parsed.DueDate != "2027-01-15" {
		t.Errorf("DueDate = %q", parsed.DueDate)
	}
	if parsed.Description != "Quarterly numbers.\n\nWith details.\n" {
		t.Errorf("Description = %q", parsed.Description)
	}
	if parsed.Column != nil {
		t.Errorf("Column = %v, want nil when absent", parsed.Column)
	}
}

func TestParseTaskTOML_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "title = \n---\n"},
		{"short title", `title = "ab"` + "\n---\n"},
		{"bad priority", `title = "Fine title"` + "\n" + `priority = "urgent"` + "\n---\n"},
		{"bad column", `title = "Fine title"` + "\n" + `column = "limbo"` + "\n---\n"},
		{"past due", `title = "Fine title"` + "\n" + `due = "2020-01-01"` + "\n---\n"},
		{"duplicate tags", `title = "Fine title"` + "\n" + `tags = "a,a"` + "\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTaskTOML(tt.content, ""); err == nil {
				t.Errorf("ParseTaskTOML accepted invalid content:\n%s", tt.content)
			}
		})
	}
}

func TestParseTaskTOML_InvalidValueErrors(t *testing.T) {
	_, err := ParseTaskTOML(`title = "Fine title"`+"\n"+`priority = "urgent"`+"\n---\n", "")
	if !errors.Is(err, errInvalidPriority) {
		t.Errorf("bad priority = %v, want %v", err, errInvalidPriority)
	}
	if err != nil && !strings.Contains(err.Error(), "(valid: low, medium, high)") {
		t.Errorf("bad priority message lacks valid values: %v", err)
	}

	_, err = ParseTaskTOML(`title = "Fine title"`+"\n"+`column = "limbo"`+"\n---\n", "")
	if !errors.Is(err, errInvalidColumn) {
		t.Errorf("bad column = %v, want %v", err, errInvalidColumn)
	}
	if err != nil && !strings.Contains(err.Error(), "(valid: todo, doing, done)") {
		t.Errorf("bad column message lacks valid values: %v", err)
	}
}

func TestParseTaskTOML_NoSeparator(t *testing.T) {
	parsed, err := ParseTaskTOML(`title = "Standalone title"`, "")
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Description != "" {
		t.Errorf("Description = %q, want empty", parsed.Description)
	}
}
