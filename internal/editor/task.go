package editor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	"github.com/TechieBelle/taskboard/internal/validation"
	"github.com/TechieBelle/taskboard/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID string
	// Title is the task title.
	Title string
	// Priority is the task priority (low, medium, high, or empty).
	Priority string
	// DueDate is the task due date (YYYY-MM-DD, or empty).
	DueDate string
	// Tags is the comma-separated tag list.
	Tags string
	// Column is the workflow column (only for updates).
	Column string
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData with default values for a new task.
func DefaultCreateData() TaskData {
	return TaskData{}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	return TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Tags:        strings.Join(t.Tags, ", "),
		Column:      string(t.Column),
		Description: t.Description,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
 priority = {{ printf "%q" .Priority }} # low, medium, high, or empty
 due = {{ printf "%q" .DueDate }} # YYYY-MM-DD, or empty
 tags = {{ printf "%q" .Tags }} # comma-separated, max 10
{{- if .IsUpdate }}
 column = {{ printf "%q" .Column }} # todo, doing, done
{{- end }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

var (
	errInvalidPriority = errors.New("invalid priority")
	errInvalidColumn   = errors.New("invalid column")
)

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string  `toml:"title"`
	Priority    string  `toml:"priority"`
	DueDate     string  `toml:"due"`
	Tags        string  `toml:"tags"`
	Column      *string `toml:"column"`
	Description string
}

// ParseTaskTOML parses the TOML content from the editor. editDueDate is
// the task's pre-existing due date, or empty when creating.
func ParseTaskTOML(content, editDueDate string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var parsed ParsedTask
	if _, err := toml.Decode(frontmatter, &parsed); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	parsed.Description = strings.TrimLeft(body, "\n")
	parsed.Priority = strings.ToLower(strings.TrimSpace(parsed.Priority))
	parsed.DueDate = strings.TrimSpace(parsed.DueDate)
	if parsed.Column != nil {
		normalized := strings.ToLower(strings.TrimSpace(*parsed.Column))
		parsed.Column = &normalized
	}

	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := task.ValidateDescription(parsed.Description); err != nil {
		return nil, err
	}
	if err := task.ValidateDueDate(parsed.DueDate, editDueDate); err != nil {
		return nil, err
	}
	if err := task.ValidateTags(parsed.Tags); err != nil {
		return nil, err
	}
	if parsed.Priority != "" && !task.Priority(parsed.Priority).IsValid() {
		return nil, validation.FormatInvalidValueError(errInvalidPriority, task.Priority(parsed.Priority), task.ValidPriorities())
	}
	if parsed.Column != nil && !task.Column(*parsed.Column).IsValid() {
		return nil, validation.FormatInvalidValueError(errInvalidColumn, task.Column(*parsed.Column), task.ValidColumns())
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "taskboard-task-*.md")
}

// EditTask opens the editor for a task and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing task.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	var data TaskData
	var editDueDate string
	if existing == nil {
		data = DefaultCreateData()
	} else {
		data = DataFromTask(existing)
		editDueDate = existing.DueDate
	}
	return EditTaskWithData(data, editDueDate)
}

// EditTaskWithData opens the editor with pre-populated data and returns
// the parsed result.
func EditTaskWithData(data TaskData, editDueDate string) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited), editDueDate)
}
