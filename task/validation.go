package task

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation errors carry the exact user-facing message the UI displays
// next to a field. They are values, not control flow: nothing here panics.
var (
	// ErrTitleRequired is returned when a title is empty or whitespace-only.
	ErrTitleRequired = errors.New("Title is required")

	// ErrTitleLength is returned when a trimmed title is outside 3-100 characters.
	ErrTitleLength = errors.New("Title must be between 3 and 100 characters")

	// ErrDescriptionTooLong is returned when a description exceeds 500 characters.
	ErrDescriptionTooLong = errors.New("Description must not exceed 500 characters")

	// ErrDueDateInvalid is returned when a due date is not a YYYY-MM-DD date.
	ErrDueDateInvalid = errors.New("Due date must be a valid date")

	// ErrDueDatePast is returned when a new task's due date is before today.
	ErrDueDatePast = errors.New("Due date cannot be in the past")

	// ErrTooManyTags is returned when more than 10 tags are supplied.
	ErrTooManyTags = errors.New("Maximum 10 tags allowed")

	// ErrTagTooLong is returned when a single tag exceeds 30 characters.
	ErrTagTooLong = errors.New("Each tag must be 30 characters or less")

	// ErrDuplicateTags is returned when the same tag appears twice.
	ErrDuplicateTags = errors.New("Duplicate tags are not allowed")
)

// DueDateLayout is the calendar date format used for task due dates.
const DueDateLayout = "2006-01-02"

// ValidateTitle checks a task title: required, 3-100 characters after
// trimming surrounding whitespace.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrTitleRequired
	}
	length := utf8.RuneCountInString(trimmed)
	if length < MinTitleLength || length > MaxTitleLength {
		return ErrTitleLength
	}
	return nil
}

// ValidateDescription checks an optional description against the length cap.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// ValidateDueDate checks an optional YYYY-MM-DD due date. Past dates fail
// for new tasks; when editDueDate carries the task's pre-existing due date
// the past-date check is skipped so edits don't invalidate old tasks.
func ValidateDueDate(dueDate, editDueDate string) error {
	if dueDate == "" {
		return nil
	}
	selected, err := time.ParseInLocation(DueDateLayout, dueDate, time.Local)
	if err != nil {
		return ErrDueDateInvalid
	}
	if editDueDate != "" {
		return nil
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if selected.Before(today) {
		return ErrDueDatePast
	}
	return nil
}

// ValidateTags checks an optional comma-separated tag list: at most 10
// tags, each at most 30 characters after trimming, no exact duplicates.
// Empty input is valid. Tags are not normalized here; ParseTags does that
// once validation passes.
func ValidateTags(tags string) error {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) > MaxTags {
		return ErrTooManyTags
	}
	seen := make(map[string]bool, len(parts))
	for _, tag := range parts {
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return ErrTagTooLong
		}
		if seen[tag] {
			return ErrDuplicateTags
		}
		seen[tag] = true
	}
	return nil
}

// ValidateField validates a single form field by name. editDueDate is the
// pre-existing due date of a task being edited, or empty for new tasks.
// Unknown field names validate clean.
func ValidateField(field, value, editDueDate string) error {
	switch field {
	case "title":
		return ValidateTitle(value)
	case "description":
		return ValidateDescription(value)
	case "dueDate":
		return ValidateDueDate(value, editDueDate)
	case "tags":
		return ValidateTags(value)
	default:
		return nil
	}
}

// FieldErrors maps form field names to their validation messages.
// An empty map means the form is valid and submittable.
type FieldErrors map[string]string

// ValidateForm validates every task form field and aggregates the
// failures keyed by field name.
func ValidateForm(title, description, dueDate, tags, editDueDate string) FieldErrors {
	errs := make(FieldErrors)
	for field, value := range map[string]string{
		"title":       title,
		"description": description,
		"dueDate":     dueDate,
		"tags":        tags,
	} {
		if err := ValidateField(field, value, editDueDate); err != nil {
			errs[field] = err.Error()
		}
	}
	return errs
}

// ParseTags converts a comma-separated tag list into the normalized form
// stored on a Task: trimmed, empties dropped, first occurrence kept.
func ParseTags(tags string) []string {
	if strings.TrimSpace(tags) == "" {
		return nil
	}
	var result []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(tags, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
