package task

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid short", "Fix", nil},
		{"valid long", strings.Repeat("a", MaxTitleLength), nil},
		{"valid with surrounding space", "  Fix bug  ", nil},
		{"multi-byte at cap", strings.Repeat("é", MaxTitleLength), nil},
		{"multi-byte well under cap", strings.Repeat("é", 60), nil},
		{"empty", "", ErrTitleRequired},
		{"whitespace", "   ", ErrTitleRequired},
		{"too short", "ab", ErrTitleLength},
		{"too short after trim", " ab ", ErrTitleLength},
		{"too long", strings.Repeat("a", MaxTitleLength+1), ErrTitleLength},
		{"multi-byte too short", "éé", ErrTitleLength},
		{"multi-byte too long", strings.Repeat("é", MaxTitleLength+1), ErrTitleLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTitle(%q) unexpected error: %v", tt.title, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription(""); err != nil {
		t.Errorf("empty description should validate, got %v", err)
	}
	if err := ValidateDescription(strings.Repeat("a", MaxDescriptionLength)); err != nil {
		t.Errorf("description at cap should validate, got %v", err)
	}
	if err := ValidateDescription(strings.Repeat("é", MaxDescriptionLength)); err != nil {
		t.Errorf("multi-byte description at cap should validate, got %v", err)
	}
	err := ValidateDescription(strings.Repeat("a", MaxDescriptionLength+1))
	if !errors.Is(err, ErrDescriptionTooLong) {
		t.Errorf("description over cap = %v, want %v", err, ErrDescriptionTooLong)
	}
}

func TestValidateDueDate(t *testing.T) {
	today := time.Now().Format(DueDateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(DueDateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(DueDateLayout)

	tests := []struct {
		name        string
		dueDate     string
		editDueDate string
		wantErr     error
	}{
		{"empty", "", "", nil},
		{"today", today, "", nil},
		{"tomorrow", tomorrow, "", nil},
		{"past", yesterday, "", ErrDueDatePast},
		{"past while editing", yesterday, yesterday, nil},
		{"garbage", "not-a-date", "", ErrDueDateInvalid},
		{"garbage while editing", "not-a-date", yesterday, ErrDueDateInvalid},
		{"wrong layout", "01/02/2026", "", ErrDueDateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDueDate(tt.dueDate, tt.editDueDate)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDueDate(%q, %q) unexpected error: %v", tt.dueDate, tt.editDueDate, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateDueDate(%q, %q) = %v, want %v", tt.dueDate, tt.editDueDate, err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateTags(t *testing.T) {
	longTag := strings.Repeat("x", MaxTagLength+1)

	tests := []struct {
		name    string
		tags    string
		wantErr error
	}{
		{"empty", "", nil},
		{"single", "work", nil},
		{"several", "work, urgent, q3", nil},
		{"at cap", "a,b,c,d,e,f,g,h,i,j", nil},
		{"tag at length cap", strings.Repeat("x", MaxTagLength), nil},
		{"multi-byte tag at length cap", strings.Repeat("é", MaxTagLength), nil},
		{"multi-byte tag under cap", strings.Repeat("é", 20), nil},
		{"multi-byte tag too long", strings.Repeat("é", MaxTagLength+1), ErrTagTooLong},
		{"too many", "a,b,c,d,e,f,g,h,i,j,k", ErrTooManyTags},
		{"tag too long", "ok," + longTag, ErrTagTooLong},
		{"duplicate", "work,urgent,work", ErrDuplicateTags},
		{"duplicate after trim", "work, work", ErrDuplicateTags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTags(tt.tags)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTags(%q) unexpected error: %v", tt.tags, err)
				}
			} else {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateTags(%q) = %v, want %v", tt.tags, err, tt.wantErr)
				}
			}
		})
	}
}

func TestValidateForm(t *testing.T) {
	errs := ValidateForm("Write report", "", "", "", "")
	if len(errs) != 0 {
		t.Errorf("valid form produced errors: %v", errs)
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format(DueDateLayout)
	errs = ValidateForm("ab", strings.Repeat("d", MaxDescriptionLength+1), yesterday, "dup,dup", "")
	want := FieldErrors{
		"title":       ErrTitleLength.Error(),
		"description": ErrDescriptionTooLong.Error(),
		"dueDate":     ErrDueDatePast.Error(),
		"tags":        ErrDuplicateTags.Error(),
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("ValidateForm mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFieldUnknownFieldIsClean(t *testing.T) {
	if err := ValidateField("column", "nonsense", ""); err != nil {
		t.Errorf("unknown field should validate clean, got %v", err)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single", "work", []string{"work"}},
		{"trims and drops empties", " work , , urgent ,", []string{"work", "urgent"}},
		{"keeps first occurrence", "work,urgent,work", []string{"work", "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.tags)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTags(%q) mismatch (-want +got):\n%s", tt.tags, diff)
			}
		})
	}
}
