package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestTaskFlagAliasesUseSingleFlag(t *testing.T) {
	var description, dueDate string
	cmd := &cobra.Command{Use: "example"}
	addTaskFlagAliases(cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "Example description")
	cmd.Flags().StringVar(&dueDate, "due", "", "Example due date")

	if err := cmd.Flags().Set("desc", "Hello"); err != nil {
		t.Fatalf("set desc alias: %v", err)
	}
	if description != "Hello" {
		t.Fatalf("expected description to be set via alias, got %q", description)
	}
	if !cmd.Flags().Changed("description") {
		t.Fatal("expected description flag to be marked as changed")
	}

	if err := cmd.Flags().Set("due-date", "2027-03-01"); err != nil {
		t.Fatalf("set due-date alias: %v", err)
	}
	if dueDate != "2027-03-01" {
		t.Fatalf("expected due date to be set via alias, got %q", dueDate)
	}

	usage := cmd.Flags().FlagUsages()
	if strings.Contains(usage, "--desc ") {
		t.Fatalf("did not expect alias to appear in usage, got %q", usage)
	}
	if !strings.Contains(usage, "-d, --description") {
		t.Fatalf("expected shorthand to appear inline, got %q", usage)
	}
}
