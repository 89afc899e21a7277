package editor

import "testing"

func TestEditorCommand(t *testing.T) {
	t.Setenv("TASKBOARD_EDITOR", "")
	t.Setenv("EDITOR", "")
	if got := editorCommand(); got != "vi" {
		t.Errorf("editorCommand() = %q, want vi fallback", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := editorCommand(); got != "nano" {
		t.Errorf("editorCommand() = %q, want EDITOR value", got)
	}

	t.Setenv("TASKBOARD_EDITOR", "helix")
	if got := editorCommand(); got != "helix" {
		t.Errorf("editorCommand() = %q, want TASKBOARD_EDITOR to win", got)
	}
}
