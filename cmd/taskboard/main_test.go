package main

import "testing"

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "taskboard" {
		t.Fatalf("expected root command name taskboard, got %q", rootCmd.Use)
	}
}

func TestAllCommandsRegistered(t *testing.T) {
	want := []string{
		"login", "logout",
		"add", "edit", "move", "delete", "show", "list",
		"board", "activity", "reset",
	}
	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}
