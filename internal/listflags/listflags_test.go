package listflags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddFilterFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	var search, priority string
	AddFilterFlags(cmd, &search, &priority)

	if err := cmd.Flags().Set("search", "report"); err != nil {
		t.Fatalf("set search: %v", err)
	}
	if err := cmd.Flags().Set("priority", "high"); err != nil {
		t.Fatalf("set priority: %v", err)
	}

	if search != "report" {
		t.Errorf("search = %q", search)
	}
	if priority != "high" {
		t.Errorf("priority = %q", priority)
	}

	if cmd.Flags().ShorthandLookup("p") == nil {
		t.Error("priority flag has no -p shorthand")
	}
}
