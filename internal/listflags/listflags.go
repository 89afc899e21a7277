// Package listflags registers the filter flags shared by the commands
// that render the task list.
package listflags

import "github.com/spf13/cobra"

// AddSearchFlag adds the shared --search flag.
func AddSearchFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "search", "", "Filter by title substring")
}

// AddPriorityFlag adds the shared --priority flag.
func AddPriorityFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "priority", "p", "", "Filter by priority (all, low, medium, high)")
}

// AddFilterFlags adds both filter flags.
func AddFilterFlags(cmd *cobra.Command, search, priority *string) {
	AddSearchFlag(cmd, search)
	AddPriorityFlag(cmd, priority)
}
