package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/TechieBelle/taskboard/board"
	"github.com/TechieBelle/taskboard/internal/listflags"
	"github.com/TechieBelle/taskboard/internal/ui"
	"github.com/TechieBelle/taskboard/task"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the task board",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

var (
	boardSearch   string
	boardPriority string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent board activity, newest first",
	Args:  cobra.NoArgs,
	RunE:  runActivity,
}

var (
	activityLimit int
	activityJSON  bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all tasks and activity",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var resetYes bool

func init() {
	rootCmd.AddCommand(boardCmd, activityCmd, resetCmd)

	listflags.AddFilterFlags(boardCmd, &boardSearch, &boardPriority)

	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 0, "Show at most this many entries")
	activityCmd.Flags().BoolVar(&activityJSON, "json", false, "Output as JSON")

	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runBoard(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	if boardSearch != "" {
		store.SetSearchQuery(boardSearch)
	}
	if boardPriority != "" {
		filter := task.PriorityFilter(boardPriority)
		if !filter.IsValid() {
			return fmt.Errorf("invalid priority filter %q (valid: all, low, medium, high)", boardPriority)
		}
		store.SetPriorityFilter(filter)
	}

	tasks := store.FilteredTasks()
	prefixLengths := board.NewIDIndex(store.Tasks()).PrefixLengths()

	columns := make([]ui.BoardColumn, 0, len(task.ValidColumns()))
	for _, column := range task.ValidColumns() {
		view := ui.BoardColumn{Title: column.DisplayName()}
		for _, t := range tasks {
			if t.Column != column {
				continue
			}
			view.Cards = append(view.Cards, ui.BoardCard{
				ID:       ui.HighlightID(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
				Title:    t.Title,
				Priority: string(t.Priority),
				DueDate:  t.DueDate,
				Tags:     t.Tags,
			})
		}
		columns = append(columns, view)
	}

	fmt.Println(ui.RenderBoard(terminalWidth(), columns))
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func runActivity(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	entries := store.ActivityLog()
	if activityLimit > 0 && len(entries) > activityLimit {
		entries = entries[:activityLimit]
	}

	if activityJSON {
		return encodeJSONToStdout(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}

	now := time.Now()
	builder := ui.NewTableBuilder([]string{"WHEN", "ACTION", "TASK", "DETAILS"}, len(entries))
	for _, entry := range entries {
		builder.AddRow([]string{
			formatActivityTime(entry.Timestamp, now),
			string(entry.Action),
			ui.TruncateTableCell(entry.TaskTitle),
			ui.TruncateTableCell(entry.Details),
		})
	}
	fmt.Print(builder.String())
	return nil
}

func formatActivityTime(timestamp string, now time.Time) string {
	then, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return "-"
	}
	return ui.FormatTimeAgo(then, now)
}

func runReset(cmd *cobra.Command, args []string) error {
	store, _, err := requireAuth()
	if err != nil {
		return err
	}

	confirmed, err := confirmOrSkip(resetYes, "Clear all tasks and activity?")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cancelled")
		return nil
	}

	store.ResetBoard()
	fmt.Println("Board reset")
	return nil
}
