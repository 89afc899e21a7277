package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TechieBelle/taskboard/board"
	"github.com/TechieBelle/taskboard/internal/editor"
	"github.com/TechieBelle/taskboard/internal/listflags"
	"github.com/TechieBelle/taskboard/internal/validation"
	"github.com/TechieBelle/taskboard/task"
)

// add
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var (
	addTitle       string
	addDescription string
	addPriority    string
	addDueDate     string
	addTags        string
	addColumn      string
	addEditor      bool
)

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var (
	editTitle       string
	editDescription string
	editPriority    string
	editDueDate     string
	editTags        string
	editEditor      bool
)

// move
var moveCmd = &cobra.Command{
	Use:   "move <id> <column>",
	Short: "Move a task to another column (todo, doing, done)",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var deleteYes bool

// show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, filtered and sorted by due date",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listSearch   string
	listPriority string
	listColumn   string
	listJSON     bool
)

func init() {
	rootCmd.AddCommand(addCmd, editCmd, moveCmd, deleteCmd, showCmd, listCmd)

	// add flags
	addCmd.Flags().StringVar(&addTitle, "title", "", "Task title (3-100 characters)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (max 500 characters)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high)")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags (max 10, 30 chars each)")
	addCmd.Flags().StringVar(&addColumn, "column", "", "Column (todo, doing, done)")
	addCmd.Flags().BoolVarP(&addEditor, "editor", "e", false, "Compose the task in $EDITOR")

	// edit flags
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (low, medium, high)")
	editCmd.Flags().StringVar(&editDueDate, "due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editTags, "tags", "", "New comma-separated tags")
	editCmd.Flags().BoolVarP(&editEditor, "editor", "e", false, "Edit the task in $EDITOR")

	// delete flags
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	// show flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	// list flags
	listflags.AddFilterFlags(listCmd, &listSearch, &listPriority)
	listCmd.Flags().StringVar(&listColumn, "column", "", "Filter by column (todo, doing, done)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	addTaskFlagAliases(addCmd, editCmd)
}

// printFieldErrors reports validation failures the way the board form
// does: one line per field, stable order.
func printFieldErrors(errs task.FieldErrors) error {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("%s: %s\n", field, errs[field])
	}
	return fmt.Errorf("invalid task")
}

var (
	errInvalidPriority = errors.New("invalid priority")
	errInvalidColumn   = errors.New("invalid column")
)

func parsePriority(value string) (task.Priority, error) {
	if value == "" {
		return "", nil
	}
	priority := task.Priority(strings.ToLower(value))
	if !priority.IsValid() {
		return "", validation.FormatInvalidValueError(errInvalidPriority, task.Priority(value), task.ValidPriorities())
	}
	return priority, nil
}

func parseColumn(value string) (task.Column, error) {
	column := task.Column(strings.ToLower(value))
	if !column.IsValid() {
		return "", validation.FormatInvalidValueError(errInvalidColumn, task.Column(value), task.ValidColumns())
	}
	return column, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, cfg, err := requireAuth()
	if err != nil {
		return err
	}

	if addEditor {
		if !editor.IsInteractive() {
			return fmt.Errorf("--editor requires an interactive terminal")
		}
		parsed, err := editor.EditTask(nil)
		if err != nil {
			return err
		}
		addTitle = parsed.Title
		addDescription = parsed.Description
		addPriority = parsed.Priority
		addDueDate = parsed.DueDate
		addTags = parsed.Tags
	}

	if errs := task.ValidateForm(addTitle, addDescription, addDueDate, addTags, ""); len(errs) > 0 {
		return printFieldErrors(errs)
	}

	priority, err := parsePriority(addPriority)
	if err != nil {
		return err
	}

	column := cfg.DefaultColumn()
	if addColumn != "" {
		column, err = parseColumn(addColumn)
		if err != nil {
			return err
		}
	}

	created := store.AddTask(board.TaskData{
		Title:       strings.TrimSpace(addTitle),
		Description: addDescription,
		Priority:    priority,
		DueDate:     addDueDate,
		Tags:        task.ParseTags(addTags),
		Column:      column,
	})

	fmt.Printf("Added task %s: %s\n", highlightTaskID(store, created.ID), created.Title)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, _, err := requireAuth()
	if err != nil {
		return err
	}

	id, err := store.ResolveID(args[0])
	if err != nil {
		return err
	}
	existing, _ := store.Task(id)

	var updates board.TaskUpdate

	if editEditor {
		if !editor.IsInteractive() {
			return fmt.Errorf("--editor requires an interactive terminal")
		}
		parsed, err := editor.EditTask(&existing)
		if err != nil {
			return err
		}
		title := strings.TrimSpace(parsed.Title)
		priority := task.Priority(parsed.Priority)
		tags := task.ParseTags(parsed.Tags)
		updates.Title = &title
		updates.Description = &parsed.Description
		updates.Priority = &priority
		updates.DueDate = &parsed.DueDate
		updates.Tags = &tags
		if parsed.Column != nil {
			column := task.Column(*parsed.Column)
			updates.Column = &column
		}

		store.UpdateTask(id, updates)
		updated, _ := store.Task(id)
		fmt.Printf("Updated task %s: %s\n", highlightTaskID(store, id), updated.Title)
		return nil
	}

	if cmd.Flags().Changed("title") {
		if err := task.ValidateTitle(editTitle); err != nil {
			return err
		}
		title := strings.TrimSpace(editTitle)
		updates.Title = &title
	}
	if cmd.Flags().Changed("description") {
		if err := task.ValidateDescription(editDescription); err != nil {
			return err
		}
		updates.Description = &editDescription
	}
	if cmd.Flags().Changed("priority") {
		priority, err := parsePriority(editPriority)
		if err != nil {
			return err
		}
		updates.Priority = &priority
	}
	if cmd.Flags().Changed("due") {
		if err := task.ValidateDueDate(editDueDate, existing.DueDate); err != nil {
			return err
		}
		updates.DueDate = &editDueDate
	}
	if cmd.Flags().Changed("tags") {
		if err := task.ValidateTags(editTags); err != nil {
			return err
		}
		tags := task.ParseTags(editTags)
		updates.Tags = &tags
	}

	store.UpdateTask(id, updates)
	updated, _ := store.Task(id)
	fmt.Printf("Updated task %s: %s\n", highlightTaskID(store, id), updated.Title)
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	store, _, err := requireAuth()
	if err != nil {
		return err
	}

	id, err := store.ResolveID(args[0])
	if err != nil {
		return err
	}

	column, err := parseColumn(args[1])
	if err != nil {
		return err
	}

	store.MoveTask(id, column)
	moved, _ := store.Task(id)
	fmt.Printf("Moved task %s to %s\n", highlightTaskID(store, id), moved.Column.DisplayName())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, _, err := requireAuth()
	if err != nil {
		return err
	}

	id, err := store.ResolveID(args[0])
	if err != nil {
		return err
	}
	existing, _ := store.Task(id)

	confirmed, err := confirmOrSkip(deleteYes, fmt.Sprintf("Delete task %q?", existing.Title))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cancelled")
		return nil
	}

	store.DeleteTask(id)
	fmt.Printf("Deleted task: %s\n", existing.Title)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := store.ResolveID(args[0])
	if err != nil {
		return err
	}
	t, ok := store.Task(id)
	if !ok {
		return board.ErrTaskNotFound
	}

	if showJSON {
		return encodeJSONToStdout(t)
	}

	printTaskDetail(t, func(id string) string {
		return highlightTaskID(store, id)
	})
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	if listSearch != "" {
		store.SetSearchQuery(listSearch)
	}
	if listPriority != "" {
		filter := task.PriorityFilter(strings.ToLower(listPriority))
		if !filter.IsValid() {
			return fmt.Errorf("invalid priority filter %q (valid: all, low, medium, high)", listPriority)
		}
		store.SetPriorityFilter(filter)
	}

	tasks := store.FilteredTasks()
	if listColumn != "" {
		column, err := parseColumn(listColumn)
		if err != nil {
			return err
		}
		kept := tasks[:0]
		for _, t := range tasks {
			if t.Column == column {
				kept = append(kept, t)
			}
		}
		tasks = kept
	}

	if listJSON {
		return encodeJSONToStdout(tasks)
	}

	printTaskTable(tasks, board.NewIDIndex(store.Tasks()).PrefixLengths())
	return nil
}
