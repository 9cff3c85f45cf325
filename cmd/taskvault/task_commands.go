package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/amonks/taskvault/internal/editor"
	"github.com/amonks/taskvault/task"
	"github.com/amonks/taskvault/vault"
	"github.com/spf13/cobra"
)

// add
var addCmd = &cobra.Command{
	Use:   "add [title...]",
	Short: "Add a task",
	Long: `Add a task.

The title is the remaining arguments joined by spaces. With no title and an
interactive terminal, $EDITOR opens on a TOML template instead. Use --edit
to force the editor.`,
	RunE: runAdd,
}

var (
	addDescription string
	addPriority    string
	addDue         string
	addEdit        bool
)

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit a task.

With no update flags and an interactive terminal, $EDITOR opens on the task.
Otherwise only the flagged fields change. Use --edit to force the editor,
or --no-edit to skip it.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editDescription string
	editPriority    string
	editDue         string
	editStatus      string
	editEdit        bool
	editNoEdit      bool
)

// done
var doneCmd = &cobra.Command{
	Use:     "done <id>...",
	Aliases: []string{"complete"},
	Short:   "Mark tasks as completed",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDone,
}

// reopen
var reopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Mark completed tasks as pending again",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReopen,
}

// rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>...",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove tasks",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(addCmd, editCmd, doneCmd, reopenCmd, rmCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(task.PriorityLow), "Priority (LOW, MEDIUM, HIGH)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR")

	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (LOW, MEDIUM, HIGH)")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD, empty to clear)")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status (PENDING, COMPLETED)")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no flags)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")

	addTaskFlagAliases(addCmd, editCmd)
}

func parseDueFlag(value string) (*task.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	date, err := task.ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(addDescription, os.Stdin)
		if err != nil {
			return err
		}
		addDescription = desc
	}

	title := strings.Join(args, " ")
	useEditor := addEdit || (title == "" && editor.IsInteractive())

	var opts vault.AddOptions
	if useEditor {
		data := editor.DefaultCreateData()
		data.Title = title
		data.Description = addDescription
		data.Priority = addPriority
		data.Due = addDue

		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts = parsed.ToAddOptions()
	} else {
		if title == "" {
			return fmt.Errorf("title is required (use --edit to open editor)")
		}
		due, err := parseDueFlag(addDue)
		if err != nil {
			return err
		}
		opts = vault.AddOptions{
			Description: addDescription,
			Priority:    task.Priority(addPriority),
			DueDate:     due,
		}
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}
	created, err := store.Add(title, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", created.ID, created.Title)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ids, err := parseTaskIDs(args)
	if err != nil {
		return err
	}
	id := ids[0]

	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(editDescription, os.Stdin)
		if err != nil {
			return err
		}
		editDescription = desc
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, "title", "description", "priority", "due", "status")
	useEditor := shouldUseEditEditor(hasFlags, editEdit, editNoEdit, editor.IsInteractive())

	var opts vault.UpdateOptions
	if useEditor {
		existing, err := store.Get(id)
		if err != nil {
			return err
		}

		data := editor.DataFromTask(existing)
		if cmd.Flags().Changed("title") {
			data.Title = editTitle
		}
		if cmd.Flags().Changed("description") {
			data.Description = editDescription
		}
		if cmd.Flags().Changed("priority") {
			data.Priority = editPriority
		}
		if cmd.Flags().Changed("due") {
			data.Due = editDue
		}
		if cmd.Flags().Changed("status") {
			data.Status = editStatus
		}

		parsed, err := editor.EditTaskWithData(data)
		if err != nil {
			return err
		}
		opts = parsed.ToUpdateOptions()
	} else {
		if !hasFlags {
			return fmt.Errorf("at least one update flag is required (use --edit to open editor)")
		}
		opts, err = updateOptionsFromFlags(cmd)
		if err != nil {
			return err
		}
	}

	updated, err := store.Update(id, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s\n", updated.ID, updated.Title)
	return nil
}

func updateOptionsFromFlags(cmd *cobra.Command) (vault.UpdateOptions, error) {
	var opts vault.UpdateOptions
	if cmd.Flags().Changed("title") {
		opts.Title = &editTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &editDescription
	}
	if cmd.Flags().Changed("priority") {
		priority := task.Priority(editPriority)
		opts.Priority = &priority
	}
	if cmd.Flags().Changed("status") {
		status := task.Status(editStatus)
		opts.Status = &status
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDueFlag(editDue)
		if err != nil {
			return vault.UpdateOptions{}, err
		}
		opts.DueDate = due
		opts.ClearDueDate = due == nil
	}
	return opts, nil
}

func shouldUseEditEditor(hasUpdateFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag {
		return false
	}
	if hasUpdateFlags {
		return false
	}
	return interactive
}

func runDone(cmd *cobra.Command, args []string) error {
	return runForEachID(cmd, args, "Completed", func(store *vault.Store, id int) (*task.Task, error) {
		return store.Complete(id)
	})
}

func runReopen(cmd *cobra.Command, args []string) error {
	return runForEachID(cmd, args, "Reopened", func(store *vault.Store, id int) (*task.Task, error) {
		return store.Reopen(id)
	})
}

func runRemove(cmd *cobra.Command, args []string) error {
	return runForEachID(cmd, args, "Removed", func(store *vault.Store, id int) (*task.Task, error) {
		return store.Remove(id)
	})
}

// runForEachID applies fn to every ID argument in order, stopping at the
// first failure.
func runForEachID(cmd *cobra.Command, args []string, verb string, fn func(*vault.Store, int) (*task.Task, error)) error {
	ids, err := parseTaskIDs(args)
	if err != nil {
		return err
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	for _, id := range ids {
		item, err := fn(store, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s task %d: %s\n", verb, item.ID, item.Title)
	}
	return nil
}
