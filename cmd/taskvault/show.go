package main

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/taskvault/internal/markdown"
	"github.com/amonks/taskvault/internal/ui"
	"github.com/amonks/taskvault/task"
	"github.com/spf13/cobra"
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseTaskIDs(args)
	if err != nil {
		return err
	}

	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, id := range ids {
		item, err := store.Get(id)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		printTaskDetail(out, *item, today(), nowFunc())
	}
	return nil
}

const taskDetailLineWidth = 80
const taskDetailIndent = 2

// printTaskDetail prints detailed information about a task.
func printTaskDetail(out io.Writer, t task.Task, today task.Date, now time.Time) {
	fmt.Fprintf(out, "ID:        %d\n", t.ID)
	fmt.Fprintf(out, "Title:     %s\n", t.Title)
	fmt.Fprintf(out, "Priority:  %s\n", ui.Priority(t.Priority))
	fmt.Fprintf(out, "Status:    %s\n", ui.Status(t.Status))
	fmt.Fprintf(out, "Due:       %s\n", ui.DueDate(t, today))
	fmt.Fprintf(out, "Created:   %s (%s)\n", ui.FormatTimestamp(&t.CreatedAt), ui.FormatTimeAgo(t.CreatedAt, now))

	if t.CompletedAt != nil {
		fmt.Fprintf(out, "Completed: %s\n", ui.FormatTimestamp(t.CompletedAt))
	}
	if took, ok := task.DurationData(t); ok {
		fmt.Fprintf(out, "Took:      %s\n", ui.FormatDurationShort(took))
	}

	if description := markdown.SafeRender(taskDetailLineWidth, taskDetailIndent, []byte(t.Description)); description != nil {
		fmt.Fprintf(out, "\nDescription:\n%s\n", description)
	}
}
