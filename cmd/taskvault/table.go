package main

import (
	"strconv"
	"time"

	"github.com/amonks/taskvault/internal/ui"
	"github.com/amonks/taskvault/task"
)

// nowFunc is the clock used for relative times in output.
var nowFunc = time.Now

func formatTaskTable(tasks []task.Task, today task.Date, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRIORITY", "STATUS", "DUE", "AGE", "TITLE"}, len(tasks))

	for _, item := range tasks {
		builder.AddRow(
			strconv.Itoa(item.ID),
			ui.Priority(item.Priority),
			ui.Status(item.Status),
			ui.DueDate(item, today),
			ui.FormatTimeAgo(item.CreatedAt, now),
			ui.TruncateTableCell(item.Title),
		)
	}

	return builder.String()
}
