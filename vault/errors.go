package vault

import (
	"errors"

	"github.com/amonks/taskvault/task"
)

var (
	// ErrTaskNotFound is returned when no task has the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = task.ErrEmptyTitle

	// ErrTitleTooLong is returned when a task title exceeds task.MaxTitleLength.
	ErrTitleTooLong = task.ErrTitleTooLong

	// ErrInvalidPriority is returned when an unknown priority is provided.
	ErrInvalidPriority = task.ErrInvalidPriority

	// ErrInvalidStatus is returned when an unknown status is provided.
	ErrInvalidStatus = task.ErrInvalidStatus

	// ErrInvalidDate is returned when a due date cannot be parsed.
	ErrInvalidDate = task.ErrInvalidDate

	// ErrAlreadyCompleted is returned when completing a completed task.
	ErrAlreadyCompleted = errors.New("task is already completed")

	// ErrNotCompleted is returned when reopening a task that is still pending.
	ErrNotCompleted = errors.New("task is not completed")

	// ErrNothingToExport is returned when exporting an empty task list.
	ErrNothingToExport = errors.New("no tasks to export")
)
