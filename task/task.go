package task

import "time"

// Task represents a single to-do item.
type Task struct {
	// ID is a positive identifier. Uniqueness is the owning store's concern.
	ID int

	// Title is the short summary of the task.
	Title string

	// Description provides additional context about the task.
	Description string

	// Priority is the importance level.
	Priority Priority

	// DueDate is when the task is due (nil when there is no due date).
	DueDate *Date

	// Status is the current state of the task.
	Status Status

	// CreatedAt is when the task was created.
	CreatedAt time.Time

	// CompletedAt is when the task was completed (nil when not completed).
	CompletedAt *time.Time
}

// New returns a pending task created at now.
func New(id int, title, description string, priority Priority, dueDate *Date, now time.Time) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Status:      StatusPending,
		CreatedAt:   now,
	}
}

// SetStatus changes the status and keeps CompletedAt consistent with it.
// Completing an already completed task keeps its original completion time.
func (t *Task) SetStatus(status Status, now time.Time) {
	t.Status = status
	switch status {
	case StatusCompleted:
		if t.CompletedAt == nil {
			completedAt := now
			t.CompletedAt = &completedAt
		}
	case StatusPending:
		t.CompletedAt = nil
	}
}

// IsOverdue reports whether a pending task's due date is before today.
func (t Task) IsOverdue(today Date) bool {
	return t.Status == StatusPending && t.DueDate != nil && t.DueDate.Before(today)
}

// IsDueToday reports whether the task is due today.
func (t Task) IsDueToday(today Date) bool {
	return t.DueDate != nil && *t.DueDate == today
}

// CompletionConsistent reports whether CompletedAt agrees with Status.
func (t Task) CompletionConsistent() bool {
	return (t.Status == StatusCompleted) == (t.CompletedAt != nil)
}
