package vault

import (
	"fmt"
	"os"
	"strings"

	"github.com/amonks/taskvault/internal/taskjson"
	"github.com/amonks/taskvault/task"
)

// exportExtension is added to export paths that lack it.
const exportExtension = ".json"

// AddOptions configures a new task.
type AddOptions struct {
	// Description provides additional context.
	Description string

	// Priority defaults to task.PriorityLow when empty.
	Priority task.Priority

	// DueDate is optional.
	DueDate *task.Date
}

// Add creates a pending task with the next free ID.
func (s *Store) Add(title string, opts AddOptions) (*task.Task, error) {
	if err := task.ValidateTitle(title); err != nil {
		return nil, err
	}

	priority := opts.Priority
	if priority == "" {
		priority = task.PriorityLow
	}
	priority, err := task.ParsePriority(string(priority))
	if err != nil {
		return nil, err
	}

	var created task.Task
	err = s.modify(func(tasks []task.Task) ([]task.Task, error) {
		created = task.New(task.NextID(tasks), title, opts.Description, priority, opts.DueDate, s.opts.Now())
		return append(tasks, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Priority    *task.Priority
	Status      *task.Status

	// DueDate replaces the due date. ClearDueDate removes it and wins over DueDate.
	DueDate      *task.Date
	ClearDueDate bool
}

// IsZero reports whether opts would change nothing.
func (opts UpdateOptions) IsZero() bool {
	return opts.Title == nil && opts.Description == nil && opts.Priority == nil &&
		opts.Status == nil && opts.DueDate == nil && !opts.ClearDueDate
}

// Update applies opts to the task with id and returns the updated task.
func (s *Store) Update(id int, opts UpdateOptions) (*task.Task, error) {
	if opts.Title != nil {
		if err := task.ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Priority != nil {
		normalized, err := task.ParsePriority(string(*opts.Priority))
		if err != nil {
			return nil, err
		}
		opts.Priority = &normalized
	}
	if opts.Status != nil {
		normalized, err := task.ParseStatus(string(*opts.Status))
		if err != nil {
			return nil, err
		}
		opts.Status = &normalized
	}

	var updated task.Task
	err := s.modify(func(tasks []task.Task) ([]task.Task, error) {
		i := task.Find(tasks, id)
		if i < 0 {
			return nil, notFound(id)
		}
		item := &tasks[i]

		if opts.Title != nil {
			item.Title = *opts.Title
		}
		if opts.Description != nil {
			item.Description = *opts.Description
		}
		if opts.Priority != nil {
			item.Priority = *opts.Priority
		}
		if opts.DueDate != nil {
			due := *opts.DueDate
			item.DueDate = &due
		}
		if opts.ClearDueDate {
			item.DueDate = nil
		}
		if opts.Status != nil && *opts.Status != item.Status {
			item.SetStatus(*opts.Status, s.opts.Now())
		}

		if err := task.ValidateTask(item); err != nil {
			return nil, fmt.Errorf("validate task %d: %w", item.ID, err)
		}
		updated = *item
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Complete marks a pending task as completed.
func (s *Store) Complete(id int) (*task.Task, error) {
	return s.transition(id, task.StatusCompleted, ErrAlreadyCompleted)
}

// Reopen marks a completed task as pending again.
func (s *Store) Reopen(id int) (*task.Task, error) {
	return s.transition(id, task.StatusPending, ErrNotCompleted)
}

func (s *Store) transition(id int, status task.Status, errAlready error) (*task.Task, error) {
	var updated task.Task
	err := s.modify(func(tasks []task.Task) ([]task.Task, error) {
		i := task.Find(tasks, id)
		if i < 0 {
			return nil, notFound(id)
		}
		if tasks[i].Status == status {
			return nil, fmt.Errorf("%w: %d", errAlready, id)
		}
		tasks[i].SetStatus(status, s.opts.Now())
		updated = tasks[i]
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes the task with id and returns it.
func (s *Store) Remove(id int) (*task.Task, error) {
	var removed task.Task
	err := s.modify(func(tasks []task.Task) ([]task.Task, error) {
		i := task.Find(tasks, id)
		if i < 0 {
			return nil, notFound(id)
		}
		removed = tasks[i]
		return append(tasks[:i], tasks[i+1:]...), nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

// List returns all tasks in file order.
func (s *Store) List() ([]task.Task, error) {
	result, err := s.Load()
	if err != nil {
		return nil, err
	}
	return result.Tasks, nil
}

// ListFilter selects and orders tasks for List.
type ListFilter struct {
	Filter task.Filter
	Sort   task.SortBy
}

// Query returns the tasks matching filter, relative to the store's clock.
func (s *Store) Query(filter ListFilter) ([]task.Task, error) {
	tasks, err := s.List()
	if err != nil {
		return nil, err
	}
	return task.Apply(tasks, filter.Filter, filter.Sort, s.today()), nil
}

// Stats summarizes the stored tasks.
func (s *Store) Stats() (task.Stats, error) {
	tasks, err := s.List()
	if err != nil {
		return task.Stats{}, err
	}
	return task.Summarize(tasks, s.today()), nil
}

// Get returns the task with id.
func (s *Store) Get(id int) (*task.Task, error) {
	tasks, err := s.List()
	if err != nil {
		return nil, err
	}
	i := task.Find(tasks, id)
	if i < 0 {
		return nil, notFound(id)
	}
	return &tasks[i], nil
}

// Import replaces the stored tasks with the contents of src. The returned
// result describes the imported file, warnings included.
func (s *Store) Import(src string) (*taskjson.Result, error) {
	if _, err := os.Stat(src); err != nil {
		return nil, fmt.Errorf("import %s: %w", src, err)
	}

	var imported *taskjson.Result
	err := s.withLock(func() error {
		var err error
		imported, err = taskjson.Load(src, s.loadOptions())
		if err != nil {
			return fmt.Errorf("import %s: %w", src, err)
		}
		s.warnings = imported.Warnings
		if err := s.write(imported.Tasks); err != nil {
			return fmt.Errorf("write tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return imported, nil
}

// Export writes the stored tasks to dst and returns the path written.
// ".json" is appended when dst has no such extension.
func (s *Store) Export(dst string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(dst), exportExtension) {
		dst += exportExtension
	}

	tasks, err := s.List()
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "", ErrNothingToExport
	}
	if err := taskjson.Save(tasks, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func notFound(id int) error {
	return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}
