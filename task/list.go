package task

import (
	"fmt"
	"slices"
	"strings"

	internalstrings "github.com/amonks/taskvault/internal/strings"
	"github.com/amonks/taskvault/internal/validation"
)

// Filter selects a subset of tasks for display.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
	FilterToday     Filter = "today"
)

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterPending, FilterCompleted, FilterOverdue, FilterToday}
}

// ParseFilter parses a filter name. The empty string means FilterAll.
func ParseFilter(value string) (Filter, error) {
	filter := Filter(internalstrings.NormalizeLowerTrimSpace(value))
	if filter == "" {
		return FilterAll, nil
	}
	if !slices.Contains(ValidFilters(), filter) {
		return "", fmt.Errorf("invalid filter %q: must be %s", value, validation.FormatValidValues(ValidFilters()))
	}
	return filter, nil
}

// SortBy orders tasks for display.
type SortBy string

const (
	SortNone     SortBy = "none"
	SortPriority SortBy = "priority"
	SortDue      SortBy = "due"
	SortTitle    SortBy = "title"
	SortID       SortBy = "id"
)

// ValidSorts returns all valid sort values.
func ValidSorts() []SortBy {
	return []SortBy{SortNone, SortPriority, SortDue, SortTitle, SortID}
}

// ParseSort parses a sort name. The empty string means SortNone.
func ParseSort(value string) (SortBy, error) {
	sortBy := SortBy(internalstrings.NormalizeLowerTrimSpace(value))
	if sortBy == "" {
		return SortNone, nil
	}
	if !slices.Contains(ValidSorts(), sortBy) {
		return "", fmt.Errorf("invalid sort %q: must be %s", value, validation.FormatValidValues(ValidSorts()))
	}
	return sortBy, nil
}

// Apply returns the tasks matching filter in the given order.
// The input slice is left untouched.
func Apply(tasks []Task, filter Filter, sortBy SortBy, today Date) []Task {
	result := FilterTasks(tasks, filter, today)
	SortTasks(result, sortBy)
	return result
}

// FilterTasks returns a new slice with the tasks matching filter.
func FilterTasks(tasks []Task, filter Filter, today Date) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if matchesFilter(t, filter, today) {
			result = append(result, t)
		}
	}
	return result
}

func matchesFilter(t Task, filter Filter, today Date) bool {
	switch filter {
	case FilterPending:
		return t.Status == StatusPending
	case FilterCompleted:
		return t.Status == StatusCompleted
	case FilterOverdue:
		return t.IsOverdue(today)
	case FilterToday:
		return t.IsDueToday(today)
	default:
		return true
	}
}

// SortTasks orders tasks in place. Sorting is stable so ties keep file order.
func SortTasks(tasks []Task, sortBy SortBy) {
	switch sortBy {
	case SortPriority:
		slices.SortStableFunc(tasks, func(a, b Task) int {
			return b.Priority.Rank() - a.Priority.Rank()
		})
	case SortDue:
		slices.SortStableFunc(tasks, func(a, b Task) int {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return 0
			case a.DueDate == nil:
				return 1
			case b.DueDate == nil:
				return -1
			default:
				return a.DueDate.Compare(*b.DueDate)
			}
		})
	case SortTitle:
		slices.SortStableFunc(tasks, func(a, b Task) int {
			return strings.Compare(a.Title, b.Title)
		})
	case SortID:
		slices.SortStableFunc(tasks, func(a, b Task) int {
			return a.ID - b.ID
		})
	}
}

// Stats summarizes a task list.
type Stats struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int
}

// Summarize counts tasks by state.
func Summarize(tasks []Task, today Date) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			stats.Pending++
		case StatusCompleted:
			stats.Completed++
		}
		if t.IsOverdue(today) {
			stats.Overdue++
		}
	}
	return stats
}

// NextID returns one more than the highest ID in tasks, or 1 for an empty list.
func NextID(tasks []Task) int {
	next := 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// Find returns the index of the first task with id, or -1.
func Find(tasks []Task, id int) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}
