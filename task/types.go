// Package task defines the task record persisted by taskvault.
//
// A Task is either constructed fresh with New, or rebuilt from a saved file
// by the taskjson codec. The list helpers (Filter, Sort, Summarize, NextID)
// operate on plain slices and never mutate their input.
package task

import (
	"fmt"
	"time"
)

// Priority represents the importance of a task.
type Priority string

const (
	// PriorityLow is the default priority.
	PriorityLow Priority = "LOW"

	// PriorityMedium is a normal priority.
	PriorityMedium Priority = "MEDIUM"

	// PriorityHigh is the most urgent priority.
	PriorityHigh Priority = "HIGH"
)

// ValidPriorities returns all valid priority values, lowest first.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// Status represents the state of a task.
type Status string

const (
	// StatusPending indicates the task still needs doing.
	StatusPending Status = "PENDING"

	// StatusCompleted indicates the task is finished.
	StatusCompleted Status = "COMPLETED"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// DateLayout is the layout of a calendar date in saved files.
const DateLayout = "2006-01-02"

// TimestampLayout is the layout of a local timestamp in saved files.
const TimestampLayout = "2006-01-02T15:04:05"

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return DateOf(parsed), nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Compare returns -1, 0 or 1 as d is before, equal to, or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case other.Before(d):
		return 1
	default:
		return 0
	}
}

// DatePtr returns a pointer to the provided date.
func DatePtr(d Date) *Date {
	return &d
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500

// PlaceholderTitle replaces an empty title when a task is rebuilt from a file.
const PlaceholderTitle = "Untitled Task"
