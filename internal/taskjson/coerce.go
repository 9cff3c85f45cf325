package taskjson

import (
	"strings"
	"time"

	"github.com/amonks/taskvault/task"
	internalstrings "github.com/amonks/taskvault/internal/strings"
)

// timestampLayouts are tried in order. Seconds may be omitted, and a
// fractional second after the seconds field is always accepted by time.Parse.
var timestampLayouts = []string{
	task.TimestampLayout,
	"2006-01-02T15:04",
}

// coercer turns extracted text into typed field values, recording a warning
// for every substitution it makes.
type coercer struct {
	index    int
	now      func() time.Time
	warnings []Warning
}

func (c *coercer) warn(kind WarningKind, field, value, message string) {
	c.warnings = append(c.warnings, Warning{
		Index:   c.index,
		Field:   field,
		Value:   value,
		Kind:    kind,
		Message: message,
	})
}

func (c *coercer) id(raw int, present bool) int {
	if raw > 0 {
		return raw
	}
	if present {
		c.warn(WarningInvalid, "id", "", "id must be positive, using 1")
	} else {
		c.warn(WarningDefault, "id", "", "missing id, using 1")
	}
	return 1
}

func (c *coercer) title(raw string) string {
	if strings.TrimSpace(raw) == "" {
		c.warn(WarningDefault, "title", raw, "missing title, using "+`"`+task.PlaceholderTitle+`"`)
		return task.PlaceholderTitle
	}
	return raw
}

func (c *coercer) priority(raw string) task.Priority {
	value := internalstrings.NormalizeUpperTrimSpace(raw)
	if value == "" {
		c.warn(WarningDefault, "priority", raw, "missing priority, using "+string(task.PriorityLow))
		return task.PriorityLow
	}
	priority := task.Priority(value)
	if !priority.IsValid() {
		c.warn(WarningInvalid, "priority", raw, "unknown priority, using "+string(task.PriorityLow))
		return task.PriorityLow
	}
	return priority
}

func (c *coercer) status(raw string) task.Status {
	value := internalstrings.NormalizeUpperTrimSpace(raw)
	if value == "" {
		c.warn(WarningDefault, "status", raw, "missing status, using "+string(task.StatusPending))
		return task.StatusPending
	}
	status := task.Status(value)
	if !status.IsValid() {
		c.warn(WarningInvalid, "status", raw, "unknown status, using "+string(task.StatusPending))
		return task.StatusPending
	}
	return status
}

// dueDate returns nil for absent or unparseable input.
func (c *coercer) dueDate(raw string) *task.Date {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	date, err := task.ParseDate(value)
	if err != nil {
		c.warn(WarningInvalid, "dueDate", raw, "invalid date, leaving it unset")
		return nil
	}
	return &date
}

// createdAt falls back to the current time.
func (c *coercer) createdAt(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		c.warn(WarningDefault, "createdAt", raw, "missing creation time, using now")
		return c.now()
	}
	parsed, ok := parseTimestamp(value)
	if !ok {
		c.warn(WarningInvalid, "createdAt", raw, "invalid timestamp, using now")
		return c.now()
	}
	return parsed
}

// completedAt returns nil for absent or unparseable input.
func (c *coercer) completedAt(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	parsed, ok := parseTimestamp(value)
	if !ok {
		c.warn(WarningInvalid, "completedAt", raw, "invalid timestamp, leaving it unset")
		return nil
	}
	return &parsed
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
