package taskjson

import "fmt"

// WarningKind classifies a recovered problem.
type WarningKind string

const (
	// WarningDefault means a required field was missing and a default was used.
	WarningDefault WarningKind = "default"

	// WarningInvalid means a field could not be parsed and a fallback was used.
	WarningInvalid WarningKind = "invalid"

	// WarningInconsistent means status and completedAt disagree.
	WarningInconsistent WarningKind = "inconsistent"

	// WarningSkipped means an array item was not an object, or an object-shaped
	// file held no task array.
	WarningSkipped WarningKind = "skipped"

	// WarningDropped means a record could not be built and was left out.
	WarningDropped WarningKind = "dropped"
)

// Warning describes one problem recovered from while loading. Loading never
// fails because of a warning.
type Warning struct {
	// Index is the 0-based array position of the record, or -1 for the file.
	Index int

	// Field is the field name, empty for record- and file-level warnings.
	Field string

	// Value is the offending raw text, if any.
	Value string

	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	where := "file"
	if w.Index >= 0 {
		where = fmt.Sprintf("task #%d", w.Index+1)
	}
	if w.Field != "" {
		where += " " + w.Field
	}
	return fmt.Sprintf("%s: %s", where, w.Message)
}
