package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	internalstrings "github.com/amonks/taskvault/internal/strings"
	"github.com/amonks/taskvault/internal/validation"
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidPriority is returned when an unknown priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidStatus is returned when an unknown status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date (expected YYYY-MM-DD)")

	// ErrInvalidID is returned when a task ID is not positive.
	ErrInvalidID = errors.New("task ID must be positive")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if length := utf8.RuneCountInString(title); length > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, length, MaxTitleLength)
	}
	return nil
}

// ParsePriority parses user input such as "high" or " Medium ".
func ParsePriority(value string) (Priority, error) {
	priority := Priority(internalstrings.NormalizeUpperTrimSpace(value))
	if !priority.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidPriority, Priority(value), ValidPriorities())
	}
	return priority, nil
}

// ParseStatus parses user input such as "completed".
func ParseStatus(value string) (Status, error) {
	status := Status(internalstrings.NormalizeUpperTrimSpace(value))
	if !status.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatus, Status(value), ValidStatuses())
	}
	return status, nil
}

// ValidateTask checks a task built by a caller before it is stored.
// Tasks rebuilt from files are not validated; the codec's defaults apply there.
func ValidateTask(t *Task) error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidID, t.ID)
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	return nil
}
