package taskjson

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStructure is returned when a file is neither a task array nor
	// an object with a "tasks" key. Errors of this kind are *StructuralError.
	ErrInvalidStructure = errors.New("invalid task file structure")

	// ErrIO is returned when a task file cannot be read or written. The
	// underlying os error is wrapped alongside it.
	ErrIO = errors.New("task file i/o failed")
)

// AcceptedShapes describes the shapes Load accepts, for error messages.
const AcceptedShapes = `expected an array [{...}, {...}] or an object {"tasks": [...]}`

// StructuralError reports why a file's top-level shape was rejected.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s; %s", ErrInvalidStructure, e.Reason, AcceptedShapes)
}

// Is reports whether target is ErrInvalidStructure.
func (e *StructuralError) Is(target error) bool {
	return target == ErrInvalidStructure
}

func ioError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}
