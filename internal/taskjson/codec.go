// Package taskjson reads and writes task files.
//
// Files are written as a pretty-printed JSON array with a fixed field order.
// Reading is deliberately forgiving: the file may also be an object with a
// "tasks" key, any field may be missing or malformed, and a record that
// cannot be built at all is dropped while the rest still load. Everything
// recovered from is reported as a Warning on the Result.
//
// Only the top-level shape can fail a load (ErrInvalidStructure), besides
// I/O errors (ErrIO).
//
// Nothing here locks the file. Concurrent Save and Load calls on one path
// may interleave; callers that need exclusion must provide it.
package taskjson

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/taskvault/task"
	"github.com/charmbracelet/log"
)

// DefaultPath is the conventional task file name, relative to the working
// directory. Callers pass it explicitly; nothing here reads it implicitly.
const DefaultPath = "tasks.json"

// Options configures loading.
type Options struct {
	// Now supplies the current time for createdAt defaults. Defaults to time.Now.
	Now func() time.Time

	// Completion decides how inconsistent completion data is handled.
	Completion CompletionPolicy

	// Logger, if set, receives every warning at warn level.
	Logger *log.Logger
}

// Result is the outcome of a successful load.
type Result struct {
	// Tasks holds the loaded tasks in file order. It is never nil.
	Tasks []task.Task

	// Warnings lists everything that was recovered from, in file order.
	Warnings []Warning

	// Shape is the top-level shape of the file, or 0 if the file was missing.
	Shape Shape
}

// Clean reports whether the load needed no recovery at all.
func (r *Result) Clean() bool {
	return len(r.Warnings) == 0
}

// Dropped returns the number of array items that did not become tasks.
func (r *Result) Dropped() int {
	count := 0
	for _, w := range r.Warnings {
		if w.Kind == WarningDropped || (w.Kind == WarningSkipped && w.Index >= 0) {
			count++
		}
	}
	return count
}

// Save writes tasks to path in one write. The previous contents are not
// preserved if the write fails partway.
func Save(tasks []task.Task, path string) error {
	if err := os.WriteFile(path, Marshal(tasks), 0o644); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

// Load reads tasks from path. A missing file yields an empty result.
func Load(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Result{Tasks: []task.Task{}}, nil
	}
	if err != nil {
		return nil, ioError("read", path, err)
	}
	return Unmarshal(data, opts)
}

var utf8BOM = []byte("\xef\xbb\xbf")

// Unmarshal decodes task file text.
func Unmarshal(data []byte, opts Options) (*Result, error) {
	text := strings.TrimSpace(string(bytes.TrimPrefix(data, utf8BOM)))

	shape, err := ValidateStructure(text)
	if err != nil {
		return nil, err
	}

	result := &Result{Tasks: []task.Task{}, Shape: shape}
	record := func(warnings ...Warning) {
		for _, w := range warnings {
			if opts.Logger != nil {
				opts.Logger.Warn(w.Message, "task", w.Index+1, "field", w.Field, "value", w.Value)
			}
			result.Warnings = append(result.Warnings, w)
		}
	}

	body, ok := arrayBody(Tokenize(text), shape)
	if !ok {
		record(Warning{Index: -1, Field: tasksKey, Kind: WarningSkipped, Message: `"tasks" does not hold an array, no tasks loaded`})
		return result, nil
	}

	for _, elem := range SplitArray(body) {
		if !elem.IsObject() {
			record(Warning{
				Index:   elem.Index,
				Value:   elem.Tokens[0].Value,
				Kind:    WarningSkipped,
				Message: "array item at " + elem.Pos.String() + " is not an object, skipped",
			})
			continue
		}

		t, warnings, err := BuildRecord(elem, opts)
		if err != nil {
			record(Warning{
				Index:   elem.Index,
				Kind:    WarningDropped,
				Message: "task dropped: " + err.Error(),
			})
			continue
		}
		record(warnings...)
		result.Tasks = append(result.Tasks, *t)
	}

	return result, nil
}

// Marshal encodes tasks as a JSON array with two-space indentation, fields
// in a fixed order, absent optional values as "", and a trailing newline.
func Marshal(tasks []task.Task) []byte {
	var b bytes.Buffer
	b.WriteString("[\n")
	for i, t := range tasks {
		b.WriteString("  {\n")
		writeIntField(&b, fieldID, t.ID)
		writeStringField(&b, fieldTitle, t.Title, true)
		writeStringField(&b, fieldDescription, t.Description, true)
		writeStringField(&b, fieldPriority, string(priorityOrDefault(t.Priority)), true)
		writeStringField(&b, fieldDueDate, formatDate(t.DueDate), true)
		writeStringField(&b, fieldStatus, string(statusOrDefault(t.Status)), true)
		writeStringField(&b, fieldCreatedAt, formatTimestamp(&t.CreatedAt), true)
		writeStringField(&b, fieldCompletedAt, formatTimestamp(t.CompletedAt), false)
		b.WriteString("  }")
		if i < len(tasks)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("]\n")
	return b.Bytes()
}

func writeIntField(b *bytes.Buffer, key string, value int) {
	b.WriteString(`    "` + key + `": `)
	b.WriteString(strconv.Itoa(value))
	b.WriteString(",\n")
}

func writeStringField(b *bytes.Buffer, key, value string, more bool) {
	b.WriteString(`    "` + key + `": "`)
	b.WriteString(Escape(value))
	b.WriteByte('"')
	if more {
		b.WriteByte(',')
	}
	b.WriteByte('\n')
}

func priorityOrDefault(p task.Priority) task.Priority {
	if p.IsValid() {
		return p
	}
	return task.PriorityLow
}

func statusOrDefault(s task.Status) task.Status {
	if s.IsValid() {
		return s
	}
	return task.StatusPending
}

func formatDate(d *task.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

// formatTimestamp writes the wall-clock time; the location is not recorded.
func formatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(task.TimestampLayout)
}
