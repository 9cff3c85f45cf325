package taskjson

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/taskvault/task"
)

// Field names, in the order they are written.
const (
	fieldID          = "id"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPriority    = "priority"
	fieldDueDate     = "dueDate"
	fieldStatus      = "status"
	fieldCreatedAt   = "createdAt"
	fieldCompletedAt = "completedAt"
)

// BuildRecord builds one task from an array element.
//
// Field-level problems never fail: each is replaced by its default and
// reported in the returned warnings. A member whose value cannot be read is
// ignored with a warning, and the rest of the object still counts. An error
// means the whole record is unusable (it is not an object, it never closes,
// or its id overflows) and the caller should drop it.
func BuildRecord(elem Element, opts Options) (*task.Task, []Warning, error) {
	object, err := ParseValue(elem.Tokens)
	if err != nil {
		return nil, nil, err
	}
	if object.Kind != KindObject {
		return nil, nil, fmt.Errorf("expected object, got %s", object.Kind)
	}

	rawID, err := ExtractInt(object, fieldID)
	if err != nil {
		return nil, nil, err
	}

	c := &coercer{index: elem.Index, now: opts.now()}
	for _, skipped := range object.Skipped {
		c.warn(WarningInvalid, skipped.Key, skipped.Raw, "malformed value ignored: "+skipped.Err.Message)
	}
	for _, member := range object.Members {
		if member.Value.Loose && isField(member.Key) {
			c.warn(WarningInvalid, member.Key, member.Value.Raw, "unescaped quote kept as text")
		}
	}

	t := &task.Task{
		ID:          c.id(rawID, hasMember(object, fieldID)),
		Title:       c.title(ExtractString(object, fieldTitle)),
		Description: ExtractString(object, fieldDescription),
		Priority:    c.priority(ExtractString(object, fieldPriority)),
		DueDate:     c.dueDate(ExtractString(object, fieldDueDate)),
		Status:      c.status(ExtractString(object, fieldStatus)),
		CreatedAt:   c.createdAt(ExtractString(object, fieldCreatedAt)),
		CompletedAt: c.completedAt(ExtractString(object, fieldCompletedAt)),
	}

	applyCompletionPolicy(t, opts.Completion, c)

	return t, c.warnings, nil
}

func isField(key string) bool {
	switch key {
	case fieldID, fieldTitle, fieldDescription, fieldPriority, fieldDueDate, fieldStatus, fieldCreatedAt, fieldCompletedAt:
		return true
	}
	return false
}

// applyCompletionPolicy reports, and under CompletionNormalize repairs, a
// record whose completedAt disagrees with its status.
func applyCompletionPolicy(t *task.Task, policy CompletionPolicy, c *coercer) {
	if t.CompletionConsistent() {
		return
	}

	if t.Status == task.StatusCompleted {
		c.warn(WarningInconsistent, fieldCompletedAt, "", "completed task has no completion time")
		return
	}

	value := t.CompletedAt.Format(task.TimestampLayout)
	if policy == CompletionNormalize {
		t.CompletedAt = nil
		c.warn(WarningInconsistent, fieldCompletedAt, value, "pending task had a completion time, cleared it")
		return
	}
	c.warn(WarningInconsistent, fieldCompletedAt, value, "pending task has a completion time")
}

// CompletionPolicy decides what loading does with a record whose status and
// completedAt disagree.
type CompletionPolicy uint8

const (
	// CompletionPreserve keeps the record as written.
	CompletionPreserve CompletionPolicy = iota

	// CompletionNormalize clears completedAt on pending tasks. A completed
	// task without completedAt is kept as is, since no time can be recovered.
	CompletionNormalize
)

func (p CompletionPolicy) String() string {
	if p == CompletionNormalize {
		return "normalize"
	}
	return "preserve"
}

// ParseCompletionPolicy parses "preserve" or "normalize". The empty string
// means CompletionPreserve.
func ParseCompletionPolicy(value string) (CompletionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "preserve":
		return CompletionPreserve, nil
	case "normalize":
		return CompletionNormalize, nil
	default:
		return 0, fmt.Errorf("invalid completion policy %q: must be preserve, normalize", value)
	}
}

func (o Options) now() func() time.Time {
	if o.Now != nil {
		return o.Now
	}
	return time.Now
}
