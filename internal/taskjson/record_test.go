package taskjson

import (
	"testing"
	"time"

	"github.com/amonks/taskvault/task"
)

func buildOne(t *testing.T, input string, opts Options) (*task.Task, []Warning) {
	t.Helper()
	elements := SplitArray(Tokenize(input))
	if len(elements) != 1 {
		t.Fatalf("expected one element in %q, got %d", input, len(elements))
	}
	built, warnings, err := BuildRecord(elements[0], opts)
	if err != nil {
		t.Fatalf("BuildRecord(%q): %v", input, err)
	}
	return built, warnings
}

func warningFields(warnings []Warning) []string {
	fields := make([]string, 0, len(warnings))
	for _, w := range warnings {
		fields = append(fields, w.Field)
	}
	return fields
}

func TestBuildRecord_CleanRecord(t *testing.T) {
	built, warnings := buildOne(t, `{"id": 4, "title": "Ship it", "description": "", "priority": "HIGH",
		"dueDate": "2025-07-01", "status": "COMPLETED", "createdAt": "2025-06-01T09:00:00",
		"completedAt": "2025-06-02T10:30:00"}`, testOptions())

	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if built.ID != 4 || built.Title != "Ship it" || built.Priority != task.PriorityHigh || built.Status != task.StatusCompleted {
		t.Fatalf("unexpected task %+v", built)
	}
	if built.DueDate == nil || *built.DueDate != task.NewDate(2025, time.July, 1) {
		t.Fatalf("unexpected due date %v", built.DueDate)
	}
	wantCompleted := time.Date(2025, 6, 2, 10, 30, 0, 0, time.Local)
	if built.CompletedAt == nil || !built.CompletedAt.Equal(wantCompleted) {
		t.Fatalf("unexpected completedAt %v", built.CompletedAt)
	}
}

func TestBuildRecord_TimestampWithoutSeconds(t *testing.T) {
	built, warnings := buildOne(t, `{"id": 1, "title": "x", "priority": "LOW", "status": "PENDING", "createdAt": "2025-06-01T09:15"}`, testOptions())
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	want := time.Date(2025, 6, 1, 9, 15, 0, 0, time.Local)
	if !built.CreatedAt.Equal(want) {
		t.Fatalf("CreatedAt = %v, want %v", built.CreatedAt, want)
	}
}

func TestBuildRecord_BlankTitleUsesPlaceholder(t *testing.T) {
	built, warnings := buildOne(t, `{"id": 2, "title": "   ", "description": "  kept  ", "priority": "LOW", "status": "PENDING", "createdAt": "2025-06-01T09:00:00"}`, testOptions())
	if built.Title != task.PlaceholderTitle {
		t.Fatalf("expected placeholder title, got %q", built.Title)
	}
	if built.Description != "  kept  " {
		t.Fatalf("expected description kept verbatim, got %q", built.Description)
	}
	if fields := warningFields(warnings); len(fields) != 1 || fields[0] != "title" {
		t.Fatalf("expected one title warning, got %v", fields)
	}
}

func TestBuildRecord_WarningOrder(t *testing.T) {
	_, warnings := buildOne(t, `{"dueDate": "soon", "status": "done"}`, testOptions())

	got := warningFields(warnings)
	want := []string{"id", "title", "priority", "dueDate", "status", "createdAt"}
	if len(got) != len(want) {
		t.Fatalf("expected warnings for %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected warnings for %v, got %v", want, got)
		}
	}
	for _, w := range warnings {
		if w.Index != 0 {
			t.Fatalf("expected index 0, got %d", w.Index)
		}
	}
}

func TestBuildRecord_ZeroIDIsInvalid(t *testing.T) {
	built, warnings := buildOne(t, `{"id": 0, "title": "x", "priority": "LOW", "status": "PENDING", "createdAt": "2025-06-01T09:00:00"}`, testOptions())
	if built.ID != 1 {
		t.Fatalf("expected id 1, got %d", built.ID)
	}
	if len(warnings) != 1 || warnings[0].Kind != WarningInvalid {
		t.Fatalf("expected one invalid-id warning, got %v", warnings)
	}
}

func TestBuildRecord_CompletedWithoutTime(t *testing.T) {
	for _, policy := range []CompletionPolicy{CompletionPreserve, CompletionNormalize} {
		opts := testOptions()
		opts.Completion = policy
		built, warnings := buildOne(t, `{"id": 1, "title": "x", "priority": "LOW", "status": "COMPLETED", "createdAt": "2025-06-01T09:00:00"}`, opts)
		if built.Status != task.StatusCompleted || built.CompletedAt != nil {
			t.Fatalf("%s: expected completed task without time, got %+v", policy, built)
		}
		if len(warnings) != 1 || warnings[0].Kind != WarningInconsistent {
			t.Fatalf("%s: expected one inconsistency warning, got %v", policy, warnings)
		}
	}
}

func TestBuildRecord_RejectsBrokenObject(t *testing.T) {
	elements := SplitArray(Tokenize(`{"id": 3, "title": "never closed"`))
	if _, _, err := BuildRecord(elements[0], testOptions()); err == nil {
		t.Fatal("expected error for malformed object")
	}
}

func TestBuildRecord_KeepsFieldsAroundMalformedValues(t *testing.T) {
	cases := []struct {
		name  string
		input string
		field string
	}{
		{
			name:  "unquoted date",
			input: `{"id": 1, "title": "keep me", "priority": "HIGH", "dueDate": 2024-01-15, "status": "PENDING", "createdAt": "2025-06-01T09:00:00"}`,
			field: "dueDate",
		},
		{
			name:  "stray byte",
			input: `{"id": 1, "title": "keep me", "note": @, "priority": "HIGH", "status": "PENDING", "createdAt": "2025-06-01T09:00:00"}`,
			field: "note",
		},
		{
			name:  "unbalanced bracket",
			input: `{"id": 1, "title": "keep me", "tags": [, "priority": "HIGH", "status": "PENDING", "createdAt": "2025-06-01T09:00:00"}`,
			field: "tags",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			built, warnings := buildOne(t, tc.input, testOptions())
			if built.Title != "keep me" || built.Priority != task.PriorityHigh {
				t.Fatalf("lost valid fields: %+v", built)
			}
			if len(warnings) != 1 || warnings[0].Kind != WarningInvalid || warnings[0].Field != tc.field {
				t.Fatalf("expected one invalid warning for %s, got %v", tc.field, warnings)
			}
		})
	}
}

func TestBuildRecord_StrayQuoteInDescription(t *testing.T) {
	built, warnings := buildOne(t, `{"id": 1, "title": "keep me", "description": "the 5" screen", "priority": "HIGH", "status": "PENDING", "createdAt": "2025-06-01T09:00:00"}`, testOptions())

	if built.Title != "keep me" || built.Priority != task.PriorityHigh {
		t.Fatalf("lost valid fields: %+v", built)
	}
	if built.Description != `the 5" screen` {
		t.Fatalf("Description = %q", built.Description)
	}
	if len(warnings) != 1 || warnings[0].Field != "description" {
		t.Fatalf("expected one description warning, got %v", warnings)
	}
}
