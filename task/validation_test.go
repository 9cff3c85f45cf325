package task

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid short", "Buy milk", nil},
		{"valid long", strings.Repeat("a", MaxTitleLength), nil},
		{"valid long unicode", strings.Repeat("a", MaxTitleLength-1) + "é", nil},
		{"empty", "", ErrEmptyTitle},
		{"whitespace", " \t ", ErrEmptyTitle},
		{"too long", strings.Repeat("a", MaxTitleLength+1), ErrTitleTooLong},
		{"too long unicode", strings.Repeat("a", MaxTitleLength) + "é", ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTitle(%q) unexpected error: %v", tt.title, err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"HIGH", PriorityHigh, false},
		{"medium", PriorityMedium, false},
		{" Low ", PriorityLow, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Fatalf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.input, err)
				}
				if !strings.Contains(err.Error(), "LOW, MEDIUM, HIGH") {
					t.Fatalf("error should list valid priorities: %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParsePriority(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	if got, err := ParseStatus("completed"); err != nil || got != StatusCompleted {
		t.Fatalf("ParseStatus(completed) = %q, %v", got, err)
	}
	if _, err := ParseStatus("done"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("ParseStatus(done) error = %v, want ErrInvalidStatus", err)
	}
}

func TestValidateTask(t *testing.T) {
	valid := Task{ID: 1, Title: "t", Priority: PriorityLow, Status: StatusPending}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{"valid", func(*Task) {}, nil},
		{"zero id", func(t *Task) { t.ID = 0 }, ErrInvalidID},
		{"empty title", func(t *Task) { t.Title = "" }, ErrEmptyTitle},
		{"bad priority", func(t *Task) { t.Priority = "high" }, ErrInvalidPriority},
		{"bad status", func(t *Task) { t.Status = "" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			err := ValidateTask(&item)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateTask() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
