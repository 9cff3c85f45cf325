package editor

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name   string
		visual string
		editor string
		want   []string
	}{
		{"fallback", "", "", []string{"vi"}},
		{"editor", "", "nano", []string{"nano"}},
		{"visual wins", "code --wait", "nano", []string{"code", "--wait"}},
		{"blank visual", "  ", "ed", []string{"ed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.editor)
			if got := Command(); !slices.Equal(got, tt.want) {
				t.Fatalf("Command() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEditTaskWithData_UsesEditorOutput(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	content := "#!/bin/sh\nprintf 'title = \"From editor\"\\npriority = \"medium\"\\n---\\nbody\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	parsed, err := EditTaskWithData(DefaultCreateData())
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if parsed.Title != "From editor" || parsed.Priority != "MEDIUM" || parsed.Description != "body" {
		t.Fatalf("parsed = %+v", parsed)
	}
}

func TestEdit_ReportsExitStatus(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	if err := Edit(filepath.Join(t.TempDir(), "x.md")); err == nil {
		t.Fatalf("expected error from failing editor")
	}
}
