package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestParseTaskIDs(t *testing.T) {
	got, err := parseTaskIDs([]string{"3", "#7", " 12 "})
	if err != nil {
		t.Fatalf("parse ids: %v", err)
	}
	want := []int{3, 7, 12}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParseTaskIDsRejectsInvalid(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-2", "", "1.5"} {
		if _, err := parseTaskIDs([]string{"1", arg}); err == nil {
			t.Fatalf("expected error for %q", arg)
		} else if !strings.Contains(err.Error(), "invalid task id") {
			t.Fatalf("unexpected error for %q: %v", arg, err)
		}
	}
}

func TestResolveDescriptionFromStdin(t *testing.T) {
	got, err := resolveDescriptionFromStdin("-", strings.NewReader("line one\r\nline two\n\n"))
	if err != nil {
		t.Fatalf("resolve description: %v", err)
	}
	if got != "line one\nline two" {
		t.Fatalf("expected normalized description, got %q", got)
	}
}

func TestResolveDescriptionFromStdinPassesThroughValues(t *testing.T) {
	got, err := resolveDescriptionFromStdin("literal", strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("resolve description: %v", err)
	}
	if got != "literal" {
		t.Fatalf("expected literal description, got %q", got)
	}
}

func TestHasChangedFlags(t *testing.T) {
	var title, due string
	cmd := &cobra.Command{Use: "example"}
	cmd.Flags().StringVar(&title, "title", "", "")
	cmd.Flags().StringVar(&due, "due", "", "")

	if hasChangedFlags(cmd, "title", "due") {
		t.Fatal("expected no changed flags")
	}
	if err := cmd.Flags().Set("due", ""); err != nil {
		t.Fatalf("set due: %v", err)
	}
	if !hasChangedFlags(cmd, "title", "due") {
		t.Fatal("expected due to count as changed even when empty")
	}
}

func TestShouldUseEditEditor(t *testing.T) {
	cases := []struct {
		name        string
		hasFlags    bool
		edit        bool
		noEdit      bool
		interactive bool
		want        bool
	}{
		{name: "interactive without flags", interactive: true, want: true},
		{name: "not interactive", want: false},
		{name: "flags skip editor", hasFlags: true, interactive: true, want: false},
		{name: "edit forces editor", hasFlags: true, edit: true, want: true},
		{name: "no-edit wins over interactive", noEdit: true, interactive: true, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := shouldUseEditEditor(tc.hasFlags, tc.edit, tc.noEdit, tc.interactive)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseDueFlag(t *testing.T) {
	due, err := parseDueFlag(" 2025-03-04 ")
	if err != nil {
		t.Fatalf("parse due: %v", err)
	}
	if due == nil || due.String() != "2025-03-04" {
		t.Fatalf("expected 2025-03-04, got %v", due)
	}

	due, err = parseDueFlag("")
	if err != nil || due != nil {
		t.Fatalf("expected empty due to clear, got %v, %v", due, err)
	}

	if _, err := parseDueFlag("03/04/2025"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
