package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/taskvault/internal/strings"
	"github.com/amonks/taskvault/task"
	"github.com/amonks/taskvault/vault"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID int
	// Title is the task title.
	Title string
	// Priority is LOW, MEDIUM or HIGH.
	Priority string
	// Due is the due date as YYYY-MM-DD, or empty.
	Due string
	// Status is the task status (only for updates).
	Status string
	// Description is the task description.
	Description string
}

// DefaultCreateData returns TaskData with default values for creating a new task.
func DefaultCreateData() TaskData {
	return TaskData{Priority: string(task.PriorityLow)}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	data := TaskData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Description: t.Description,
	}
	if t.DueDate != nil {
		data.Due = t.DueDate.String()
	}
	return data
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
priority = {{ printf "%q" .Priority }} # LOW, MEDIUM, HIGH
due = {{ printf "%q" .Due }} # YYYY-MM-DD, empty for none
{{- if .IsUpdate }}
status = {{ printf "%q" .Status }} # PENDING, COMPLETED
{{- end }}
---
{{ .Description }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
type ParsedTask struct {
	Title       string
	Priority    task.Priority
	Due         *task.Date
	Status      *task.Status
	Description string
}

type rawTask struct {
	Title    string  `toml:"title"`
	Priority string  `toml:"priority"`
	Due      string  `toml:"due"`
	Status   *string `toml:"status"`
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var raw rawTask
	if _, err := toml.Decode(frontmatter, &raw); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	parsed := ParsedTask{
		Title:       internalstrings.NormalizeWhitespace(raw.Title),
		Description: internalstrings.TrimTrailingNewlines(internalstrings.TrimLeadingNewlines(body)),
	}
	if err := task.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}

	priority := raw.Priority
	if strings.TrimSpace(priority) == "" {
		priority = string(task.PriorityLow)
	}
	p, err := task.ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	parsed.Priority = p

	if due := strings.TrimSpace(raw.Due); due != "" {
		date, err := task.ParseDate(due)
		if err != nil {
			return nil, err
		}
		parsed.Due = &date
	}

	if raw.Status != nil {
		status, err := task.ParseStatus(*raw.Status)
		if err != nil {
			return nil, err
		}
		parsed.Status = &status
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "taskvault-*.md")
}

// EditTask opens the editor for a task and returns the parsed result.
// Pass nil to create a new task.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	data := DefaultCreateData()
	if existing != nil {
		data = DataFromTask(existing)
	}
	return EditTaskWithData(data)
}

// EditTaskWithData opens the editor with pre-populated data and returns the parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

// ToAddOptions converts a ParsedTask to vault.AddOptions.
func (p *ParsedTask) ToAddOptions() vault.AddOptions {
	return vault.AddOptions{
		Description: p.Description,
		Priority:    p.Priority,
		DueDate:     p.Due,
	}
}

// ToUpdateOptions converts a ParsedTask to vault.UpdateOptions.
// An empty due date clears it.
func (p *ParsedTask) ToUpdateOptions() vault.UpdateOptions {
	opts := vault.UpdateOptions{
		Title:       &p.Title,
		Description: &p.Description,
		Priority:    &p.Priority,
		Status:      p.Status,
	}
	if p.Due == nil {
		opts.ClearDueDate = true
	} else {
		opts.DueDate = p.Due
	}
	return opts
}
