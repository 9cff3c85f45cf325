package ui

import (
	"os"

	"github.com/amonks/taskvault/task"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	highStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mediumStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lowStyle       = lipgloss.NewStyle().Faint(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// colorEnabled is a variable so tests can force styling on or off.
var colorEnabled = ansiEnabled

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func render(style lipgloss.Style, value string) string {
	if value == "" || !colorEnabled() {
		return value
	}
	return style.Render(value)
}

// Header styles a table header or section title.
func Header(value string) string {
	return render(headerStyle, value)
}

// Priority renders a priority label.
func Priority(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return render(highStyle, string(p))
	case task.PriorityMedium:
		return render(mediumStyle, string(p))
	default:
		return render(lowStyle, string(p))
	}
}

// Status renders a status label.
func Status(s task.Status) string {
	if s == task.StatusCompleted {
		return render(completedStyle, string(s))
	}
	return string(s)
}

// DueDate renders a due date, highlighting it when overdue.
func DueDate(item task.Task, today task.Date) string {
	if item.DueDate == nil {
		return "-"
	}
	value := item.DueDate.String()
	if item.IsOverdue(today) {
		return render(overdueStyle, value+" (overdue)")
	}
	return value
}

// Warning styles a warning line.
func Warning(value string) string {
	return render(warningStyle, value)
}
