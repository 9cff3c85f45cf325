package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."
const tableColumnGap = 2

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row ...string) {
	builder.rows = append(builder.rows, row)
}

// Len returns the number of rows added so far.
func (builder *TableBuilder) Len() int {
	return len(builder.rows)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as a left-aligned table. Column
// widths ignore ANSI styling. The last column is not padded.
func FormatTable(headers []string, rows [][]string) string {
	header := make([]string, len(headers))
	for i, value := range headers {
		header[i] = Header(normalizeTableCell(value))
	}

	body := make([][]string, len(rows))
	for r, row := range rows {
		body[r] = make([]string, len(row))
		for i, cell := range row {
			body[r][i] = normalizeTableCell(cell)
		}
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, body...) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], displayWidth(cell))
			}
		}
	}

	var builder strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			builder.WriteString(cell)
			if i == len(row)-1 || i >= len(widths)-1 {
				continue
			}
			builder.WriteString(strings.Repeat(" ", widths[i]-displayWidth(cell)+tableColumnGap))
		}
		builder.WriteByte('\n')
	}

	writeRow(header)
	for _, row := range body {
		writeRow(row)
	}

	return builder.String()
}

// TruncateTableCell limits cell width while preserving ANSI styling.
func TruncateTableCell(value string) string {
	value = normalizeTableCell(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}
	return truncate.StringWithTail(value, tableCellMaxWidth, tableCellEllipsis)
}

func displayWidth(value string) int {
	return lipgloss.Width(value)
}

var tableCellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func normalizeTableCell(value string) string {
	return tableCellReplacer.Replace(value)
}
