// Package markdown renders task descriptions for the terminal.
package markdown

import (
	"strings"
	"sync"

	internalstrings "github.com/amonks/taskvault/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text for terminal output, wrapped to width and
// indented by indent spaces. It returns nil for blank input.
func Render(width, indent int, input []byte) []byte {
	value := prepare(input)
	if value == "" {
		return nil
	}
	width, indent = clampLayout(width, indent)

	rendered := value
	if r := markdownRenderer(width - indent); r != nil {
		if formatted, err := r.Render(value); err == nil {
			rendered = formatted
		}
	}
	return finish(rendered, indent)
}

// SafeRender is Render, except a renderer panic falls back to the input text.
func SafeRender(width, indent int, input []byte) (out []byte) {
	defer func() {
		if recover() != nil {
			width, indent = clampLayout(width, indent)
			out = finish(prepare(input), indent)
		}
	}()
	return Render(width, indent, input)
}

func prepare(input []byte) string {
	value := internalstrings.NormalizeNewlines(string(input))
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return value
}

func clampLayout(width, indent int) (int, int) {
	if indent < 0 {
		indent = 0
	}
	if width-indent < 1 {
		width = indent + 1
	}
	return width, indent
}

func finish(rendered string, indent int) []byte {
	rendered = internalstrings.TrimLeadingNewlines(rendered)
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return nil
	}
	return []byte(internalstrings.IndentBlock(rendered, indent))
}

func markdownRenderer(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	style.Document.Margin = uintPtr(0)
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

func uintPtr(v uint) *uint {
	return &v
}
