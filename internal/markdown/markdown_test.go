package markdown

import (
	"strings"
	"testing"
)

type panicRenderer struct{}

func (panicRenderer) Render(string) (string, error) {
	panic("boom")
}

func TestSafeRender_RecoversFromRendererPanic(t *testing.T) {
	const renderWidth = 20

	rendererMu.Lock()
	prev, hadPrev := renderers[renderWidth]
	renderers[renderWidth] = panicRenderer{}
	rendererMu.Unlock()

	defer func() {
		rendererMu.Lock()
		if hadPrev {
			renderers[renderWidth] = prev
		} else {
			delete(renderers, renderWidth)
		}
		rendererMu.Unlock()
	}()

	out := SafeRender(renderWidth, 0, []byte("bring photos\n"))
	if string(out) != "bring photos" {
		t.Fatalf("expected fallback to original markdown, got %q", string(out))
	}
}

func TestRender_Blank(t *testing.T) {
	for _, input := range []string{"", "\n\n", "  \r\n "} {
		if out := Render(40, 2, []byte(input)); out != nil {
			t.Fatalf("Render(%q) = %q, want nil", input, out)
		}
	}
}

func TestRender_IndentsEveryLine(t *testing.T) {
	out := string(Render(40, 4, []byte("- eggs\n- milk")))

	if !strings.Contains(out, "eggs") || !strings.Contains(out, "milk") {
		t.Fatalf("missing list items in %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "    ") {
			t.Fatalf("line %q is not indented", line)
		}
	}
}
