package taskjson

import (
	"strings"
	"testing"
)

func splitText(t *testing.T, body string) []Element {
	t.Helper()
	tokens := Tokenize(body)
	return SplitArray(tokens)
}

func elementText(elem Element) string {
	parts := make([]string, len(elem.Tokens))
	for i, tok := range elem.Tokens {
		parts[i] = tok.Value
	}
	return strings.Join(parts, " ")
}

func TestSplitArray(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    int
		objects int
	}{
		{name: "empty", body: "", want: 0, objects: 0},
		{name: "two objects", body: `{"id": 1}, {"id": 2}`, want: 2, objects: 2},
		{name: "nested object", body: `{"id": 1, "meta": {"a": {"b": 2}}}, {"id": 2}`, want: 2, objects: 2},
		{name: "no comma between objects", body: `{"id": 1} {"id": 2}`, want: 2, objects: 2},
		{name: "scalars between objects", body: `1, {"id": 1}, "x", [2, 3]`, want: 4, objects: 1},
		{name: "trailing comma", body: `{"id": 1},`, want: 1, objects: 1},
		{name: "unclosed last object", body: `{"id": 1}, {"id": 2`, want: 2, objects: 2},
		{name: "unbalanced bracket inside object", body: `{"id": 1, "tags": [}, {"id": 2}`, want: 2, objects: 2},
		{name: "stray closing bracket inside object", body: `{"id": 1, "tags": ]}, {"id": 2}`, want: 2, objects: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			elements := splitText(t, tc.body)
			if len(elements) != tc.want {
				t.Fatalf("got %d elements, want %d", len(elements), tc.want)
			}
			objects := 0
			for i, elem := range elements {
				if elem.Index != i {
					t.Errorf("element %d has index %d", i, elem.Index)
				}
				if elem.IsObject() {
					objects++
				}
			}
			if objects != tc.objects {
				t.Fatalf("got %d objects, want %d", objects, tc.objects)
			}
		})
	}
}

func TestSplitArray_BracesInsideStrings(t *testing.T) {
	elements := splitText(t, `{"id": 1, "description": "use } and { freely"}, {"id": 2, "title": "]["}`)

	if len(elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(elements))
	}
	if got := elementText(elements[0]); !strings.Contains(got, "use } and { freely") {
		t.Fatalf("first element lost its description: %s", got)
	}
}
