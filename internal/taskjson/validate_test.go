package taskjson

import (
	"errors"
	"testing"
)

func TestValidateStructure(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    Shape
		wantErr bool
	}{
		{name: "empty array", input: "[]", want: ShapeArray},
		{name: "array with whitespace", input: "\n  [ {} ]  \n", want: ShapeArray},
		{name: "object wrapper", input: `{"tasks": []}`, want: ShapeObject},
		{name: "object without tasks", input: `{"foo": 1}`, wantErr: true},
		{name: "bare tasks word", input: `{tasks: []}`, wantErr: true},
		{name: "not json", input: "not json at all", wantErr: true},
		{name: "empty", input: "   ", wantErr: true},
		{name: "unclosed array", input: `[{"id": 1}`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateStructure(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidStructure) {
					t.Fatalf("ValidateStructure(%q) error = %v, want ErrInvalidStructure", tc.input, err)
				}
				var structErr *StructuralError
				if !errors.As(err, &structErr) || structErr.Reason == "" {
					t.Fatalf("expected *StructuralError with a reason, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateStructure(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ValidateStructure(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestArrayBody(t *testing.T) {
	cases := []struct {
		name  string
		input string
		shape Shape
		want  int
		ok    bool
	}{
		{name: "array", input: `[{"id": 1}, {"id": 2}]`, shape: ShapeArray, want: 2, ok: true},
		{name: "array with stray bracket", input: `[{"id": 1, "x": ]}, {"id": 2}]`, shape: ShapeArray, want: 2, ok: true},
		{name: "object", input: `{"version": 1, "tasks": [{"id": 1}]}`, shape: ShapeObject, want: 1, ok: true},
		{name: "nested tasks key ignored", input: `{"meta": {"tasks": [{}, {}]}, "tasks": [{"id": 1}]}`, shape: ShapeObject, want: 1, ok: true},
		{name: "tasks not an array", input: `{"tasks": 3}`, shape: ShapeObject, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, ok := arrayBody(Tokenize(tc.input), tc.shape)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if got := len(SplitArray(body)); got != tc.want {
				t.Fatalf("got %d elements, want %d", got, tc.want)
			}
		})
	}
}
