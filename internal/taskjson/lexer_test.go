package taskjson

import (
	"reflect"
	"testing"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{
			name:  "empty",
			input: "",
			want:  []TokenType{TokenEOF},
		},
		{
			name:  "object",
			input: `{"id": 1, "done": true}`,
			want: []TokenType{
				TokenLBrace, TokenString, TokenColon, TokenNumber, TokenComma,
				TokenString, TokenColon, TokenIdent, TokenRBrace, TokenEOF,
			},
		},
		{
			name:  "braces inside string",
			input: `["{ not } an [object]"]`,
			want:  []TokenType{TokenLBracket, TokenString, TokenRBracket, TokenEOF},
		},
		{
			name:  "escaped quote does not end string",
			input: `"a \" b"`,
			want:  []TokenType{TokenString, TokenEOF},
		},
		{
			name:  "unknown character continues",
			input: `{ # }`,
			want:  []TokenType{TokenLBrace, TokenError, TokenRBrace, TokenEOF},
		},
		{
			name:  "unterminated string",
			input: `{"title": "oops}`,
			want:  []TokenType{TokenLBrace, TokenString, TokenColon, TokenError, TokenEOF},
		},
		{
			name:  "lone minus",
			input: `- 1`,
			want:  []TokenType{TokenError, TokenNumber, TokenEOF},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenTypes(Tokenize(tc.input))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens := Tokenize(`{"title": "say \"hi\"", "n": -12.5e3}`)

	if got := tokens[3].Value; got != `say \"hi\"` {
		t.Errorf("string token value = %q, want raw escaped text", got)
	}
	if got := tokens[7].Value; got != "-12.5e3" {
		t.Errorf("number token value = %q, want %q", got, "-12.5e3")
	}
}

func TestTokenizeStrayQuotes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		loose bool
	}{
		{name: "plain", input: `"abc", 1`, want: "abc"},
		{name: "stray quote", input: `"a 5" screen", 1`, want: `a 5" screen`, loose: true},
		{name: "quoted word", input: `"say "hi" now"}`, want: `say "hi" now`, loose: true},
		{name: "adjacent strings", input: `"a" "b": 1`, want: "a"},
		{name: "no later close on the line", input: "\"a\" b\n\"c\": 1", want: "a"},
		{name: "close at end of input", input: `"a" b"`, want: `a" b`, loose: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tok := Tokenize(tc.input)[0]
			if tok.Type != TokenString || tok.Value != tc.want || tok.Loose != tc.loose {
				t.Fatalf("first token = %s loose=%v, want STRING(%q) loose=%v", tok, tok.Loose, tc.want, tc.loose)
			}
		})
	}
}

func TestTokenizeStrayQuoteKeepsPositions(t *testing.T) {
	tokens := Tokenize("\"a\" b\n\"c\"")
	if got := tokenTypes(tokens); !reflect.DeepEqual(got, []TokenType{TokenString, TokenIdent, TokenString, TokenEOF}) {
		t.Fatalf("types = %v", got)
	}
	want := Position{Line: 1, Column: 5, Offset: 4}
	if tokens[1].Pos != want {
		t.Fatalf("ident position = %+v, want %+v", tokens[1].Pos, want)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("[\n  {\"id\": 1}\n]")

	brace := tokens[1]
	if brace.Type != TokenLBrace {
		t.Fatalf("expected '{', got %s", brace)
	}
	want := Position{Line: 2, Column: 3, Offset: 4}
	if brace.Pos != want {
		t.Fatalf("position = %+v, want %+v", brace.Pos, want)
	}
}
