package taskjson

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the shape of a parsed value.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindIdent
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindIdent:
		return "bare word"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a parsed value. Scalars keep their source text in Raw; string
// values are still escaped.
type Value struct {
	Kind    Kind
	Raw     string
	Members []Member
	Items   []*Value
	Pos     Position

	// Loose marks a string that kept an unescaped quote as text.
	Loose bool

	// Skipped lists the stretches of an object that could not be read as
	// members. Parsing resumes after each one.
	Skipped []Skip
}

// Member is one key/value pair of an object, in source order.
type Member struct {
	Key   string
	Value *Value
	Pos   Position
}

// Lookup returns the value of the first member named key.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	for _, member := range v.Members {
		if member.Key == key {
			return member.Value, true
		}
	}
	return nil, false
}

// Skip is a malformed member of an object.
type Skip struct {
	// Key is the member name, or "" when the name itself was unreadable.
	Key string

	// Raw is the skipped source text, approximately.
	Raw string

	Err *SyntaxError
}

// SyntaxError reports malformed text inside a single value.
type SyntaxError struct {
	Message string
	Pos     Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

const maxNestingDepth = 256

// ParseValue parses exactly one value from tokens.
//
// The grammar is lenient in the ways hand-edited task files tend to be:
// commas between members and items are optional, trailing commas are
// allowed, and object keys may be bare words. A member that cannot be read
// is recorded in the object's Skipped list and parsing resumes at the next
// comma or closing brace, so only an object that never closes is an error.
func ParseValue(tokens []Token) (*Value, error) {
	p := &parser{tokens: tokens}
	value, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, p.errorf(tok, "unexpected %s after value", tok.Type)
	}
	return value, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) parseValue(depth int) (*Value, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenLBrace:
		return p.parseObject(depth + 1)
	case TokenLBracket:
		return p.parseArray(depth + 1)
	case TokenString:
		p.advance()
		return &Value{Kind: KindString, Raw: tok.Value, Pos: tok.Pos, Loose: tok.Loose}, nil
	case TokenNumber:
		p.advance()
		return &Value{Kind: KindNumber, Raw: tok.Value, Pos: tok.Pos}, nil
	case TokenIdent:
		p.advance()
		return &Value{Kind: KindIdent, Raw: tok.Value, Pos: tok.Pos}, nil
	case TokenEOF:
		return nil, p.errorf(tok, "unexpected end of input")
	case TokenError:
		return nil, p.errorf(tok, "invalid token %q", tok.Value)
	default:
		return nil, p.errorf(tok, "unexpected %s", tok.Type)
	}
}

func (p *parser) parseObject(depth int) (*Value, error) {
	open := p.advance()
	if depth > maxNestingDepth {
		return nil, p.errorf(open, "nesting too deep")
	}

	object := &Value{Kind: KindObject, Pos: open.Pos}
	for {
		p.skipCommas()
		tok := p.peek()
		switch tok.Type {
		case TokenRBrace:
			p.advance()
			return object, nil
		case TokenEOF:
			return nil, p.errorf(open, "unterminated object")
		case TokenString, TokenIdent:
		default:
			object.skip(p, "", p.pos, p.errorf(tok, "expected member name, got %s", tok.Type))
			continue
		}

		key := tok.Value
		if tok.Type == TokenString {
			key = Unescape(key)
		}
		from := p.pos
		p.advance()

		if colon := p.peek(); colon.Type != TokenColon {
			object.skip(p, key, from, p.errorf(colon, "expected ':' after %q, got %s", key, colon.Type))
			continue
		}
		p.advance()

		value, err := p.parseValue(depth)
		if err != nil {
			object.skip(p, key, from, err)
			continue
		}
		if next := p.peek(); !p.endsMember(next) {
			object.skip(p, key, from, p.errorf(next, "unexpected %s after value of %q", next.Type, key))
			continue
		}
		object.Members = append(object.Members, Member{Key: key, Value: value, Pos: tok.Pos})
	}
}

// skip records a malformed member that starts at token index from, and moves
// the parser to the comma or closing brace that ends it.
func (v *Value) skip(p *parser, key string, from int, err error) {
	p.pos = from
	p.resync()

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		syntaxErr = &SyntaxError{Message: err.Error(), Pos: p.tokens[from].Pos}
	}
	raw := p.tokens[from:p.pos]
	if key != "" && len(raw) > 0 {
		raw = raw[1:]
		if len(raw) > 0 && raw[0].Type == TokenColon {
			raw = raw[1:]
		}
	}
	if n := len(raw); n > 0 && raw[n-1].Type == TokenComma {
		raw = raw[:n-1]
	}
	v.Skipped = append(v.Skipped, Skip{
		Key: key,
		Raw: joinTokens(raw),
		Err: syntaxErr,
	})
}

// resync advances past one malformed member. It stops before a closing brace
// at the member's own level, before the next "key": pair at that level, and
// after a comma outside any nested value. Brackets only guard commas; a stray
// bracket never hides a closing brace or a following member.
func (p *parser) resync() {
	start := p.pos
	braces, brackets := 0, 0
	for {
		tok := p.peek()
		switch tok.Type {
		case TokenEOF:
			return
		case TokenRBrace:
			if braces == 0 {
				return
			}
			braces--
		case TokenLBrace:
			braces++
		case TokenLBracket:
			brackets++
		case TokenRBracket:
			if brackets > 0 {
				brackets--
			}
		case TokenComma:
			if braces == 0 && brackets == 0 && p.pos > start {
				p.advance()
				return
			}
		case TokenString, TokenIdent:
			if braces == 0 && p.pos > start && p.peekAt(1).Type == TokenColon {
				return
			}
		}
		p.advance()
	}
}

// endsMember reports whether tok can follow a complete member.
func (p *parser) endsMember(tok Token) bool {
	switch tok.Type {
	case TokenComma, TokenRBrace, TokenEOF:
		return true
	case TokenString, TokenIdent:
		return p.peekAt(1).Type == TokenColon
	default:
		return false
	}
}

func joinTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type == TokenString {
			b.WriteString(`"` + tok.Value + `"`)
			continue
		}
		b.WriteString(tok.Value)
	}
	return b.String()
}

func (p *parser) parseArray(depth int) (*Value, error) {
	open := p.advance()
	if depth > maxNestingDepth {
		return nil, p.errorf(open, "nesting too deep")
	}

	array := &Value{Kind: KindArray, Pos: open.Pos}
	for {
		p.skipCommas()
		switch tok := p.peek(); tok.Type {
		case TokenRBracket:
			p.advance()
			return array, nil
		case TokenEOF:
			return nil, p.errorf(open, "unterminated array")
		}

		item, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		array.Items = append(array.Items, item)
	}
}

func (p *parser) skipCommas() {
	for p.peek().Type == TokenComma {
		p.advance()
	}
}

func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos]
}

func (p *parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return p.eof()
	}
	return p.tokens[p.pos+offset]
}

func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) eof() Token {
	if len(p.tokens) == 0 {
		return Token{Type: TokenEOF}
	}
	last := p.tokens[len(p.tokens)-1]
	if last.Type == TokenEOF {
		return last
	}
	return Token{Type: TokenEOF, Pos: last.Pos}
}

func (p *parser) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Pos: tok.Pos}
}
