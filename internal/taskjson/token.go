package taskjson

import "fmt"

// TokenType identifies a lexical token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	TokenLBrace   // {
	TokenRBrace   // }
	TokenLBracket // [
	TokenRBracket // ]
	TokenColon    // :
	TokenComma    // ,

	TokenString // "quoted", Value holds the raw text between the quotes
	TokenNumber // -12, 3.5, 1e3
	TokenIdent  // true, false, null or any bare word
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenColon:
		return ":"
	case TokenComma:
		return ","
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenIdent:
		return "IDENT"
	default:
		return "UNKNOWN"
	}
}

// Position is a location in the source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in bytes
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexical token.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position

	// Loose marks a string that kept an unescaped quote as text.
	Loose bool
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}
