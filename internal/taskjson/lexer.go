package taskjson

// Lexer tokenizes task file text.
//
// The lexer never stops early: characters it cannot classify become
// TokenError tokens and scanning continues, so a bad byte inside one record
// only affects that record. An unterminated string runs to the end of input.
type Lexer struct {
	input string
	pos   int
	line  int
	col   int
}

// NewLexer creates a lexer for input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// Tokenize returns every token in the input, ending with TokenEOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// Next returns the next token.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	start := l.currentPos()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: start}
	}

	ch := l.peek()
	switch ch {
	case '{':
		l.advance()
		return Token{Type: TokenLBrace, Value: "{", Pos: start}
	case '}':
		l.advance()
		return Token{Type: TokenRBrace, Value: "}", Pos: start}
	case '[':
		l.advance()
		return Token{Type: TokenLBracket, Value: "[", Pos: start}
	case ']':
		l.advance()
		return Token{Type: TokenRBracket, Value: "]", Pos: start}
	case ':':
		l.advance()
		return Token{Type: TokenColon, Value: ":", Pos: start}
	case ',':
		l.advance()
		return Token{Type: TokenComma, Value: ",", Pos: start}
	case '"':
		return l.scanString()
	}

	if ch == '-' || isDigit(ch) {
		return l.scanNumber()
	}

	if isIdentStart(ch) {
		return l.scanIdent()
	}

	l.advance()
	return Token{Type: TokenError, Value: string(ch), Pos: start}
}

// scanString scans a quoted string. The token value keeps escape sequences
// as written; callers unescape once they know the value is wanted.
//
// A quote that is not followed by a delimiter is taken as an unescaped quote
// inside the string when a later quote on the same line is. The token is then
// marked Loose. Otherwise the string ends at its first quote.
func (l *Lexer) scanString() Token {
	start := l.currentPos()
	l.advance() // opening quote

	from := l.pos
	var first *Position
	for l.pos < len(l.input) {
		switch l.peek() {
		case '"':
			if first == nil {
				pos := l.currentPos()
				first = &pos
			}
			if l.closesString(l.pos + 1) {
				return l.finishString(from, start, l.pos != first.Offset)
			}
			l.advance()
		case '\\':
			if first != nil && l.pos+1 < len(l.input) && l.input[l.pos+1] == '\n' {
				return l.rewindString(from, start, *first)
			}
			l.advance()
			if l.pos < len(l.input) {
				l.advance()
			}
		case '\n':
			if first != nil {
				return l.rewindString(from, start, *first)
			}
			l.advance()
		default:
			l.advance()
		}
	}

	if first != nil {
		return l.rewindString(from, start, *first)
	}
	return Token{Type: TokenError, Value: "unterminated string", Pos: start}
}

// closesString reports whether a quote followed by input[i:] can end a string.
func (l *Lexer) closesString(i int) bool {
	for ; i < len(l.input); i++ {
		switch l.input[i] {
		case ' ', '\t', '\r', '\n', '\f':
			continue
		case ',', '}', ']', ':', '"':
			return true
		default:
			return false
		}
	}
	return true
}

// rewindString ends the string at its first quote.
func (l *Lexer) rewindString(from int, start, quote Position) Token {
	l.pos, l.line, l.col = quote.Offset, quote.Line, quote.Column
	return l.finishString(from, start, false)
}

func (l *Lexer) finishString(from int, start Position, loose bool) Token {
	value := l.input[from:l.pos]
	l.advance() // closing quote
	return Token{Type: TokenString, Value: value, Pos: start, Loose: loose}
}

// scanNumber scans an optionally signed number with optional fraction and
// exponent. A lone minus sign is an error token.
func (l *Lexer) scanNumber() Token {
	start := l.currentPos()
	from := l.pos

	if l.peek() == '-' {
		l.advance()
	}
	if l.pos >= len(l.input) || !isDigit(l.peek()) {
		return Token{Type: TokenError, Value: l.input[from:l.pos], Pos: start}
	}
	l.skipDigits()

	if l.peek() == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]) {
		l.advance()
		l.skipDigits()
	}

	if ch := l.peek(); ch == 'e' || ch == 'E' {
		l.advance()
		if ch := l.peek(); ch == '+' || ch == '-' {
			l.advance()
		}
		l.skipDigits()
	}

	return Token{Type: TokenNumber, Value: l.input[from:l.pos], Pos: start}
}

func (l *Lexer) scanIdent() Token {
	start := l.currentPos()
	from := l.pos
	for l.pos < len(l.input) && isIdentContinue(l.peek()) {
		l.advance()
	}
	return Token{Type: TokenIdent, Value: l.input[from:l.pos], Pos: start}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.peek() {
		case ' ', '\t', '\r', '\n', '\f':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) skipDigits() {
	for l.pos < len(l.input) && isDigit(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
