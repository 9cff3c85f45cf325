package taskjson

import "strings"

// Shape is the top-level form of a task file.
type Shape uint8

const (
	// ShapeArray is a bare array: [{...}, {...}].
	ShapeArray Shape = iota + 1

	// ShapeObject wraps the array: {"tasks": [...]}.
	ShapeObject
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeObject:
		return "object"
	default:
		return "unknown"
	}
}

const tasksKey = "tasks"

// ValidateStructure classifies whole-file text. Surrounding whitespace is
// ignored. Anything other than an array or an object containing the quoted
// key "tasks" is rejected with a *StructuralError.
func ValidateStructure(text string) (Shape, error) {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return 0, &StructuralError{Reason: "file is empty"}
	case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
		return ShapeArray, nil
	case strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}"):
		if !strings.Contains(text, `"`+tasksKey+`"`) {
			return 0, &StructuralError{Reason: `object has no "tasks" key`}
		}
		return ShapeObject, nil
	default:
		return 0, &StructuralError{Reason: "text is not a JSON array or object"}
	}
}

// arrayBody returns the tokens strictly between the brackets of the task
// array. ok is false when an object-shaped file has no array under "tasks".
func arrayBody(tokens []Token, shape Shape) (body []Token, ok bool) {
	switch shape {
	case ShapeArray:
		return outerArray(tokens)
	case ShapeObject:
		open := tasksArrayStart(tokens)
		if open < 0 {
			return nil, false
		}
		return bracketed(tokens, open)
	default:
		return nil, false
	}
}

// tasksArrayStart finds the '[' that follows a "tasks" key. A key directly
// inside the outer object is preferred over one nested deeper.
func tasksArrayStart(tokens []Token) int {
	fallback := -1
	depth := 0
	for i, tok := range tokens {
		switch tok.Type {
		case TokenLBrace, TokenLBracket:
			depth++
		case TokenRBrace, TokenRBracket:
			depth--
		case TokenString:
			if Unescape(tok.Value) != tasksKey || i+2 >= len(tokens) {
				continue
			}
			if tokens[i+1].Type != TokenColon || tokens[i+2].Type != TokenLBracket {
				continue
			}
			if depth == 1 {
				return i + 2
			}
			if fallback < 0 {
				fallback = i + 2
			}
		}
	}
	return fallback
}

// outerArray returns the tokens between the first '[' and the last ']' of a
// file that is an array as a whole. A stray bracket inside one element
// cannot end the body early this way.
func outerArray(tokens []Token) ([]Token, bool) {
	if len(tokens) == 0 || tokens[0].Type != TokenLBracket {
		return nil, false
	}
	end := len(tokens)
	if tokens[end-1].Type == TokenEOF {
		end--
	}
	if end > 1 && tokens[end-1].Type == TokenRBracket {
		end--
	}
	return tokens[1:end], true
}

// bracketed returns the tokens after tokens[open] up to its matching ']'.
// Only brackets are counted, so an unbalanced brace inside one task does not
// cut the array short. If the array is never closed, everything up to EOF is
// returned.
func bracketed(tokens []Token, open int) ([]Token, bool) {
	if open >= len(tokens) || tokens[open].Type != TokenLBracket {
		return nil, false
	}
	depth := 0
	for i := open; i < len(tokens); i++ {
		switch tokens[i].Type {
		case TokenLBracket:
			depth++
		case TokenRBracket:
			depth--
			if depth == 0 {
				return tokens[open+1 : i], true
			}
		case TokenEOF:
			return tokens[open+1 : i], true
		}
	}
	return tokens[open+1:], true
}
