package taskjson

// Element is one top-level item of a task array, as a run of tokens.
type Element struct {
	// Index is the element's 0-based position in the array.
	Index int

	// Tokens holds every token of the element, without separating commas.
	Tokens []Token

	// Pos is where the element starts.
	Pos Position
}

// IsObject reports whether the element starts with an opening brace.
func (e Element) IsObject() bool {
	return len(e.Tokens) > 0 && e.Tokens[0].Type == TokenLBrace
}

// SplitArray partitions the tokens of an array body (the tokens strictly
// between the brackets) into one element per top-level item, in input order.
//
// Nesting is tracked on tokens, so braces and brackets inside quoted strings
// never affect the split. An object element counts braces only and ends at
// the brace that closes its opening one, so a stray bracket inside one
// record cannot swallow the records after it. Adjacent objects without a
// comma still split. Other items end at the next comma at nesting depth
// zero. An element left open at the end of input keeps the remaining tokens.
func SplitArray(body []Token) []Element {
	var elements []Element
	var current []Token
	braces := 0 // inside an object element
	depth := 0  // inside any other element

	emit := func() {
		if len(current) == 0 {
			return
		}
		elements = append(elements, Element{
			Index:  len(elements),
			Tokens: current,
			Pos:    current[0].Pos,
		})
		current = nil
		braces = 0
		depth = 0
	}

	for _, tok := range body {
		if tok.Type == TokenEOF {
			break
		}

		if len(current) > 0 && current[0].Type == TokenLBrace {
			current = append(current, tok)
			switch tok.Type {
			case TokenLBrace:
				braces++
			case TokenRBrace:
				braces--
				if braces == 0 {
					emit()
				}
			}
			continue
		}

		if depth == 0 && tok.Type == TokenComma {
			emit()
			continue
		}

		if depth == 0 && tok.Type == TokenLBrace {
			emit()
			current = []Token{tok}
			braces = 1
			continue
		}

		current = append(current, tok)

		switch tok.Type {
		case TokenLBrace, TokenLBracket:
			depth++
		case TokenRBrace, TokenRBracket:
			if depth > 0 {
				depth--
			}
		}
	}
	emit()

	return elements
}
