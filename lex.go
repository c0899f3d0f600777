package arith

import (
	"strings"
	"unicode"
)

// Operators contains the binary operators, in order of the byte each is
// written with.
const Operators = "+-*/"

// Symbols contains every non-digit, non-space rune an expression may use.
const Symbols = Operators + ".()"

// Validate checks that expr contains only digits, spaces, and Symbols. Other
// whitespace such as tabs and newlines is not allowed. The error, if any, is
// an *Error of kind InvalidCharacter at the first offending rune.
func Validate(expr string) error {
	col := 0
	for _, r := range expr {
		col++
		switch {
		case isdigit(r), r == ' ':
		case strings.ContainsRune(Symbols, r):
		default:
			return &Error{Kind: InvalidCharacter, Col: col, Text: string(r)}
		}
	}
	return nil
}

// stripspace removes all whitespace from s.
func stripspace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// scannum advances p past a number literal starting at the cursor and returns
// its text: an optional '-' followed by any run of digits and dots. The text
// may be empty or otherwise malformed; the caller decides validity.
func (p *parser) scannum() string {
	start := p.pos
	if p.pos < len(p.src) && p.src[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c != '.' && !isdigit(rune(c)) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}
