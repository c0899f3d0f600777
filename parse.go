package arith

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// expression := term (('+' | '-') term)*
// term       := factor (('*' | '/') factor)*
// factor     := '(' expression ')' | number
// number     := '-'? digit* ('.' digit*)?

// parser evaluates an expression as it parses it. A parser belongs to a single
// call to Evaluate.
type parser struct {
	// src is the expression with whitespace removed and the leading zero, if
	// any, inserted.
	src string
	// pos is the cursor, a byte offset into src. It never moves backward.
	pos int
	// shift is the length of the text inserted before the input, used to map
	// positions back to the caller's text.
	shift int
	// depth is the number of currently open parentheses.
	depth int
	ctx   evalctx
}

// Evaluate computes the value of an arithmetic expression. Spaces anywhere in
// expr are ignored, including between digits. An expression beginning with
// '-' is evaluated as though it began with "0-", so "-5+2" is -3.
//
// If the expression is invalid or its value is not finite, the result is 0
// and an *Error describing the first problem found.
func Evaluate(expr string, opts ...Option) (float64, error) {
	if err := Validate(expr); err != nil {
		return 0, err
	}
	p := parser{src: stripspace(expr), ctx: newctx(opts)}
	if strings.HasPrefix(p.src, "-") {
		p.src = "0" + p.src
		p.shift = 1
	}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, p.error(TrailingInput, p.pos, p.src[p.pos:])
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &Error{Kind: NonFiniteResult}
	}
	return v, nil
}

// Eval reads src to EOF and evaluates the text as an expression. Errors from
// reading are returned unchanged.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		b.WriteRune(r)
	}
	return Evaluate(b.String(), opts...)
}

func (p *parser) expression() (float64, error) {
	l, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.pos < len(p.src) {
		op := p.src[p.pos]
		if op != '+' && op != '-' {
			break
		}
		p.pos++
		r, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			l += r
		} else {
			l -= r
		}
	}
	return l, nil
}

func (p *parser) term() (float64, error) {
	l, err := p.factor()
	if err != nil {
		return 0, err
	}
	for p.pos < len(p.src) {
		op := p.src[p.pos]
		if op != '*' && op != '/' {
			break
		}
		at := p.pos
		p.pos++
		r, err := p.factor()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			l *= r
			continue
		}
		// Matches -0 as well.
		if r == 0 {
			return 0, p.error(DivisionByZero, at, "/")
		}
		l /= r
	}
	return l, nil
}

func (p *parser) factor() (float64, error) {
	if p.pos < len(p.src) && p.src[p.pos] == '(' {
		if p.depth >= p.ctx.maxdepth {
			return 0, p.error(NestingTooDeep, p.pos, "(")
		}
		p.depth++
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return 0, p.error(MissingParenthesis, p.pos, "")
		}
		p.pos++
		p.depth--
		return v, nil
	}
	start := p.pos
	text := p.scannum()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Literals too large for a float64 become infinities, which the final
		// finiteness check rejects unless a later division brings them back.
		if !errors.Is(err, strconv.ErrRange) {
			return 0, p.error(InvalidNumber, start, text)
		}
	}
	return v, nil
}

// error creates an error at a cursor position.
func (p *parser) error(kind Kind, pos int, text string) *Error {
	col := pos - p.shift + 1
	if col < 1 {
		col = 1
	}
	return &Error{Kind: kind, Col: col, Text: text}
}
