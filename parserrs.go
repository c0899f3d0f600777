package arith

import "strconv"

// Kind classifies an evaluation failure.
type Kind int8

const (
	kindNone Kind = iota
	// InvalidCharacter is a rune outside the expression alphabet.
	InvalidCharacter
	// InvalidNumber is a numeric token that is not a valid float, e.g. "."
	// or "2..5".
	InvalidNumber
	// DivisionByZero is a division whose right operand is exactly zero.
	DivisionByZero
	// MissingParenthesis is an open parenthesis with no close parenthesis
	// where one was expected.
	MissingParenthesis
	// TrailingInput is text left over after a complete expression.
	TrailingInput
	// NonFiniteResult is a result that is NaN or infinite.
	NonFiniteResult
	// NestingTooDeep is a parenthesis nesting deeper than the configured
	// maximum.
	NestingTooDeep
)

var kindnames = [...]string{
	kindNone:           "none",
	InvalidCharacter:   "invalid character",
	InvalidNumber:      "invalid number",
	DivisionByZero:     "division by zero",
	MissingParenthesis: "missing close parenthesis",
	TrailingInput:      "unexpected trailing input",
	NonFiniteResult:    "non-finite result",
	NestingTooDeep:     "parentheses nested too deep",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Error is the error returned for any failed evaluation. It implements
// InputError.
type Error struct {
	// Kind is the class of failure.
	Kind Kind
	// Col is the 1-based position of the failure. For InvalidCharacter it
	// counts runes of the raw input; otherwise it counts bytes of the input
	// with whitespace removed. It is 0 for NonFiniteResult.
	Col int
	// Text is the offending token, if any.
	Text string
}

func (err *Error) Error() string {
	msg := err.Kind.String()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *Error) Pos() int {
	return err.Col
}

// Is reports whether target is an *Error of the same kind, so that the
// sentinel errors work with errors.Is.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidCharacter   error = &Error{Kind: InvalidCharacter}
	ErrInvalidNumber      error = &Error{Kind: InvalidNumber}
	ErrDivisionByZero     error = &Error{Kind: DivisionByZero}
	ErrMissingParenthesis error = &Error{Kind: MissingParenthesis}
	ErrTrailingInput      error = &Error{Kind: TrailingInput}
	ErrNonFiniteResult    error = &Error{Kind: NonFiniteResult}
	ErrNestingTooDeep     error = &Error{Kind: NestingTooDeep}
)

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based position of the error, or 0 if the error does
	// not refer to a particular position.
	Pos() int
}

var _ InputError = (*Error)(nil)
