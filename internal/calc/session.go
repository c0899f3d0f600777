// Package calc implements the display buffer of a pocket calculator on top of
// package arith.
package calc

import (
	"log/slog"
	"strings"
	"time"

	"github.com/zephyrtronium/arith"
)

// ErrorText is shown on the display after a failed calculation.
const ErrorText = "Error"

// ResetDelay is how long the display should show ErrorText before the owner of
// the session clears it.
const ResetDelay = 1500 * time.Millisecond

// Session is the state of a calculator display. It is not safe for concurrent
// use.
type Session struct {
	display string
	failed  bool
	opts    []arith.Option
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the handler for the session's log output. By default the
// session logs nothing.
func WithLogger(handler slog.Handler) Option {
	return func(s *Session) {
		if handler != nil {
			s.logger = slog.New(handler)
		}
	}
}

// WithMaxDepth limits parenthesis nesting in calculations.
func WithMaxDepth(n int) Option {
	return func(s *Session) {
		s.opts = append(s.opts, arith.MaxDepth(n))
	}
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Display returns the current display text.
func (s *Session) Display() string {
	return s.display
}

// Failed reports whether the display is showing the result of a failed
// calculation.
func (s *Session) Failed() bool {
	return s.failed
}

// Append adds input to the display, subject to the editing rules of a
// calculator keypad:
//
//   - an operator typed right after an operator replaces it;
//   - a second decimal point in the same number is ignored;
//   - +, * and / are ignored on an empty display;
//   - zeros are ignored when the current number is exactly "0".
//
// Typing after a failed calculation starts over from an empty display.
func (s *Session) Append(in string) {
	if in == "" {
		return
	}
	if s.failed {
		s.Clear()
	}
	cur := s.display
	last := ""
	if cur != "" {
		last = cur[len(cur)-1:]
	}
	if isop(in) && isop(last) {
		s.display = cur[:len(cur)-1] + in
		return
	}
	switch in {
	case ".":
		if strings.Contains(lastnum(cur), ".") {
			return
		}
	case "+", "*", "/":
		if cur == "" {
			return
		}
	case "0", "00":
		if lastnum(cur) == "0" {
			return
		}
	}
	s.display += in
}

// Clear empties the display and leaves the error state.
func (s *Session) Clear() {
	s.display = ""
	s.failed = false
}

// Backspace removes the last character of the display. After a failed
// calculation it clears the display instead.
func (s *Session) Backspace() {
	if s.failed || s.display == "" {
		s.Clear()
		return
	}
	s.display = s.display[:len(s.display)-1]
}

// Calculate evaluates the display and replaces it with the formatted result.
// A blank display is left alone. On failure the display shows ErrorText and
// the error is returned; the caller should Clear after ResetDelay.
func (s *Session) Calculate() error {
	if s.failed || strings.TrimSpace(s.display) == "" {
		return nil
	}
	expr := s.display
	v, err := arith.Evaluate(expr, s.opts...)
	if err != nil {
		s.logger.Debug("calculation failed", slog.String("expr", expr), slog.Any("error", err))
		s.display = ErrorText
		s.failed = true
		return err
	}
	s.display = arith.Format(v)
	s.logger.Debug("calculated", slog.String("expr", expr), slog.String("result", s.display))
	return nil
}

// isop reports whether s is a single binary operator.
func isop(s string) bool {
	return len(s) == 1 && strings.Contains(arith.Operators, s)
}

// lastnum returns the text after the last operator in s.
func lastnum(s string) string {
	return s[strings.LastIndexAny(s, arith.Operators)+1:]
}
