// Package scan provides the low-level text scanning primitives behind
// macro extraction: a byte cursor over a string and a reader that joins
// backslash-continued lines.
package scan

import "strings"

// Scanner is a position-tracking view over a string supporting
// lookahead, conditional consumption, and predicate-driven scanning.
// All operations are total; scanning past the end of the input yields
// the zero byte rather than an error.
type Scanner struct {
	input string
	pos   int
}

// NewScanner creates a Scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// AtEnd reports whether the entire input has been consumed.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.input)
}

// Peek returns the byte at the given offset from the current position,
// or 0 if that position is past the end of the input.
func (s *Scanner) Peek(offset int) byte {
	if s.pos+offset >= len(s.input) {
		return 0
	}
	return s.input[s.pos+offset]
}

// Next returns the byte at the current position and advances past it.
func (s *Scanner) Next() byte {
	ch := s.Peek(0)
	if s.pos < len(s.input) {
		s.pos++
	}
	return ch
}

// Consume advances past text and returns true if the remaining input
// starts with text exactly. Otherwise the position is unchanged.
func (s *Scanner) Consume(text string) bool {
	if strings.HasPrefix(s.Rest(), text) {
		s.pos += len(text)
		return true
	}
	return false
}

// ConsumeByte consumes a leading run of the required byte and reports
// whether at least one was consumed.
func (s *Scanner) ConsumeByte(required byte) bool {
	return s.ConsumeWhile(func(ch byte) bool { return ch == required }) != ""
}

// ConsumeWhile advances past every leading byte satisfying test and
// returns the consumed substring, which may be empty.
func (s *Scanner) ConsumeWhile(test func(byte) bool) string {
	start := s.pos
	for !s.AtEnd() && test(s.Peek(0)) {
		s.Next()
	}
	return s.input[start:s.pos]
}

// SkipWhitespace consumes any leading whitespace, including newlines.
func (s *Scanner) SkipWhitespace() {
	s.ConsumeWhile(IsSpace)
}

// Rest returns everything from the current position to the end of the
// input without consuming it.
func (s *Scanner) Rest() string {
	if s.pos >= len(s.input) {
		return ""
	}
	return s.input[s.pos:]
}

// IsSpace reports whether ch is an ASCII whitespace byte.
func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
