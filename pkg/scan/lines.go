package scan

import "strings"

// LineReader produces logical lines from C source text. A physical line
// ending in a backslash is joined with the following line, so a
// multi-line #define reads back as one line. Leading whitespace is
// skipped at the start of each logical line.
//
// The sequence is finite and non-restartable; it is consumed exactly
// once per extraction.
type LineReader struct {
	input *Scanner
}

// NewLineReader creates a LineReader over src.
func NewLineReader(src string) *LineReader {
	return &LineReader{input: NewScanner(src)}
}

// Next returns the next logical line. The second result is false once
// the input is exhausted. A final line with no trailing newline is
// still produced.
func (r *LineReader) Next() (string, bool) {
	if r.input.AtEnd() {
		return "", false
	}
	r.input.SkipWhitespace()

	var line strings.Builder
	for !r.input.AtEnd() {
		ch := r.input.Peek(0)
		if ch == '\n' {
			r.input.Next()
			break
		} else if ch == '\\' && r.input.Peek(1) == '\n' {
			// Line continuation: drop both bytes and keep scanning.
			r.input.Next()
			r.input.Next()
		} else {
			r.input.Next()
			line.WriteByte(ch)
		}
	}
	return line.String(), true
}
