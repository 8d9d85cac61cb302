package cmacro

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raymyers/cmacro/pkg/scan"
)

// Extract parses C header source and returns every #define macro
// definition in source order. Lines that are not #define directives
// (other directives, comments, ordinary code) are skipped. A line that
// does start a #define but then fails to parse aborts the whole
// extraction with a *ParseError: a malformed directive means the input
// deviates from the supported grammar, and partial results would be
// misleading.
func Extract(src string) ([]Macro, error) {
	var macros []Macro
	lines := scan.NewLineReader(src)
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		in := scan.NewScanner(line)
		if !in.ConsumeByte('#') {
			// Not a preprocessor line.
			continue
		}
		in.SkipWhitespace()
		if !in.Consume("define") || !scan.IsSpace(in.Peek(0)) {
			// Some other directive, or an identifier like "definex".
			continue
		}
		in.SkipWhitespace()

		m, err := parseMacro(in)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		macros = append(macros, m)
	}
	return macros, nil
}

func isIdentByte(ch byte) bool {
	return ch >= '0' && ch <= '9' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= 'a' && ch <= 'z' ||
		ch == '_'
}

func parseIdent(in *scan.Scanner) string {
	return in.ConsumeWhile(isIdentByte)
}

// parseMacro parses the name, optional argument list and optional body
// from the text following "#define ".
func parseMacro(in *scan.Scanner) (Macro, error) {
	name := parseIdent(in)
	if name == "" {
		return Macro{}, fmt.Errorf("could not parse macro name from %q", in.Rest())
	}

	var args []string
	if in.Peek(0) == '(' {
		parsed, err := parseArgList(in)
		if err != nil {
			return Macro{}, err
		}
		args = parsed
	}

	body := strings.TrimSpace(in.Rest())
	return Macro{Name: name, Args: args, Body: body}, nil
}

// parseArgList parses a parenthesized, comma-separated identifier list.
// Whitespace around identifiers, commas and parentheses is discarded.
// An empty list "()" is legal.
func parseArgList(in *scan.Scanner) ([]string, error) {
	args := []string{}
	in.ConsumeByte('(')
	for {
		switch ch := in.Peek(0); {
		case ch == ',':
			in.Next()
		case ch == ')':
			in.Next()
			return args, nil
		case ch == 0:
			return nil, errors.New("unterminated macro argument list")
		case scan.IsSpace(ch):
			in.Next()
		case isIdentByte(ch):
			args = append(args, parseIdent(in))
		default:
			return nil, fmt.Errorf("unexpected character %q in macro argument list", ch)
		}
	}
}
