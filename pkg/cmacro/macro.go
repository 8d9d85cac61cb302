// Package cmacro extracts #define macro definitions from C header
// source text. It understands the directive's own syntax only: no
// macro expansion, no conditional compilation, no general C parsing.
package cmacro

import "fmt"

// Macro is one #define parsed from a header.
//
// Args is nil for an object-like macro. For a function-like macro it is
// non-nil, possibly empty ("#define F()"), in declaration order. The
// presence of Args is the sole discriminator between the two forms,
// independent of the body.
//
// Body is the trimmed remainder of the logical line after the name and
// argument list. It is raw, unvalidated text; an empty Body means the
// macro expands to nothing.
type Macro struct {
	Name string
	Args []string
	Body string
}

// FunctionLike reports whether the macro was declared with a
// parenthesized argument list.
func (m Macro) FunctionLike() bool {
	return m.Args != nil
}

// New returns an object-like macro.
func New(name, body string) Macro {
	return Macro{Name: name, Body: body}
}

// NewWithArgs returns a function-like macro. A nil args slice is
// normalized to an empty one so the result still reads as
// function-like.
func NewWithArgs(name string, args []string, body string) Macro {
	if args == nil {
		args = []string{}
	}
	return Macro{Name: name, Args: args, Body: body}
}

// ParseError reports a line that was positively identified as a
// #define directive but failed to parse as a macro definition.
type ParseError struct {
	Line string // the full logical line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
