package rustgen

import (
	"fmt"
	"strings"

	"github.com/raymyers/cmacro/pkg/cmacro"
)

// Generate applies fn to each macro definition in order and joins the
// emitted declarations with single newlines. There is no trailing
// newline, and zero emitted declarations yield an empty string. Names,
// types and expressions are taken as-is; validating them as Rust
// tokens is the policy's responsibility.
func Generate(defs []cmacro.Macro, fn Func) string {
	var lines []string
	for _, def := range defs {
		switch act := fn(def).(type) {
		case TypedConst:
			lines = append(lines, fmt.Sprintf("pub const %s: %s = %s;",
				act.Decl.Name, act.Decl.TypeName, act.Decl.Expr))
		case Skip:
		}
	}
	return strings.Join(lines, "\n")
}
