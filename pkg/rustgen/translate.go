// Package rustgen translates extracted C macro definitions into Rust
// constant declarations for use with bindings to external libraries.
package rustgen

import (
	"strings"

	"github.com/raymyers/cmacro/pkg/cmacro"
)

// ConstDecl describes one generated Rust constant.
type ConstDecl struct {
	Name     string
	TypeName string
	Expr     string
}

// Action is the outcome of translating one macro. It is either a
// TypedConst or a Skip; no other implementations exist.
type Action interface {
	isAction()
}

// TypedConst generates a constant with an explicit type.
type TypedConst struct {
	Decl ConstDecl
}

// Skip generates nothing for the macro.
type Skip struct{}

func (TypedConst) isAction() {}
func (Skip) isAction()       {}

// Func is a translation policy, mapping one macro definition to an
// emit-or-skip outcome. Callers typically wrap Translate with denylist
// or type-override logic.
type Func func(cmacro.Macro) Action

// GuessType guesses a suitable Rust constant type from the text of a
// macro body: string literals map to &'static str, bodies containing a
// hexadecimal marker to u32, and everything else to i32. Policies that
// need more precision (floating-point literals, for example) should
// assign types explicitly.
func GuessType(body string) string {
	switch {
	case strings.HasPrefix(body, `"`):
		return "&'static str"
	case strings.Contains(body, "0x"):
		return "u32"
	default:
		return "i32"
	}
}

// Translate is the default translation policy. An object-like macro
// with a body becomes a typed constant via GuessType. Function-like
// macros are skipped because a constant cannot capture parameters, and
// macros with no body are skipped because there is no expression to
// assign.
func Translate(def cmacro.Macro) Action {
	if !def.FunctionLike() && def.Body != "" {
		return TypedConst{Decl: ConstDecl{
			Name:     def.Name,
			TypeName: GuessType(def.Body),
			Expr:     def.Body,
		}}
	}
	return Skip{}
}
