package rustgen

import (
	"strings"
	"testing"

	"github.com/raymyers/cmacro/pkg/cmacro"
)

func TestGenerate(t *testing.T) {
	macros := []cmacro.Macro{
		cmacro.New("CONST_1", "1"),
		cmacro.New("CONST_2", "2"),
	}

	got := Generate(macros, Translate)
	want := "pub const CONST_1: i32 = 1;\npub const CONST_2: i32 = 2;"
	if got != want {
		t.Errorf("Generate = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("Generate output should have no trailing newline")
	}
}

func TestGenerateWithCustomPolicy(t *testing.T) {
	macros := []cmacro.Macro{
		cmacro.New("USED_CONST", "1"),
		cmacro.New("USED_CONST_2", "2"),
		cmacro.New("SKIPPED_CONST", "3"),
	}

	got := Generate(macros, func(def cmacro.Macro) Action {
		if strings.HasPrefix(def.Name, "USED") {
			return Translate(def)
		}
		return Skip{}
	})

	want := "pub const USED_CONST: i32 = 1;\npub const USED_CONST_2: i32 = 2;"
	if got != want {
		t.Errorf("Generate = %q, want %q", got, want)
	}
}

func TestGenerateSkipAll(t *testing.T) {
	macros := []cmacro.Macro{
		cmacro.New("A", "1"),
		cmacro.New("B", "2"),
		cmacro.New("C", "3"),
	}

	got := Generate(macros, func(cmacro.Macro) Action { return Skip{} })
	if got != "" {
		t.Errorf("Generate with skip-all policy = %q, want empty string", got)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	if got := Generate(nil, Translate); got != "" {
		t.Errorf("Generate(nil) = %q, want empty string", got)
	}
}

func TestGenerateOrderPreserved(t *testing.T) {
	macros := []cmacro.Macro{
		cmacro.New("Z", "26"),
		cmacro.New("A", "1"),
		cmacro.New("M", "13"),
	}

	got := Generate(macros, Translate)
	lines := strings.Split(got, "\n")
	wantOrder := []string{"Z", "A", "M"}
	if len(lines) != len(wantOrder) {
		t.Fatalf("expected %d lines, got %d: %q", len(wantOrder), len(lines), got)
	}
	for i, name := range wantOrder {
		if !strings.Contains(lines[i], name) {
			t.Errorf("line %d = %q, want constant %s", i, lines[i], name)
		}
	}
}
