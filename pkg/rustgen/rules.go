package rustgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raymyers/cmacro/pkg/cmacro"
)

// Rules is a declarative translation policy. Macros named in Skip are
// never translated; macros named in Types are translated with the
// given type instead of the guessed one.
//
//	skip:
//	  - SQLITE_EXTERN
//	  - SQLITE_TRANSIENT
//	types:
//	  SQLITE_VERSION_NUMBER: u32
//	  M_PI: f64
type Rules struct {
	Skip  []string          `yaml:"skip"`
	Types map[string]string `yaml:"types"`
}

// ParseRules parses a rules file from YAML data.
func ParseRules(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return &r, nil
}

// LoadRules reads and parses a rules file.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseRules(data)
}

// Func returns the translation policy described by the rules. Names in
// the skip list are skipped, names with a type override emit a
// constant of that type (when the macro has a body to use as the
// expression), and everything else falls through to Translate.
func (r *Rules) Func() Func {
	skip := make(map[string]bool, len(r.Skip))
	for _, name := range r.Skip {
		skip[name] = true
	}
	return func(def cmacro.Macro) Action {
		if skip[def.Name] {
			return Skip{}
		}
		if typeName, ok := r.Types[def.Name]; ok && def.Body != "" {
			return TypedConst{Decl: ConstDecl{
				Name:     def.Name,
				TypeName: typeName,
				Expr:     def.Body,
			}}
		}
		return Translate(def)
	}
}
