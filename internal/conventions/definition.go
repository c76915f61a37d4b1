// Package conventions loads user-defined naming conventions and tool
// defaults from YAML, and registers the conventions for lookup by name.
package conventions

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/wrenlabs/wren/convention"
	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a custom convention, as written in
// wren.yml or a standalone conventions file:
//
//	conventions:
//	  - name: DotCase
//	    separator: "."
//	  - name: CobolCase
//	    separator: "-"
//	    pascal: true
//	    camel: true
//	    screaming: true
//
// A definition with a separator builds a literal-separator convention; one
// without builds a case-separated convention (camelCase family), where only
// the pascal flag applies.
type Definition struct {
	Name      string `yaml:"name" mapstructure:"name"`
	Separator string `yaml:"separator,omitempty" mapstructure:"separator"`
	Pascal    bool   `yaml:"pascal,omitempty" mapstructure:"pascal"`
	Camel     bool   `yaml:"camel,omitempty" mapstructure:"camel"`
	Screaming bool   `yaml:"screaming,omitempty" mapstructure:"screaming"`
}

// definitionsFile is the top-level structure of a standalone conventions
// file.
type definitionsFile struct {
	Conventions []Definition `yaml:"conventions"`
}

// Parse reads convention definitions from a standalone YAML file.
func Parse(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(file.Conventions) == 0 {
		return nil, fmt.Errorf("%s declares no conventions", path)
	}
	return file.Conventions, nil
}

// Validate checks the definition is buildable before any registration
// happens.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("convention name is required")
	}
	if !convention.PascalCase.DoesFollow(d.Name) {
		return fmt.Errorf("convention name %q must be PascalCase", d.Name)
	}
	if utf8.RuneCountInString(d.Separator) > 1 {
		return fmt.Errorf("separator %q must be a single character", d.Separator)
	}
	if d.Separator == "" && d.Screaming {
		return fmt.Errorf("screaming requires a separator character")
	}
	if d.Separator == "" && d.Camel {
		return fmt.Errorf("camel has no effect without a separator; case-separated styles only honor pascal")
	}
	return nil
}

// Build turns the definition into a Convention, without registering it.
func (d Definition) Build() (*convention.Convention, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("convention %q: %w", d.Name, err)
	}

	if d.Separator == "" {
		return convention.ByCase(d.Name, d.Pascal), nil
	}

	separator, _ := utf8.DecodeRuneInString(d.Separator)
	return convention.ByChar(d.Name, separator, d.Pascal, d.Camel, d.Screaming), nil
}

// RegisterAll builds every definition and registers it in the default
// registry. The first failure stops registration; definitions before it
// stay registered.
func RegisterAll(defs []Definition) error {
	for _, def := range defs {
		built, err := def.Build()
		if err != nil {
			return err
		}
		if _, err := convention.Register(built); err != nil {
			return err
		}
	}
	return nil
}
