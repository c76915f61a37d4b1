package convention

import (
	"fmt"
	"text/template"
)

// FuncMap returns template helpers that convert identifiers out of the given
// source convention. There is one helper per built-in target:
//
//	{{ snake .Name }}           userName → user_name
//	{{ screamingSnake .Name }}  userName → USER_NAME
//
// plus "convert" and "follows", which look targets up in the default
// registry by name so custom conventions work too:
//
//	{{ convert "DotCase" .Name }}
//	{{ if follows "PascalCase" .Name }}...{{ end }}
func FuncMap(from *Convention) template.FuncMap {
	return FuncMapFrom(Default(), from)
}

// FuncMapFrom is FuncMap with an explicit registry backing the name-based
// helpers.
func FuncMapFrom(reg *Registry, from *Convention) template.FuncMap {
	return template.FuncMap{
		"flat":           convertFunc(from, FlatCase),
		"camel":          convertFunc(from, CamelCase),
		"pascal":         convertFunc(from, PascalCase),
		"snake":          convertFunc(from, SnakeCase),
		"screamingSnake": convertFunc(from, ScreamingSnakeCase),
		"camelSnake":     convertFunc(from, CamelSnakeCase),
		"pascalSnake":    convertFunc(from, PascalSnakeCase),
		"kebab":          convertFunc(from, KebabCase),
		"screamingKebab": convertFunc(from, ScreamingKebabCase),
		"train":          convertFunc(from, TrainCase),

		"convert": func(target, s string) (string, error) {
			c, ok := reg.Lookup(target)
			if !ok {
				return "", fmt.Errorf("unknown convention %q", target)
			}
			return from.ConvertTo(c, s)
		},
		"follows": func(name, s string) (bool, error) {
			c, ok := reg.Lookup(name)
			if !ok {
				return false, fmt.Errorf("unknown convention %q", name)
			}
			return c.DoesFollow(s), nil
		},
	}
}

func convertFunc(from, to *Convention) func(string) (string, error) {
	return func(s string) (string, error) {
		return from.ConvertTo(to, s)
	}
}
