package convention

import "unicode"

// The built-in conventions, pre-registered in the default registry under the
// names shown. Tools may depend on the literal name strings for lookup.
var (
	// FlatCase writes everything lowercase with no boundary markers at
	// all, e.g. "thisisaflatcasestring". It is registered for
	// completeness, but converting out of it cannot recover word breaks.
	FlatCase = mustRegister(New(
		"FlatCase",
		unicode.ToLower,
		unicode.IsLower,
		func(r rune) string { return string(unicode.ToLower(r)) },
		unicode.ToLower,
		false,
	))

	// CamelCase marks boundaries with a capitalised letter,
	// e.g. "thisIsACamelCaseString".
	CamelCase = mustRegister(ByCase("CamelCase", false))

	// PascalCase is CamelCase with the first letter capitalised too,
	// e.g. "ThisIsAPascalCaseString".
	PascalCase = mustRegister(ByCase("PascalCase", true))

	// SnakeCase separates lowercase words with underscores,
	// e.g. "this_is_a_snake_case_string".
	SnakeCase = mustRegister(ByChar("SnakeCase", '_', false, false, false))

	// ScreamingSnakeCase is SnakeCase with every letter capitalised,
	// e.g. "THIS_IS_A_SCREAMING_SNAKE_CASE_STRING".
	ScreamingSnakeCase = mustRegister(ByChar("ScreamingSnakeCase", '_', true, true, true))

	// CamelSnakeCase capitalises the first letter of every word after the
	// first, on top of underscore separation,
	// e.g. "this_Is_A_Camel_Snake_Case_String".
	CamelSnakeCase = mustRegister(ByChar("CamelSnakeCase", '_', false, true, false))

	// PascalSnakeCase capitalises the first letter of every word, on top
	// of underscore separation, e.g. "This_Is_A_Pascal_Snake_Case_String".
	PascalSnakeCase = mustRegister(ByChar("PascalSnakeCase", '_', true, true, false))

	// KebabCase separates lowercase words with dashes,
	// e.g. "this-is-a-kebab-case-string".
	KebabCase = mustRegister(ByChar("KebabCase", '-', false, false, false))

	// ScreamingKebabCase is KebabCase with every letter capitalised,
	// e.g. "THIS-IS-A-SCREAMING-KEBAB-CASE-STRING".
	ScreamingKebabCase = mustRegister(ByChar("ScreamingKebabCase", '-', true, true, true))

	// TrainCase capitalises the first letter of every word, on top of
	// dash separation, e.g. "This-Is-A-Train-Case-String".
	TrainCase = mustRegister(ByChar("TrainCase", '-', true, true, false))
)

// mustRegister registers a built-in at init time. A collision here is a
// programmer error, not a runtime condition.
func mustRegister(c *Convention) *Convention {
	registered, err := Register(c)
	if err != nil {
		panic(err)
	}
	return registered
}
