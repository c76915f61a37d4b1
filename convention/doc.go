// Package convention models identifier naming conventions and converts
// identifiers between them.
//
// A Convention bundles the rules of one naming style: how the first
// character is cased, what marks a word boundary, how a boundary is written
// out, and how characters inside a word are cased. Both operations are
// defined generically over those rules, so the same engine handles
// camelCase, SCREAMING_SNAKE_CASE, and anything a caller defines itself.
//
// # Checking and converting
//
//	convention.SnakeCase.DoesFollow("user_name")        // true
//	convention.CamelCase.ConvertTo(convention.SnakeCase, "userName")
//	// "user_name", nil
//
// # Custom conventions
//
// Callers can build their own styles from the two rule families and register
// them for lookup by name:
//
//	dotted := convention.ByChar("DotCase", '.', false, false, false)
//	if _, err := convention.Register(dotted); err != nil {
//	    log.Fatal(err)
//	}
//
// Ten conventions are built in and pre-registered under their PascalCase
// names: FlatCase, CamelCase, PascalCase, SnakeCase, ScreamingSnakeCase,
// CamelSnakeCase, PascalSnakeCase, KebabCase, ScreamingKebabCase, and
// TrainCase. Those names are a stable contract; tools look conventions up
// by the literal string.
//
// # Limitations
//
// Word segmentation is ASCII-only and conversion is a best-effort
// transliteration. FlatCase in particular records no word boundaries at all,
// so converting out of it cannot reconstruct them.
package convention
