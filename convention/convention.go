package convention

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyInput is returned by ConvertTo when given an empty identifier.
var ErrEmptyInput = errors.New("cannot convert an empty identifier")

// Convention holds the rules of one naming style. Values are immutable once
// built; all rule functions must be pure and deterministic.
type Convention struct {
	name string

	// first maps a character to its canonical form at position zero.
	first func(rune) rune

	// isSeparator reports whether a character marks a word boundary: a
	// literal character like '_' for explicit-separator styles, or an
	// uppercase letter for case-separated styles.
	isSeparator func(rune) bool

	// separator maps the first character of a new word to the string
	// written at the boundary, e.g. "_x" for snake_case or "X" for
	// camelCase.
	separator func(rune) string

	// intermediate maps a mid-word character to its canonical form.
	intermediate func(rune) rune

	// explicitSeparator is true when boundaries are marked by an extra
	// literal character that is consumed during scanning, rather than by
	// the casing of the boundary letter itself.
	explicitSeparator bool
}

// New builds a convention from a full rule set. Most callers want the ByCase
// or ByChar factories instead; New exists for styles neither family covers.
func New(name string, first func(rune) rune, isSeparator func(rune) bool,
	separator func(rune) string, intermediate func(rune) rune,
	explicitSeparator bool) *Convention {
	return &Convention{
		name:              name,
		first:             first,
		isSeparator:       isSeparator,
		separator:         separator,
		intermediate:      intermediate,
		explicitSeparator: explicitSeparator,
	}
}

// ByCase builds a convention that marks word boundaries with a single
// capitalised letter, like camelCase. When pascal is true the first letter
// is capitalised too, like PascalCase.
func ByCase(name string, pascal bool) *Convention {
	first := unicode.ToLower
	if pascal {
		first = unicode.ToUpper
	}
	return New(
		name,
		first,
		unicode.IsUpper,
		func(r rune) string { return string(unicode.ToUpper(r)) },
		unicode.ToLower,
		false,
	)
}

// ByChar builds a convention that marks word boundaries with the given
// separator character, like snake_case or kebab-case. pascal capitalises the
// first letter, camel capitalises the letter after each separator, and
// screaming capitalises everything in between.
func ByChar(name string, separator rune, pascal, camel, screaming bool) *Convention {
	first := unicode.ToLower
	if pascal {
		first = unicode.ToUpper
	}
	boundary := func(r rune) string { return string(separator) + string(unicode.ToLower(r)) }
	if camel {
		boundary = func(r rune) string { return string(separator) + string(unicode.ToUpper(r)) }
	}
	intermediate := unicode.ToLower
	if screaming {
		intermediate = unicode.ToUpper
	}
	return New(
		name,
		first,
		func(r rune) bool { return r == separator },
		boundary,
		intermediate,
		true,
	)
}

// Name returns the convention's registry name, itself in PascalCase.
func (c *Convention) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c *Convention) String() string {
	return c.name
}

// DoesFollow reports whether the identifier conforms to this convention,
// allowing ASCII letters and digits between separators.
func (c *Convention) DoesFollow(s string) bool {
	return c.DoesFollowFunc(s, isAlphanumeric)
}

// DoesFollowFunc reports whether the identifier conforms to this convention.
// acceptable decides which characters may appear between separators.
//
// The check is a single left-to-right scan: the first character must already
// be in its canonical form, every mid-word character must be a fixed point of
// the intermediate rule, and the letter at each word boundary must already be
// cased the way the separator rule would have written it. An empty identifier
// follows no convention.
func (c *Convention) DoesFollowFunc(s string, acceptable func(rune) bool) bool {
	if s == "" {
		return false
	}

	runes := []rune(s)
	if c.first(runes[0]) != runes[0] || !acceptable(runes[0]) {
		return false
	}

	for i := 1; i < len(runes); i++ {
		r := runes[i]

		if c.isSeparator(r) {
			// A trailing literal separator never conforms.
			if c.explicitSeparator && i == len(runes)-1 {
				return false
			}

			// Explicit separators are consumed; the character after
			// them is the one to validate. Case-separated styles
			// validate the boundary letter itself.
			if c.explicitSeparator {
				i++
				r = runes[i]
			}

			if !strings.HasSuffix(c.separator(r), string(r)) || !acceptable(r) {
				return false
			}
			continue
		}

		if c.intermediate(r) != r || !acceptable(r) {
			return false
		}
	}

	return true
}

// ConvertTo rewrites the identifier from this convention into target,
// preserving word content while re-encoding boundaries and casing.
//
// Conversion is a best-effort transliteration: a source convention that
// records no boundaries (FlatCase) cannot have them reconstructed. Empty
// input returns ErrEmptyInput.
func (c *Convention) ConvertTo(target *Convention, s string) (string, error) {
	if s == "" {
		return "", ErrEmptyInput
	}

	runes := []rune(s)
	var out strings.Builder
	out.WriteRune(target.first(runes[0]))

	pendingSeparator := false
	for _, r := range runes[1:] {
		switch {
		case pendingSeparator:
			// The previous character was a consumed literal
			// separator; this one starts a new word.
			out.WriteString(target.separator(r))
			pendingSeparator = false
		case !c.isSeparator(r):
			out.WriteRune(target.intermediate(r))
		default:
			pendingSeparator = c.explicitSeparator
			if !pendingSeparator {
				// Case-separated source: the boundary letter is
				// its own signal, re-emit it immediately.
				out.WriteString(target.separator(r))
			}
		}
	}

	return out.String(), nil
}

// isAlphanumeric is the default acceptable-character set: ASCII letters and
// digits only.
func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
