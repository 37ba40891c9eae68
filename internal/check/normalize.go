// Package check validates JSON examples taken from a specification document.
package check

import "regexp"

// CommentPlaceholder replaces each stripped line comment. It is a property
// pair so that a comma on the preceding line stays legal.
const CommentPlaceholder = `  "comment": "removed"`

var (
	fragmentStart = regexp.MustCompile(`^\s*"`)
	lineComment   = regexp.MustCompile(`(?m)^[ \t]*//.*$`)
)

// IsFragment reports whether text starts with a quoted key rather than a
// complete JSON value, e.g. `"name": "value"`.
func IsFragment(text string) bool {
	return fragmentStart.MatchString(text)
}

// WrapFragment encloses a property fragment in an object. Other text is
// returned unchanged.
func WrapFragment(text string) string {
	if !IsFragment(text) {
		return text
	}
	return "{" + text + "}"
}

// StripComments replaces every line that holds only a // comment with
// CommentPlaceholder. The number of lines is unchanged.
func StripComments(text string) string {
	return lineComment.ReplaceAllLiteralString(text, CommentPlaceholder)
}

// Normalize applies fragment wrapping and then comment stripping.
func Normalize(text string) string {
	return StripComments(WrapFragment(text))
}
