package htmlutil

import (
	"html"
	"regexp"
	"strings"
)

// tagPattern matches HTML tags including self-closing tags.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// whitespacePattern matches runs of whitespace, including newlines inside
// multi-line anchor text and the non-breaking spaces left behind by &nbsp;
// entities.
var whitespacePattern = regexp.MustCompile(`[\s\p{Zs}]+`)

// InlineText reduces an HTML fragment to a single-line display label: nested
// tags are stripped, entities decoded, and whitespace collapsed to single
// spaces. Used for anchor link labels, where paragraph structure does not
// matter.
func InlineText(fragment string) string {
	if fragment == "" {
		return ""
	}

	text := tagPattern.ReplaceAllString(fragment, " ")
	text = html.UnescapeString(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
