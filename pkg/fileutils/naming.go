package fileutils

import (
	"regexp"
	"strings"
)

// unsafePattern matches runs of characters that are not safe across
// filesystems.
var unsafePattern = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Slug converts a course identifier or code into a filesystem-safe file name
// stem. Unsafe characters collapse to single underscores; leading and
// trailing underscores are trimmed.
func Slug(s string) string {
	s = unsafePattern.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.Trim(s, "_")
}
