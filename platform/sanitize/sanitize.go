// Package sanitize provides free-text cleanup utilities used before static
// table lookups. This is part of the platform layer and contains no business
// logic.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// parenRegex matches parenthetical annotations, e.g. "(Kinshasa)".
	parenRegex = regexp.MustCompile(`\(.*?\)`)
	// spaceRegex matches runs of whitespace.
	spaceRegex = regexp.MustCompile(`\s+`)
)

// Name prepares a free-form name for lookup: trims it, drops parenthetical
// qualifiers ("Congo (Kinshasa)" becomes "Congo") and collapses whitespace
// runs to a single space.
func Name(s string) string {
	s = parenRegex.ReplaceAllString(strings.TrimSpace(s), "")
	s = spaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
