package timetable

import (
	"regexp"
	"strings"
)

var (
	parenSuffixRx = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	nonTokenRx    = regexp.MustCompile(`[^a-z0-9]+`)
)

// CategoryClass turns a free-text category into a CSS-safe token:
// parenthetical suffixes are stripped, the rest is case-folded and
// hyphenated. Empty input maps to the default category token.
func CategoryClass(category string) string {
	t := parenSuffixRx.ReplaceAllString(category, "")
	t = strings.ToLower(strings.TrimSpace(t))
	t = nonTokenRx.ReplaceAllString(t, "-")
	t = strings.Trim(t, "-")
	if t == "" {
		return strings.ToLower(DefaultCategory)
	}
	return t
}
