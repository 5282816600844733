package extract

import (
	"regexp"
	"strings"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)
	newlineRun      = regexp.MustCompile(` ?\n[\n ]*`)
)

// Clean collapses whitespace runs to a single space and newline runs to a single
// newline, then trims. Line breaks survive so section headers stay at line start.
func Clean(s string) string {
	s = horizontalSpace.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
