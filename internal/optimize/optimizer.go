// Package optimize reduces extracted document text to a bounded excerpt biased
// toward financial statement content.
package optimize

import (
	"regexp"
	"strings"

	"filinglens/internal/extract"
)

const (
	// MaxExcerptLength is the hard ceiling on excerpt length in characters.
	MaxExcerptLength = 8000
	// PrefixLength is used when no key sections are found.
	PrefixLength = 2000

	minLineLength    = 10
	minSectionLength = 50
)

var keywords = []string{
	"revenue", "profit", "loss", "assets", "liabilities", "equity",
	"turnover", "gross", "net", "operating", "financial", "cash",
	"balance sheet", "profit and loss", "income statement",
	"directors", "shareholders", "capital", "dividend",
}

var sectionHeader = regexp.MustCompile(`(?i)^(balance sheet|profit and loss|income statement|directors|shareholders|notes)`)

// Optimize returns the key financial sections of text joined by blank lines, or
// its first 2,000 characters when none are found. The result never exceeds
// 8,000 characters.
func Optimize(text string) string {
	cleaned := extract.Clean(text)

	var out string
	if sections := KeySections(cleaned); len(sections) > 0 {
		out = strings.Join(sections, "\n\n")
	} else {
		out = truncate(cleaned, PrefixLength)
	}
	return truncate(out, MaxExcerptLength)
}

// KeySections groups keyword lines into sections. A header line closes the
// current section and opens a new one; sections of 50 characters or fewer are dropped.
func KeySections(text string) []string {
	var (
		sections []string
		current  strings.Builder
	)
	flush := func() {
		if runeLen(current.String()) > minSectionLength {
			sections = append(sections, strings.TrimSpace(current.String()))
		}
		current.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if sectionHeader.MatchString(line) {
			flush()
			current.WriteString(line)
			current.WriteByte('\n')
			continue
		}
		if runeLen(line) > minLineLength && hasKeyword(line) {
			current.WriteString(line)
			current.WriteByte('\n')
		}
	}
	flush()
	return sections
}

func hasKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
