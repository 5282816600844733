package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// PlaceholderMarker appears in every synthetic PDF description and nowhere in real extractions.
const PlaceholderMarker = "Content extraction would require"

// pdfAcceptLength is the minimum joined length for a heuristic rung to be accepted.
const pdfAcceptLength = 100

// bytesPerPage is the rough PDF page size used to estimate page counts.
const bytesPerPage = 50000

var (
	parenthesizedText = regexp.MustCompile(`\(([A-Za-z0-9 .,;:!?'"&%$#@*+=/_-]{3,})\)`)
	printableRun      = regexp.MustCompile(`[\x20-\x7E\t\r\n]{10,}`)
)

// pdfRung is one heuristic pass over raw PDF bytes. It returns the joined
// candidate text, which the ladder accepts only above pdfAcceptLength.
type pdfRung struct {
	name string
	scan func(body []byte) string
}

// pdfLadder is tried in order; the synthetic description is the floor.
var pdfLadder = []pdfRung{
	{name: "parenthesized", scan: scanParenthesized},
	{name: "printable", scan: scanPrintable},
}

// PDFResult records which rung produced the text.
type PDFResult struct {
	Text        string
	Rung        string
	Placeholder bool
}

// ExtractPDF never fails: when no rung finds enough readable text it returns a
// description of the document built from its size.
func ExtractPDF(body []byte) PDFResult {
	for _, rung := range pdfLadder {
		if text := rung.scan(body); len(text) > pdfAcceptLength {
			return PDFResult{Text: text, Rung: rung.name}
		}
	}
	return PDFResult{Text: pdfPlaceholder(len(body)), Rung: "placeholder", Placeholder: true}
}

func scanParenthesized(body []byte) string {
	matches := parenthesizedText.FindAllSubmatch(body, -1)
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, string(m[1]))
	}
	return strings.Join(parts, " ")
}

func scanPrintable(body []byte) string {
	matches := printableRun.FindAll(body, -1)
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if s := strings.TrimSpace(string(m)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// EstimatePages returns ceil(size / 50000).
func EstimatePages(size int) int {
	return (size + bytesPerPage - 1) / bytesPerPage
}

func pdfPlaceholder(size int) string {
	return fmt.Sprintf(
		"PDF Document\nSize: %.1f KB (%d bytes)\nEstimated pages: %d\n"+
			"This document contains financial statements and regulatory information. "+
			"%s a production PDF parser.",
		float64(size)/1024, size, EstimatePages(size), PlaceholderMarker,
	)
}

// IsPlaceholder reports whether text is a synthetic PDF description.
func IsPlaceholder(text string) bool {
	return strings.Contains(text, PlaceholderMarker)
}
