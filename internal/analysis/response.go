package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"filinglens/internal/domain"
)

// DefaultSummary is used when a completion contains no recoverable summary.
const DefaultSummary = "Analysis of this financial document reveals important business and regulatory information."

// DefaultInsights are used when a completion contains no recoverable insights.
var DefaultInsights = []string{
	"Document contains detailed financial information",
	"Company maintains regulatory compliance",
	"Financial position documented as per Companies House requirements",
}

var (
	numberedLine = regexp.MustCompile(`^\d+\.`)
	bulletPrefix = regexp.MustCompile(`^(?:[-•*]|\d+\.)\s+`)
	figure       = regexp.MustCompile(`\d[\d,]*`)
)

// highlightTerms maps each highlight key to the vocabulary that introduces it.
var highlightTerms = []struct {
	key   string
	terms []string
}{
	{domain.HighlightRevenue, []string{"revenue", "turnover"}},
	{domain.HighlightProfit, []string{"profit", "income"}},
	{domain.HighlightAssets, []string{"assets"}},
	{domain.HighlightLiabilities, []string{"liabilities"}},
}

// ExtractSection returns the text following the first line that mentions name,
// joined with single spaces, up to a blank or numbered line. It returns "" when
// the section is missing or empty.
func ExtractSection(text, name string) string {
	name = strings.ToLower(name)
	var parts []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), name) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || numberedLine.MatchString(line) {
			break
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}

// ExtractListItems returns the bulleted or numbered entries following the first
// line that mentions name, with their markers removed. Collection stops at the
// first blank line. It returns nil when no entries were found.
func ExtractListItems(text, name string) []string {
	name = strings.ToLower(name)
	var items []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), name) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		if loc := bulletPrefix.FindStringIndex(trimmed); loc != nil {
			if item := strings.TrimSpace(trimmed[loc[1]:]); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// ExtractFirstParagraph returns the first blank-line separated paragraph longer
// than 20 characters. Paragraphs that look like JSON are skipped.
func ExtractFirstParagraph(text string) string {
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); len(p) > 20 && !looksLikeJSON(p) {
			return p
		}
	}
	return ""
}

// ExtractFinancialHighlights scans text line by line for revenue, profit, assets
// and liabilities figures, taking the first run of digits and commas on a line that
// mentions the keyword. A leading list marker is ignored. The first matching line wins. It returns nil when no
// figure was found.
func ExtractFinancialHighlights(text string) map[string]string {
	var out map[string]string
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		line = bulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		m := strings.TrimRight(figure.FindString(line), ",")
		if m == "" {
			continue
		}
		for _, h := range highlightTerms {
			if _, done := out[h.key]; done || !containsAny(line, h.terms) {
				continue
			}
			if out == nil {
				out = make(map[string]string, len(highlightTerms))
			}
			out[h.key] = "£" + m
		}
	}
	return out
}

// highlightsBlock returns the lines after the "financial highlights" heading, or
// "" when the completion has no such heading.
func highlightsBlock(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "financial highlights") {
			return strings.Join(lines[i+1:], "\n")
		}
	}
	return ""
}

// completionHighlights prefers figures from the highlights block so that numbers
// quoted in the summary prose do not claim a key first.
func completionHighlights(text string) map[string]string {
	if block := highlightsBlock(text); block != "" {
		if hl := ExtractFinancialHighlights(block); hl != nil {
			return hl
		}
	}
	return ExtractFinancialHighlights(text)
}

func looksLikeJSON(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") || strings.HasPrefix(s, "```")
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// structuredCompletion is the JSON shape some models answer with despite a
// plain-text format request.
type structuredCompletion struct {
	Summary             string            `json:"summary"`
	KeyInsights         []string          `json:"key_insights"`
	Insights            []string          `json:"insights"`
	FinancialHighlights map[string]any `json:"financial_highlights"`
}

// ParseCompletion converts a free-text model answer into an AnalysisResult.
// Missing parts fall back to DefaultSummary and DefaultInsights; highlight gaps
// are left for the caller to fill.
func ParseCompletion(text string) domain.AnalysisResult {
	if res, ok := parseStructured(text); ok {
		return res
	}

	res := domain.AnalysisResult{
		Summary:             ExtractSection(text, "summary"),
		KeyInsights:         ExtractListItems(text, "insights"),
		FinancialHighlights: completionHighlights(text),
	}
	if looksLikeJSON(res.Summary) {
		res.Summary = ""
	}
	if res.Summary == "" {
		res.Summary = ExtractFirstParagraph(text)
	}
	if res.Summary == "" {
		res.Summary = DefaultSummary
	}
	if len(res.KeyInsights) == 0 {
		res.KeyInsights = ExtractListItems(text, "key")
	}
	if len(res.KeyInsights) == 0 {
		res.KeyInsights = append([]string(nil), DefaultInsights...)
	}
	return res
}

func parseStructured(text string) (domain.AnalysisResult, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "```") {
		return domain.AnalysisResult{}, false
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	repaired, err := jsonrepair.RepairJSON(strings.TrimSpace(trimmed))
	if err != nil {
		return domain.AnalysisResult{}, false
	}
	var sc structuredCompletion
	dec := json.NewDecoder(strings.NewReader(repaired))
	dec.UseNumber()
	if err := dec.Decode(&sc); err != nil || strings.TrimSpace(sc.Summary) == "" {
		return domain.AnalysisResult{}, false
	}

	insights := sc.KeyInsights
	if len(insights) == 0 {
		insights = sc.Insights
	}
	highlights := make(map[string]string, len(sc.FinancialHighlights))
	for k, v := range sc.FinancialHighlights {
		if fv := formatHighlight(v); fv != "" {
			highlights[strings.ToLower(k)] = fv
		}
	}
	return domain.AnalysisResult{
		Summary:             strings.TrimSpace(sc.Summary),
		KeyInsights:         insights,
		FinancialHighlights: highlights,
	}, true
}

// formatHighlight renders a JSON highlight value. Bare numbers get the same £
// prefix the line heuristics use.
func formatHighlight(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case json.Number:
		return "£" + x.String()
	default:
		return fmt.Sprint(x)
	}
}
