package domain

import "strings"

// DocumentType is the extraction strategy selected for a document.
type DocumentType string

const (
	DocumentTypePDF  DocumentType = "PDF"
	DocumentTypeHTML DocumentType = "HTML"
	DocumentTypeText DocumentType = "TEXT"
)

// FilingCategory is the normalized registry category of a filing.
type FilingCategory string

const (
	CategoryAccounts              FilingCategory = "accounts"
	CategoryAnnualReturn          FilingCategory = "annual-return"
	CategoryConfirmationStatement FilingCategory = "confirmation-statement"
	CategoryOther                 FilingCategory = "other"
)

// categoryAliases maps registry category labels to their normalized form.
var categoryAliases = map[string]FilingCategory{
	"accounts":               CategoryAccounts,
	"annual-return":          CategoryAnnualReturn,
	"annual-returns":         CategoryAnnualReturn,
	"confirmation-statement": CategoryConfirmationStatement,
}

// ParseFilingCategory normalizes a raw registry category. Unknown labels map to CategoryOther.
func ParseFilingCategory(raw string) FilingCategory {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CategoryOther
}

// AnalysisTier identifies which rung of the analysis ladder produced a result.
type AnalysisTier string

const (
	TierContent  AnalysisTier = "content"
	TierMetadata AnalysisTier = "metadata"
	TierEnhanced AnalysisTier = "enhanced"
)

// Financial highlight keys always present on an AnalysisResult.
const (
	HighlightRevenue     = "revenue"
	HighlightProfit      = "profit"
	HighlightAssets      = "assets"
	HighlightLiabilities = "liabilities"
)

// HighlightKeys lists the financial highlight keys in display order.
var HighlightKeys = []string{HighlightRevenue, HighlightProfit, HighlightAssets, HighlightLiabilities}

// HighlightPending is the display value for a figure the analysis could not determine.
const HighlightPending = "Pending - requires analysis"
