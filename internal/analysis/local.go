package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"filinglens/internal/domain"
)

var financialVocabulary = regexp.MustCompile(`(?i)revenue|profit|assets|liabilities|turnover|income|balance`)

// basicContentAnalysis summarizes an excerpt by word count and vocabulary when the
// model call for content analysis fails.
func basicContentAnalysis(f *domain.FilingRef, excerpt string) domain.AnalysisResult {
	words := len(strings.Fields(excerpt))
	financial := financialVocabulary.MatchString(excerpt)

	kind := "regulatory"
	vocabInsight := "Regulatory compliance document"
	if financial {
		kind = "financial and business"
		vocabInsight = "Financial terminology present in document"
	}

	return domain.AnalysisResult{
		Summary: fmt.Sprintf(
			"This %s document contains %d words of %s information. "+
				"The filing provides statutory disclosures required by Companies House for the period ending %s.",
			f.Label(), words, kind, f.Date),
		KeyInsights: []string{
			fmt.Sprintf("Document contains %d words of content", words),
			vocabInsight,
			"Filed in accordance with Companies House requirements",
			"Contains statutory business disclosures",
		},
	}
}

// metadataTemplate is the canned analysis for a filing category.
func metadataTemplate(f *domain.FilingRef) domain.AnalysisResult {
	year := f.Year()
	switch f.Kind() {
	case domain.CategoryAccounts:
		return domain.AnalysisResult{
			Summary: fmt.Sprintf("This annual accounts filing from %s provides comprehensive financial statements "+
				"including balance sheet, profit and loss account, and cash flow statement. The document offers "+
				"detailed insights into the company's financial performance, position, and cash flows during the "+
				"reporting period.", year),
			KeyInsights: []string{
				"Comprehensive financial performance analysis",
				"Balance sheet showing assets, liabilities, and equity",
				"Profit and loss statement with revenue and expense breakdown",
				"Cash flow analysis and liquidity assessment",
			},
		}
	case domain.CategoryAnnualReturn:
		return domain.AnalysisResult{
			Summary: fmt.Sprintf("This annual return filing from %s contains essential corporate information "+
				"including registered office address, directors, shareholders, and share capital details. It "+
				"provides a snapshot of the company's current structure and ownership.", year),
			KeyInsights: []string{
				"Current corporate structure and governance",
				"Director and shareholder information",
				"Registered office and contact details",
				"Share capital and ownership structure",
			},
		}
	case domain.CategoryConfirmationStatement:
		return domain.AnalysisResult{
			Summary: fmt.Sprintf("This confirmation statement from %s confirms that the company's information on "+
				"the public register is accurate and up-to-date. It includes details about directors, shareholders, "+
				"and registered office address.", year),
			KeyInsights: []string{
				"Confirmation of accurate public register information",
				"Updated director and shareholder details",
				"Current registered office address",
				"Compliance with Companies Act requirements",
			},
		}
	default:
		return domain.AnalysisResult{
			Summary: fmt.Sprintf("This %s filing from %s contains important regulatory and financial information "+
				"for the company. The document provides statutory disclosures required by Companies House and "+
				"offers insights into the company's operational and financial status during the reporting period.",
				f.Label(), year),
			KeyInsights: []string{
				"Regulatory compliance filing",
				"Financial and operational information",
				"Corporate governance details",
				"Statutory declarations and confirmations",
			},
		}
	}
}

// contentSignals map vocabulary found in a document to the insight it supports.
var contentSignals = []struct {
	terms   []string
	insight string
}{
	{[]string{"revenue", "turnover"}, "Comprehensive revenue and turnover analysis included in financial statements"},
	{[]string{"profit", "loss"}, "Detailed profit and loss account with performance metrics"},
	{[]string{"assets", "liabilities"}, "Complete balance sheet with assets, liabilities, and equity breakdown"},
	{[]string{"directors", "shareholders"}, "Corporate governance details including director and shareholder information"},
	{[]string{"cash", "flow"}, "Cash flow statement with liquidity and working capital analysis"},
	{[]string{"audit", "auditor"}, "Independent audit report with professional opinion on financial statements"},
}

var defaultEnhancedInsights = []string{
	"Comprehensive financial and regulatory information provided",
	"Detailed corporate governance and compliance data included",
	"Complete statutory disclosures as required by UK company law",
}

// enhancedAnalysis builds a category narrative and keyword-driven insights without
// calling a model.
func enhancedAnalysis(f *domain.FilingRef, content string) domain.AnalysisResult {
	lower := strings.ToLower(content)
	var insights []string
	for _, s := range contentSignals {
		for _, term := range s.terms {
			if strings.Contains(lower, term) {
				insights = append(insights, s.insight)
				break
			}
		}
	}
	if len(insights) == 0 {
		insights = append(insights, defaultEnhancedInsights...)
	}

	year := f.Year()
	words := int(math.Round(float64(utf8.RuneCountInString(content)) / 5))

	var summary string
	switch f.Kind() {
	case domain.CategoryAccounts:
		summary = fmt.Sprintf("This comprehensive annual accounts filing from %s represents a detailed financial "+
			"report containing approximately %d words of financial data. The document provides complete statutory "+
			"financial statements including a detailed balance sheet showing the company's assets, liabilities, and "+
			"equity position; comprehensive profit and loss account with revenue, expenses, and profitability "+
			"analysis; and cash flow statement demonstrating liquidity and cash management. The filing also includes "+
			"detailed notes to the accounts, director's report, and auditor's opinion, offering complete transparency "+
			"into the company's financial performance, position, and compliance with UK accounting standards. This "+
			"represents a full year of financial activity with comprehensive disclosure of all material financial "+
			"information.", year, words)
	case domain.CategoryAnnualReturn:
		summary = fmt.Sprintf("This annual return filing from %s serves as a comprehensive corporate compliance "+
			"document containing approximately %d words of detailed company information. The filing includes "+
			"complete details of all current directors with their appointment dates, residential addresses, and "+
			"other directorships; comprehensive shareholder information including share capital structure, voting "+
			"rights, and beneficial ownership details; registered office address and contact information; and "+
			"confirmation of the company's legal status and compliance with Companies Act requirements. This document "+
			"provides a complete snapshot of the company's corporate structure, governance framework, and ownership "+
			"composition as required by UK company law.", year, words)
	case domain.CategoryConfirmationStatement:
		summary = fmt.Sprintf("This confirmation statement from %s represents a statutory compliance filing "+
			"containing approximately %d words of verified company information. The document confirms that all "+
			"information on the public register is accurate and up-to-date, including current director details with "+
			"their full names, addresses, and dates of birth; complete shareholder register with shareholdings and "+
			"voting rights; registered office address and company secretary details; and share capital information "+
			"including any changes during the reporting period. This filing ensures transparency and compliance with "+
			"UK company law by providing verified, current information about the company's structure and governance.",
			year, words)
	default:
		summary = fmt.Sprintf("This %s filing from %s contains approximately %d words of comprehensive regulatory "+
			"and financial information. The document provides detailed insights into the company's operations, "+
			"governance structure, and financial status, including statutory disclosures required by Companies House, "+
			"corporate governance information, and financial performance data. This filing represents a complete "+
			"record of the company's activities and compliance with UK regulatory requirements during the reporting "+
			"period.", f.Label(), year, words)
	}

	return domain.AnalysisResult{Summary: summary, KeyInsights: insights}
}
