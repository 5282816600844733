package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"filinglens/internal/domain"
)

// SystemPrompt is sent as the system role of every model call.
const SystemPrompt = "You are a financial analyst expert in UK company filings and Companies House documents. " +
	"Extract specific financial data and provide actionable business insights from the provided document content."

const answerFormat = `Format your answer as plain text with each heading on its own line:
Summary:
<the summary>

Key insights:
- <insight>

Financial highlights:
Revenue: <figure>
Profit: <figure>
Assets: <figure>
Liabilities: <figure>`

// BuildContentPrompt renders the prompt for a filing with a usable document excerpt.
func BuildContentPrompt(f *domain.FilingRef, excerpt string) string {
	var b strings.Builder
	b.WriteString("Analyze this UK company filing document and provide detailed insights:\n\n")
	writeFilingInfo(&b, f)
	b.WriteString("\nDocument Content:\n")
	b.WriteString(excerpt)
	b.WriteString(`

Please provide:
1. A comprehensive summary (2-3 sentences) of the key information in this document
2. 3-5 specific key insights about the company's financial position, operations, or governance
3. Financial highlights including specific figures where available (revenue, profit, assets, liabilities, etc.)

Focus on extracting concrete financial data and meaningful business insights from the actual document content.

`)
	b.WriteString(answerFormat)
	return b.String()
}

// BuildMetadataPrompt renders the prompt for a filing whose document text is unavailable.
func BuildMetadataPrompt(f *domain.FilingRef) string {
	var b strings.Builder
	b.WriteString("Analyze this UK company filing using only its registry metadata; the document text is not available:\n\n")
	writeFilingInfo(&b, f)
	b.WriteString(`
Please provide:
1. A brief summary (2-3 sentences) of what this kind of filing discloses and what it indicates about the company
2. 3-5 key insights a reader should take from the filing's type, description and timing
3. Financial highlights only if they can be stated from the metadata; otherwise write "Pending" for each figure

Do not invent figures.

`)
	b.WriteString(answerFormat)
	return b.String()
}

func writeFilingInfo(b *strings.Builder, f *domain.FilingRef) {
	pages := "Unknown"
	if f.Pages != nil {
		pages = strconv.Itoa(*f.Pages)
	}
	fmt.Fprintf(b, "Filing Information:\n- Type: %s\n- Description: %s\n- Date: %s\n- Pages: %s\n",
		f.Label(), f.Description, f.Date, pages)
}
