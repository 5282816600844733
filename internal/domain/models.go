package domain

import (
	"io"
	"time"
)

// FilingLinks holds the registry links attached to a filing.
type FilingLinks struct {
	Self             string `json:"self,omitempty"`
	DocumentMetadata string `json:"document_metadata,omitempty"`
}

// FilingRef identifies a registry filing. It is supplied by the caller and never mutated.
type FilingRef struct {
	Category      string       `json:"category" binding:"required"`
	Type          string       `json:"type,omitempty"`
	Description   string       `json:"description"`
	Date          string       `json:"date"`
	Pages         *int         `json:"pages,omitempty"`
	Barcode       string       `json:"barcode,omitempty"`
	TransactionID string       `json:"transaction_id,omitempty"`
	PaperFiled    bool         `json:"paper_filed,omitempty"`
	Links         *FilingLinks `json:"links,omitempty"`
}

// Kind returns the normalized filing category.
func (f *FilingRef) Kind() FilingCategory {
	return ParseFilingCategory(f.Category)
}

// Label returns the category used in user-facing text, falling back to the form type.
func (f *FilingRef) Label() string {
	switch {
	case f.Category != "":
		return f.Category
	case f.Type != "":
		return f.Type
	default:
		return "filing"
	}
}

// Year returns the four-digit filing year, or the raw date when it cannot be parsed.
func (f *FilingRef) Year() string {
	if t, err := time.Parse("2006-01-02", f.Date); err == nil {
		return t.Format("2006")
	}
	if len(f.Date) >= 4 {
		return f.Date[:4]
	}
	return f.Date
}

// RawDocument is a fully buffered document payload.
type RawDocument struct {
	Body        []byte
	ContentType string
	URL         string
}

// DocumentStream is an unbuffered document payload. Callers must close Body.
type DocumentStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	Filename      string
}

// ExtractedText is the cleaned text of a document and the strategy used to obtain it.
type ExtractedText struct {
	Text         string
	DocumentType DocumentType
	Placeholder  bool
}

// ExtractionResult is returned to callers of the text extraction entry point.
type ExtractionResult struct {
	DocumentType  DocumentType `json:"document_type"`
	ContentLength int          `json:"content_length"`
	ExtractedText string       `json:"extracted_text"`
	OriginalURL   string       `json:"original_url"`
	Placeholder   bool         `json:"placeholder"`
}

// AnalysisResult is the structured output of every analysis path.
type AnalysisResult struct {
	Summary             string            `json:"summary"`
	KeyInsights         []string          `json:"key_insights"`
	FinancialHighlights map[string]string `json:"financial_highlights"`
}

// FilingAnalysis wraps an AnalysisResult with the filing it describes and how it was produced.
type FilingAnalysis struct {
	FilingID   string       `json:"filing_id"`
	FilingType string       `json:"filing_type"`
	FilingDate string       `json:"filing_date"`
	Tier       AnalysisTier `json:"analysis_tier,omitempty"`
	ModelUsed  string       `json:"model_used,omitempty"`
	Degraded   bool         `json:"degraded"`
	Cached     bool         `json:"cached"`
	AnalysisResult
}

// CachedEntry is a previously computed analysis stored against a document URL.
type CachedEntry struct {
	Key         string    `json:"key"`
	Summary     string    `json:"summary"`
	Insights    []string  `json:"insights"`
	Timestamp   time.Time `json:"timestamp"`
	DocumentURL string    `json:"document_url"`
}

// CacheStats summarizes the result cache.
type CacheStats struct {
	Total int   `json:"total"`
	Size  int64 `json:"size"`
}
