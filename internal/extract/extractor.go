package extract

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"filinglens/internal/domain"
)

// minTextLength is the shortest cleaned text accepted for HTML and plain text documents.
const minTextLength = 50

// Extractor turns fetched documents into cleaned text.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract classifies raw, runs the matching strategy and cleans the result.
// HTML and plain text shorter than 50 characters after cleanup is an ExtractionError;
// PDF always yields text.
func (e *Extractor) Extract(raw *domain.RawDocument) (*domain.ExtractedText, error) {
	docType := Classify(raw.ContentType, raw.URL)
	out := &domain.ExtractedText{DocumentType: docType}

	switch docType {
	case domain.DocumentTypePDF:
		res := ExtractPDF(raw.Body)
		e.logger.Debug("pdf text extracted",
			zap.String("url", raw.URL),
			zap.String("rung", res.Rung),
			zap.Int("bytes", len(raw.Body)),
		)
		out.Text = Clean(res.Text)
		out.Placeholder = res.Placeholder
		return out, nil
	case domain.DocumentTypeHTML:
		text, err := ExtractHTML(raw.Body)
		if err != nil {
			return nil, &domain.ExtractionError{DocumentType: docType, Err: err}
		}
		out.Text = Clean(text)
	default:
		text, err := ExtractPlainText(raw.Body)
		if err != nil {
			return nil, &domain.ExtractionError{DocumentType: docType, Err: err}
		}
		out.Text = Clean(text)
	}

	if n := utf8.RuneCountInString(out.Text); n < minTextLength {
		return nil, &domain.ExtractionError{
			DocumentType: docType,
			Err:          fmt.Errorf("%w (%d characters)", domain.ErrDocumentTooShort, n),
		}
	}
	return out, nil
}
