package extract

import (
	"net/url"
	"strings"

	"filinglens/internal/domain"
)

// Classify picks an extraction strategy. The declared content type wins, then the
// URL suffix, then plain text.
func Classify(contentType, documentURL string) domain.DocumentType {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/pdf"):
		return domain.DocumentTypePDF
	case strings.Contains(ct, "text/html"):
		return domain.DocumentTypeHTML
	}

	p := strings.ToLower(documentURL)
	if u, err := url.Parse(documentURL); err == nil && u.Path != "" {
		p = strings.ToLower(u.Path)
	}
	switch {
	case strings.HasSuffix(p, ".pdf"):
		return domain.DocumentTypePDF
	case strings.HasSuffix(p, ".html"), strings.HasSuffix(p, ".htm"):
		return domain.DocumentTypeHTML
	default:
		return domain.DocumentTypeText
	}
}
