package port

import (
	"context"

	"filinglens/internal/domain"
)

// DocumentFetcher retrieves document content from the registry document service.
type DocumentFetcher interface {
	// Fetch buffers the whole document for extraction.
	Fetch(ctx context.Context, documentURL string) (*domain.RawDocument, error)
	// Open streams the document without buffering. The caller closes the body.
	Open(ctx context.Context, documentURL string) (*domain.DocumentStream, error)
}
