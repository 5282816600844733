package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"filinglens/internal/domain"
	"filinglens/internal/extract"
	"filinglens/internal/port"
)

// DocumentService defines the document retrieval and extraction contract.
type DocumentService interface {
	// ExtractText fetches a document and returns its cleaned text.
	ExtractText(ctx context.Context, documentURL string) (*domain.ExtractionResult, error)
	// Proxy opens the document for streaming to the caller unchanged.
	Proxy(ctx context.Context, documentURL string) (*domain.DocumentStream, error)
}

type documentService struct {
	fetcher   port.DocumentFetcher
	extractor *extract.Extractor
	logger    *zap.Logger
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(fetcher port.DocumentFetcher, extractor *extract.Extractor, logger *zap.Logger) DocumentService {
	return &documentService{fetcher: fetcher, extractor: extractor, logger: logger}
}

func (s *documentService) ExtractText(ctx context.Context, documentURL string) (*domain.ExtractionResult, error) {
	if strings.TrimSpace(documentURL) == "" {
		return nil, fmt.Errorf("%w: document_url is required", domain.ErrInvalidRequest)
	}

	raw, err := s.fetcher.Fetch(ctx, documentURL)
	if err != nil {
		return nil, err
	}

	text, err := s.extractor.Extract(raw)
	if err != nil {
		s.logger.Info("document extraction failed",
			zap.String("url", documentURL),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Debug("document extracted",
		zap.String("url", documentURL),
		zap.String("document_type", string(text.DocumentType)),
		zap.Bool("placeholder", text.Placeholder),
	)

	return &domain.ExtractionResult{
		DocumentType:  text.DocumentType,
		ContentLength: utf8.RuneCountInString(text.Text),
		ExtractedText: text.Text,
		OriginalURL:   documentURL,
		Placeholder:   text.Placeholder,
	}, nil
}

func (s *documentService) Proxy(ctx context.Context, documentURL string) (*domain.DocumentStream, error) {
	if strings.TrimSpace(documentURL) == "" {
		return nil, fmt.Errorf("%w: document_url is required", domain.ErrInvalidRequest)
	}
	return s.fetcher.Open(ctx, documentURL)
}
