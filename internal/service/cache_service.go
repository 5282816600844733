package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"filinglens/internal/cache"
	"filinglens/internal/domain"
	"filinglens/internal/export"
)

// CacheService exposes the analysis result cache to API callers.
type CacheService interface {
	Get(ctx context.Context, documentURL string) (*domain.CachedEntry, error)
	Put(ctx context.Context, documentURL, summary string, insights []string) (*domain.CachedEntry, error)
	Clear(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*domain.CacheStats, error)
	Export(ctx context.Context, w io.Writer, format string) error
	Ping(ctx context.Context) error
}

type cacheService struct {
	cache *cache.ResultCache
}

// NewCacheService creates a new CacheService implementation.
func NewCacheService(resultCache *cache.ResultCache) CacheService {
	return &cacheService{cache: resultCache}
}

func (s *cacheService) Get(ctx context.Context, documentURL string) (*domain.CachedEntry, error) {
	if strings.TrimSpace(documentURL) == "" {
		return nil, fmt.Errorf("%w: document_url is required", domain.ErrInvalidRequest)
	}
	return s.cache.Get(ctx, documentURL)
}

func (s *cacheService) Put(ctx context.Context, documentURL, summary string, insights []string) (*domain.CachedEntry, error) {
	if strings.TrimSpace(documentURL) == "" || strings.TrimSpace(summary) == "" {
		return nil, fmt.Errorf("%w: document_url and summary are required", domain.ErrInvalidRequest)
	}
	return s.cache.Set(ctx, documentURL, summary, insights)
}

func (s *cacheService) Clear(ctx context.Context) (int, error) {
	return s.cache.Clear(ctx)
}

func (s *cacheService) Stats(ctx context.Context) (*domain.CacheStats, error) {
	return s.cache.Stats(ctx)
}

// Export writes every live entry to w. CSV output starts with a UTF-8 BOM.
func (s *cacheService) Export(ctx context.Context, w io.Writer, format string) error {
	entries, err := s.cache.List(ctx)
	if err != nil {
		return err
	}

	switch format {
	case export.FormatXLSX:
		return export.WriteXLSX(w, entries)
	case export.FormatCSV:
		if _, err := w.Write(export.BOM); err != nil {
			return fmt.Errorf("writing BOM: %w", err)
		}
		cw := export.NewCSVWriter(w)
		if err := cw.WriteHeader(); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
		if err := cw.WriteEntries(entries); err != nil {
			return fmt.Errorf("writing CSV rows: %w", err)
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("%w: unsupported export format %q", domain.ErrInvalidRequest, format)
	}
}

func (s *cacheService) Ping(ctx context.Context) error {
	return s.cache.Ping(ctx)
}
