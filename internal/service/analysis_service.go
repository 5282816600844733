package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"filinglens/internal/analysis"
	"filinglens/internal/cache"
	"filinglens/internal/domain"
)

// AnalyzeInput is the DTO for analyzing a single filing.
type AnalyzeInput struct {
	Filing domain.FilingRef
	// DocumentContent is already-extracted text. When empty and DocumentURL is
	// set, the document is fetched and extracted first.
	DocumentContent string
	DocumentURL     string
	Network         bool
	UseCache        bool
}

// AnalysisService defines the filing analysis contract. A cache hit returns the
// stored summary and insights with every financial highlight pending, since figures
// are not cached.
type AnalysisService interface {
	Analyze(ctx context.Context, input *AnalyzeInput) (*domain.FilingAnalysis, error)
}

type analysisService struct {
	documents    DocumentService
	orchestrator *analysis.Orchestrator
	cache        *cache.ResultCache
	logger       *zap.Logger
}

// NewAnalysisService creates a new AnalysisService implementation. cache may be nil.
func NewAnalysisService(
	documents DocumentService,
	orchestrator *analysis.Orchestrator,
	resultCache *cache.ResultCache,
	logger *zap.Logger,
) AnalysisService {
	return &analysisService{
		documents:    documents,
		orchestrator: orchestrator,
		cache:        resultCache,
		logger:       logger,
	}
}

// Analyze only fails for caller errors. Retrieval and extraction failures degrade
// to metadata-only analysis, and model failures are absorbed by the orchestrator.
func (s *analysisService) Analyze(ctx context.Context, input *AnalyzeInput) (*domain.FilingAnalysis, error) {
	if strings.TrimSpace(input.Filing.Category) == "" {
		return nil, fmt.Errorf("%w: filing.category is required", domain.ErrInvalidRequest)
	}

	useCache := input.UseCache && input.DocumentURL != "" && s.cache != nil
	if useCache {
		if hit := s.fromCache(ctx, input); hit != nil {
			return hit, nil
		}
	}

	content := input.DocumentContent
	if strings.TrimSpace(content) == "" && input.DocumentURL != "" {
		extracted, err := s.documents.ExtractText(ctx, input.DocumentURL)
		switch {
		case err == nil:
			content = extracted.ExtractedText
		case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidDocumentURL):
			return nil, err
		default:
			s.logger.Warn("document unavailable, analyzing metadata only",
				zap.String("url", input.DocumentURL),
				zap.Error(err),
			)
		}
	}

	res := s.orchestrator.Analyze(ctx, &analysis.Request{
		Filing:  input.Filing,
		Content: content,
		Network: input.Network,
	})

	// Degraded results are not cached so a later request can retry the model.
	if useCache && !res.Degraded {
		if _, err := s.cache.Set(ctx, input.DocumentURL, res.Summary, res.KeyInsights); err != nil {
			s.logger.Warn("failed to cache analysis", zap.String("url", input.DocumentURL), zap.Error(err))
		}
	}
	return res, nil
}

func (s *analysisService) fromCache(ctx context.Context, input *AnalyzeInput) *domain.FilingAnalysis {
	entry, err := s.cache.Get(ctx, input.DocumentURL)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheEntryNotFound) {
			s.logger.Warn("cache lookup failed", zap.String("url", input.DocumentURL), zap.Error(err))
		}
		return nil
	}

	highlights := make(map[string]string, len(domain.HighlightKeys))
	for _, k := range domain.HighlightKeys {
		highlights[k] = domain.HighlightPending
	}
	insights := entry.Insights
	if len(insights) == 0 {
		insights = append([]string(nil), analysis.DefaultInsights...)
	}
	summary := entry.Summary
	if strings.TrimSpace(summary) == "" {
		summary = analysis.DefaultSummary
	}

	return &domain.FilingAnalysis{
		FilingID:   input.Filing.TransactionID,
		FilingType: input.Filing.Label(),
		FilingDate: input.Filing.Date,
		Cached:     true,
		AnalysisResult: domain.AnalysisResult{
			Summary:             summary,
			KeyInsights:         insights,
			FinancialHighlights: highlights,
		},
	}
}
