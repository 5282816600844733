package analysis

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"filinglens/internal/domain"
	"filinglens/internal/extract"
	"filinglens/internal/optimize"
	"filinglens/internal/port"
)

// usableExcerptLength is the excerpt length above which content analysis is attempted.
const usableExcerptLength = 100

// Options tune the model calls made by the Orchestrator.
type Options struct {
	Provider    string
	MaxTokens   int
	Temperature float64
}

// Request is a single analysis job. Content may be empty.
type Request struct {
	Filing  domain.FilingRef
	Content string
	// Network allows calling the language model. When false only local strategies run.
	Network bool
}

type excerptState int

const (
	excerptAbsent excerptState = iota
	excerptShort
	excerptUsable
)

// tierPlan pairs the model prompt for a tier with its local fallback. A nil prompt
// means the tier never calls the model.
type tierPlan struct {
	tier   domain.AnalysisTier
	prompt func(f *domain.FilingRef, excerpt string) string
	local  func(f *domain.FilingRef, excerpt string) domain.AnalysisResult
}

var (
	contentTier = tierPlan{
		tier:   domain.TierContent,
		prompt: BuildContentPrompt,
		local:  basicContentAnalysis,
	}
	metadataTier = tierPlan{
		tier:   domain.TierMetadata,
		prompt: func(f *domain.FilingRef, _ string) string { return BuildMetadataPrompt(f) },
		local:  func(f *domain.FilingRef, _ string) domain.AnalysisResult { return metadataTemplate(f) },
	}
	enhancedTier = tierPlan{
		tier:  domain.TierEnhanced,
		local: enhancedAnalysis,
	}
)

// tierTable selects the tier for an excerpt, with and without network access.
var tierTable = map[excerptState]struct{ online, offline tierPlan }{
	excerptUsable: {online: contentTier, offline: enhancedTier},
	excerptShort:  {online: enhancedTier, offline: enhancedTier},
	excerptAbsent: {online: metadataTier, offline: metadataTier},
}

// Orchestrator picks an analysis tier for a filing and always produces a result.
type Orchestrator struct {
	model  port.AnalysisModel
	opts   Options
	logger *zap.Logger
}

// NewOrchestrator creates an Orchestrator. model may be nil, in which case only
// local strategies are used.
func NewOrchestrator(model port.AnalysisModel, opts Options, logger *zap.Logger) *Orchestrator {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1000
	}
	return &Orchestrator{model: model, opts: opts, logger: logger}
}

// Analyze runs the tier selected for req. Model failures are logged and absorbed
// by the tier's local fallback, so the result is never nil.
func (o *Orchestrator) Analyze(ctx context.Context, req *Request) *domain.FilingAnalysis {
	filing := &req.Filing
	excerpt, state := prepareExcerpt(req.Content)

	choice := tierTable[state]
	plan := choice.offline
	if req.Network {
		plan = choice.online
	}

	out := &domain.FilingAnalysis{
		FilingID:   filing.TransactionID,
		FilingType: filing.Label(),
		FilingDate: filing.Date,
		Tier:       plan.tier,
	}

	var result domain.AnalysisResult
	modelResult, modelUsed, err := o.callModel(ctx, plan, filing, excerpt, req.Network)
	switch {
	case err != nil:
		o.logger.Warn("analysis model failed, using local fallback",
			zap.String("tier", string(plan.tier)),
			zap.String("filing_id", filing.TransactionID),
			zap.Error(err),
		)
		out.Degraded = true
		result = plan.local(filing, excerpt)
	case modelResult != nil:
		out.ModelUsed = modelUsed
		result = *modelResult
	default:
		result = plan.local(filing, excerpt)
	}

	out.AnalysisResult = finalize(result)
	o.logger.Debug("filing analyzed",
		zap.String("tier", string(out.Tier)),
		zap.String("filing_id", out.FilingID),
		zap.Bool("degraded", out.Degraded),
	)
	return out
}

// callModel returns a nil result and nil error when the plan should run locally.
func (o *Orchestrator) callModel(ctx context.Context, plan tierPlan, f *domain.FilingRef, excerpt string, network bool) (*domain.AnalysisResult, string, error) {
	if !network || plan.prompt == nil || o.model == nil {
		return nil, "", nil
	}
	resp, err := o.model.Complete(ctx, port.CompletionInput{
		SystemPrompt: SystemPrompt,
		UserPrompt:   plan.prompt(f, excerpt),
		MaxTokens:    o.opts.MaxTokens,
		Temperature:  o.opts.Temperature,
	})
	if err != nil {
		return nil, "", &domain.AnalysisModelError{Provider: o.opts.Provider, Err: err}
	}
	res := ParseCompletion(resp.Text)
	used := resp.ModelUsed
	if used == "" {
		used = o.opts.Provider
	}
	return &res, used, nil
}

// prepareExcerpt optimizes content and classifies the result for tier selection.
func prepareExcerpt(content string) (string, excerptState) {
	if strings.TrimSpace(content) == "" || extract.IsPlaceholder(content) {
		return "", excerptAbsent
	}
	excerpt := optimize.Optimize(content)
	switch n := utf8.RuneCountInString(excerpt); {
	case n == 0 || extract.IsPlaceholder(excerpt):
		return "", excerptAbsent
	case n > usableExcerptLength:
		return excerpt, excerptUsable
	default:
		return excerpt, excerptShort
	}
}

// finalize guarantees a summary, at least one insight and every highlight key.
func finalize(res domain.AnalysisResult) domain.AnalysisResult {
	res.Summary = strings.TrimSpace(res.Summary)
	if res.Summary == "" {
		res.Summary = DefaultSummary
	}

	insights := make([]string, 0, len(res.KeyInsights))
	for _, s := range res.KeyInsights {
		if s = strings.TrimSpace(s); s != "" {
			insights = append(insights, s)
		}
	}
	if len(insights) == 0 {
		insights = append(insights, DefaultInsights...)
	}
	res.KeyInsights = insights

	highlights := make(map[string]string, len(domain.HighlightKeys))
	for k, v := range res.FinancialHighlights {
		highlights[k] = v
	}
	for _, k := range domain.HighlightKeys {
		if strings.TrimSpace(highlights[k]) == "" {
			highlights[k] = domain.HighlightPending
		}
	}
	res.FinancialHighlights = highlights
	return res
}
