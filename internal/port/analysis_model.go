package port

import "context"

// CompletionInput carries a single chat-style completion request.
type CompletionInput struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

// CompletionOutput contains the free-text answer from a language model.
type CompletionOutput struct {
	Text      string
	ModelUsed string
}

// AnalysisModel abstracts a hosted language model used to analyze filings.
type AnalysisModel interface {
	Complete(ctx context.Context, input CompletionInput) (*CompletionOutput, error)
}
