package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"filinglens/internal/config"
	"filinglens/internal/llm"
	"filinglens/internal/port"
)

const defaultModel = "gemini-2.0-flash"

func init() {
	llm.RegisterProvider(config.ProviderGemini, func(cfg *config.AnalyzerConfig) (port.AnalysisModel, error) {
		return NewModel(cfg), nil
	})
}

// Model implements port.AnalysisModel using the Gemini API through the GenAI SDK.
type Model struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewModel creates a Gemini-backed analysis model from the analyzer config.
func NewModel(cfg *config.AnalyzerConfig) *Model {
	return newModel(cfg, "")
}

// NewModelWithEndpoint creates a model pointing at a custom API base URL (for testing).
func NewModelWithEndpoint(cfg *config.AnalyzerConfig, baseURL string) *Model {
	return newModel(cfg, baseURL)
}

func newModel(cfg *config.AnalyzerConfig, baseURL string) *Model {
	model := cfg.DefaultModel
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Model{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (m *Model) Complete(ctx context.Context, input port.CompletionInput) (*port.CompletionOutput, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     m.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: m.client,
	}
	if m.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: m.baseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(input.Temperature)),
	}
	if input.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(input.MaxTokens)
	}
	if input.SystemPrompt != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: input.SystemPrompt}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, m.model, genai.Text(input.UserPrompt), genCfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return nil, llm.NewRateLimitError(config.ProviderGemini, err, 0)
		}
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from API")
	}
	return &port.CompletionOutput{Text: text, ModelUsed: m.model}, nil
}
