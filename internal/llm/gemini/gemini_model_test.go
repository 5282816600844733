package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filinglens/internal/config"
	"filinglens/internal/llm/gemini"
	"filinglens/internal/port"
)

func newTestModel(serverURL string) *gemini.Model {
	cfg := &config.AnalyzerConfig{
		Provider:     config.ProviderGemini,
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-2.0-flash",
		TimeoutSecs:  30,
	}
	return gemini.NewModelWithEndpoint(cfg, serverURL)
}

func TestGeminiModel_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.0-flash:generateContent"), r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Analyze this filing.")
		assert.Contains(t, string(body), "You are a financial analyst.")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []map[string]interface{}{{"text": "Summary: a healthy balance sheet."}},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer server.Close()

	out, err := newTestModel(server.URL).Complete(context.Background(), port.CompletionInput{
		SystemPrompt: "You are a financial analyst.",
		UserPrompt:   "Analyze this filing.",
		MaxTokens:    1000,
		Temperature:  0.2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Summary: a healthy balance sheet.", out.Text)
	assert.Equal(t, "gemini-2.0-flash", out.ModelUsed)
}

func TestGeminiModel_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key invalid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	_, err := newTestModel(server.URL).Complete(context.Background(), port.CompletionInput{UserPrompt: "x"})

	assert.Error(t, err)
}
