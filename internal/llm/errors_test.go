package llm_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"filinglens/internal/llm"
)

func TestRateLimitError_ErrorString(t *testing.T) {
	rlErr := llm.NewRateLimitError("openai", fmt.Errorf("rate limited"), 30)

	assert.Contains(t, rlErr.Error(), "openai")
	assert.Contains(t, rlErr.Error(), "rate limited")
	assert.Contains(t, rlErr.Error(), "30s")
}

func TestRateLimitError_ErrorsAs(t *testing.T) {
	underlying := fmt.Errorf("rate limited")
	wrapped := fmt.Errorf("complete failed: %w", llm.NewRateLimitError("claude", underlying, 30))

	var target *llm.RateLimitError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "claude", target.Provider)
	assert.Equal(t, 30*time.Second, target.RetryAfter)
	assert.ErrorIs(t, wrapped, underlying)
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	rlErr := llm.NewRateLimitError("gemini", fmt.Errorf("err"), 0)
	assert.Equal(t, 60*time.Second, rlErr.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, llm.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, llm.ParseRetryAfterHeader("soon"))
	assert.Equal(t, 45, llm.ParseRetryAfterHeader(" 45 "))

	future := time.Now().Add(2 * time.Minute).UTC().Format(http.TimeFormat)
	secs := llm.ParseRetryAfterHeader(future)
	assert.InDelta(t, 120, secs, 3)

	past := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
	assert.Equal(t, 0, llm.ParseRetryAfterHeader(past))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", llm.Truncate("abc", 5))
	assert.Equal(t, "ab...", llm.Truncate("abcdef", 2))
	assert.Equal(t, "£1,...", llm.Truncate("£1,200,000", 3))
	assert.Equal(t, "£€", llm.Truncate("£€", 2))
}
