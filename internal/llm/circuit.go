package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"filinglens/internal/port"
)

// circuitState tracks rate-limit backoff for a single model.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// CircuitModel skips calls to a rate-limited model until its Retry-After window
// has passed, so requests fall back locally without touching the network.
// It implements port.AnalysisModel.
type CircuitModel struct {
	model   port.AnalysisModel
	name    string
	circuit *circuitState
	logger  *zap.Logger
}

// NewCircuitModel wraps model with rate-limit backoff.
func NewCircuitModel(model port.AnalysisModel, name string, logger *zap.Logger) *CircuitModel {
	return &CircuitModel{
		model:   model,
		name:    name,
		circuit: &circuitState{},
		logger:  logger,
	}
}

func (m *CircuitModel) Complete(ctx context.Context, input port.CompletionInput) (*port.CompletionOutput, error) {
	now := time.Now()
	if resetAt, open := m.circuit.isOpenWithReset(now); open {
		m.logger.Debug("skipping model call, circuit open",
			zap.String("provider", m.name),
			zap.Time("reset_at", resetAt),
		)
		return nil, NewRateLimitError(m.name, fmt.Errorf("circuit open"), int(time.Until(resetAt).Seconds())+1)
	}

	out, err := m.model.Complete(ctx, input)
	if err == nil {
		return out, nil
	}

	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		resetAt := now.Add(rlErr.RetryAfter)
		m.circuit.open(resetAt)
		m.logger.Warn("model rate limited, opening circuit",
			zap.String("provider", m.name),
			zap.Time("reset_at", resetAt),
		)
	}
	return nil, err
}
