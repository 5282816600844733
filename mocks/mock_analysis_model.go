package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filinglens/internal/port"
)

// MockAnalysisModel is a mock implementation of port.AnalysisModel.
type MockAnalysisModel struct {
	mock.Mock
}

func (m *MockAnalysisModel) Complete(ctx context.Context, input port.CompletionInput) (*port.CompletionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.CompletionOutput), args.Error(1)
}
