package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filinglens/internal/domain"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) ExtractText(ctx context.Context, documentURL string) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, documentURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}

func (m *MockDocumentService) Proxy(ctx context.Context, documentURL string) (*domain.DocumentStream, error) {
	args := m.Called(ctx, documentURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentStream), args.Error(1)
}
