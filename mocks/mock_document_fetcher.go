package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filinglens/internal/domain"
)

// MockDocumentFetcher is a mock implementation of port.DocumentFetcher.
type MockDocumentFetcher struct {
	mock.Mock
}

func (m *MockDocumentFetcher) Fetch(ctx context.Context, documentURL string) (*domain.RawDocument, error) {
	args := m.Called(ctx, documentURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawDocument), args.Error(1)
}

func (m *MockDocumentFetcher) Open(ctx context.Context, documentURL string) (*domain.DocumentStream, error) {
	args := m.Called(ctx, documentURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentStream), args.Error(1)
}
