package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filinglens/internal/domain"
	"filinglens/internal/extract"
	"filinglens/internal/service"
	"filinglens/mocks"
)

const docURL = "https://document-api.company-information.service.gov.uk/document/abc123/content"

const htmlBody = `<html><head><style>p{}</style></head><body>
<h1>Directors' report</h1>
<p>The directors present their report and the audited financial statements for the year.</p>
<script>track()</script></body></html>`

func newDocumentService(fetcher *mocks.MockDocumentFetcher) service.DocumentService {
	return service.NewDocumentService(fetcher, extract.NewExtractor(zap.NewNop()), zap.NewNop())
}

func TestDocumentService_ExtractText_HTML(t *testing.T) {
	fetcher := new(mocks.MockDocumentFetcher)
	fetcher.On("Fetch", mock.Anything, docURL).Return(&domain.RawDocument{
		Body:        []byte(htmlBody),
		ContentType: "text/html; charset=utf-8",
		URL:         docURL,
	}, nil)
	svc := newDocumentService(fetcher)

	res, err := svc.ExtractText(context.Background(), docURL)

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeHTML, res.DocumentType)
	assert.Equal(t, docURL, res.OriginalURL)
	assert.Contains(t, res.ExtractedText, "The directors present their report")
	assert.NotContains(t, res.ExtractedText, "track()")
	assert.Equal(t, len([]rune(res.ExtractedText)), res.ContentLength)
	assert.False(t, res.Placeholder)
	fetcher.AssertExpectations(t)
}

func TestDocumentService_ExtractText_PDFNeverFails(t *testing.T) {
	fetcher := new(mocks.MockDocumentFetcher)
	fetcher.On("Fetch", mock.Anything, docURL).Return(&domain.RawDocument{
		Body:        []byte{0x00, 0x01, 0x02},
		ContentType: "application/pdf",
		URL:         docURL,
	}, nil)
	svc := newDocumentService(fetcher)

	res, err := svc.ExtractText(context.Background(), docURL)

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypePDF, res.DocumentType)
	assert.True(t, res.Placeholder)
	assert.NotEmpty(t, res.ExtractedText)
}

func TestDocumentService_ExtractText_TooShort(t *testing.T) {
	fetcher := new(mocks.MockDocumentFetcher)
	fetcher.On("Fetch", mock.Anything, docURL).Return(&domain.RawDocument{
		Body:        []byte("tiny"),
		ContentType: "text/plain",
		URL:         docURL,
	}, nil)
	svc := newDocumentService(fetcher)

	_, err := svc.ExtractText(context.Background(), docURL)

	var extErr *domain.ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, domain.DocumentTypeText, extErr.DocumentType)
	assert.ErrorIs(t, err, domain.ErrDocumentTooShort)
}

func TestDocumentService_ExtractText_RetrievalError(t *testing.T) {
	fetcher := new(mocks.MockDocumentFetcher)
	upstream := &domain.RetrievalError{URL: docURL, StatusCode: 404, Body: "not found"}
	fetcher.On("Fetch", mock.Anything, docURL).Return(nil, upstream)
	svc := newDocumentService(fetcher)

	_, err := svc.ExtractText(context.Background(), docURL)

	var retErr *domain.RetrievalError
	require.True(t, errors.As(err, &retErr))
	assert.Equal(t, 404, retErr.StatusCode)
}

func TestDocumentService_ExtractText_EmptyURL(t *testing.T) {
	fetcher := new(mocks.MockDocumentFetcher)
	svc := newDocumentService(fetcher)

	_, err := svc.ExtractText(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestDocumentService_Proxy(t *testing.T) {
	fetcher := new(mocks.MockDocumentFetcher)
	stream := &domain.DocumentStream{
		Body:          io.NopCloser(strings.NewReader("%PDF-1.7")),
		ContentType:   "application/pdf",
		ContentLength: 8,
		Filename:      "abc123.pdf",
	}
	fetcher.On("Open", mock.Anything, docURL).Return(stream, nil)
	svc := newDocumentService(fetcher)

	got, err := svc.Proxy(context.Background(), docURL)

	require.NoError(t, err)
	assert.Same(t, stream, got)
}
