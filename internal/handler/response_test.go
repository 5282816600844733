package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"filinglens/internal/domain"
	"filinglens/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid request", fmt.Errorf("%w: filing.category is required", domain.ErrInvalidRequest), http.StatusBadRequest, "INVALID_REQUEST"},
		{"invalid url", domain.ErrInvalidDocumentURL, http.StatusBadRequest, "INVALID_DOCUMENT_URL"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"cache miss", domain.ErrCacheEntryNotFound, http.StatusNotFound, "CACHE_ENTRY_NOT_FOUND"},
		{"upstream 404", &domain.RetrievalError{StatusCode: 404}, http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
		{"upstream 413", &domain.RetrievalError{StatusCode: 413}, http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE"},
		{"upstream 500", &domain.RetrievalError{StatusCode: 500}, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"unreachable", &domain.RetrievalError{Err: errors.New("dial tcp: refused")}, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"extraction", &domain.ExtractionError{DocumentType: domain.DocumentTypePDF, Err: errors.New("no text")}, http.StatusUnprocessableEntity, "EXTRACTION_FAILED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainError_UpstreamStatusInMessage(t *testing.T) {
	_, _, msg := handler.MapDomainError(fmt.Errorf("fetching: %w", &domain.RetrievalError{StatusCode: 503}))
	assert.Contains(t, msg, "503")
}
