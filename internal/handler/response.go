package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"filinglens/internal/domain"
	"filinglens/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var (
		retErr *domain.RetrievalError
		extErr *domain.ExtractionError
	)
	switch {
	case errors.Is(err, domain.ErrInvalidDocumentURL):
		return http.StatusBadRequest, "INVALID_DOCUMENT_URL", "document_url must be an absolute http(s) URL on an allowed host"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "INVALID_REQUEST", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrCacheEntryNotFound):
		return http.StatusNotFound, "CACHE_ENTRY_NOT_FOUND", "no cached analysis for this document"
	case errors.As(err, &retErr):
		switch retErr.StatusCode {
		case http.StatusNotFound:
			return http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"
		case http.StatusRequestEntityTooLarge:
			return http.StatusRequestEntityTooLarge, "DOCUMENT_TOO_LARGE", "document exceeds maximum allowed size"
		case 0:
			return http.StatusBadGateway, "UPSTREAM_ERROR", "document service unreachable"
		default:
			return http.StatusBadGateway, "UPSTREAM_ERROR",
				fmt.Sprintf("document service returned status %d", retErr.StatusCode)
		}
	case errors.As(err, &extErr):
		return http.StatusUnprocessableEntity, "EXTRACTION_FAILED",
			fmt.Sprintf("could not extract text from %s document: %v", extErr.DocumentType, extErr.Err)
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		middleware.GetLogger(c).Error("request failed", zap.String("code", code), zap.Error(err))
	}
	RespondError(c, status, code, msg)
}
