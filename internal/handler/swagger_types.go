package handler

import "filinglens/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ExtractRequest represents the document extraction request body.
type ExtractRequest struct {
	DocumentURL string `json:"document_url" binding:"required" example:"https://document-api.company-information.service.gov.uk/document/MzM5NjA0NjY1M2FkaXF6a2N4/content"`
	ParseOnly   bool   `json:"parse_only" example:"true"`
}

// AnalyzeRequest represents the filing analysis request body.
type AnalyzeRequest struct {
	Filing          domain.FilingRef `json:"filing"`
	DocumentContent string           `json:"document_content" example:"Balance sheet as at 31 March 2024..."`
	DocumentURL     string           `json:"document_url" example:"https://document-api.company-information.service.gov.uk/document/MzM5NjA0NjY1M2FkaXF6a2N4/content"`
	Network         *bool            `json:"network" example:"true"`
	UseCache        *bool            `json:"use_cache" example:"true"`
}

// PutCacheEntryRequest represents the cache write request body.
type PutCacheEntryRequest struct {
	DocumentURL string   `json:"document_url" binding:"required" example:"https://document-api.company-information.service.gov.uk/document/MzM5NjA0NjY1M2FkaXF6a2N4/content"`
	Summary     string   `json:"summary" binding:"required" example:"Small company accounts showing a modest profit."`
	Insights    []string `json:"insights" example:"Turnover increased year on year"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"cache store not reachable"`
}

// ClearCacheResponse reports how many entries were removed.
type ClearCacheResponse struct {
	Removed int `json:"removed" example:"12"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
