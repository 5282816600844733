package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidDocumentURL = errors.New("invalid document url")
	ErrCacheEntryNotFound = errors.New("cache entry not found")
	ErrDocumentTooShort   = errors.New("document appears to be empty or too short")
	ErrUnauthorized       = errors.New("unauthorized")
)

// RetrievalError reports a failed document fetch. StatusCode is 0 when the
// upstream service could not be reached.
type RetrievalError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("retrieving %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("retrieving %s: upstream status %d: %s", e.URL, e.StatusCode, e.Body)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// ExtractionError reports that a document's bytes could not be turned into usable text.
type ExtractionError struct {
	DocumentType DocumentType
	Err          error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s text: %v", e.DocumentType, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// AnalysisModelError wraps a failed language model call. It never leaves the analysis package.
type AnalysisModelError struct {
	Provider string
	Err      error
}

func (e *AnalysisModelError) Error() string {
	return fmt.Sprintf("analysis model %s: %v", e.Provider, e.Err)
}

func (e *AnalysisModelError) Unwrap() error {
	return e.Err
}
