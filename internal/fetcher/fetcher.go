package fetcher

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"filinglens/internal/config"
	"filinglens/internal/domain"
)

const (
	defaultUserAgent = "FilingLens/1.0"
	maxErrorBody     = 2048
)

// Fetcher retrieves documents from the registry document service using HTTP Basic
// auth with the registry API key as username and an empty password.
// It implements port.DocumentFetcher.
type Fetcher struct {
	apiKey       string
	userAgent    string
	allowedHosts map[string]bool
	maxBytes     int64
	client       *http.Client
	logger       *zap.Logger
}

// New creates a Fetcher from the registry config.
func New(cfg *config.RegistryConfig, logger *zap.Logger) *Fetcher {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return NewWithClient(cfg, &http.Client{Timeout: timeout}, logger)
}

// NewWithClient creates a Fetcher that uses the given HTTP client (for testing).
func NewWithClient(cfg *config.RegistryConfig, client *http.Client, logger *zap.Logger) *Fetcher {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	hosts := make(map[string]bool, len(cfg.AllowedHosts))
	for _, h := range cfg.AllowedHosts {
		hosts[strings.ToLower(h)] = true
	}
	return &Fetcher{
		apiKey:       cfg.APIKey,
		userAgent:    ua,
		allowedHosts: hosts,
		maxBytes:     cfg.MaxDocumentMB << 20,
		client:       client,
		logger:       logger,
	}
}

// Fetch downloads the full document into memory.
func (f *Fetcher) Fetch(ctx context.Context, documentURL string) (*domain.RawDocument, error) {
	resp, err := f.do(ctx, documentURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var body io.Reader = resp.Body
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &domain.RetrievalError{URL: documentURL, Err: fmt.Errorf("reading body: %w", err)}
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, &domain.RetrievalError{
			URL:        documentURL,
			StatusCode: http.StatusRequestEntityTooLarge,
			Body:       fmt.Sprintf("document exceeds %d bytes", f.maxBytes),
		}
	}

	f.logger.Debug("document fetched",
		zap.String("url", documentURL),
		zap.String("content_type", resp.Header.Get("Content-Type")),
		zap.Int("bytes", len(data)),
	)
	return &domain.RawDocument{
		Body:        data,
		ContentType: resp.Header.Get("Content-Type"),
		URL:         documentURL,
	}, nil
}

// Open starts the download and hands the unread body to the caller.
func (f *Fetcher) Open(ctx context.Context, documentURL string) (*domain.DocumentStream, error) {
	resp, err := f.do(ctx, documentURL)
	if err != nil {
		return nil, err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	f.logger.Debug("proxying document",
		zap.String("url", documentURL),
		zap.Int64("content_length", resp.ContentLength),
	)
	return &domain.DocumentStream{
		Body:          resp.Body,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		Filename:      Filename(documentURL, contentType),
	}, nil
}

func (f *Fetcher) do(ctx context.Context, documentURL string) (*http.Response, error) {
	if err := f.checkURL(documentURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocumentURL, err)
	}
	req.SetBasicAuth(f.apiKey, "")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.RetrievalError{URL: documentURL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		f.logger.Warn("document retrieval failed",
			zap.String("url", documentURL),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &domain.RetrievalError{
			URL:        documentURL,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}

// checkURL rejects anything that is not an absolute http(s) URL on an allowed host,
// since the registry credential is attached to every request.
func (f *Fetcher) checkURL(documentURL string) error {
	u, err := url.Parse(documentURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDocumentURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) url", domain.ErrInvalidDocumentURL, documentURL)
	}
	if len(f.allowedHosts) > 0 && !f.allowedHosts[strings.ToLower(u.Hostname())] {
		return fmt.Errorf("%w: host %q is not allowed", domain.ErrInvalidDocumentURL, u.Hostname())
	}
	return nil
}

// Filename synthesizes an attachment filename from a content URL of the form
// .../document/{id}/content.
func Filename(documentURL, contentType string) string {
	ext := ".pdf"
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "text/html", "application/xhtml+xml":
			ext = ".html"
		case "text/plain":
			ext = ".txt"
		}
	}

	u, err := url.Parse(documentURL)
	if err != nil {
		return "document" + ext
	}
	dir, last := path.Split(strings.TrimSuffix(u.Path, "/"))
	if last != "content" {
		return "document" + ext
	}
	id := path.Base(strings.TrimSuffix(dir, "/"))
	if id == "" || id == "." || id == "/" || id == "document" {
		return "document" + ext
	}
	return id + ext
}
