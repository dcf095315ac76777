// Package googlebooks fetches book metadata from the Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/bud-backend/internal/domain"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// Provider queries the Google Books API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the public API.
func NewProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "googlebooks"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(baseURL, "", 5*time.Second, logger)
}

// Search returns up to maxResults normalized volumes matching query.
// Any transport failure or non-200 answer yields domain.ErrProviderUnavailable.
func (p *Provider) Search(ctx context.Context, query string, maxResults int) ([]domain.GoogleVolume, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("printType", "books")
	if p.apiKey != "" {
		params.Set("key", p.apiKey)
	}

	var body volumesResponse
	status, err := p.getJSON(ctx, p.baseURL+"/volumes?"+params.Encode(), &body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("googlebooks: search status %d: %w", status, domain.ErrProviderUnavailable)
	}

	out := make([]domain.GoogleVolume, 0, len(body.Items))
	for _, v := range body.Items {
		if v.ID == "" {
			continue
		}
		out = append(out, v.toDomain())
	}

	p.log.DebugContext(ctx, "googlebooks search",
		slog.String("query", query),
		slog.Int("results", len(out)),
	)

	return out, nil
}

// GetVolume returns a single normalized volume. Returns nil, nil if Google
// does not know the id (HTTP 404).
func (p *Provider) GetVolume(ctx context.Context, id string) (*domain.GoogleVolume, error) {
	reqURL := p.baseURL + "/volumes/" + url.PathEscape(id)
	if p.apiKey != "" {
		reqURL += "?key=" + url.QueryEscape(p.apiKey)
	}

	var v volume
	status, err := p.getJSON(ctx, reqURL, &v)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, nil
	case status != http.StatusOK:
		return nil, fmt.Errorf("googlebooks: volume status %d: %w", status, domain.ErrProviderUnavailable)
	}

	out := v.toDomain()
	return &out, nil
}

// getJSON performs a GET and decodes a 200 body into dst. Non-200 statuses
// are returned without decoding.
func (p *Provider) getJSON(ctx context.Context, reqURL string, dst any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("googlebooks: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req)
	if err != nil {
		p.log.ErrorContext(ctx, "googlebooks request failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("googlebooks: %v: %w", err, domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return 0, fmt.Errorf("googlebooks: decode json: %v: %w", err, domain.ErrProviderUnavailable)
	}
	return resp.StatusCode, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	p.log.WarnContext(ctx, "googlebooks retry", slog.String("reason", reason))

	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return p.httpClient.Do(req.Clone(ctx))
}
