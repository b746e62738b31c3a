// Package fetch downloads menu documents and classifies them by content type.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/config"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

const (
	initialBackoff = 1 * time.Second
	maxBackoff     = 30 * time.Second
)

// Client downloads documents over HTTP. Redirects are followed and a
// browser-like User-Agent is sent so merchant portals serve the document
// instead of an interstitial.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxRetries int
	logger     zerolog.Logger
}

// NewClient creates a fetch client from configuration.
func NewClient(cfg config.FetchConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		logger:     logger.With().Str("component", "fetch").Logger(),
	}
}

// Fetch downloads one URL and classifies the response body. A terminal
// non-success status yields a fetch error. Transport failures that survive
// all retries are reported as an unknown-kind document with no error so the
// caller can skip the URL and keep the batch alive.
func (c *Client) Fetch(ctx context.Context, url string) (*domain.SourceDocument, error) {
	resp, err := c.retryWithBackoff(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.userAgent)
		return c.httpClient.Do(req)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn().Str("url", url).Err(err).Msg("Fetch failed after retries, skipping URL")
		return &domain.SourceDocument{URL: url, Kind: domain.KindUnknown}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, domain.FetchError(url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn().Str("url", url).Err(err).Msg("Failed to read response body, skipping URL")
		return &domain.SourceDocument{URL: url, Kind: domain.KindUnknown}, nil
	}

	kind := classify(resp.Header.Get("Content-Type"))
	c.logger.Debug().
		Str("url", url).
		Str("kind", string(kind)).
		Int("bytes", len(data)).
		Msg("Fetched document")

	return &domain.SourceDocument{URL: url, Kind: kind, Data: data}, nil
}

// classify maps a Content-Type header onto a document kind.
func classify(contentType string) domain.ContentKind {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "application/pdf"):
		return domain.KindPDF
	case strings.Contains(ct, "image"):
		return domain.KindImage
	default:
		return domain.KindUnknown
	}
}

// shouldRetry determines if a status code is retryable
func shouldRetry(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests: // 429
		return true
	case http.StatusInternalServerError: // 500
		return true
	case http.StatusBadGateway: // 502
		return true
	case http.StatusServiceUnavailable: // 503
		return true
	case http.StatusGatewayTimeout: // 504
		return true
	default:
		return false
	}
}

// calculateBackoff calculates exponential backoff duration
func calculateBackoff(attempt int) time.Duration {
	backoff := float64(initialBackoff) * math.Pow(2, float64(attempt))
	if backoff > float64(maxBackoff) {
		backoff = float64(maxBackoff)
	}
	return time.Duration(backoff)
}

// retryWithBackoff wraps an HTTP request with retry logic
func (c *Client) retryWithBackoff(ctx context.Context, reqFunc func() (*http.Response, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := reqFunc()

		if err == nil && resp.StatusCode == http.StatusOK {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)

			if !shouldRetry(resp.StatusCode) {
				return resp, nil // Return non-retryable statuses immediately
			}

			if resp.Body != nil {
				resp.Body.Close()
			}
		}

		if attempt == c.maxRetries {
			break
		}

		backoff := calculateBackoff(attempt)
		c.logger.Warn().
			Int("attempt", attempt+1).
			Int("max_retries", c.maxRetries).
			Dur("backoff", backoff).
			Err(lastErr).
			Msg("Request failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", c.maxRetries, lastErr)
}
