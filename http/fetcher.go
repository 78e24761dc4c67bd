// Package http provides the retrying HTTP implementation of
// deprecations.Fetcher used to pull provider pages.
package http

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Ensure Fetcher implements deprecations.Fetcher at compile time.
var _ deprecations.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML over HTTP with retries and exponential backoff.
// The underlying client is created lazily on first use; Close releases it
// and a subsequent Fetch recreates it.
type Fetcher struct {
	config deprecations.ScraperConfig

	mu     sync.Mutex
	client *http.Client
}

// NewFetcher creates a Fetcher with the given transport settings. Zero
// values fall back to DefaultScraperConfig.
func NewFetcher(config deprecations.ScraperConfig) *Fetcher {
	def := deprecations.DefaultScraperConfig()
	if config.Timeout <= 0 {
		config.Timeout = def.Timeout
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = def.MaxRetries
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = def.RetryDelay
	}
	if config.UserAgent == "" {
		config.UserAgent = def.UserAgent
	}
	return &Fetcher{config: config}
}

// httpClient returns the shared client, constructing it on first use.
func (f *Fetcher) httpClient() *http.Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.client == nil {
		f.client = &http.Client{Timeout: f.config.Timeout}
	}
	return f.client
}

// Fetch retrieves the page body. Transport errors and non-2xx statuses are
// retried up to the configured attempt budget, waiting RetryDelay * 2^attempt
// between attempts; once the budget is spent the last error surfaces as
// EUNAVAILABLE. The context bounds both requests and backoff sleeps.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	client := f.httpClient()

	var lastErr error
	for attempt := 0; attempt < f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := f.config.RetryDelay * (1 << (attempt - 1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", deprecations.Errorf(deprecations.EUNAVAILABLE, "fetch %s: %v", url, ctx.Err())
			}
		}

		body, err := f.fetchOnce(ctx, client, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return "", deprecations.Errorf(deprecations.EUNAVAILABLE, "fetch %s after %d attempts: %v", url, f.config.MaxRetries, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", deprecations.Errorf(deprecations.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases the client. Internal state returns to "not yet created",
// so the fetcher remains usable afterwards.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.client != nil {
		f.client.CloseIdleConnections()
		f.client = nil
	}
	return nil
}
