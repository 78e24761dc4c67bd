package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
	deprecationshttp "github.com/leblancfg/deprecations-rss/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() deprecations.ScraperConfig {
	return deprecations.ScraperConfig{
		Timeout:    2 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
		UserAgent:  "test-agent",
	}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			w.Write([]byte("<html>ok</html>"))
		}))
		defer srv.Close()

		f := deprecationshttp.NewFetcher(testConfig())
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", body)
	})

	t.Run("retries transient failures until success", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte("recovered"))
		}))
		defer srv.Close()

		f := deprecationshttp.NewFetcher(testConfig())
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "recovered", body)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("surfaces EUNAVAILABLE once the retry budget is spent", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := deprecationshttp.NewFetcher(testConfig())
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, deprecations.EUNAVAILABLE, deprecations.ErrorCode(err))
		assert.Equal(t, int32(3), calls.Load(), "non-retryable statuses still exhaust the same budget")
	})

	t.Run("stops early when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := deprecationshttp.NewFetcher(testConfig())
		defer f.Close()

		_, err := f.Fetch(ctx, srv.URL)
		require.Error(t, err)
		assert.Equal(t, deprecations.EUNAVAILABLE, deprecations.ErrorCode(err))
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := deprecationshttp.NewFetcher(testConfig())

	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	require.NoError(t, f.Close())

	// Close resets the client; the next fetch recreates it.
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", body)

	require.NoError(t, f.Close())
}
