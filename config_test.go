package deprecations_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRunConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := deprecations.LoadRunConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "data.json", cfg.Output.DataPath)
		assert.Equal(t, "docs/v1", cfg.Output.FeedDir)
		assert.Equal(t, float64(1), cfg.RateRPS)
	})

	t.Run("reads providers and scraper settings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
providers:
  - name: Google
    enabled: true
  - name: OpenAI
    enabled: false
output:
  data_path: out/data.json
  feed_dir: out/feeds
scraper:
  timeout_seconds: 10
  max_retries: 5
  retry_delay_seconds: 0.5
  user_agent: test-agent
rate_rps: 2
`), 0o600))

		cfg, err := deprecations.LoadRunConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "out/data.json", cfg.Output.DataPath)
		assert.Equal(t, "out/feeds", cfg.Output.FeedDir)
		assert.Equal(t, float64(2), cfg.RateRPS)

		sc := cfg.ScraperConfig()
		assert.Equal(t, 10*time.Second, sc.Timeout)
		assert.Equal(t, 5, sc.MaxRetries)
		assert.Equal(t, 500*time.Millisecond, sc.RetryDelay)
		assert.Equal(t, "test-agent", sc.UserAgent)
	})

	t.Run("invalid yaml fails with EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("providers: [unclosed"), 0o600))

		_, err := deprecations.LoadRunConfig(path)
		require.Error(t, err)
		assert.Equal(t, deprecations.EINVALID, deprecations.ErrorCode(err))
	})
}

func TestRunConfig_Enabled(t *testing.T) {
	t.Parallel()

	cfg := deprecations.RunConfig{
		Providers: []deprecations.ProviderConfig{
			{Name: "Google", Enabled: true},
			{Name: "OpenAI", Enabled: false},
		},
	}

	assert.True(t, cfg.Enabled("Google"))
	assert.False(t, cfg.Enabled("OpenAI"))
	assert.True(t, cfg.Enabled("Anthropic"), "unlisted providers default to enabled")
}

func TestRunConfig_ScraperConfigDefaults(t *testing.T) {
	t.Parallel()

	sc := deprecations.RunConfig{}.ScraperConfig()

	assert.Equal(t, 30*time.Second, sc.Timeout)
	assert.Equal(t, 3, sc.MaxRetries)
	assert.Equal(t, time.Second, sc.RetryDelay)
	assert.NotEmpty(t, sc.UserAgent)
}
