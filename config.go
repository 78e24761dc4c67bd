package deprecations

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RunConfig is the deserialized run configuration file. It controls which
// providers a batch scrape covers and where output lands; transport
// settings apply to every provider's fetcher.
type RunConfig struct {
	Providers []ProviderConfig `yaml:"providers"`
	Output    OutputConfig     `yaml:"output"`
	Scraper   ScraperYAML      `yaml:"scraper"`
	RateRPS   float64          `yaml:"rate_rps"`
}

// ProviderConfig enables or disables a registered provider.
type ProviderConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// OutputConfig names the flat-file publishing targets.
type OutputConfig struct {
	DataPath string `yaml:"data_path"`
	FeedDir  string `yaml:"feed_dir"`
}

// ScraperYAML is the YAML shape of ScraperConfig.
type ScraperYAML struct {
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	MaxRetries        int     `yaml:"max_retries"`
	RetryDelaySeconds float64 `yaml:"retry_delay_seconds"`
	UserAgent         string  `yaml:"user_agent"`
}

// DefaultRunConfig returns the configuration used when no file is present:
// every registered provider enabled, outputs under the working directory.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Output: OutputConfig{
			DataPath: "data.json",
			FeedDir:  "docs/v1",
		},
		RateRPS: 1,
	}
}

// LoadRunConfig reads a YAML run configuration. A missing file is not an
// error; defaults apply.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, Errorf(EINVALID, "invalid run config %s: %v", path, err)
	}
	if cfg.Output.DataPath == "" {
		cfg.Output.DataPath = "data.json"
	}
	if cfg.Output.FeedDir == "" {
		cfg.Output.FeedDir = "docs/v1"
	}
	if cfg.RateRPS <= 0 {
		cfg.RateRPS = 1
	}
	return cfg, nil
}

// ScraperConfig converts the YAML transport settings, falling back to
// defaults for unset fields.
func (c RunConfig) ScraperConfig() ScraperConfig {
	sc := DefaultScraperConfig()
	if c.Scraper.TimeoutSeconds > 0 {
		sc.Timeout = time.Duration(c.Scraper.TimeoutSeconds) * time.Second
	}
	if c.Scraper.MaxRetries > 0 {
		sc.MaxRetries = c.Scraper.MaxRetries
	}
	if c.Scraper.RetryDelaySeconds > 0 {
		sc.RetryDelay = time.Duration(c.Scraper.RetryDelaySeconds * float64(time.Second))
	}
	if c.Scraper.UserAgent != "" {
		sc.UserAgent = c.Scraper.UserAgent
	}
	return sc
}

// Enabled reports whether a provider participates in the batch. Providers
// absent from the config default to enabled.
func (c RunConfig) Enabled(provider string) bool {
	for _, p := range c.Providers {
		if p.Name == provider {
			return p.Enabled
		}
	}
	return true
}
