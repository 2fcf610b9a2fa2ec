// Package config loads tool configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/lexchunk/pkg/fetch"
	"github.com/coolbeans/lexchunk/pkg/watch"
)

// Duration wraps time.Duration so that values like "30s" or "2h" work
// in both YAML files and environment variables.
type Duration time.Duration

// UnmarshalYAML parses a duration string from a YAML scalar.
func (duration *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*duration = Duration(parsed)
	return nil
}

// UnmarshalText parses a duration string from an environment variable.
func (duration *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*duration = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (duration Duration) Std() time.Duration {
	return time.Duration(duration)
}

// Config holds the full tool configuration. Values are resolved in
// order: built-in defaults, then the YAML file, then environment
// variables.
type Config struct {
	// UserAgent is sent with all HTTP requests.
	UserAgent string `yaml:"user_agent" env:"LEXCHUNK_USER_AGENT"`

	// Timeout is the per-request HTTP timeout.
	Timeout Duration `yaml:"timeout" env:"LEXCHUNK_TIMEOUT"`

	// RateLimit is the minimum interval between HTTP requests.
	RateLimit Duration `yaml:"rate_limit" env:"LEXCHUNK_RATE_LIMIT"`

	// MinContentLength is the minimum extracted document length.
	MinContentLength int `yaml:"min_content_length" env:"LEXCHUNK_MIN_CONTENT_LENGTH"`

	// CacheDir is the directory for fetched-document caching.
	// Empty disables the cache.
	CacheDir string `yaml:"cache_dir" env:"LEXCHUNK_CACHE_DIR"`

	// CacheTTL is the time-to-live for cached documents.
	CacheTTL Duration `yaml:"cache_ttl" env:"LEXCHUNK_CACHE_TTL"`

	// WatchPatterns are glob patterns for drop-folder watching.
	WatchPatterns []string `yaml:"watch_patterns" env:"LEXCHUNK_WATCH_PATTERNS" envSeparator:","`

	// WatchDebounce is the quiet period before a dropped file is chunked.
	WatchDebounce Duration `yaml:"watch_debounce" env:"LEXCHUNK_WATCH_DEBOUNCE"`

	// OutputDir is where chunk exports are written in watch mode.
	// Empty writes exports next to the source files.
	OutputDir string `yaml:"output_dir" env:"LEXCHUNK_OUTPUT_DIR"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		UserAgent:        fetch.DefaultUserAgent,
		Timeout:          Duration(fetch.DefaultTimeout),
		RateLimit:        Duration(fetch.DefaultRateLimit),
		MinContentLength: fetch.DefaultMinContentLength,
		CacheTTL:         Duration(fetch.DefaultCacheTTL),
		WatchPatterns:    watch.DefaultPatterns,
		WatchDebounce:    Duration(watch.DefaultDebounce),
	}
}

// Load builds a Config from defaults, the YAML file at path (if path is
// non-empty), and environment variables, in that order of precedence.
func Load(path string) (Config, error) {
	loadedConfig := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &loadedConfig); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&loadedConfig); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return loadedConfig, nil
}

// FetchConfig maps the tool configuration onto the fetcher's own config.
func (loadedConfig Config) FetchConfig() fetch.Config {
	return fetch.Config{
		UserAgent:        loadedConfig.UserAgent,
		Timeout:          loadedConfig.Timeout.Std(),
		RateLimit:        loadedConfig.RateLimit.Std(),
		MinContentLength: loadedConfig.MinContentLength,
		CacheDir:         loadedConfig.CacheDir,
		CacheTTL:         loadedConfig.CacheTTL.Std(),
	}
}
