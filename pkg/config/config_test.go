package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "lexchunk.yaml")
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return configPath
}

func TestLoad_Defaults(t *testing.T) {
	loadedConfig, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := Default()
	if loadedConfig.UserAgent != defaults.UserAgent {
		t.Errorf("UserAgent = %q, want default %q", loadedConfig.UserAgent, defaults.UserAgent)
	}
	if loadedConfig.Timeout != defaults.Timeout {
		t.Errorf("Timeout = %v, want default %v", loadedConfig.Timeout, defaults.Timeout)
	}
	if loadedConfig.WatchDebounce != defaults.WatchDebounce {
		t.Errorf("WatchDebounce = %v, want default %v", loadedConfig.WatchDebounce, defaults.WatchDebounce)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	configPath := writeConfigFile(t, `
user_agent: custom-agent/2.0
rate_limit: 5s
min_content_length: 50
watch_patterns:
  - "*.xml"
`)

	loadedConfig, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loadedConfig.UserAgent != "custom-agent/2.0" {
		t.Errorf("UserAgent = %q, want YAML value", loadedConfig.UserAgent)
	}
	if loadedConfig.RateLimit != Duration(5*time.Second) {
		t.Errorf("RateLimit = %v, want 5s", loadedConfig.RateLimit)
	}
	if loadedConfig.MinContentLength != 50 {
		t.Errorf("MinContentLength = %d, want 50", loadedConfig.MinContentLength)
	}
	if len(loadedConfig.WatchPatterns) != 1 || loadedConfig.WatchPatterns[0] != "*.xml" {
		t.Errorf("WatchPatterns = %v, want [*.xml]", loadedConfig.WatchPatterns)
	}
	// Values absent from the file keep their defaults.
	if loadedConfig.Timeout != Default().Timeout {
		t.Errorf("Timeout = %v, want default", loadedConfig.Timeout)
	}
}

func TestLoad_EnvironmentOverridesYAML(t *testing.T) {
	configPath := writeConfigFile(t, `user_agent: from-yaml/1.0`)

	t.Setenv("LEXCHUNK_USER_AGENT", "from-env/1.0")
	t.Setenv("LEXCHUNK_CACHE_TTL", "2h")
	t.Setenv("LEXCHUNK_WATCH_PATTERNS", "*.txt,*.html")

	loadedConfig, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loadedConfig.UserAgent != "from-env/1.0" {
		t.Errorf("UserAgent = %q, want environment value", loadedConfig.UserAgent)
	}
	if loadedConfig.CacheTTL != Duration(2*time.Hour) {
		t.Errorf("CacheTTL = %v, want 2h", loadedConfig.CacheTTL)
	}
	if len(loadedConfig.WatchPatterns) != 2 {
		t.Errorf("WatchPatterns = %v, want two patterns from environment", loadedConfig.WatchPatterns)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load succeeded for a missing file, want error")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	configPath := writeConfigFile(t, "user_agent: [unclosed")
	if _, err := Load(configPath); err == nil {
		t.Error("Load succeeded for malformed YAML, want error")
	}
}

func TestFetchConfig(t *testing.T) {
	loadedConfig := Default()
	loadedConfig.CacheDir = "/tmp/cache"

	fetchConfig := loadedConfig.FetchConfig()
	if fetchConfig.UserAgent != loadedConfig.UserAgent {
		t.Errorf("UserAgent = %q, want %q", fetchConfig.UserAgent, loadedConfig.UserAgent)
	}
	if fetchConfig.CacheDir != "/tmp/cache" {
		t.Errorf("CacheDir = %q, want /tmp/cache", fetchConfig.CacheDir)
	}
}
