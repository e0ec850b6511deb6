// Package config defines client configuration structures and loading hooks.
package config

import (
	"os"
	"path/filepath"
)

// Default timing constants (milliseconds).
const (
	defaultTimeoutMS  = 30_000
	defaultCacheTTLMS = 10 * 60 * 1000
)

// Config contains process configuration.
type Config struct {
	// BaseURL is the platform API root, e.g. "http://127.0.0.1:8000".
	BaseURL string `koanf:"base_url"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TimeoutMS bounds every HTTP request.
	TimeoutMS int `koanf:"timeout_ms"`

	// SessionFile is where the session token and role persist between runs.
	SessionFile string `koanf:"session_file"`

	// CacheFile is the SQLite reference-list cache. Empty disables caching.
	CacheFile string `koanf:"cache_file"`

	// CacheTTLMS is how long cached reference lists stay fresh.
	CacheTTLMS int `koanf:"cache_ttl_ms"`

	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New returns a Config populated with defaults. Durable files land under the
// user config directory when one is resolvable, next to the binary otherwise.
func New() *Config {
	dir := "."
	if base, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(base, "talentlink")
	}
	return &Config{
		BaseURL:     "http://127.0.0.1:8000",
		LogLevel:    "info",
		TimeoutMS:   defaultTimeoutMS,
		SessionFile: filepath.Join(dir, "session.json"),
		CacheFile:   filepath.Join(dir, "reference.db"),
		CacheTTLMS:  defaultCacheTTLMS,
		MetricsAddr: "",
	}
}
