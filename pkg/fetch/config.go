// Package fetch retrieves legal documents from EUR-Lex and similar
// publication sites, extracting the main document text from HTML pages.
package fetch

import (
	"time"
)

// DefaultUserAgent is the default User-Agent header sent with requests.
const DefaultUserAgent = "lexchunk-fetch/1.0"

// DefaultTimeout is the default per-request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultRateLimit is the default minimum interval between HTTP requests.
const DefaultRateLimit = 2 * time.Second

// DefaultMinContentLength is the minimum number of characters an
// extracted document must contain to be considered real content rather
// than an error page or metadata stub.
const DefaultMinContentLength = 200

// DefaultCacheTTL is the default time-to-live for cached documents.
const DefaultCacheTTL = 24 * time.Hour

// maxBodyBytes caps the response body size read from a single request.
const maxBodyBytes = 10 * 1024 * 1024

// Config holds configuration for document fetching.
type Config struct {
	// UserAgent is the User-Agent header sent with requests.
	UserAgent string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// RateLimit is the minimum interval between HTTP requests.
	RateLimit time.Duration

	// MinContentLength is the minimum extracted text length, in
	// characters, below which a fetch fails with ErrContentTooShort.
	MinContentLength int

	// CacheDir is the directory for persistent document caching.
	// If empty, caching is disabled.
	CacheDir string

	// CacheTTL is the time-to-live for cached documents.
	CacheTTL time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent:        DefaultUserAgent,
		Timeout:          DefaultTimeout,
		RateLimit:        DefaultRateLimit,
		MinContentLength: DefaultMinContentLength,
		CacheTTL:         DefaultCacheTTL,
	}
}
