package eurlex

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultUserAgent is the default User-Agent header sent with EUR-Lex requests.
const DefaultUserAgent = "lexchunk-eurlex/1.0"

// legalContentURLFormat is the EUR-Lex HTML view for a CELEX number.
const legalContentURLFormat = "https://eur-lex.europa.eu/legal-content/EN/TXT/?uri=CELEX:%s"

// ClientConfig holds configuration for a Client.
type ClientConfig struct {
	// RateLimit is the minimum interval between HTTP requests to EUR-Lex.
	// Default: 1 second.
	RateLimit time.Duration

	// CacheTTL is the time-to-live for cached validation results.
	// Default: 1 hour.
	CacheTTL time.Duration

	// HTTPClient is the underlying HTTP client. If nil,
	// http.DefaultClient is used (wrapped with rate limiting).
	HTTPClient HTTPClient

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string
}

// DefaultClientConfig returns a ClientConfig with sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		RateLimit: DefaultRequestInterval,
		CacheTTL:  DefaultCacheTTL,
		UserAgent: DefaultUserAgent,
	}
}

// Client validates EUR-Lex URIs and resolves identifiers to fetchable
// URLs, with rate limiting and result caching.
type Client struct {
	httpClient HTTPClient
	cache      *ValidationCache
	userAgent  string
}

// NewClient creates a Client from the given configuration.
func NewClient(config ClientConfig) *Client {
	underlyingClient := config.HTTPClient
	if underlyingClient == nil {
		underlyingClient = http.DefaultClient
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &Client{
		httpClient: NewRateLimitedHTTPClient(underlyingClient, config.RateLimit),
		cache:      NewValidationCache(cacheTTL),
		userAgent:  userAgent,
	}
}

// ValidateURI performs an HTTP HEAD request to check whether the resource
// exists on EUR-Lex. Results are cached for the configured TTL.
//
// A status code < 400 is considered valid (including redirects). Network
// errors are returned as invalid validation results rather than Go
// errors, since they are expected in normal operation.
func (client *Client) ValidateURI(uri string) (*ValidationResult, error) {
	if cachedResult, found := client.cache.Get(uri); found {
		return &cachedResult, nil
	}

	request, err := http.NewRequest(http.MethodHead, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", uri, err)
	}
	request.Header.Set("User-Agent", client.userAgent)

	response, err := client.httpClient.Do(request)
	if err != nil {
		networkErrorResult := ValidationResult{
			URI:       uri,
			Valid:     false,
			CheckedAt: time.Now(),
			Error:     err.Error(),
		}
		client.cache.Set(uri, networkErrorResult)
		return &networkErrorResult, nil
	}
	defer response.Body.Close()

	validationResult := ValidationResult{
		URI:        uri,
		Valid:      response.StatusCode < 400,
		StatusCode: response.StatusCode,
		CheckedAt:  time.Now(),
	}

	client.cache.Set(uri, validationResult)
	return &validationResult, nil
}

// ValidateReference generates an ELI URI from the reference and validates
// it against EUR-Lex.
func (client *Client) ValidateReference(reference Reference) (*ValidationResult, error) {
	eliURI, err := GenerateELI(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ELI for reference: %w", err)
	}
	return client.ValidateURI(eliURI.String())
}

// DocumentURL returns the EUR-Lex HTML view URL for a CELEX number.
func DocumentURL(celexNumber CELEXNumber) string {
	return fmt.Sprintf(legalContentURLFormat, celexNumber.String())
}
