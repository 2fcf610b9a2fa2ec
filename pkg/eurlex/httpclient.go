package eurlex

import (
	"net/http"
	"sync"
	"time"
)

// DefaultRequestInterval is the default minimum interval between HTTP
// requests to EUR-Lex.
const DefaultRequestInterval = 1 * time.Second

// HTTPClient is an interface matching the Do method of *http.Client,
// allowing injection of mock clients in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RateLimitedHTTPClient wraps an HTTPClient and enforces a minimum
// interval between requests.
type RateLimitedHTTPClient struct {
	underlying      HTTPClient
	requestInterval time.Duration
	lastRequest     time.Time
	mu              sync.Mutex
}

// NewRateLimitedHTTPClient creates a rate-limited HTTP client enforcing
// the given minimum interval between requests. A zero interval disables
// waiting.
func NewRateLimitedHTTPClient(underlying HTTPClient, requestInterval time.Duration) *RateLimitedHTTPClient {
	return &RateLimitedHTTPClient{
		underlying:      underlying,
		requestInterval: requestInterval,
	}
}

// Do executes an HTTP request, sleeping first if the previous request was
// sent less than the configured interval ago.
func (rateLimitedClient *RateLimitedHTTPClient) Do(req *http.Request) (*http.Response, error) {
	rateLimitedClient.mu.Lock()
	if !rateLimitedClient.lastRequest.IsZero() {
		if elapsed := time.Since(rateLimitedClient.lastRequest); elapsed < rateLimitedClient.requestInterval {
			waitTime := rateLimitedClient.requestInterval - elapsed
			rateLimitedClient.mu.Unlock()
			time.Sleep(waitTime)
			rateLimitedClient.mu.Lock()
		}
	}
	rateLimitedClient.lastRequest = time.Now()
	rateLimitedClient.mu.Unlock()

	return rateLimitedClient.underlying.Do(req)
}
