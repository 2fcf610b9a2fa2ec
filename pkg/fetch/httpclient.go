package fetch

import (
	"net/http"
	"sync"
	"time"
)

// HTTPClient abstracts HTTP request execution for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RateLimitedHTTPClient wraps an HTTPClient and enforces a minimum
// interval between requests.
type RateLimitedHTTPClient struct {
	client      HTTPClient
	interval    time.Duration
	mu          sync.Mutex
	lastRequest time.Time
}

// NewRateLimitedHTTPClient creates a rate-limited wrapper around the
// given client. A non-positive interval disables rate limiting.
func NewRateLimitedHTTPClient(client HTTPClient, interval time.Duration) *RateLimitedHTTPClient {
	return &RateLimitedHTTPClient{
		client:   client,
		interval: interval,
	}
}

// Do executes the request, sleeping first if the previous request was
// made less than the configured interval ago.
func (rateLimitedClient *RateLimitedHTTPClient) Do(req *http.Request) (*http.Response, error) {
	rateLimitedClient.mu.Lock()
	if rateLimitedClient.interval > 0 && !rateLimitedClient.lastRequest.IsZero() {
		elapsed := time.Since(rateLimitedClient.lastRequest)
		if elapsed < rateLimitedClient.interval {
			time.Sleep(rateLimitedClient.interval - elapsed)
		}
	}
	rateLimitedClient.lastRequest = time.Now()
	rateLimitedClient.mu.Unlock()

	return rateLimitedClient.client.Do(req)
}
