package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrRDFResponse indicates that EUR-Lex returned RDF metadata instead of
// document content, and the document-variant retry also returned RDF.
var ErrRDFResponse = errors.New("server returned RDF metadata instead of document content")

// ErrContentTooShort indicates that the extracted text is shorter than
// the configured minimum and is likely an error page or stub.
var ErrContentTooShort = errors.New("extracted content shorter than minimum length")

// documentVariantSuffix is appended to a URL when the first response is
// RDF metadata. EUR-Lex serves the actual document text at this variant.
const documentVariantSuffix = "/DOC_1"

// Fetcher retrieves legal documents over HTTP, extracting plain text
// from HTML pages, with rate limiting and optional disk caching.
type Fetcher struct {
	httpClient HTTPClient
	config     Config
	diskCache  *DiskCache
}

// NewFetcher creates a Fetcher from the given configuration. A disk
// cache is created when CacheDir is set.
func NewFetcher(config Config) (*Fetcher, error) {
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.MinContentLength == 0 {
		config.MinContentLength = DefaultMinContentLength
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}

	fetcher := &Fetcher{
		httpClient: NewRateLimitedHTTPClient(&http.Client{Timeout: config.Timeout}, config.RateLimit),
		config:     config,
	}

	if config.CacheDir != "" {
		diskCache, err := NewDiskCache(config.CacheDir, config.CacheTTL)
		if err != nil {
			return nil, err
		}
		fetcher.diskCache = diskCache
	}

	return fetcher, nil
}

// FetchDocument retrieves the document at the given URL and returns its
// plain text. HTML pages go through main-content extraction; an RDF
// metadata response triggers exactly one retry against the document
// variant URL.
func (fetcher *Fetcher) FetchDocument(ctx context.Context, documentURL string) (string, error) {
	if documentURL == "" {
		return "", fmt.Errorf("empty URL")
	}

	if fetcher.diskCache != nil {
		if cachedText, found := fetcher.diskCache.Get(documentURL); found {
			return cachedText, nil
		}
	}

	body, contentType, err := fetcher.get(ctx, documentURL)
	if err != nil {
		return "", err
	}

	if isRDFResponse(contentType, body) {
		retryURL := documentURL + documentVariantSuffix
		body, contentType, err = fetcher.get(ctx, retryURL)
		if err != nil {
			return "", err
		}
		if isRDFResponse(contentType, body) {
			return "", fmt.Errorf("%w: %s", ErrRDFResponse, documentURL)
		}
	}

	text, err := extractText(body, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", documentURL, err)
	}

	if len(text) < fetcher.config.MinContentLength {
		return "", fmt.Errorf("%w: %d characters from %s", ErrContentTooShort, len(text), documentURL)
	}

	if fetcher.diskCache != nil {
		// Cache failures are non-fatal; the document was fetched.
		_ = fetcher.diskCache.Set(documentURL, text)
	}

	return text, nil
}

// get performs a single GET request and returns the body and content type.
func (fetcher *Fetcher) get(ctx context.Context, targetURL string) ([]byte, string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request for %s: %w", targetURL, err)
	}
	request.Header.Set("User-Agent", fetcher.config.UserAgent)
	request.Header.Set("Accept", "text/html, text/plain, application/xhtml+xml")

	response, err := fetcher.httpClient.Do(request)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", targetURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		return nil, "", fmt.Errorf("HTTP %d for %s", response.StatusCode, targetURL)
	}

	limitedReader := io.LimitReader(response.Body, maxBodyBytes)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body from %s: %w", targetURL, err)
	}

	return body, response.Header.Get("Content-Type"), nil
}

// extractText converts a response body to plain document text based on
// its content type.
func extractText(body []byte, contentType string) (string, error) {
	if strings.Contains(contentType, "text/plain") {
		return strings.TrimSpace(string(body)), nil
	}
	// HTML, XHTML, and unknown content types all go through the HTML
	// extractor, which handles plain text embedded in markup.
	return ExtractMainText(body)
}

// isRDFResponse reports whether a response carries RDF metadata rather
// than document content. EUR-Lex ELI URIs respond with RDF/XML unless a
// document variant is requested.
func isRDFResponse(contentType string, body []byte) bool {
	if strings.Contains(contentType, "application/rdf+xml") {
		return true
	}

	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}
	trimmedHead := bytes.TrimSpace(head)
	return bytes.HasPrefix(trimmedHead, []byte("<?xml")) && bytes.Contains(head, []byte("<rdf:RDF"))
}
