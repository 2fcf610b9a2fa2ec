package eurlex

import (
	"sync"
	"time"
)

// DefaultCacheTTL is the default time-to-live for cached validation results.
const DefaultCacheTTL = 1 * time.Hour

// cacheEntry holds a cached validation result and its expiration time.
type cacheEntry struct {
	result    ValidationResult
	expiresAt time.Time
}

// ValidationCache is a thread-safe in-memory TTL cache for URI validation
// results. Entries expire lazily on access.
type ValidationCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

// NewValidationCache creates a cache with the given TTL.
func NewValidationCache(ttl time.Duration) *ValidationCache {
	return &ValidationCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get retrieves a cached validation result. Expired entries are removed
// on access and reported as missing.
func (validationCache *ValidationCache) Get(key string) (ValidationResult, bool) {
	validationCache.mu.RLock()
	entry, exists := validationCache.entries[key]
	validationCache.mu.RUnlock()

	if !exists {
		return ValidationResult{}, false
	}
	if time.Now().After(entry.expiresAt) {
		validationCache.mu.Lock()
		if current, stillExists := validationCache.entries[key]; stillExists && time.Now().After(current.expiresAt) {
			delete(validationCache.entries, key)
		}
		validationCache.mu.Unlock()
		return ValidationResult{}, false
	}
	return entry.result, true
}

// Set stores a validation result with the cache's TTL.
func (validationCache *ValidationCache) Set(key string, result ValidationResult) {
	validationCache.mu.Lock()
	validationCache.entries[key] = cacheEntry{
		result:    result,
		expiresAt: time.Now().Add(validationCache.ttl),
	}
	validationCache.mu.Unlock()
}

// Len returns the number of entries currently held, including entries
// that have expired but not yet been evicted.
func (validationCache *ValidationCache) Len() int {
	validationCache.mu.RLock()
	defer validationCache.mu.RUnlock()
	return len(validationCache.entries)
}
