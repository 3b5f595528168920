package bfv

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	retryCount int
	retryWait  time.Duration
	userAgent  string
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithRetries sets the number of retry attempts and the base wait time
// between attempts.
func WithRetries(count int, wait time.Duration) Option {
	return func(o *clientOptions) {
		if count >= 0 {
			o.retryCount = count
		}
		if wait > 0 {
			o.retryWait = wait
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient sets a custom underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithCache enables response caching with the given TTL.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(o *clientOptions) {
		o.cache = cache
		o.cacheTTL = ttl
	}
}
