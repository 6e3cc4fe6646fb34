// Package eastmoney provides a client for the eastmoney fund archive and
// fund search endpoints. This package centralizes all fund-side provider
// interactions for the application.
package eastmoney

import (
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

// ErrUnavailable is returned for every failure mode of a holdings fetch:
// transport errors, timeouts, non-200 responses and responses with no
// extractable holding rows. Callers get no finer distinction.
var ErrUnavailable = errors.New("eastmoney: fund holdings unavailable")

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom fund archive endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithSearchURL sets a custom fund search endpoint.
func WithSearchURL(searchURL string) ClientOption {
	return func(c *Client) {
		c.searchURL = searchURL
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}
