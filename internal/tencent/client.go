// Package tencent provides a client for the tencent stock quote endpoint.
// Quotes come back as a single quoted, tilde-delimited record per symbol.
package tencent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/models"
)

const (
	// DefaultBaseURL is the quote endpoint.
	DefaultBaseURL = "http://qt.gtimg.cn/"

	// DefaultTimeout is the default HTTP timeout for quote requests.
	DefaultTimeout = 5 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10

	// changeFieldIndex is the 0-based position of the percentage price
	// change inside the tilde-delimited record.
	changeFieldIndex = 5
)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom quote endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
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

// Client is a tencent quote client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// NewClient creates a new tencent quote client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: common.DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SymbolFor maps a stock code to its market-prefixed quote symbol: codes
// beginning with 6 trade on Shanghai, 0 and 3 on Shenzhen. Anything else is
// rejected.
func SymbolFor(stockCode string) (string, bool) {
	if stockCode == "" {
		return "", false
	}
	switch stockCode[0] {
	case '6':
		return "s_sh" + stockCode, true
	case '0', '3':
		return "s_sz" + stockCode, true
	default:
		return "", false
	}
}

// FetchChangePercent retrieves a stock's current percentage price change,
// formatted with an explicit sign and two decimals. It never fails outward:
// unroutable codes, transport errors, non-200 responses and malformed
// records all yield the unavailable sentinel. Unroutable codes short-circuit
// without a network call.
func (c *Client) FetchChangePercent(ctx context.Context, stockCode string) string {
	symbol, ok := SymbolFor(stockCode)
	if !ok {
		return models.ChangeUnavailable
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return models.ChangeUnavailable
	}

	reqURL := fmt.Sprintf("%sq=%s", c.baseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.ChangeUnavailable
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug().Err(err).Str("stock_code", stockCode).Msg("Quote fetch failed")
		}
		return models.ChangeUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ChangeUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ChangeUnavailable
	}

	return parseChangePercent(string(body))
}

// parseChangePercent extracts the change field from a quote response body
// like v_s_sh603259="1~药明康德~603259~93.20~-2.00~-2.10~...";
func parseChangePercent(body string) string {
	parts := strings.Split(body, `"`)
	if len(parts) < 2 {
		return models.ChangeUnavailable
	}

	fields := strings.Split(parts[1], "~")
	if len(fields) <= changeFieldIndex {
		return models.ChangeUnavailable
	}

	change, err := strconv.ParseFloat(strings.TrimSpace(fields[changeFieldIndex]), 64)
	if err != nil {
		return models.ChangeUnavailable
	}

	return common.FormatSignedPercent(change)
}
