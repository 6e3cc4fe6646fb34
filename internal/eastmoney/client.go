package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/models"
)

const (
	// DefaultBaseURL is the fund archive endpoint (F10 holdings data).
	DefaultBaseURL = "https://fundf10.eastmoney.com/FundArchivesDatas.aspx"

	// DefaultSearchURL is the fund name suggest endpoint.
	DefaultSearchURL = "http://fundsuggest.eastmoney.com/FundSearch/api/FundSearchAPI.ashx"

	// DefaultTimeout is the default HTTP timeout for archive requests.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 5

	// MaxTopline is the provider's hard ceiling on archive rows.
	MaxTopline = 20
)

// Client is an eastmoney fund data client.
type Client struct {
	baseURL    string
	searchURL  string
	userAgent  string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// NewClient creates a new eastmoney client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		searchURL: DefaultSearchURL,
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

// FetchHoldings retrieves a fund's disclosed top holdings. topN is clamped to
// [1, MaxTopline] regardless of caller intent. Every failure mode (transport
// error, non-200 status, no extractable rows) maps to ErrUnavailable; no
// distinction is surfaced.
func (c *Client) FetchHoldings(ctx context.Context, fundCode string, topN int) (*models.FundReport, error) {
	if topN > MaxTopline {
		topN = MaxTopline
	}
	if topN < 1 {
		topN = 1
	}

	params := url.Values{}
	params.Set("type", "jjcc")
	params.Set("code", fundCode)
	params.Set("topline", fmt.Sprintf("%d", topN))

	body, err := c.get(ctx, c.baseURL, params)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug().Err(err).Str("fund_code", fundCode).Msg("Holdings fetch failed")
		}
		return nil, ErrUnavailable
	}

	report := parseArchive(string(body), fundCode, topN)
	if len(report.Holdings) == 0 {
		if c.logger != nil {
			c.logger.Debug().Str("fund_code", fundCode).Msg("No holding rows in archive response")
		}
		return nil, ErrUnavailable
	}

	if c.logger != nil {
		c.logger.Debug().
			Str("fund_code", fundCode).
			Str("report_date", report.ReportDate).
			Int("holdings", len(report.Holdings)).
			Msg("Holdings fetched")
	}

	return report, nil
}

// SearchFunds queries the suggest endpoint for funds matching a name keyword
// and returns candidate codes in provider order.
func (c *Client) SearchFunds(ctx context.Context, keyword string) ([]models.FundSearchResult, error) {
	params := url.Values{}
	params.Set("m", "1")
	params.Set("key", keyword)

	body, err := c.get(ctx, c.searchURL, params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Datas []struct {
			Code     string `json:"CODE"`
			Name     string `json:"NAME"`
			Category string `json:"CATEGORYDESC"`
		} `json:"Datas"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	funds := make([]models.FundSearchResult, 0, len(result.Datas))
	for _, item := range result.Datas {
		funds = append(funds, models.FundSearchResult{
			Code: item.Code,
			Name: item.Name,
			Type: item.Category,
		})
	}
	return funds, nil
}

// get performs a GET request with the browser user agent. Single attempt, no
// retry.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	return io.ReadAll(resp.Body)
}
