// Package services wires the provider clients into the holdings query
// pipeline: fetch holdings, enrich each with its live price change, and
// answer free-text queries.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"
	"golang.org/x/sync/errgroup"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/eastmoney"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/query"
	"github.com/ternarybob/aestimo/internal/report"
	"github.com/ternarybob/aestimo/internal/tencent"
)

// NoCodePrompt is returned for free-text queries naming neither a fund code
// nor a recognizable fund name.
const NoCodePrompt = "Provide a 6-digit fund code to query holdings, " +
	"e.g. \"查询基金005827的最新持仓\" or \"fund 005827 top 10\"."

// HoldingsService runs the holdings query pipeline.
type HoldingsService struct {
	funds         *eastmoney.Client
	quotes        *tencent.Client
	logger        arbor.ILogger
	defaultTopN   int
	maxConcurrent int
}

// NewHoldingsService creates a holdings service. defaultTopN is the holdings
// count used when a query names none, clamped to the provider's range.
// maxConcurrent bounds the per-holding quote fan-out; values below 1 fall
// back to sequential fetches.
func NewHoldingsService(funds *eastmoney.Client, quotes *tencent.Client, defaultTopN, maxConcurrent int, logger arbor.ILogger) *HoldingsService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	if logger == nil {
		logger = common.GetLogger()
	}
	return &HoldingsService{
		funds:         funds,
		quotes:        quotes,
		logger:        logger,
		defaultTopN:   query.ClampTopN(defaultTopN),
		maxConcurrent: maxConcurrent,
	}
}

// DefaultTopN returns the configured holdings count for queries naming none.
func (s *HoldingsService) DefaultTopN() int {
	return s.defaultTopN
}

// Query fetches a fund's top holdings and enriches each with its live price
// change. Returns eastmoney.ErrUnavailable when the fund has no retrievable
// holdings; partial quote failures only degrade individual rows to the
// unavailable sentinel.
func (s *HoldingsService) Query(ctx context.Context, fundCode string, topN int) (*models.FundReport, error) {
	fundReport, err := s.funds.FetchHoldings(ctx, fundCode, topN)
	if err != nil {
		return nil, err
	}

	s.enrichChanges(ctx, fundReport.Holdings)
	return fundReport, nil
}

// QueryText answers a free-text query with a formatted report. Queries with
// a fund code run the full pipeline; queries with only a name keyword get
// search candidates; anything else gets the usage prompt.
func (s *HoldingsService) QueryText(ctx context.Context, input string) string {
	req := query.Parse(input, s.defaultTopN)

	if req.FundCode != "" {
		fundReport, err := s.Query(ctx, req.FundCode, req.TopN)
		if err != nil {
			if errors.Is(err, eastmoney.ErrUnavailable) {
				return report.Format(nil)
			}
			return fmt.Sprintf("Query failed: %v", err)
		}
		return report.Format(fundReport)
	}

	if req.FundName != "" {
		funds, err := s.funds.SearchFunds(ctx, req.FundName)
		if err != nil {
			s.logger.Warn().Err(err).Str("keyword", req.FundName).Msg("Fund search failed")
			return NoCodePrompt
		}
		return report.FormatSearchResults(req.FundName, funds)
	}

	return NoCodePrompt
}

// enrichChanges fills in each holding's ChangePercent. Fetches run
// concurrently up to the configured bound; writes go to fixed indexes so
// rank order is preserved regardless of completion order.
func (s *HoldingsService) enrichChanges(ctx context.Context, holdings []models.HoldingRecord) {
	g := new(errgroup.Group)
	g.SetLimit(s.maxConcurrent)

	for i := range holdings {
		g.Go(func() error {
			holdings[i].ChangePercent = s.quotes.FetchChangePercent(ctx, holdings[i].StockCode)
			return nil
		})
	}

	// Quote fetches never return errors; Wait only synchronizes.
	_ = g.Wait()
}
