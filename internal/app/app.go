// -----------------------------------------------------------------------
// Last Modified: Saturday, 29th August 2026 11:42:10 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package app

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/eastmoney"
	"github.com/ternarybob/aestimo/internal/services"
	"github.com/ternarybob/aestimo/internal/tencent"
)

// App holds the application components and dependencies
type App struct {
	Config   *common.Config
	Logger   arbor.ILogger
	Funds    *eastmoney.Client
	Quotes   *tencent.Client
	Holdings *services.HoldingsService
}

// New assembles the application from configuration
func New(cfg *common.Config, logger arbor.ILogger) *App {
	fundOpts := []eastmoney.ClientOption{
		eastmoney.WithBaseURL(cfg.Eastmoney.BaseURL),
		eastmoney.WithSearchURL(cfg.Eastmoney.SearchURL),
		eastmoney.WithUserAgent(cfg.Client.UserAgent),
		eastmoney.WithHTTPClient(&http.Client{
			Timeout: common.ParseTimeout(cfg.Eastmoney.RequestTimeout, eastmoney.DefaultTimeout),
		}),
		eastmoney.WithLogger(logger),
	}
	if cfg.Eastmoney.RateLimit > 0 {
		fundOpts = append(fundOpts, eastmoney.WithRateLimit(cfg.Eastmoney.RateLimit))
	}
	funds := eastmoney.NewClient(fundOpts...)

	quoteOpts := []tencent.ClientOption{
		tencent.WithBaseURL(cfg.Tencent.BaseURL),
		tencent.WithUserAgent(cfg.Client.UserAgent),
		tencent.WithHTTPClient(&http.Client{
			Timeout: common.ParseTimeout(cfg.Tencent.RequestTimeout, tencent.DefaultTimeout),
		}),
		tencent.WithLogger(logger),
	}
	if cfg.Tencent.RateLimit > 0 {
		quoteOpts = append(quoteOpts, tencent.WithRateLimit(cfg.Tencent.RateLimit))
	}
	quotes := tencent.NewClient(quoteOpts...)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Funds:    funds,
		Quotes:   quotes,
		Holdings: services.NewHoldingsService(funds, quotes, cfg.Query.DefaultTopN, cfg.Query.MaxConcurrentQuotes, logger),
	}
}
