package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/aestimo/internal/eastmoney"
	"github.com/ternarybob/aestimo/internal/query"
	"github.com/ternarybob/aestimo/internal/report"
	"github.com/ternarybob/aestimo/internal/services"
	"github.com/ternarybob/arbor"
)

// handleQueryFundHoldings implements the query_fund_holdings tool
func handleQueryFundHoldings(holdings *services.HoldingsService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Parse fund_code parameter (required)
		fundCode, err := request.RequireString("fund_code")
		if err != nil || !query.IsFundCode(fundCode) {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: fund_code must be a 6-digit code"),
				},
			}, nil
		}

		// Parse top_n (default from config, provider ceiling: 20)
		topN := query.ClampTopN(request.GetInt("top_n", holdings.DefaultTopN()))

		fundReport, err := holdings.Query(ctx, fundCode, topN)
		if err != nil {
			if !errors.Is(err, eastmoney.ErrUnavailable) {
				logger.Error().Err(err).Str("fund_code", fundCode).Msg("Holdings query failed")
			}
			// Unavailable and unexpected failures share the advisory;
			// the distinction is never surfaced to the caller.
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(report.Format(nil)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(report.Format(fundReport)),
			},
		}, nil
	}
}

// handleSearchFunds implements the search_funds tool
func handleSearchFunds(funds *eastmoney.Client, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyword, err := request.RequireString("keyword")
		if err != nil || keyword == "" {
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent("Error: keyword parameter is required"),
				},
			}, nil
		}

		results, err := funds.SearchFunds(ctx, keyword)
		if err != nil {
			logger.Error().Err(err).Str("keyword", keyword).Msg("Fund search failed")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					mcp.NewTextContent(fmt.Sprintf("Search error: %v", err)),
				},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(report.FormatSearchResults(keyword, results)),
			},
		}, nil
	}
}
