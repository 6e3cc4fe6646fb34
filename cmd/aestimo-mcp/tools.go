package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createQueryFundHoldingsTool returns the query_fund_holdings tool definition
func createQueryFundHoldingsTool() mcp.Tool {
	return mcp.NewTool("query_fund_holdings",
		mcp.WithDescription("Query a mutual fund's disclosed top holdings with live price changes and a weighted valuation estimate"),
		mcp.WithString("fund_code",
			mcp.Required(),
			mcp.Description("6-digit fund code, e.g. 005827"),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Number of holdings to return (default: 20, max: 20)"),
		),
	)
}

// createSearchFundsTool returns the search_funds tool definition
func createSearchFundsTool() mcp.Tool {
	return mcp.NewTool("search_funds",
		mcp.WithDescription("Search funds by name keyword and return candidate fund codes"),
		mcp.WithString("keyword",
			mcp.Required(),
			mcp.Description("Fund name keyword, e.g. 易方达蓝筹"),
		),
	)
}
