package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/aestimo/internal/app"
	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"
)

func main() {
	// Load configuration
	configPath := os.Getenv("AESTIMO_CONFIG")
	if configPath == "" {
		configPath = "aestimo.toml"
	}
	if _, err := os.Stat(configPath); err != nil {
		// Config file is optional; defaults cover everything.
		configPath = ""
	}

	config, err := common.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logger for the MCP server (console only, no file output)
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn") // Minimal logging to avoid cluttering MCP stdio

	application := app.New(config, logger)

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"aestimo",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register fund tools
	mcpServer.AddTool(createQueryFundHoldingsTool(), handleQueryFundHoldings(application.Holdings, logger))
	mcpServer.AddTool(createSearchFundsTool(), handleSearchFunds(application.Funds, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
