// -----------------------------------------------------------------------
// Last Modified: Saturday, 29th August 2026 11:42:10 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ternarybob/aestimo/internal/app"
	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/arbor"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	configFiles  configPaths // Multiple -config flags supported
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	common.LoadVersionFromFile()

	if *showVersion || *showVersionV {
		fmt.Printf("Aestimo version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(1)
	}

	// Auto-discover config file if not specified. A missing config file is
	// fine for the CLI; defaults cover everything.
	if len(configFiles) == 0 {
		if _, err := os.Stat("aestimo.toml"); err == nil {
			configFiles = append(configFiles, "aestimo.toml")
		} else if _, err := os.Stat("deployments/local/aestimo.toml"); err == nil {
			configFiles = append(configFiles, "deployments/local/aestimo.toml")
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		// Use temporary logger for startup errors
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	logger := common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	application := app.New(config, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queryText := strings.Join(flag.Args(), " ")
	logger.Debug().Str("query", queryText).Msg("Running holdings query")

	fmt.Println(application.Holdings.QueryText(ctx, queryText))
}

func printUsage() {
	fmt.Println("Usage: aestimo [flags] <query>")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  aestimo '查询基金005827的最新持仓'")
	fmt.Println("  aestimo '查询基金005827前10条重仓股'")
	fmt.Println("  aestimo 'fund 005827 top 15'")
	fmt.Println()
	flag.PrintDefaults()
}
