package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Client      ClientConfig    `toml:"client"`
	Eastmoney   EastmoneyConfig `toml:"eastmoney"`
	Tencent     TencentConfig   `toml:"tencent"`
	Query       QueryConfig     `toml:"query"`
	Logging     LoggingConfig   `toml:"logging"`
}

// DefaultUserAgent is the browser identifier sent to both providers.
// They reject default Go client identifiers.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ClientConfig contains settings shared by the outbound HTTP clients
type ClientConfig struct {
	// Browser user agent sent on every request. Both providers reject
	// default Go client identifiers.
	UserAgent string `toml:"user_agent" validate:"required"`
}

// EastmoneyConfig contains the fund archive endpoint configuration
type EastmoneyConfig struct {
	BaseURL        string `toml:"base_url" validate:"required,url"`   // fund archive endpoint
	SearchURL      string `toml:"search_url" validate:"required,url"` // fund name suggest endpoint
	RequestTimeout string `toml:"request_timeout"`                    // e.g. "10s"
	RateLimit      int    `toml:"rate_limit"`                         // requests per second
}

// TencentConfig contains the stock quote endpoint configuration
type TencentConfig struct {
	BaseURL        string `toml:"base_url" validate:"required,url"` // quote endpoint
	RequestTimeout string `toml:"request_timeout"`                  // e.g. "5s"
	RateLimit      int    `toml:"rate_limit"`                       // requests per second
}

// QueryConfig contains query handling defaults
type QueryConfig struct {
	DefaultTopN         int `toml:"default_top_n" validate:"min=1,max=20"` // holdings count when the query names none
	MaxConcurrentQuotes int `toml:"max_concurrent_quotes" validate:"min=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // time format for log lines
}

// NewDefaultConfig returns a Config populated with defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Client: ClientConfig{
			UserAgent: DefaultUserAgent,
		},
		Eastmoney: EastmoneyConfig{
			BaseURL:        "https://fundf10.eastmoney.com/FundArchivesDatas.aspx",
			SearchURL:      "http://fundsuggest.eastmoney.com/FundSearch/api/FundSearchAPI.ashx",
			RequestTimeout: "10s",
			RateLimit:      5,
		},
		Tencent: TencentConfig{
			BaseURL:        "http://qt.gtimg.cn/",
			RequestTimeout: "5s",
			RateLimit:      10,
		},
		Query: QueryConfig{
			DefaultTopN:         20,
			MaxConcurrentQuotes: 5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files. Later files override
// earlier ones; environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration using go-playground/validator
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("AESTIMO_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if ua := os.Getenv("AESTIMO_USER_AGENT"); ua != "" {
		config.Client.UserAgent = ua
	}

	if base := os.Getenv("AESTIMO_EASTMONEY_BASE_URL"); base != "" {
		config.Eastmoney.BaseURL = base
	}
	if search := os.Getenv("AESTIMO_EASTMONEY_SEARCH_URL"); search != "" {
		config.Eastmoney.SearchURL = search
	}
	if base := os.Getenv("AESTIMO_TENCENT_BASE_URL"); base != "" {
		config.Tencent.BaseURL = base
	}

	if level := os.Getenv("AESTIMO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("AESTIMO_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// ParseTimeout parses a duration string, falling back to the given default
// when the value is empty or malformed.
func ParseTimeout(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
