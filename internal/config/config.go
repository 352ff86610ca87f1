package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"EquityLens/internal/narrative"
	"EquityLens/internal/report"
)

// Config holds all application configuration.
type Config struct {
	Symbols []string `yaml:"symbols" validate:"required,min=1,dive,required"`

	DataSource struct {
		Provider  string  `yaml:"provider" validate:"oneof=static yahoo"`
		Proxy     string  `yaml:"proxy"`
		BasePrice float64 `yaml:"base_price"` // static provider only
	} `yaml:"data_source"`

	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron" validate:"required"`
		RunOnStart   bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`

	Logging struct {
		Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	} `yaml:"logging"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`

	Output struct {
		Dir string `yaml:"dir"` // where rendered reports and narratives land
	} `yaml:"output"`

	Analyst  narrative.ClaudeConfig `yaml:"analyst"`
	Reviewer narrative.GeminiConfig `yaml:"reviewer"`
	Report   report.Config          `yaml:"report"`
}

// Load reads config from a YAML file over built-in defaults, then
// applies environment variable overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("CRON_ANALYSIS"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Analyst.APIKey = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.Reviewer.APIKey = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{
		Symbols: []string{"SPY"},
		Report:  report.DefaultConfig(),
	}
	cfg.DataSource.Provider = "static"
	cfg.DataSource.BasePrice = 100
	// Weekday mornings, after the prior close is final.
	cfg.Schedule.AnalysisCron = "0 0 8 * * 1-5"
	cfg.Logging.Level = "info"
	cfg.Output.Dir = "reports"
	return cfg
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks structural constraints on the merged configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if c.Report.Bars <= 0 {
		return fmt.Errorf("report.bars must be positive")
	}
	if c.Report.Risk.Confidence <= 0 || c.Report.Risk.Confidence >= 1 {
		return fmt.Errorf("report.risk.confidence must be in (0, 1)")
	}
	return nil
}
