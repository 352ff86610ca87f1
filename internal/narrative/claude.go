package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/phuslu/log"

	"EquityLens/internal/model"
)

const analystSystemPrompt = `You are an experienced equity analyst. You receive a quantitative
report with technical indicators, fundamental ratios, valuation and risk metrics for one
security. Write a clear narrative analysis grounded strictly in the numbers provided. If the
report lists unavailable metrics, acknowledge the gap instead of guessing. Do not give
personalized investment advice.`

// ClaudeConfig configures the Anthropic-backed analyst.
type ClaudeConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
}

// ClaudeAnalyst generates report narratives through the Anthropic API.
type ClaudeAnalyst struct {
	client    *anthropic.Client
	logger    *log.Logger
	model     string
	maxTokens int
	temp      float32
	timeout   time.Duration
}

// NewClaudeAnalyst validates the configuration and initializes the
// Anthropic client. Model, token and timeout defaults match a
// single-report workload.
func NewClaudeAnalyst(cfg ClaudeConfig, logger *log.Logger) (*ClaudeAnalyst, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required (set analyst.api_key or ANTHROPIC_API_KEY)")
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout == "" {
		cfg.Timeout = "120s"
	}
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration '%s': %w", cfg.Timeout, err)
	}

	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
	)

	logger.Debug().
		Str("model", cfg.Model).
		Dur("timeout", timeout).
		Int("max_tokens", cfg.MaxTokens).
		Msg("claude analyst initialized")

	return &ClaudeAnalyst{
		client:    &client,
		logger:    logger,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		temp:      cfg.Temperature,
		timeout:   timeout,
	}, nil
}

func (a *ClaudeAnalyst) Name() string { return "claude" }

// Analyze sends the rendered report and symbol metadata to the model
// and returns the narrative text.
func (a *ClaudeAnalyst) Analyze(ctx context.Context, markdown string, info model.SymbolInfo) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := markdown
	if info.Name != "" {
		prompt = fmt.Sprintf("Company: %s (%s), sector %s / %s.\n\n%s",
			info.Name, info.Symbol, info.Sector, info.Industry, markdown)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: int64(a.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: analystSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if a.temp > 0 {
		params.Temperature = anthropic.Float(float64(a.temp))
	}

	start := time.Now()
	resp, err := a.client.Messages.New(timeoutCtx, params)
	if err != nil {
		return "", fmt.Errorf("analyst completion failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("analyst returned no text content")
	}

	a.logger.Debug().
		Str("symbol", info.Symbol).
		Int("response_length", sb.Len()).
		Dur("duration", time.Since(start)).
		Msg("narrative generated")

	return sb.String(), nil
}
