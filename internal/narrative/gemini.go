package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/phuslu/log"
	"google.golang.org/genai"
)

const reviewerSystemPrompt = `You review an equity-analysis narrative against the quantitative
report it was written from. Check that every numeric claim in the prose matches the report,
that unavailable metrics are acknowledged, and that no advice goes beyond the data. Respond
with a single JSON object: {"approved": bool, "score": number 0-10, "issues": [strings],
"summary": string}. No other text.`

// GeminiConfig configures the review agent.
type GeminiConfig struct {
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
}

// GeminiReviewer critiques analyst prose through the Gemini API and
// returns structured feedback.
type GeminiReviewer struct {
	client  *genai.Client
	logger  *log.Logger
	model   string
	temp    float32
	timeout time.Duration
}

// NewGeminiReviewer validates the configuration and initializes the
// genai client.
func NewGeminiReviewer(ctx context.Context, cfg GeminiConfig, logger *log.Logger) (*GeminiReviewer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("google api key is required (set reviewer.api_key or GOOGLE_API_KEY)")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout == "" {
		cfg.Timeout = "60s"
	}
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration '%s': %w", cfg.Timeout, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	logger.Debug().
		Str("model", cfg.Model).
		Dur("timeout", timeout).
		Msg("gemini reviewer initialized")

	return &GeminiReviewer{
		client:  client,
		logger:  logger,
		model:   cfg.Model,
		temp:    cfg.Temperature,
		timeout: timeout,
	}, nil
}

func (r *GeminiReviewer) Name() string { return "gemini" }

// Review sends the prose and its source report to the model and
// parses the JSON verdict.
func (r *GeminiReviewer) Review(ctx context.Context, prose string, markdown string) (*ReviewFeedback, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt := fmt.Sprintf("QUANTITATIVE REPORT:\n%s\n\nNARRATIVE TO REVIEW:\n%s", markdown, prose)
	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	}
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(r.temp),
		SystemInstruction: genai.NewContentFromText(reviewerSystemPrompt, genai.RoleUser),
	}

	resp, err := r.client.Models.GenerateContent(timeoutCtx, r.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("review generation failed: %w", err)
	}

	var sb strings.Builder
	if resp != nil && len(resp.Candidates) > 0 {
		for _, candidate := range resp.Candidates {
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					sb.WriteString(part.Text)
				}
			}
			if sb.Len() > 0 {
				break
			}
		}
	}
	if sb.Len() == 0 {
		return nil, fmt.Errorf("reviewer returned no text content")
	}

	feedback, err := parseFeedback(sb.String())
	if err != nil {
		return nil, err
	}

	r.logger.Debug().
		Bool("approved", feedback.Approved).
		Float64("score", feedback.Score).
		Int("issues", len(feedback.Issues)).
		Msg("review completed")

	return feedback, nil
}

// parseFeedback extracts the JSON object from a model response,
// tolerating code fences and surrounding prose.
func parseFeedback(text string) (*ReviewFeedback, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in review response")
	}

	var fb ReviewFeedback
	if err := json.Unmarshal([]byte(text[start:end+1]), &fb); err != nil {
		return nil, fmt.Errorf("parse review feedback: %w", err)
	}
	return &fb, nil
}
