// Package narrative holds the AI collaborator boundary. The engines
// hand over an assembled report; prose generation and review happen
// behind these interfaces so the analytics core stays deterministic.
package narrative

import (
	"context"

	"EquityLens/internal/model"
)

// Analyst turns a rendered report into analyst prose.
type Analyst interface {
	Analyze(ctx context.Context, markdown string, info model.SymbolInfo) (string, error)
	Name() string
}

// ReviewFeedback is the structured verdict a reviewer returns on a
// draft narrative.
type ReviewFeedback struct {
	Approved bool     `json:"approved"`
	Score    float64  `json:"score"` // 0..10 quality rating
	Issues   []string `json:"issues"`
	Summary  string   `json:"summary"`
}

// Reviewer critiques analyst prose against the numbers it was built
// from. Implementations must not mutate the report.
type Reviewer interface {
	Review(ctx context.Context, prose string, markdown string) (*ReviewFeedback, error)
	Name() string
}
