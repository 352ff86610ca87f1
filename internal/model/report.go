package model

import "time"

// MissingMetric records a metric that could not be computed because
// the request could not be answered for it (data sufficiency). These
// are surfaced on the report so the narrative layer can flag gaps;
// they are never silently dropped.
type MissingMetric struct {
	Name   string
	Reason string
}

// Report is the assembled analytics record handed to the narrative
// collaborator. Built fresh per request and never mutated afterwards.
type Report struct {
	ID          string
	Symbol      string
	GeneratedAt time.Time
	LastClose   float64

	Technical   map[string]IndicatorResult
	Advanced    map[string]IndicatorResult
	Ratios      map[string]float64
	Valuation   map[string]float64
	HealthScore float64
	GrowthCAGR  float64
	Peers       map[string]PeerComparison
	ESG         *IndicatorResult
	Risk        *RiskProfile
	VaR         []VaRResult
	Stops       []StopLossProposal

	Missing []MissingMetric
}
