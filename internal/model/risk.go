package model

// PositionSide distinguishes long from short positions. Risk-reward
// and stop-loss math must never infer direction from price ordering.
type PositionSide string

const (
	SideLong  PositionSide = "long"
	SideShort PositionSide = "short"
)

// Valid reports whether the side is one of the two known values.
func (s PositionSide) Valid() bool { return s == SideLong || s == SideShort }

// RiskRequest is the structured input for a position-risk evaluation.
// All fields are explicit; nothing is read from ambient state.
type RiskRequest struct {
	AccountSize    float64      `validate:"gt=0"`
	RiskPercentage float64      `validate:"gt=0,lte=100"`
	EntryPrice     float64      `validate:"gt=0"`
	StopLoss       float64      `validate:"gte=0"`
	TargetPrice    float64      `validate:"omitempty,gt=0"`
	Side           PositionSide `validate:"oneof=long short"`
	Confidence     float64      `validate:"omitempty,gt=0,lt=1"`
}

// RiskProfile is the immutable result of a position-sizing request.
type RiskProfile struct {
	AccountSize    float64
	RiskPercentage float64
	EntryPrice     float64
	StopLoss       float64
	Side           PositionSide
	PositionSize   int64   // whole shares, floor-rounded
	PositionValue  float64 // PositionSize * EntryPrice
	RiskPerShare   float64
	MaxLoss        float64
}

// PortfolioPosition pairs a sized position with its allocation weight
// for portfolio-level aggregation.
type PortfolioPosition struct {
	Symbol     string
	Profile    RiskProfile
	Allocation float64 // fraction of portfolio value, 0..1
}

// PortfolioRiskSummary aggregates per-position risk. Recomputed fully
// on each request; no incremental state.
type PortfolioRiskSummary struct {
	TotalValue     float64
	TotalMaxLoss   float64 // allocation-weighted, correlation-adjusted
	WorstCaseLoss  float64 // additive (correlation = 1) loss
	Correlation    float64 // pairwise coefficient used, 1 when none supplied
	PositionLosses map[string]float64
}

// VaRResult reports a Value-at-Risk estimate as a positive loss amount.
type VaRResult struct {
	Method        string // "parametric" or "historical"
	Confidence    float64
	PositionValue float64
	VaR           float64
	CVaR          float64 // expected shortfall, historical method only
	SampleSize    int
}

// StopLossProposal is the ATR-derived stop level for one side.
type StopLossProposal struct {
	Side       PositionSide
	Entry      float64
	ATR        float64
	Multiplier float64
	Stop       float64
}
