package advanced

import (
	"fmt"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// CompositeConfig pairs percent-change lookbacks with their weights
// for the momentum composite. Lookbacks and Weights must have equal
// length; weights need not sum to one, they are normalized.
type CompositeConfig struct {
	Lookbacks []int     `yaml:"lookbacks"`
	Weights   []float64 `yaml:"weights"`
}

// DefaultCompositeConfig weights short-term momentum heaviest.
func DefaultCompositeConfig() CompositeConfig {
	return CompositeConfig{
		Lookbacks: []int{5, 10, 20},
		Weights:   []float64{0.5, 0.3, 0.2},
	}
}

// MomentumComposite blends percent changes over several lookbacks
// into one weighted momentum score (in percent). Requires enough bars
// for the longest lookback.
func MomentumComposite(closes []float64, cfg CompositeConfig) (model.IndicatorResult, error) {
	if len(cfg.Lookbacks) == 0 || len(cfg.Lookbacks) != len(cfg.Weights) {
		return model.IndicatorResult{}, series.ErrInvalidPeriod
	}

	var score, totalWeight float64
	components := make(map[string]float64, len(cfg.Lookbacks))
	for i, lb := range cfg.Lookbacks {
		pc, err := series.PercentChange(closes, lb)
		if err != nil {
			return model.IndicatorResult{}, err
		}
		components[fmt.Sprintf("roc_%d", lb)] = pc * 100
		score += cfg.Weights[i] * pc * 100
		totalWeight += cfg.Weights[i]
	}
	score /= totalWeight

	label := "neutral"
	switch {
	case score > 1:
		label = "bullish"
	case score < -1:
		label = "bearish"
	}

	return model.IndicatorResult{
		Name:       "momentum_composite",
		Value:      score,
		Components: components,
		Label:      label,
	}, nil
}
