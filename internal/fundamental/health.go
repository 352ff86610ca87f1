package fundamental

import (
	"math"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// Curve is a monotonic logistic scoring curve mapping a raw ratio to
// [0,100]: score = 100/(1+exp(-steepness*(x-midpoint))). A negative
// steepness makes the curve descending, used for leverage where lower
// is healthier. The exact shape is a tunable parameter, not fixed by
// the domain.
type Curve struct {
	Midpoint  float64 `yaml:"midpoint"`
	Steepness float64 `yaml:"steepness"`
}

// Score applies the curve to a raw ratio value.
func (c Curve) Score(x float64) float64 {
	return 100 / (1 + math.Exp(-c.Steepness*(x-c.Midpoint)))
}

// HealthConfig enumerates the composite weights and per-family curves.
type HealthConfig struct {
	ProfitabilityWeight float64 `yaml:"profitability_weight"`
	LiquidityWeight     float64 `yaml:"liquidity_weight"`
	LeverageWeight      float64 `yaml:"leverage_weight"`
	EfficiencyWeight    float64 `yaml:"efficiency_weight"`

	ProfitabilityCurve Curve `yaml:"profitability_curve"`
	LiquidityCurve     Curve `yaml:"liquidity_curve"`
	LeverageCurve      Curve `yaml:"leverage_curve"`
	EfficiencyCurve    Curve `yaml:"efficiency_curve"`
}

// DefaultHealthConfig centers each curve on an unremarkable value for
// its family; the leverage curve descends.
func DefaultHealthConfig() HealthConfig {
	return HealthConfig{
		ProfitabilityWeight: 0.35,
		LiquidityWeight:     0.25,
		LeverageWeight:      0.25,
		EfficiencyWeight:    0.15,
		ProfitabilityCurve:  Curve{Midpoint: 0.08, Steepness: 20},
		LiquidityCurve:      Curve{Midpoint: 1.5, Steepness: 2},
		LeverageCurve:       Curve{Midpoint: 1.0, Steepness: -2},
		EfficiencyCurve:     Curve{Midpoint: 0.8, Steepness: 3},
	}
}

// componentScore averages the curve scores of the component's defined
// ratios; all-undefined components return the sentinel.
func componentScore(ratios map[string]float64, names []string, curve Curve) float64 {
	var sum float64
	var n int
	for _, name := range names {
		v := ratios[name]
		if series.IsUndefined(v) {
			continue
		}
		sum += curve.Score(v)
		n++
	}
	if n == 0 {
		return series.Undefined()
	}
	return sum / float64(n)
}

// HealthScore computes the weighted composite health score in [0,100]
// from the snapshot's ratio set. Undefined components are skipped and
// the remaining weights renormalized; a snapshot with no defined
// ratios at all yields the undefined sentinel.
func HealthScore(s model.FinancialStatementSnapshot, cfg HealthConfig) model.IndicatorResult {
	ratios := Ratios(s)

	components := map[string]struct {
		score  float64
		weight float64
	}{
		"profitability": {componentScore(ratios, []string{RatioROA, RatioROE, RatioNetMargin}, cfg.ProfitabilityCurve), cfg.ProfitabilityWeight},
		"liquidity":     {componentScore(ratios, []string{RatioCurrentRatio, RatioQuickRatio}, cfg.LiquidityCurve), cfg.LiquidityWeight},
		"leverage":      {componentScore(ratios, []string{RatioDebtToEquity, RatioDebtToAssets}, cfg.LeverageCurve), cfg.LeverageWeight},
		"efficiency":    {componentScore(ratios, []string{RatioAssetTurnover, RatioReceivablesTurnover}, cfg.EfficiencyCurve), cfg.EfficiencyWeight},
	}

	var weighted, totalWeight float64
	detail := make(map[string]float64, len(components))
	for name, c := range components {
		detail[name] = c.score
		if series.IsUndefined(c.score) {
			continue
		}
		weighted += c.score * c.weight
		totalWeight += c.weight
	}

	value := series.Undefined()
	if totalWeight > 0 {
		value = weighted / totalWeight
	}

	return model.IndicatorResult{
		Name:       "health_score",
		Value:      value,
		Components: detail,
		Label:      healthLabel(value),
	}
}

func healthLabel(score float64) string {
	switch {
	case series.IsUndefined(score):
		return "unknown"
	case score >= 70:
		return "strong"
	case score >= 40:
		return "adequate"
	default:
		return "weak"
	}
}
