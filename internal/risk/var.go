package risk

import (
	"math"
	"sort"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// zScore computes the standard normal quantile at the given upper-tail
// confidence (e.g. 1.645 at 95%, 2.326 at 99%).
func zScore(confidence float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*confidence-1)
}

// ParametricVaR estimates Value at Risk as z(confidence) * sigma *
// positionValue, where sigma is the sample standard deviation of the
// historical returns. The same minimum sample count as the historical
// method applies so both estimates rest on comparable evidence.
func ParametricVaR(returns []float64, confidence, positionValue float64, minSamples int) (*model.VaRResult, error) {
	if len(returns) < minSamples {
		return nil, series.ErrInsufficientData("ParametricVaR", minSamples, len(returns))
	}
	sigma, err := series.SampleStd(returns)
	if err != nil {
		return nil, err
	}
	return &model.VaRResult{
		Method:        "parametric",
		Confidence:    confidence,
		PositionValue: positionValue,
		VaR:           zScore(confidence) * sigma * positionValue,
		SampleSize:    len(returns),
	}, nil
}

// quantile computes the linearly interpolated empirical quantile of
// sorted values at q in [0,1].
func quantile(sorted []float64, q float64) float64 {
	rank := q * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// HistoricalVaR estimates Value at Risk as the empirical return
// quantile at (1 - confidence), reported as a positive loss on the
// position value. CVaR (expected shortfall) averages the returns at
// or below that quantile.
func HistoricalVaR(returns []float64, confidence, positionValue float64, minSamples int) (*model.VaRResult, error) {
	if len(returns) < minSamples {
		return nil, series.ErrInsufficientData("HistoricalVaR", minSamples, len(returns))
	}

	sorted := append([]float64(nil), returns...)
	sort.Float64s(sorted)
	cutoff := quantile(sorted, 1-confidence)

	var tailSum float64
	var tailN int
	for _, r := range sorted {
		if r <= cutoff {
			tailSum += r
			tailN++
		}
	}
	cvar := 0.0
	if tailN > 0 {
		cvar = -tailSum / float64(tailN) * positionValue
	}

	return &model.VaRResult{
		Method:        "historical",
		Confidence:    confidence,
		PositionValue: positionValue,
		VaR:           -cutoff * positionValue,
		CVaR:          cvar,
		SampleSize:    len(returns),
	}, nil
}
