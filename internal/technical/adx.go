package technical

import (
	"math"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// Trend-strength labels derived from the ADX level.
const (
	TrendWeak     = "weak"
	TrendModerate = "moderate"
	TrendStrong   = "strong"
)

// ADXSeries computes the Wilder-smoothed Average Directional Index.
// Directional movement and true range are smoothed over period bars to
// form the directional indicators, and the resulting DX values are
// smoothed over another period bars. A bar with no net directional
// movement has an undefined DX and contributes nothing; a fully flat
// market yields an entirely undefined series. Requires 2*period bars.
func ADXSeries(highs, lows, closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, series.ErrInvalidPeriod
	}
	if len(closes) < 2*period {
		return nil, series.ErrInsufficientData("ADX", 2*period, len(closes))
	}

	n := len(closes)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	smTR := wilder(TrueRange(highs, lows, closes), period)
	smPlus := wilder(plusDM, period)
	smMinus := wilder(minusDM, period)

	dx := make([]float64, n)
	out := make([]float64, n)
	for i := range dx {
		dx[i] = series.Undefined()
		out[i] = series.Undefined()
	}
	for i := period; i < n; i++ {
		if smTR[i] == 0 {
			continue
		}
		plusDI := 100 * smPlus[i] / smTR[i]
		minusDI := 100 * smMinus[i] / smTR[i]
		if sum := plusDI + minusDI; sum != 0 {
			dx[i] = 100 * math.Abs(plusDI-minusDI) / sum
		}
	}

	// Seed the ADX from the first period defined DX values, then run
	// the Wilder recurrence over the remainder.
	p := float64(period)
	prev := series.Undefined()
	seed, seeded := 0.0, 0
	for i := period; i < n; i++ {
		if series.IsUndefined(dx[i]) {
			continue
		}
		if series.IsUndefined(prev) {
			seed += dx[i]
			seeded++
			if seeded == period {
				prev = seed / p
				out[i] = prev
			}
			continue
		}
		prev = (prev*(p-1) + dx[i]) / p
		out[i] = prev
	}
	return out, nil
}

// ADX computes the current trend strength. Readings at or below 25
// mark a weak trend, above 25 moderate, above 50 strong. An undefined
// reading carries no label.
func ADX(highs, lows, closes []float64, period int) (model.IndicatorResult, error) {
	values, err := ADXSeries(highs, lows, closes, period)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	adx := series.LastDefined(values)

	label := ""
	switch {
	case series.IsUndefined(adx):
	case adx > 50:
		label = TrendStrong
	case adx > 25:
		label = TrendModerate
	default:
		label = TrendWeak
	}
	return model.IndicatorResult{
		Name:       "adx",
		Value:      adx,
		Components: map[string]float64{"adx": adx},
		Label:      label,
	}, nil
}

// wilder applies Wilder smoothing seeded on values[1..period]; earlier
// indices are undefined.
func wilder(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := 0; i < period; i++ {
		out[i] = series.Undefined()
	}
	seed := 0.0
	for i := 1; i <= period; i++ {
		seed += values[i]
	}
	p := float64(period)
	out[period] = seed / p
	for i := period + 1; i < len(values); i++ {
		out[i] = (out[i-1]*(p-1) + values[i]) / p
	}
	return out
}
