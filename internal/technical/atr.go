package technical

import (
	"math"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// TrueRange computes the true range series:
// max(high-low, |high-prevClose|, |low-prevClose|). The first bar has
// no previous close and uses high-low.
func TrueRange(highs, lows, closes []float64) []float64 {
	tr := make([]float64, len(closes))
	for i := range closes {
		hl := highs[i] - lows[i]
		if i == 0 {
			tr[i] = hl
			continue
		}
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	return tr
}

// ATRSeries computes the Wilder-smoothed Average True Range. The seed
// is the simple mean of the first period true ranges that have a
// previous close; earlier indices are undefined. Requires period+1
// bars.
func ATRSeries(highs, lows, closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, series.ErrInvalidPeriod
	}
	if len(closes) < period+1 {
		return nil, series.ErrInsufficientData("ATR", period+1, len(closes))
	}

	tr := TrueRange(highs, lows, closes)
	out := make([]float64, len(closes))
	for i := 0; i < period; i++ {
		out[i] = series.Undefined()
	}

	seed := 0.0
	for i := 1; i <= period; i++ {
		seed += tr[i]
	}
	out[period] = seed / float64(period)

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		out[i] = (out[i-1]*(p-1) + tr[i]) / p
	}
	return out, nil
}

// ATR computes the current ATR and its percentage of the last close.
func ATR(highs, lows, closes []float64, period int) (model.IndicatorResult, error) {
	values, err := ATRSeries(highs, lows, closes, period)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	last := len(values) - 1
	atr := values[last]

	pct := series.Undefined()
	if closes[last] != 0 {
		pct = atr / closes[last] * 100
	}
	return model.IndicatorResult{
		Name:  "atr",
		Value: atr,
		Components: map[string]float64{
			"atr":     atr,
			"atr_pct": pct,
		},
	}, nil
}
