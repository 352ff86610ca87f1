// Package advanced computes the second-tier indicators: Fibonacci
// retracements, Ichimoku Cloud, On-Balance Volume, Stochastic RSI,
// Money Flow Index and the momentum composite. Pure functions over
// read-only series, same undefined-marker and error conventions as
// the technical package.
package advanced

import "EquityLens/internal/model"

// fibRatios are the standard retracement ratios, innermost first.
var fibRatios = []struct {
	name  string
	ratio float64
}{
	{"0.0", 0},
	{"0.236", 0.236},
	{"0.382", 0.382},
	{"0.5", 0.5},
	{"0.618", 0.618},
	{"0.786", 0.786},
	{"1.0", 1},
}

// FibonacciRetracement computes retracement levels between a swing
// high and low: level = high - ratio*(high-low). Deterministic, no
// smoothing; the 0.0 level is the high and 1.0 the low.
func FibonacciRetracement(high, low float64) model.IndicatorResult {
	diff := high - low
	components := make(map[string]float64, len(fibRatios))
	for _, f := range fibRatios {
		components[f.name] = high - f.ratio*diff
	}
	return model.IndicatorResult{
		Name:       "fibonacci",
		Value:      components["0.5"],
		Components: components,
	}
}
