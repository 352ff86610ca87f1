package fundamental

import (
	"math"

	"EquityLens/internal/series"
)

// CAGR computes the compound annual growth rate across the statement
// history (oldest first). Requires at least two periods. A
// non-positive starting value makes the rate undefined and is
// reported as the sentinel.
func CAGR(history []float64) (float64, error) {
	if len(history) < 2 {
		return 0, series.ErrInsufficientData("CAGR", 2, len(history))
	}
	first := history[0]
	last := history[len(history)-1]
	if first <= 0 || last <= 0 {
		return series.Undefined(), nil
	}
	periods := float64(len(history) - 1)
	return math.Pow(last/first, 1/periods) - 1, nil
}
