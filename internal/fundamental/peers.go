package fundamental

import (
	"sort"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// CompetitorAnalysis benchmarks each company metric against an
// industry peer group. The pool for a metric is the company's value
// plus every peer that reports a defined value for it; metrics the
// company itself does not define are skipped.
func CompetitorAnalysis(company map[string]float64, competitors []map[string]float64) map[string]model.PeerComparison {
	out := make(map[string]model.PeerComparison, len(company))
	for name, v := range company {
		if series.IsUndefined(v) {
			continue
		}
		pool := []float64{v}
		for _, peer := range competitors {
			pv, ok := peer[name]
			if !ok || series.IsUndefined(pv) {
				continue
			}
			pool = append(pool, pv)
		}
		out[name] = model.PeerComparison{
			CompanyValue:   v,
			IndustryAvg:    series.Mean(pool),
			IndustryMedian: median(pool),
			Percentile:     rankPercentile(pool, v),
		}
	}
	return out
}

// rankPercentile is the average percentage ranking of v within pool,
// which must contain v. Tied values share the mean of their rank
// positions.
func rankPercentile(pool []float64, v float64) float64 {
	var less, equal float64
	for _, p := range pool {
		switch {
		case p < v:
			less++
		case p == v:
			equal++
		}
	}
	return 100 * (less + (equal+1)/2) / float64(len(pool))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
