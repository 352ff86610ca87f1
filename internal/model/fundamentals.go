package model

// FinancialStatementSnapshot is the per-symbol, per-period statement
// data consumed by the fundamental engine. Read-only input; zero
// values are treated as "not reported" and produce undefined ratios
// rather than errors.
type FinancialStatementSnapshot struct {
	Revenue            float64
	NetIncome          float64
	TotalAssets        float64
	TotalLiabilities   float64
	CurrentAssets      float64
	CurrentLiabilities float64
	Inventory          float64
	Receivables        float64
	Equity             float64
	SharesOutstanding  float64

	// FreeCashFlows is the projected free-cash-flow sequence used by
	// DCF valuation, oldest first.
	FreeCashFlows []float64

	// RevenueHistory holds per-period revenue, oldest first, for
	// growth-rate analysis.
	RevenueHistory []float64

	// PeerMetrics holds the company's own values for the metrics being
	// benchmarked; CompetitorMetrics holds the same metrics for each
	// industry peer. Both empty when the provider has no peer data.
	PeerMetrics       map[string]float64
	CompetitorMetrics []map[string]float64

	// ESGMetrics holds raw sustainability scores when reported.
	ESGMetrics ESGMetrics
}

// ESGMetrics groups raw per-category sustainability metric scores,
// each on a 0..100 scale.
type ESGMetrics struct {
	Environmental map[string]float64
	Social        map[string]float64
	Governance    map[string]float64
}

// Empty reports whether no category has any metrics.
func (m ESGMetrics) Empty() bool {
	return len(m.Environmental) == 0 && len(m.Social) == 0 && len(m.Governance) == 0
}

// PeerComparison benchmarks one metric against an industry peer group.
// Percentile is the company's rank percentile within the pooled group,
// company included.
type PeerComparison struct {
	CompanyValue   float64
	IndustryAvg    float64
	IndustryMedian float64
	Percentile     float64
}
