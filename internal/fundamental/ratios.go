// Package fundamental computes financial-statement analytics: ratio
// families, DCF valuation, growth rates and the composite health
// score. Ratio math never raises on a zero denominator; undefined
// ratios are absorbed as sentinels so one bad ratio never aborts the
// rest of the report.
package fundamental

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// Ratio names, grouped by family.
const (
	RatioROA                 = "roa"
	RatioROE                 = "roe"
	RatioNetMargin           = "net_margin"
	RatioCurrentRatio        = "current_ratio"
	RatioQuickRatio          = "quick_ratio"
	RatioAssetTurnover       = "asset_turnover"
	RatioReceivablesTurnover = "receivables_turnover"
	RatioDebtToEquity        = "debt_to_equity"
	RatioDebtToAssets        = "debt_to_assets"
)

// safeDiv guards the denominator: a zero divisor yields the undefined
// sentinel, never a division error.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return series.Undefined()
	}
	return num / den
}

// Ratios computes the full ratio set from one statement snapshot.
// Every key is always present; undefined entries carry the sentinel.
func Ratios(s model.FinancialStatementSnapshot) map[string]float64 {
	return map[string]float64{
		RatioROA:                 safeDiv(s.NetIncome, s.TotalAssets),
		RatioROE:                 safeDiv(s.NetIncome, s.Equity),
		RatioNetMargin:           safeDiv(s.NetIncome, s.Revenue),
		RatioCurrentRatio:        safeDiv(s.CurrentAssets, s.CurrentLiabilities),
		RatioQuickRatio:          safeDiv(s.CurrentAssets-s.Inventory, s.CurrentLiabilities),
		RatioAssetTurnover:       safeDiv(s.Revenue, s.TotalAssets),
		RatioReceivablesTurnover: safeDiv(s.Revenue, s.Receivables),
		RatioDebtToEquity:        safeDiv(s.TotalLiabilities, s.Equity),
		RatioDebtToAssets:        safeDiv(s.TotalLiabilities, s.TotalAssets),
	}
}
