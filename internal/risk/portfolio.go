package risk

import (
	"math"

	"EquityLens/internal/model"
)

// PortfolioRisk aggregates per-position max losses weighted by
// allocation. With no correlation input the positions are treated as
// fully correlated (rho = 1), which reduces to the worst-case
// additive sum; losses are never assumed independent. A supplied
// pairwise coefficient in [0,1] scales the cross terms of
// sqrt(sum_i sum_j rho_ij * l_i * l_j).
func PortfolioRisk(positions []model.PortfolioPosition, correlation float64) model.PortfolioRiskSummary {
	if correlation < 0 {
		correlation = 0
	}
	if correlation > 1 {
		correlation = 1
	}

	losses := make(map[string]float64, len(positions))
	weighted := make([]float64, len(positions))
	var totalValue, additive float64
	for i, p := range positions {
		l := p.Profile.MaxLoss * p.Allocation
		weighted[i] = l
		losses[p.Symbol] = l
		additive += l
		totalValue += p.Profile.PositionValue
	}

	var variance float64
	for i := range weighted {
		for j := range weighted {
			rho := correlation
			if i == j {
				rho = 1
			}
			variance += rho * weighted[i] * weighted[j]
		}
	}

	return model.PortfolioRiskSummary{
		TotalValue:     totalValue,
		TotalMaxLoss:   math.Sqrt(variance),
		WorstCaseLoss:  additive,
		Correlation:    correlation,
		PositionLosses: losses,
	}
}
