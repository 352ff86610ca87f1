package risk

import (
	"math"
	"math/rand"
	"sort"

	"EquityLens/internal/series"
)

// MonteCarloResult summarizes simulated terminal prices.
type MonteCarloResult struct {
	ExpectedPrice float64
	VaRPrice      float64 // terminal-price quantile at (1 - confidence)
	MaxPrice      float64
	MinPrice      float64
	Simulations   int
	Days          int
}

// MonteCarlo simulates geometric price paths from an annualized
// volatility and reports the terminal-price distribution. The random
// source is injected so simulations are reproducible under a fixed
// seed.
func MonteCarlo(price, annualVol float64, days, simulations int, confidence float64, rng *rand.Rand) (*MonteCarloResult, error) {
	if days <= 0 || simulations <= 0 {
		return nil, series.ErrInvalidPeriod
	}

	dailyVol := annualVol / math.Sqrt(252)
	finals := make([]float64, simulations)
	for s := 0; s < simulations; s++ {
		logSum := 0.0
		for d := 0; d < days; d++ {
			logSum += rng.NormFloat64() * dailyVol
		}
		finals[s] = price * math.Exp(logSum)
	}

	sort.Float64s(finals)
	var sum float64
	for _, f := range finals {
		sum += f
	}

	return &MonteCarloResult{
		ExpectedPrice: sum / float64(simulations),
		VaRPrice:      quantile(finals, 1-confidence),
		MaxPrice:      finals[simulations-1],
		MinPrice:      finals[0],
		Simulations:   simulations,
		Days:          days,
	}, nil
}
