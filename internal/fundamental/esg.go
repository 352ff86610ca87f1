package fundamental

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// ESGWeights blends the three category scores into the composite.
type ESGWeights struct {
	Environmental float64 `yaml:"environmental"`
	Social        float64 `yaml:"social"`
	Governance    float64 `yaml:"governance"`
}

// DefaultESGWeights sum to one, with governance carrying the rounding
// remainder.
func DefaultESGWeights() ESGWeights {
	return ESGWeights{Environmental: 0.33, Social: 0.33, Governance: 0.34}
}

// ESGScore computes the weighted sustainability composite. Each
// category score is the mean of its defined metrics; a category with
// no defined metrics is undefined, and the composite is then undefined
// too.
func ESGScore(m model.ESGMetrics, w ESGWeights) model.IndicatorResult {
	env := categoryMean(m.Environmental)
	soc := categoryMean(m.Social)
	gov := categoryMean(m.Governance)

	total := env*w.Environmental + soc*w.Social + gov*w.Governance

	return model.IndicatorResult{
		Name:  "esg_score",
		Value: total,
		Components: map[string]float64{
			"environmental": env,
			"social":        soc,
			"governance":    gov,
		},
	}
}

func categoryMean(metrics map[string]float64) float64 {
	var sum float64
	var n int
	for _, v := range metrics {
		if series.IsUndefined(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return series.Undefined()
	}
	return sum / float64(n)
}
