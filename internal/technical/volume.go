package technical

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// Volume trend labels.
const (
	LabelAboveAverage = "above average"
	LabelBelowAverage = "below average"
	LabelAtAverage    = "at average"
)

// VolumeTrend compares the latest volume to its moving average.
// high/low are the classification thresholds on the ratio (e.g. 1.5
// and 0.5); between them volume is considered at average.
func VolumeTrend(volumes []float64, period int, high, low float64) (model.IndicatorResult, error) {
	avg, err := series.SMA(volumes, period)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	last := len(volumes) - 1

	ratio := series.Undefined()
	if avg[last] != 0 {
		ratio = volumes[last] / avg[last]
	}

	// An undefined ratio carries no classification.
	label := ""
	switch {
	case series.IsUndefined(ratio):
	case ratio > high:
		label = LabelAboveAverage
	case ratio < low:
		label = LabelBelowAverage
	default:
		label = LabelAtAverage
	}

	return model.IndicatorResult{
		Name:  "volume_trend",
		Value: ratio,
		Components: map[string]float64{
			"current": volumes[last],
			"average": avg[last],
			"ratio":   ratio,
		},
		Label: label,
	}, nil
}
