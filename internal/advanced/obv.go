package advanced

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// OBVSeries computes On-Balance Volume: a running total seeded with
// the first bar's volume, adding volume when the close rises,
// subtracting when it falls and unchanged when equal. State lives
// only inside this one computation.
func OBVSeries(closes, volumes []float64) ([]float64, error) {
	if len(closes) < 2 {
		return nil, series.ErrInsufficientData("OBV", 2, len(closes))
	}
	out := make([]float64, len(closes))
	out[0] = volumes[0]
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			out[i] = out[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out, nil
}

// OBV computes the current On-Balance Volume total.
func OBV(closes, volumes []float64) (model.IndicatorResult, error) {
	values, err := OBVSeries(closes, volumes)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	return model.IndicatorResult{
		Name:  "obv",
		Value: values[len(values)-1],
	}, nil
}
