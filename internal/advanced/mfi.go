package advanced

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// MoneyFlowIndex computes the volume-weighted RSI analogue over the
// given period: typical price times volume split into positive and
// negative flows by the direction of the typical price. Bounded
// [0,100]; an all-positive window is defined as 100.
func MoneyFlowIndex(highs, lows, closes, volumes []float64, period int) (model.IndicatorResult, error) {
	if period <= 0 {
		return model.IndicatorResult{}, series.ErrInvalidPeriod
	}
	if len(closes) < period+1 {
		return model.IndicatorResult{}, series.ErrInsufficientData("MFI", period+1, len(closes))
	}

	typical := make([]float64, len(closes))
	for i := range closes {
		typical[i] = (highs[i] + lows[i] + closes[i]) / 3
	}

	n := len(closes)
	var positive, negative float64
	for i := n - period; i < n; i++ {
		flow := typical[i] * volumes[i]
		switch {
		case typical[i] > typical[i-1]:
			positive += flow
		case typical[i] < typical[i-1]:
			negative += flow
		}
	}

	var mfi float64
	if negative == 0 {
		mfi = 100.0
	} else {
		mfi = 100.0 - 100.0/(1.0+positive/negative)
	}
	return model.IndicatorResult{
		Name:  "mfi",
		Value: mfi,
	}, nil
}
