package technical

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// RSI trend labels.
const (
	LabelOverbought = "overbought"
	LabelOversold   = "oversold"
	LabelNeutral    = "neutral"
)

// RSISeries computes the Wilder-smoothed Relative Strength Index over
// the full series. The output is padded with undefined markers for
// indices below period; the first defined value uses simple-average
// seeds over the first period changes, then Wilder's recursion
// avg = (avg*(period-1) + x) / period.
func RSISeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, series.ErrInvalidPeriod
	}
	if len(closes) < period+1 {
		return nil, series.ErrInsufficientData("RSI", period+1, len(closes))
	}

	gains, losses := series.GainsLosses(closes)

	out := make([]float64, len(closes))
	for i := 0; i < period; i++ {
		out[i] = series.Undefined()
	}

	var avgGain, avgLoss float64
	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		avgGain = (avgGain*(p-1) + gains[i-1]) / p
		avgLoss = (avgLoss*(p-1) + losses[i-1]) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out, nil
}

// rsiValue applies RSI = 100 - 100/(1+RS). A zero average loss means
// monotonic gains and is defined as 100, not a division error.
func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// RSI computes the current RSI and its overbought/oversold label.
func RSI(closes []float64, period int) (model.IndicatorResult, error) {
	values, err := RSISeries(closes, period)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	v := values[len(values)-1]
	return model.IndicatorResult{
		Name:  "rsi",
		Value: v,
		Label: rsiLabel(v),
	}, nil
}

func rsiLabel(v float64) string {
	switch {
	case v > 70:
		return LabelOverbought
	case v < 30:
		return LabelOversold
	default:
		return LabelNeutral
	}
}
