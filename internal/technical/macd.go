package technical

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// MACD crossover labels.
const (
	LabelBullish = "bullish"
	LabelBearish = "bearish"
)

// MACDSeries holds the three MACD component series, each padded with
// undefined markers where the underlying windows are incomplete.
type MACDSeries struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// MACDLines computes MACD line = EMA(fast) - EMA(slow), the signal
// line as an EMA of the MACD line, and their difference. Requires at
// least slow+signal points so that every component has one defined
// value.
func MACDLines(closes []float64, fast, slow, signal int) (*MACDSeries, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, series.ErrInvalidPeriod
	}
	if len(closes) < slow+signal {
		return nil, series.ErrInsufficientData("MACD", slow+signal, len(closes))
	}

	emaFast, err := series.EMA(closes, fast)
	if err != nil {
		return nil, err
	}
	emaSlow, err := series.EMA(closes, slow)
	if err != nil {
		return nil, err
	}

	n := len(closes)
	line := make([]float64, n)
	for i := 0; i < n; i++ {
		if series.IsUndefined(emaFast[i]) || series.IsUndefined(emaSlow[i]) {
			line[i] = series.Undefined()
			continue
		}
		line[i] = emaFast[i] - emaSlow[i]
	}

	// The signal EMA runs over the defined MACD segment, which starts
	// where the slow EMA first resolves.
	start := slow - 1
	signalSeg, err := series.EMA(line[start:], signal)
	if err != nil {
		return nil, err
	}

	sig := make([]float64, n)
	hist := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < start || series.IsUndefined(signalSeg[i-start]) {
			sig[i] = series.Undefined()
			hist[i] = series.Undefined()
			continue
		}
		sig[i] = signalSeg[i-start]
		hist[i] = line[i] - sig[i]
	}

	return &MACDSeries{Line: line, Signal: sig, Histogram: hist}, nil
}

// MACD computes the current MACD state with a bullish/bearish
// crossover label.
func MACD(closes []float64, fast, slow, signal int) (model.IndicatorResult, error) {
	ms, err := MACDLines(closes, fast, slow, signal)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	last := len(ms.Line) - 1
	label := LabelBearish
	if ms.Line[last] > ms.Signal[last] {
		label = LabelBullish
	}
	return model.IndicatorResult{
		Name:  "macd",
		Value: ms.Line[last],
		Components: map[string]float64{
			"macd":      ms.Line[last],
			"signal":    ms.Signal[last],
			"histogram": ms.Histogram[last],
		},
		Label: label,
	}, nil
}
