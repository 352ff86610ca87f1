package technical

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// MovingAverages computes the configured SMA fast/slow and EMA values
// for the latest bar.
func MovingAverages(closes []float64, cfg Config) (model.IndicatorResult, error) {
	smaFast, err := series.SMA(closes, cfg.SMAFast)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	smaSlow, err := series.SMA(closes, cfg.SMASlow)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	ema, err := series.EMA(closes, cfg.EMAPeriod)
	if err != nil {
		return model.IndicatorResult{}, err
	}

	last := len(closes) - 1
	return model.IndicatorResult{
		Name:  "moving_averages",
		Value: smaFast[last],
		Components: map[string]float64{
			"sma_fast": smaFast[last],
			"sma_slow": smaSlow[last],
			"ema":      ema[last],
		},
		Label: trendDirection(closes[last], smaFast[last], smaSlow[last]),
	}, nil
}

// trendDirection labels the primary trend from the price/MA stack:
// price above both and fast above slow is bullish, the mirror image
// bearish, anything else neutral.
func trendDirection(price, smaFast, smaSlow float64) string {
	switch {
	case price > smaFast && smaFast > smaSlow:
		return LabelBullish
	case price < smaFast && smaFast < smaSlow:
		return LabelBearish
	default:
		return LabelNeutral
	}
}

// Momentum computes the percent change of the close over the
// configured lookback, reported in percent.
func Momentum(closes []float64, lookback int) (model.IndicatorResult, error) {
	pc, err := series.PercentChange(closes, lookback)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	return model.IndicatorResult{
		Name:  "momentum",
		Value: pc * 100,
	}, nil
}

// PivotPoints computes classic floor-trader pivot levels from the
// latest bar.
func PivotPoints(high, low, close float64) model.IndicatorResult {
	pp := (high + low + close) / 3
	return model.IndicatorResult{
		Name:  "pivot_points",
		Value: pp,
		Components: map[string]float64{
			"pivot": pp,
			"r1":    2*pp - low,
			"s1":    2*pp - high,
			"r2":    pp + (high - low),
			"s2":    pp - (high - low),
		},
	}
}
