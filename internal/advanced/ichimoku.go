package advanced

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// IchimokuConfig enumerates the cloud periods. The Senkou spans are
// shifted forward by the Kijun period and the Chikou span backward by
// the same amount.
type IchimokuConfig struct {
	TenkanPeriod  int `yaml:"tenkan_period"`
	KijunPeriod   int `yaml:"kijun_period"`
	SenkouBPeriod int `yaml:"senkou_b_period"`
}

// DefaultIchimokuConfig returns the conventional 9/26/52 settings.
func DefaultIchimokuConfig() IchimokuConfig {
	return IchimokuConfig{TenkanPeriod: 9, KijunPeriod: 26, SenkouBPeriod: 52}
}

// IchimokuCloud holds the five component series. All slices share the
// input's length and index alignment; shifting creates undefined
// markers at the series boundaries, never zero-filled arithmetic.
type IchimokuCloud struct {
	TenkanSen  []float64
	KijunSen   []float64
	SenkouA    []float64
	SenkouB    []float64
	ChikouSpan []float64
}

// midpoint computes (rolling max(high) + rolling min(low)) / 2.
func midpoint(highs, lows []float64, period int) ([]float64, error) {
	hi, err := series.RollingMax(highs, period)
	if err != nil {
		return nil, err
	}
	lo, err := series.RollingMin(lows, period)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(highs))
	for i := range out {
		if series.IsUndefined(hi[i]) {
			out[i] = series.Undefined()
			continue
		}
		out[i] = (hi[i] + lo[i]) / 2
	}
	return out, nil
}

// shiftForward moves values n indices later; the first n indices and
// any source padding become undefined.
func shiftForward(values []float64, n int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		if i < n {
			out[i] = series.Undefined()
			continue
		}
		out[i] = values[i-n]
	}
	return out
}

// shiftBackward moves values n indices earlier; the last n indices
// become undefined.
func shiftBackward(values []float64, n int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		if i+n >= len(values) {
			out[i] = series.Undefined()
			continue
		}
		out[i] = values[i+n]
	}
	return out
}

// Ichimoku computes the five cloud components. Requires enough bars
// for the longest window (Senkou B period).
func Ichimoku(highs, lows, closes []float64, cfg IchimokuConfig) (*IchimokuCloud, error) {
	tenkan, err := midpoint(highs, lows, cfg.TenkanPeriod)
	if err != nil {
		return nil, err
	}
	kijun, err := midpoint(highs, lows, cfg.KijunPeriod)
	if err != nil {
		return nil, err
	}
	senkouBraw, err := midpoint(highs, lows, cfg.SenkouBPeriod)
	if err != nil {
		return nil, err
	}

	senkouAraw := make([]float64, len(closes))
	for i := range senkouAraw {
		if series.IsUndefined(tenkan[i]) || series.IsUndefined(kijun[i]) {
			senkouAraw[i] = series.Undefined()
			continue
		}
		senkouAraw[i] = (tenkan[i] + kijun[i]) / 2
	}

	return &IchimokuCloud{
		TenkanSen:  tenkan,
		KijunSen:   kijun,
		SenkouA:    shiftForward(senkouAraw, cfg.KijunPeriod),
		SenkouB:    shiftForward(senkouBraw, cfg.KijunPeriod),
		ChikouSpan: shiftBackward(closes, cfg.KijunPeriod),
	}, nil
}

// IchimokuResult reports the latest defined value of each component.
func IchimokuResult(highs, lows, closes []float64, cfg IchimokuConfig) (model.IndicatorResult, error) {
	cloud, err := Ichimoku(highs, lows, closes, cfg)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	last := len(closes) - 1
	return model.IndicatorResult{
		Name:  "ichimoku",
		Value: cloud.TenkanSen[last],
		Components: map[string]float64{
			"tenkan_sen":  cloud.TenkanSen[last],
			"kijun_sen":   cloud.KijunSen[last],
			"senkou_a":    cloud.SenkouA[last],
			"senkou_b":    cloud.SenkouB[last],
			"chikou_span": series.LastDefined(cloud.ChikouSpan),
		},
	}, nil
}
