package technical

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// Bands holds the Bollinger band series. Each slice is padded with
// undefined markers below the window.
type Bands struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// Bollinger computes middle = SMA(period) and upper/lower bands at
// k rolling standard deviations.
func Bollinger(closes []float64, period int, k float64) (*Bands, error) {
	middle, err := series.SMA(closes, period)
	if err != nil {
		return nil, err
	}
	std, err := series.RollingStd(closes, period)
	if err != nil {
		return nil, err
	}

	upper := make([]float64, len(closes))
	lower := make([]float64, len(closes))
	for i := range closes {
		if series.IsUndefined(middle[i]) {
			upper[i] = series.Undefined()
			lower[i] = series.Undefined()
			continue
		}
		upper[i] = middle[i] + k*std[i]
		lower[i] = middle[i] - k*std[i]
	}
	return &Bands{Upper: upper, Middle: middle, Lower: lower}, nil
}

// Width returns (upper-lower)/middle at index i. A zero middle band
// is mathematically undefined and reported as the sentinel rather
// than an error, so the rest of the report can still render.
func (b *Bands) Width(i int) float64 {
	if series.IsUndefined(b.Middle[i]) || b.Middle[i] == 0 {
		return series.Undefined()
	}
	return (b.Upper[i] - b.Lower[i]) / b.Middle[i]
}

// BollingerBands computes the current band values and width.
func BollingerBands(closes []float64, period int, k float64) (model.IndicatorResult, error) {
	bands, err := Bollinger(closes, period, k)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	last := len(closes) - 1
	return model.IndicatorResult{
		Name:  "bollinger",
		Value: bands.Middle[last],
		Components: map[string]float64{
			"upper":  bands.Upper[last],
			"middle": bands.Middle[last],
			"lower":  bands.Lower[last],
			"width":  bands.Width(last),
		},
	}, nil
}
