package advanced

import (
	"EquityLens/internal/model"
	"EquityLens/internal/series"
	"EquityLens/internal/technical"
)

// StochRSIConfig enumerates the stochastic-RSI windows: the RSI
// period, the secondary stochastic window, and the %K/%D smoothing.
type StochRSIConfig struct {
	RSIPeriod   int `yaml:"rsi_period"`
	StochPeriod int `yaml:"stoch_period"`
	SmoothK     int `yaml:"smooth_k"`
	SmoothD     int `yaml:"smooth_d"`
}

// DefaultStochRSIConfig returns the conventional 14/14/3/3 settings.
func DefaultStochRSIConfig() StochRSIConfig {
	return StochRSIConfig{RSIPeriod: 14, StochPeriod: 14, SmoothK: 3, SmoothD: 3}
}

// minSamples is the series length needed for one defined %D value.
func (c StochRSIConfig) minSamples() int {
	return c.RSIPeriod + c.StochPeriod + c.SmoothK + c.SmoothD - 2
}

// StochasticRSI feeds the Wilder RSI through the %K/%D stochastic
// formula over the secondary window. Both outputs are bounded [0,100];
// a flat RSI window makes the ratio undefined and is reported as the
// sentinel for that index.
func StochasticRSI(closes []float64, cfg StochRSIConfig) (model.IndicatorResult, error) {
	if len(closes) < cfg.minSamples() {
		return model.IndicatorResult{}, series.ErrInsufficientData("StochRSI", cfg.minSamples(), len(closes))
	}

	rsi, err := technical.RSISeries(closes, cfg.RSIPeriod)
	if err != nil {
		return model.IndicatorResult{}, err
	}

	// Work on the defined RSI segment; indices below RSIPeriod are padding.
	defined := rsi[cfg.RSIPeriod:]
	hi, err := series.RollingMax(defined, cfg.StochPeriod)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	lo, err := series.RollingMin(defined, cfg.StochPeriod)
	if err != nil {
		return model.IndicatorResult{}, err
	}

	stoch := make([]float64, len(defined))
	for i := range defined {
		if series.IsUndefined(hi[i]) || hi[i] == lo[i] {
			stoch[i] = series.Undefined()
			continue
		}
		stoch[i] = (defined[i] - lo[i]) / (hi[i] - lo[i])
	}

	// Smooth over the defined stochastic tail.
	start := cfg.StochPeriod - 1
	k, err := series.SMA(stoch[start:], cfg.SmoothK)
	if err != nil {
		return model.IndicatorResult{}, err
	}
	d, err := series.SMA(k, cfg.SmoothD)
	if err != nil {
		return model.IndicatorResult{}, err
	}

	kLast := series.LastDefined(k) * 100
	dLast := series.LastDefined(d) * 100
	return model.IndicatorResult{
		Name:  "stoch_rsi",
		Value: kLast,
		Components: map[string]float64{
			"k": kLast,
			"d": dLast,
		},
	}, nil
}
