// Package risk computes position sizing, Value-at-Risk, risk-reward,
// portfolio aggregation and stop-loss placement. Stateless pure
// functions; the typed failures that escape are data-sufficiency and
// invalid-stop errors.
package risk

// Config enumerates the tunable risk parameters.
type Config struct {
	Confidence     float64 `yaml:"confidence"`      // VaR confidence level, e.g. 0.95
	MinSamples     int     `yaml:"min_samples"`     // minimum return observations for VaR
	StopMultiplier float64 `yaml:"stop_multiplier"` // ATR multiples for stop placement
	Correlation    float64 `yaml:"correlation"`     // pairwise coefficient; 1 = worst-case additive
}

// DefaultConfig returns conservative defaults: 95% confidence, 30
// samples minimum, 2x ATR stops, fully correlated positions.
func DefaultConfig() Config {
	return Config{
		Confidence:     0.95,
		MinSamples:     30,
		StopMultiplier: 2.0,
		Correlation:    1.0,
	}
}
