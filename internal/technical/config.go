// Package technical computes trend, momentum, volatility and volume
// indicators over a price series. Every function is a pure, stateless
// computation over its inputs; the only errors that escape are typed
// data-sufficiency failures from the series package.
package technical

// Config enumerates the tunable parameters of the technical engine.
// Passed explicitly on every call; there are no ambient defaults.
type Config struct {
	RSIPeriod        int     `yaml:"rsi_period"`
	MACDFast         int     `yaml:"macd_fast"`
	MACDSlow         int     `yaml:"macd_slow"`
	MACDSignal       int     `yaml:"macd_signal"`
	BollingerPeriod  int     `yaml:"bollinger_period"`
	BollingerK       float64 `yaml:"bollinger_k"`
	ATRPeriod        int     `yaml:"atr_period"`
	ADXPeriod        int     `yaml:"adx_period"`
	VolumePeriod     int     `yaml:"volume_period"`
	VolumeHigh       float64 `yaml:"volume_high"`
	VolumeLow        float64 `yaml:"volume_low"`
	MomentumLookback int     `yaml:"momentum_lookback"`
	SMAFast          int     `yaml:"sma_fast"`
	SMASlow          int     `yaml:"sma_slow"`
	EMAPeriod        int     `yaml:"ema_period"`
}

// DefaultConfig returns the conventional indicator settings.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:        14,
		MACDFast:         12,
		MACDSlow:         26,
		MACDSignal:       9,
		BollingerPeriod:  20,
		BollingerK:       2,
		ATRPeriod:        14,
		ADXPeriod:        14,
		VolumePeriod:     20,
		VolumeHigh:       1.5,
		VolumeLow:        0.5,
		MomentumLookback: 5,
		SMAFast:          20,
		SMASlow:          50,
		EMAPeriod:        20,
	}
}
