package model

// IndicatorResult is the immutable record produced by one indicator
// invocation. Value holds the headline number; Components carries the
// named tuple for multi-valued indicators (MACD line/signal/histogram,
// band edges, Ichimoku spans). Label is the derived classification
// ("overbought", "bullish", "above average"). Undefined values are NaN
// sentinels, never omitted keys.
type IndicatorResult struct {
	Name       string
	Value      float64
	Components map[string]float64
	Label      string
}
