// Package series provides the shared rolling-window math used by every
// indicator engine: moving averages, rolling deviation, gain/loss
// decomposition and return series.
//
// All rolling functions return a slice of equal length to the input,
// left-padded with undefined markers for indices below period-1.
// Callers must handle partial windows explicitly via IsUndefined;
// padded values are never silently dropped.
package series

import (
	"errors"
	"math"
)

// ErrInvalidPeriod is returned when a period is zero or negative.
var ErrInvalidPeriod = errors.New("period must be positive")

// Undefined returns the sentinel marking indices where a rolling
// window is not yet complete.
func Undefined() float64 { return math.NaN() }

// IsUndefined reports whether v is the undefined sentinel.
func IsUndefined(v float64) bool { return math.IsNaN(v) }

// LastDefined returns the last defined value of a padded series, or
// the undefined sentinel when every entry is padding.
func LastDefined(values []float64) float64 {
	for i := len(values) - 1; i >= 0; i-- {
		if !IsUndefined(values[i]) {
			return values[i]
		}
	}
	return Undefined()
}

func checkWindow(op string, n, period int) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}
	if period > n {
		return ErrInsufficientData(op, period, n)
	}
	return nil
}

// SMA computes the simple moving average over the given period.
// Windows containing an undefined input are reported undefined; once
// the last undefined element leaves the window the averages resume,
// so a sentinel never poisons the rest of the series.
func SMA(values []float64, period int) ([]float64, error) {
	if err := checkWindow("SMA", len(values), period); err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	sum := 0.0
	undefined := 0
	for i, v := range values {
		if IsUndefined(v) {
			undefined++
		} else {
			sum += v
		}
		if i >= period {
			if old := values[i-period]; IsUndefined(old) {
				undefined--
			} else {
				sum -= old
			}
		}
		if i >= period-1 && undefined == 0 {
			out[i] = sum / float64(period)
		} else {
			out[i] = Undefined()
		}
	}
	return out, nil
}

// EMA computes the exponential moving average with smoothing factor
// alpha = 2/(period+1), seeded by the SMA over the initial window.
// The seed-then-recurse convention matches the reference smoothing
// recursion exactly, not just asymptotically.
func EMA(values []float64, period int) ([]float64, error) {
	if err := checkWindow("EMA", len(values), period); err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	alpha := 2.0 / float64(period+1)

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
		if i < period-1 {
			out[i] = Undefined()
		}
	}
	out[period-1] = seed / float64(period)
	for i := period; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}

// RollingStd computes the rolling population standard deviation over
// the given period.
func RollingStd(values []float64, period int) ([]float64, error) {
	if err := checkWindow("RollingStd", len(values), period); err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i := range values {
		if i < period-1 {
			out[i] = Undefined()
			continue
		}
		window := values[i-period+1 : i+1]
		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)
		variance := 0.0
		for _, v := range window {
			d := v - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(period))
	}
	return out, nil
}

// RollingMax computes the rolling maximum over the given period.
func RollingMax(values []float64, period int) ([]float64, error) {
	if err := checkWindow("RollingMax", len(values), period); err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i := range values {
		if i < period-1 {
			out[i] = Undefined()
			continue
		}
		max := values[i-period+1]
		for _, v := range values[i-period+2 : i+1] {
			if v > max {
				max = v
			}
		}
		out[i] = max
	}
	return out, nil
}

// RollingMin computes the rolling minimum over the given period.
func RollingMin(values []float64, period int) ([]float64, error) {
	if err := checkWindow("RollingMin", len(values), period); err != nil {
		return nil, err
	}
	out := make([]float64, len(values))
	for i := range values {
		if i < period-1 {
			out[i] = Undefined()
			continue
		}
		min := values[i-period+1]
		for _, v := range values[i-period+2 : i+1] {
			if v < min {
				min = v
			}
		}
		out[i] = min
	}
	return out, nil
}

// GainsLosses decomposes period-over-period changes into separate
// gain and loss series (losses reported as positive magnitudes). The
// output has length len(values)-1, aligned to the later bar of each
// change.
func GainsLosses(values []float64) (gains, losses []float64) {
	if len(values) < 2 {
		return nil, nil
	}
	gains = make([]float64, len(values)-1)
	losses = make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains[i-1] = change
		} else {
			losses[i-1] = -change
		}
	}
	return gains, losses
}

// Returns computes simple period-over-period returns, length
// len(values)-1. Requires at least two samples.
func Returns(values []float64) ([]float64, error) {
	if len(values) < 2 {
		return nil, ErrInsufficientData("Returns", 2, len(values))
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			out[i-1] = Undefined()
			continue
		}
		out[i-1] = values[i]/values[i-1] - 1
	}
	return out, nil
}

// PercentChange computes the percent change over a lookback of n
// periods for the final value: (last - value n periods ago) / earlier.
func PercentChange(values []float64, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrInvalidPeriod
	}
	if len(values) < n+1 {
		return 0, ErrInsufficientData("PercentChange", n+1, len(values))
	}
	earlier := values[len(values)-1-n]
	if earlier == 0 {
		return Undefined(), nil
	}
	return (values[len(values)-1] - earlier) / earlier, nil
}

// Mean computes the arithmetic mean. Returns the undefined sentinel
// for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return Undefined()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStd computes the sample (n-1) standard deviation.
func SampleStd(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData("SampleStd", 2, len(values))
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values)-1)), nil
}
