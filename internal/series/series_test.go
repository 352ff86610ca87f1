package series

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA_PadsPartialWindows(t *testing.T) {
	out, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	require.Len(t, out, 5)

	assert.True(t, IsUndefined(out[0]))
	assert.True(t, IsUndefined(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-12)
	assert.InDelta(t, 3.0, out[3], 1e-12)
	assert.InDelta(t, 4.0, out[4], 1e-12)
}

func TestSMA_PeriodOneIsIdentity(t *testing.T) {
	in := []float64{3.5, -1, 0, 42, 7.25}
	out, err := SMA(in, 1)
	require.NoError(t, err)
	for i := range in {
		assert.Equal(t, in[i], out[i], "index %d", i)
	}
}

func TestSMA_RecoversAfterUndefinedInput(t *testing.T) {
	in := []float64{1, 2, Undefined(), 4, 5, 6, 7}
	out, err := SMA(in, 3)
	require.NoError(t, err)

	// Windows touching the sentinel are undefined.
	assert.True(t, IsUndefined(out[2]))
	assert.True(t, IsUndefined(out[3]))
	assert.True(t, IsUndefined(out[4]))
	// Fully defined windows after it produce values again.
	assert.InDelta(t, 5.0, out[5], 1e-12)
	assert.InDelta(t, 6.0, out[6], 1e-12)
}

func TestSMA_InsufficientData(t *testing.T) {
	_, err := SMA([]float64{1, 2}, 3)
	var ide *InsufficientDataError
	require.ErrorAs(t, err, &ide)
	assert.Equal(t, 3, ide.Required)
	assert.Equal(t, 2, ide.Actual)
}

func TestSMA_InvalidPeriod(t *testing.T) {
	_, err := SMA([]float64{1, 2, 3}, 0)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestEMA_SeedAndRecursion(t *testing.T) {
	// period 3 => alpha = 0.5; seed is SMA(1,2,3) = 2, then
	// 0.5*4 + 0.5*2 = 3 and 0.5*5 + 0.5*3 = 4, exactly.
	out, err := EMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)

	assert.True(t, IsUndefined(out[0]))
	assert.True(t, IsUndefined(out[1]))
	assert.Equal(t, 2.0, out[2])
	assert.Equal(t, 3.0, out[3])
	assert.Equal(t, 4.0, out[4])
}

func TestEMA_InsufficientData(t *testing.T) {
	_, err := EMA([]float64{1}, 5)
	var ide *InsufficientDataError
	assert.ErrorAs(t, err, &ide)
}

func TestRollingStd_KnownPopulation(t *testing.T) {
	in := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	out, err := RollingStd(in, 8)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		assert.True(t, IsUndefined(out[i]), "index %d", i)
	}
	assert.InDelta(t, 2.0, out[7], 1e-12)
}

func TestRollingStd_ConstantSeriesIsZero(t *testing.T) {
	out, err := RollingStd([]float64{5, 5, 5, 5}, 2)
	require.NoError(t, err)
	for i := 1; i < len(out); i++ {
		assert.Equal(t, 0.0, out[i])
	}
}

func TestRollingMaxMin(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5}
	max, err := RollingMax(in, 3)
	require.NoError(t, err)
	min, err := RollingMin(in, 3)
	require.NoError(t, err)

	assert.Equal(t, 4.0, max[2])
	assert.Equal(t, 4.0, max[3])
	assert.Equal(t, 5.0, max[4])
	assert.Equal(t, 1.0, min[2])
	assert.Equal(t, 1.0, min[3])
	assert.Equal(t, 1.0, min[4])
}

func TestGainsLosses(t *testing.T) {
	gains, losses := GainsLosses([]float64{10, 12, 11, 11, 14})
	require.Len(t, gains, 4)

	assert.Equal(t, []float64{2, 0, 0, 3}, gains)
	assert.Equal(t, []float64{0, 1, 0, 0}, losses)
}

func TestReturns(t *testing.T) {
	out, err := Returns([]float64{100, 110, 99})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, out[0], 1e-12)
	assert.InDelta(t, -0.10, out[1], 1e-12)

	_, err = Returns([]float64{100})
	var ide *InsufficientDataError
	assert.ErrorAs(t, err, &ide)
}

func TestReturns_ZeroBaseIsUndefined(t *testing.T) {
	out, err := Returns([]float64{0, 5})
	require.NoError(t, err)
	assert.True(t, IsUndefined(out[0]))
}

func TestPercentChange(t *testing.T) {
	pc, err := PercentChange([]float64{100, 101, 102, 103, 104, 105}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, pc, 1e-12)

	_, err = PercentChange([]float64{100, 105}, 5)
	var ide *InsufficientDataError
	assert.ErrorAs(t, err, &ide)
}

func TestSampleStd(t *testing.T) {
	std, err := SampleStd([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.5), std, 1e-12)
}

func TestLastDefined(t *testing.T) {
	assert.Equal(t, 7.0, LastDefined([]float64{Undefined(), 7, Undefined()}))
	assert.True(t, IsUndefined(LastDefined([]float64{Undefined()})))
	assert.True(t, IsUndefined(LastDefined(nil)))
}
