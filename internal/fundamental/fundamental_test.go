package fundamental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

func sampleSnapshot() model.FinancialStatementSnapshot {
	return model.FinancialStatementSnapshot{
		Revenue:            1000,
		NetIncome:          100,
		TotalAssets:        2000,
		TotalLiabilities:   800,
		CurrentAssets:      200,
		CurrentLiabilities: 100,
		Inventory:          50,
		Receivables:        125,
		Equity:             1200,
		SharesOutstanding:  100,
	}
}

func TestRatios_KnownValues(t *testing.T) {
	r := Ratios(sampleSnapshot())

	assert.InDelta(t, 0.05, r[RatioROA], 1e-12)
	assert.InDelta(t, 100.0/1200.0, r[RatioROE], 1e-12)
	assert.InDelta(t, 0.10, r[RatioNetMargin], 1e-12)
	assert.InDelta(t, 2.0, r[RatioCurrentRatio], 1e-12)
	assert.InDelta(t, 1.5, r[RatioQuickRatio], 1e-12)
	assert.InDelta(t, 0.5, r[RatioAssetTurnover], 1e-12)
	assert.InDelta(t, 8.0, r[RatioReceivablesTurnover], 1e-12)
	assert.InDelta(t, 800.0/1200.0, r[RatioDebtToEquity], 1e-12)
	assert.InDelta(t, 0.4, r[RatioDebtToAssets], 1e-12)
}

func TestRatios_ZeroDenominatorsAreUndefinedNotErrors(t *testing.T) {
	r := Ratios(model.FinancialStatementSnapshot{NetIncome: 100})

	assert.True(t, series.IsUndefined(r[RatioROA]))
	assert.True(t, series.IsUndefined(r[RatioROE]))
	assert.True(t, series.IsUndefined(r[RatioCurrentRatio]))
	assert.True(t, series.IsUndefined(r[RatioDebtToEquity]))
	// Every key must still be present so a partial report can render.
	assert.Len(t, r, 9)
}

func TestDCF_RejectsRateBelowGrowth(t *testing.T) {
	_, err := DCFValuation([]float64{100, 110}, 0.03, 0.05, 100)
	var iae *InvalidAssumptionError
	require.ErrorAs(t, err, &iae)

	_, err = DCFValuation([]float64{100, 110}, 0.05, 0.05, 100)
	assert.ErrorAs(t, err, &iae)
}

func TestDCF_EmptyProjection(t *testing.T) {
	_, err := DCFValuation(nil, 0.10, 0.02, 100)
	var ide *series.InsufficientDataError
	assert.ErrorAs(t, err, &ide)
}

func TestDCF_KnownValuation(t *testing.T) {
	// Single cash flow of 100 at r=10%, g=0%:
	// PV forecast = 100/1.1, terminal = 100/0.1 = 1000, PV = 1000/1.1.
	v, err := DCFValuation([]float64{100}, 0.10, 0.0, 100)
	require.NoError(t, err)

	assert.InDelta(t, 100.0/1.1, v[ValPVForecast], 1e-9)
	assert.InDelta(t, 1000.0/1.1, v[ValPVTerminal], 1e-9)
	assert.InDelta(t, 1100.0/1.1, v[ValEnterpriseValue], 1e-9)
	assert.InDelta(t, 11.0/1.1, v[ValPricePerShare], 1e-9)
}

func TestDCF_TerminalValuePositiveForPositiveFinalFlow(t *testing.T) {
	v, err := DCFValuation([]float64{50, 60, 70}, 0.12, 0.03, 0)
	require.NoError(t, err)
	assert.Greater(t, v[ValPVTerminal], 0.0)
	assert.True(t, series.IsUndefined(v[ValPricePerShare])) // no shares supplied
}

func TestCAGR(t *testing.T) {
	// 100 → 121 over two periods is 10% compounded.
	g, err := CAGR([]float64{100, 110, 121})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, g, 1e-9)

	_, err = CAGR([]float64{100})
	var ide *series.InsufficientDataError
	assert.ErrorAs(t, err, &ide)

	g, err = CAGR([]float64{0, 100})
	require.NoError(t, err)
	assert.True(t, series.IsUndefined(g))
}

func TestHealthScore_BoundedAndMonotonic(t *testing.T) {
	strong := HealthScore(sampleSnapshot(), DefaultHealthConfig())
	assert.GreaterOrEqual(t, strong.Value, 0.0)
	assert.LessOrEqual(t, strong.Value, 100.0)

	weakSnap := sampleSnapshot()
	weakSnap.NetIncome = -200
	weakSnap.TotalLiabilities = 5000
	weakSnap.CurrentAssets = 40
	weak := HealthScore(weakSnap, DefaultHealthConfig())

	assert.Greater(t, strong.Value, weak.Value)
}

func TestHealthScore_RenormalizesOverDefinedComponents(t *testing.T) {
	// Only liquidity data reported: the score must equal the liquidity
	// component alone, with the other weights dropped.
	snap := model.FinancialStatementSnapshot{
		CurrentAssets:      200,
		CurrentLiabilities: 100,
	}
	res := HealthScore(snap, DefaultHealthConfig())

	assert.False(t, series.IsUndefined(res.Value))
	assert.InDelta(t, res.Components["liquidity"], res.Value, 1e-9)
	assert.True(t, series.IsUndefined(res.Components["profitability"]))
}

func TestHealthScore_AllUndefined(t *testing.T) {
	res := HealthScore(model.FinancialStatementSnapshot{}, DefaultHealthConfig())
	assert.True(t, series.IsUndefined(res.Value))
	assert.Equal(t, "unknown", res.Label)
}

func TestCompetitorAnalysis_KnownPool(t *testing.T) {
	company := map[string]float64{"net_margin": 3}
	peers := []map[string]float64{
		{"net_margin": 1},
		{"net_margin": 2},
		{"net_margin": 4},
	}
	out := CompetitorAnalysis(company, peers)
	require.Contains(t, out, "net_margin")

	// Pool is {1,2,3,4}: the company ranks third of four.
	pc := out["net_margin"]
	assert.InDelta(t, 3.0, pc.CompanyValue, 1e-12)
	assert.InDelta(t, 2.5, pc.IndustryAvg, 1e-12)
	assert.InDelta(t, 2.5, pc.IndustryMedian, 1e-12)
	assert.InDelta(t, 75.0, pc.Percentile, 1e-12)
}

func TestCompetitorAnalysis_TiesShareRank(t *testing.T) {
	company := map[string]float64{"roe": 3}
	peers := []map[string]float64{
		{"roe": 1}, {"roe": 2}, {"roe": 3}, {"roe": 4},
	}
	out := CompetitorAnalysis(company, peers)

	// Pool {1,2,3,3,4}: the tied threes average ranks 3 and 4 of 5.
	assert.InDelta(t, 70.0, out["roe"].Percentile, 1e-12)
	assert.InDelta(t, 3.0, out["roe"].IndustryMedian, 1e-12)
}

func TestCompetitorAnalysis_NoPeersIsTopOfOwnPool(t *testing.T) {
	out := CompetitorAnalysis(map[string]float64{"roa": 0.05}, nil)

	pc := out["roa"]
	assert.InDelta(t, 0.05, pc.IndustryAvg, 1e-12)
	assert.InDelta(t, 0.05, pc.IndustryMedian, 1e-12)
	assert.InDelta(t, 100.0, pc.Percentile, 1e-12)
}

func TestCompetitorAnalysis_SkipsUndefinedValues(t *testing.T) {
	company := map[string]float64{
		"net_margin": 2,
		"roe":        series.Undefined(),
	}
	peers := []map[string]float64{
		{"net_margin": series.Undefined()},
		{"net_margin": 4},
		{"roe": 1},
	}
	out := CompetitorAnalysis(company, peers)

	// The undefined company metric is skipped entirely and the
	// undefined peer value is left out of the pool.
	assert.NotContains(t, out, "roe")
	require.Contains(t, out, "net_margin")
	assert.InDelta(t, 3.0, out["net_margin"].IndustryAvg, 1e-12)
}

func TestESGScore_WeightedComposite(t *testing.T) {
	metrics := model.ESGMetrics{
		Environmental: map[string]float64{"emissions": 60, "energy": 80},
		Social:        map[string]float64{"labor": 50},
		Governance:    map[string]float64{"board": 90, "ethics": 70},
	}
	res := ESGScore(metrics, DefaultESGWeights())

	assert.InDelta(t, 70.0, res.Components["environmental"], 1e-9)
	assert.InDelta(t, 50.0, res.Components["social"], 1e-9)
	assert.InDelta(t, 80.0, res.Components["governance"], 1e-9)
	assert.InDelta(t, 70*0.33+50*0.33+80*0.34, res.Value, 1e-9)
}

func TestESGScore_MissingCategoryUndefinesComposite(t *testing.T) {
	metrics := model.ESGMetrics{
		Environmental: map[string]float64{"emissions": 60},
		Social:        map[string]float64{"labor": 50},
	}
	res := ESGScore(metrics, DefaultESGWeights())

	assert.True(t, series.IsUndefined(res.Components["governance"]))
	assert.True(t, series.IsUndefined(res.Value))
	assert.InDelta(t, 60.0, res.Components["environmental"], 1e-9)
}
