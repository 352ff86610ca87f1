package report

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquityLens/internal/marketdata"
	"EquityLens/internal/model"
)

func testLogger() *log.Logger {
	return &log.Logger{Writer: log.IOWriter{Writer: io.Discard}}
}

func testProvider() *marketdata.StaticProvider {
	return &marketdata.StaticProvider{
		BasePrice: 150,
		Financials: map[string]model.FinancialStatementSnapshot{
			"ACME": {
				Revenue:            1000,
				NetIncome:          120,
				TotalAssets:        2000,
				TotalLiabilities:   800,
				CurrentAssets:      600,
				CurrentLiabilities: 300,
				Inventory:          100,
				Receivables:        150,
				Equity:             1200,
				SharesOutstanding:  100,
				FreeCashFlows:      []float64{100, 110, 121},
				RevenueHistory:     []float64{800, 900, 1000},
				PeerMetrics:        map[string]float64{"net_margin": 0.12},
				CompetitorMetrics: []map[string]float64{
					{"net_margin": 0.08},
					{"net_margin": 0.15},
				},
				ESGMetrics: model.ESGMetrics{
					Environmental: map[string]float64{"emissions": 60},
					Social:        map[string]float64{"labor": 50},
					Governance:    map[string]float64{"board": 80},
				},
			},
		},
		Info: map[string]model.SymbolInfo{
			"ACME": {Symbol: "ACME", Name: "Acme Corp", Sector: "Industrials", Industry: "Machinery"},
		},
	}
}

func TestAssemble_FullSeries(t *testing.T) {
	asm := NewAssembler(testProvider(), DefaultConfig(), testLogger())

	rpt, err := asm.Assemble(context.Background(), "ACME")
	require.NoError(t, err)

	assert.NotEmpty(t, rpt.ID)
	assert.Equal(t, "ACME", rpt.Symbol)

	for _, name := range []string{"rsi", "macd", "bollinger", "atr", "adx", "volume_trend", "moving_averages", "momentum", "pivot_points"} {
		assert.Contains(t, rpt.Technical, name)
	}
	for _, name := range []string{"fibonacci", "ichimoku", "obv", "stoch_rsi", "mfi", "momentum_composite"} {
		assert.Contains(t, rpt.Advanced, name)
	}

	assert.Len(t, rpt.Ratios, 9)
	assert.NotEmpty(t, rpt.Valuation)
	assert.Contains(t, rpt.Peers, "net_margin")
	require.NotNil(t, rpt.ESG)
	assert.InDelta(t, 60*0.33+50*0.33+80*0.34, rpt.ESG.Value, 1e-9)
	assert.NotNil(t, rpt.Risk)
	assert.Len(t, rpt.VaR, 2)
	assert.Len(t, rpt.Stops, 2)
	assert.Empty(t, rpt.Missing)
}

func TestAssemble_ShortSeriesFlagsMissing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bars = 10 // far below what MACD, Ichimoku and VaR need
	asm := NewAssembler(testProvider(), cfg, testLogger())

	rpt, err := asm.Assemble(context.Background(), "ACME")
	require.NoError(t, err)

	missing := make(map[string]bool, len(rpt.Missing))
	for _, m := range rpt.Missing {
		assert.NotEmpty(t, m.Reason)
		missing[m.Name] = true
	}

	assert.True(t, missing["macd"])
	assert.True(t, missing["adx"])
	assert.True(t, missing["ichimoku"])
	assert.True(t, missing["var_parametric"])
	assert.True(t, missing["var_historical"])
	assert.NotContains(t, rpt.Technical, "macd")
}

func TestRenderMarkdown(t *testing.T) {
	asm := NewAssembler(testProvider(), DefaultConfig(), testLogger())
	rpt, err := asm.Assemble(context.Background(), "ACME")
	require.NoError(t, err)

	md := RenderMarkdown(rpt, model.SymbolInfo{Symbol: "ACME", Name: "Acme Corp", Sector: "Industrials", Industry: "Machinery"})

	assert.True(t, strings.HasPrefix(md, "# Analysis Report: ACME"))
	assert.Contains(t, md, "## Technical Indicators")
	assert.Contains(t, md, "## Advanced Indicators")
	assert.Contains(t, md, "## Fundamental Ratios")
	assert.Contains(t, md, "## Peer Comparison")
	assert.Contains(t, md, "## ESG Scoring")
	assert.Contains(t, md, "## Risk Assessment")
	assert.Contains(t, md, "Acme Corp")
	assert.NotContains(t, md, "NaN")
}

func TestRenderMarkdown_MissingSection(t *testing.T) {
	rpt := &model.Report{
		ID:     "test",
		Symbol: "ACME",
		Missing: []model.MissingMetric{
			{Name: "macd", Reason: "macd: need 35 samples, have 10"},
		},
	}
	md := RenderMarkdown(rpt, model.SymbolInfo{})
	assert.Contains(t, md, "## Unavailable Metrics")
	assert.Contains(t, md, "macd")
}
