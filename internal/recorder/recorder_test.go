package recorder

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

func testLogger() *log.Logger {
	return &log.Logger{Writer: log.IOWriter{Writer: io.Discard}}
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	rec, err := NewSQLiteRecorder(path, testLogger())
	require.NoError(t, err)
	defer rec.Close()

	rpt := &model.Report{
		ID:     "r-1",
		Symbol: "ACME",
		Technical: map[string]model.IndicatorResult{
			"rsi": {Name: "rsi", Value: 62.5},
			"atr": {Name: "atr", Value: 1.8},
		},
		Advanced:    map[string]model.IndicatorResult{},
		HealthScore: 71.2,
		GrowthCAGR:  series.Undefined(), // stored as NULL, not zero
		Risk:        &model.RiskProfile{PositionSize: 400, MaxLoss: 2000},
		VaR: []model.VaRResult{
			{Method: "parametric", VaR: 1234.5},
			{Method: "historical", VaR: 1100.0, CVaR: 1400.0},
		},
	}
	require.NoError(t, rec.RecordAnalysis(rpt, 150.25))

	require.NoError(t, rec.RecordReview(&ReviewEvent{
		ReportID: "r-1", Symbol: "ACME",
		Analyst: "claude", Reviewer: "gemini",
		Approved: true, Score: 8.5, IssueCount: 0,
	}))

	var count int
	require.NoError(t, rec.db.QueryRow("SELECT COUNT(*) FROM analysis_snapshots").Scan(&count))
	assert.Equal(t, 1, count)

	var cagr any
	var rsi float64
	require.NoError(t, rec.db.QueryRow(
		"SELECT revenue_cagr, rsi FROM analysis_snapshots WHERE report_id = ?", "r-1",
	).Scan(&cagr, &rsi))
	assert.Nil(t, cagr)
	assert.InDelta(t, 62.5, rsi, 1e-9)

	require.NoError(t, rec.db.QueryRow("SELECT COUNT(*) FROM review_events").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNoopRecorder(t *testing.T) {
	rec := NewNoopRecorder()
	assert.NoError(t, rec.RecordAnalysis(&model.Report{}, 0))
	assert.NoError(t, rec.RecordReview(&ReviewEvent{}))
	assert.NoError(t, rec.Close())
}
