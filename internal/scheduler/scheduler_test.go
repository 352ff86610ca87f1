package scheduler

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EquityLens/internal/marketdata"
	"EquityLens/internal/model"
	"EquityLens/internal/narrative"
	"EquityLens/internal/recorder"
	"EquityLens/internal/report"
)

func testLogger() *log.Logger {
	return &log.Logger{Writer: log.IOWriter{Writer: io.Discard}}
}

type stubAnalyst struct{ prose string }

func (s *stubAnalyst) Name() string { return "stub" }
func (s *stubAnalyst) Analyze(_ context.Context, _ string, _ model.SymbolInfo) (string, error) {
	return s.prose, nil
}

type stubReviewer struct {
	feedback narrative.ReviewFeedback
	lastMD   string
}

func (s *stubReviewer) Name() string { return "stub-reviewer" }
func (s *stubReviewer) Review(_ context.Context, _ string, markdown string) (*narrative.ReviewFeedback, error) {
	s.lastMD = markdown
	fb := s.feedback
	return &fb, nil
}

func newTestScheduler(t *testing.T, analyst narrative.Analyst, reviewer narrative.Reviewer) (*Scheduler, string) {
	t.Helper()
	provider := &marketdata.StaticProvider{BasePrice: 100}
	asm := report.NewAssembler(provider, report.DefaultConfig(), testLogger())
	outDir := t.TempDir()
	sched := New(context.Background(), asm, provider, analyst, reviewer,
		recorder.NewNoopRecorder(), []string{"SPY"}, outDir, testLogger())
	return sched, outDir
}

func TestRunAnalysis_WritesReport(t *testing.T) {
	sched, outDir := newTestScheduler(t, nil, nil)

	require.NoError(t, sched.RunAnalysis(context.Background(), "SPY"))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "SPY-report-"))

	data, err := os.ReadFile(filepath.Join(outDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Analysis Report: SPY")
}

func TestRunAnalysis_NarrativeAndReview(t *testing.T) {
	reviewer := &stubReviewer{feedback: narrative.ReviewFeedback{Approved: true, Score: 9}}
	sched, outDir := newTestScheduler(t, &stubAnalyst{prose: "a measured take"}, reviewer)

	require.NoError(t, sched.RunAnalysis(context.Background(), "SPY"))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // report plus narrative

	// The reviewer sees the same rendered report the analyst got.
	assert.Contains(t, reviewer.lastMD, "# Analysis Report: SPY")
}

func TestRegister_RejectsBadCron(t *testing.T) {
	sched, _ := newTestScheduler(t, nil, nil)
	assert.Error(t, sched.Register("not a cron expression"))
	assert.NoError(t, sched.Register("0 0 8 * * 1-5"))
}
