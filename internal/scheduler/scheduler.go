// Package scheduler drives periodic analysis runs over the configured
// symbols and routes the results through the narrative collaborators.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phuslu/log"
	"github.com/robfig/cron/v3"

	"EquityLens/internal/marketdata"
	"EquityLens/internal/narrative"
	"EquityLens/internal/recorder"
	"EquityLens/internal/report"
)

// Scheduler manages the cron task and the per-symbol analysis cycle.
// Analyst and Reviewer may be nil; the numeric pipeline still runs
// and records without them.
type Scheduler struct {
	Cron      *cron.Cron
	Assembler *report.Assembler
	Provider  marketdata.Provider
	Analyst   narrative.Analyst
	Reviewer  narrative.Reviewer
	Recorder  recorder.Recorder
	Symbols   []string
	OutputDir string
	Logger    *log.Logger
	Ctx       context.Context
}

// New creates a Scheduler with second-resolution cron expressions.
func New(ctx context.Context, asm *report.Assembler, provider marketdata.Provider,
	analyst narrative.Analyst, reviewer narrative.Reviewer, rec recorder.Recorder,
	symbols []string, outputDir string, logger *log.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Assembler: asm,
		Provider:  provider,
		Analyst:   analyst,
		Reviewer:  reviewer,
		Recorder:  rec,
		Symbols:   symbols,
		OutputDir: outputDir,
		Logger:    logger,
		Ctx:       ctx,
	}
}

// Register adds the periodic analysis task.
func (s *Scheduler) Register(analysisCron string) error {
	if _, err := s.Cron.AddFunc(analysisCron, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info().Int("symbols", len(s.Symbols)).Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Logger.Info().Msg("scheduler stopped")
}

// RunAllNow analyzes every configured symbol immediately (manual
// trigger / run-on-start).
func (s *Scheduler) RunAllNow() {
	s.analysisTask()
}

func (s *Scheduler) analysisTask() {
	for _, symbol := range s.Symbols {
		if err := s.RunAnalysis(s.Ctx, symbol); err != nil {
			s.Logger.Error().Str("symbol", symbol).Err(err).Msg("analysis failed")
		}
	}
}

// RunAnalysis executes the full cycle for one symbol: assemble the
// report, render it, generate and review the narrative, persist the
// numeric snapshot.
func (s *Scheduler) RunAnalysis(ctx context.Context, symbol string) error {
	rpt, err := s.Assembler.Assemble(ctx, symbol)
	if err != nil {
		return fmt.Errorf("assemble %s: %w", symbol, err)
	}

	info, err := s.Provider.FetchSymbolInfo(ctx, symbol)
	if err != nil {
		s.Logger.Warn().Str("symbol", symbol).Err(err).Msg("symbol info unavailable")
		info.Symbol = symbol
	}

	markdown := report.RenderMarkdown(rpt, info)
	if err := s.writeOutput(symbol, "report", markdown); err != nil {
		s.Logger.Error().Str("symbol", symbol).Err(err).Msg("write report")
	}

	if err := s.Recorder.RecordAnalysis(rpt, rpt.LastClose); err != nil {
		s.Logger.Error().Str("symbol", symbol).Err(err).Msg("record analysis")
	}

	if s.Analyst == nil {
		return nil
	}

	prose, err := s.Analyst.Analyze(ctx, markdown, info)
	if err != nil {
		return fmt.Errorf("narrative %s: %w", symbol, err)
	}
	if err := s.writeOutput(symbol, "narrative", prose); err != nil {
		s.Logger.Error().Str("symbol", symbol).Err(err).Msg("write narrative")
	}

	if s.Reviewer == nil {
		return nil
	}

	feedback, err := s.Reviewer.Review(ctx, prose, markdown)
	if err != nil {
		return fmt.Errorf("review %s: %w", symbol, err)
	}
	s.Logger.Info().
		Str("symbol", symbol).
		Bool("approved", feedback.Approved).
		Float64("score", feedback.Score).
		Msg("narrative reviewed")

	if err := s.Recorder.RecordReview(&recorder.ReviewEvent{
		ReportID:   rpt.ID,
		Symbol:     symbol,
		Analyst:    s.Analyst.Name(),
		Reviewer:   s.Reviewer.Name(),
		Approved:   feedback.Approved,
		Score:      feedback.Score,
		IssueCount: len(feedback.Issues),
	}); err != nil {
		s.Logger.Error().Str("symbol", symbol).Err(err).Msg("record review")
	}

	return nil
}

func (s *Scheduler) writeOutput(symbol, kind, content string) error {
	if s.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s-%s-%s.md", symbol, kind, time.Now().Format("2006-01-02"))
	return os.WriteFile(filepath.Join(s.OutputDir, name), []byte(content), 0o644)
}
