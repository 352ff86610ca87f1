package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/phuslu/log"

	"EquityLens/internal/config"
	"EquityLens/internal/marketdata"
	"EquityLens/internal/narrative"
	"EquityLens/internal/recorder"
	"EquityLens/internal/report"
	"EquityLens/internal/scheduler"
)

func main() {
	symbolFlag := flag.String("symbol", "", "analyze one symbol immediately and exit")
	configFlag := flag.String("config", "", "path to config file")
	flag.Parse()

	cfgPath := "configs/config.yaml"
	if *configFlag != "" {
		cfgPath = *configFlag
	} else if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := &log.Logger{
		Level:      log.ParseLevel(cfg.Logging.Level),
		TimeFormat: "15:04:05",
		Writer:     &log.ConsoleWriter{ColorOutput: true},
	}
	logger.Info().Msg("EquityLens starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var provider marketdata.Provider
	if cfg.DataSource.Provider == "yahoo" {
		provider = marketdata.NewYahooProvider(cfg.DataSource.Proxy)
	} else {
		provider = &marketdata.StaticProvider{BasePrice: cfg.DataSource.BasePrice}
	}
	logger.Info().Str("provider", provider.Name()).Msg("data source ready")

	asm := report.NewAssembler(provider, cfg.Report, logger)

	// Narrative collaborators are optional: without keys the numeric
	// pipeline still runs and records.
	var analyst narrative.Analyst
	if cfg.Analyst.APIKey != "" {
		a, err := narrative.NewClaudeAnalyst(cfg.Analyst, logger)
		if err != nil {
			log.Fatal().Err(err).Msg("init analyst")
		}
		analyst = a
	} else {
		logger.Warn().Msg("no anthropic api key, narrative generation disabled")
	}

	var reviewer narrative.Reviewer
	if cfg.Reviewer.APIKey != "" {
		r, err := narrative.NewGeminiReviewer(ctx, cfg.Reviewer, logger)
		if err != nil {
			log.Fatal().Err(err).Msg("init reviewer")
		}
		reviewer = r
	} else {
		logger.Warn().Msg("no google api key, narrative review disabled")
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	sched := scheduler.New(ctx, asm, provider, analyst, reviewer, rec,
		cfg.Symbols, cfg.Output.Dir, logger)

	// One-shot mode: analyze a single symbol and exit.
	if *symbolFlag != "" {
		if err := sched.RunAnalysis(ctx, *symbolFlag); err != nil {
			log.Fatal().Str("symbol", *symbolFlag).Err(err).Msg("analysis failed")
		}
		logger.Info().Str("symbol", *symbolFlag).Msg("analysis complete")
		return
	}

	if err := sched.Register(cfg.Schedule.AnalysisCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Schedule.RunOnStart || os.Getenv("RUN_ON_START") == "true" {
		logger.Info().Msg("run-on-start enabled, executing analysis now")
		go sched.RunAllNow()
	}

	logger.Info().Msg("EquityLens is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("shutdown signal received, stopping")
	cancel()
	logger.Info().Msg("EquityLens stopped")
}
