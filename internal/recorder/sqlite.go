package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/phuslu/log"
	_ "modernc.org/sqlite"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db     *sql.DB
	logger *log.Logger
	mu     sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger *log.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, logger: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			report_id      TEXT NOT NULL,
			symbol         TEXT NOT NULL,
			last_close     REAL,
			rsi            REAL,
			macd_histogram REAL,
			atr            REAL,
			obv            REAL,
			health_score   REAL,
			revenue_cagr   REAL,
			var_parametric REAL,
			var_historical REAL,
			position_size  INTEGER,
			max_loss       REAL,
			missing_count  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol ON analysis_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS review_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			report_id   TEXT NOT NULL,
			symbol      TEXT NOT NULL,
			analyst     TEXT,
			reviewer    TEXT,
			approved    INTEGER,
			score       REAL,
			issue_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_review_ts ON review_events(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps undefined sentinels to SQL NULL so gaps stay visible
// in the history instead of turning into zeros.
func nullable(v float64) any {
	if series.IsUndefined(v) {
		return nil
	}
	return v
}

func indicatorValue(m map[string]model.IndicatorResult, name string) any {
	if r, ok := m[name]; ok {
		return nullable(r.Value)
	}
	return nil
}

func componentValue(m map[string]model.IndicatorResult, name, component string) any {
	if r, ok := m[name]; ok {
		if v, ok := r.Components[component]; ok {
			return nullable(v)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(rpt *model.Report, lastClose float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var varParametric, varHistorical any
	for _, v := range rpt.VaR {
		switch v.Method {
		case "parametric":
			varParametric = nullable(v.VaR)
		case "historical":
			varHistorical = nullable(v.VaR)
		}
	}

	var positionSize, maxLoss any
	if rpt.Risk != nil {
		positionSize = rpt.Risk.PositionSize
		maxLoss = rpt.Risk.MaxLoss
	}

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, report_id, symbol, last_close, rsi, macd_histogram, atr, obv,
		 health_score, revenue_cagr, var_parametric, var_historical,
		 position_size, max_loss, missing_count)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rpt.ID, rpt.Symbol, lastClose,
		indicatorValue(rpt.Technical, "rsi"),
		componentValue(rpt.Technical, "macd", "histogram"),
		indicatorValue(rpt.Technical, "atr"),
		indicatorValue(rpt.Advanced, "obv"),
		nullable(rpt.HealthScore), nullable(rpt.GrowthCAGR),
		varParametric, varHistorical,
		positionSize, maxLoss, len(rpt.Missing),
	)
	return err
}

func (r *SQLiteRecorder) RecordReview(evt *ReviewEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO review_events
		(timestamp, report_id, symbol, analyst, reviewer, approved, score, issue_count)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.ReportID, evt.Symbol,
		evt.Analyst, evt.Reviewer, evt.Approved, evt.Score, evt.IssueCount,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.logger.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
