package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"SPY"}, cfg.Symbols)
	assert.Equal(t, "static", cfg.DataSource.Provider)
	assert.Equal(t, "0 0 8 * * 1-5", cfg.Schedule.AnalysisCron)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 300, cfg.Report.Bars)
	assert.InDelta(t, 0.95, cfg.Report.Risk.Confidence, 1e-9)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
symbols: [AAPL, MSFT]
data_source:
  provider: yahoo
logging:
  level: debug
report:
  bars: 400
  risk:
    confidence: 0.99
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Symbols)
	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 400, cfg.Report.Bars)
	assert.InDelta(t, 0.99, cfg.Report.Risk.Confidence, 1e-9)
	// untouched defaults survive a partial file
	assert.Equal(t, "0 0 8 * * 1-5", cfg.Schedule.AnalysisCron)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SYMBOLS", "NVDA, AMD ,")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SQLITE_PATH", "/tmp/history.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"NVDA", "AMD"}, cfg.Symbols)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "/tmp/history.db", cfg.Database.SQLitePath)
}

func TestLoad_RejectsInvalidConfidence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
report:
  risk:
    confidence: 1.5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: verbose\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
