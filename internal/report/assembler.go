// Package report assembles the full analytics record for one symbol
// and renders it for the narrative layer.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"EquityLens/internal/advanced"
	"EquityLens/internal/fundamental"
	"EquityLens/internal/marketdata"
	"EquityLens/internal/model"
	"EquityLens/internal/risk"
	"EquityLens/internal/series"
	"EquityLens/internal/technical"
)

// Config carries every engine's tunables plus the account parameters
// used for the illustrative sizing section of a report.
type Config struct {
	Bars           int     `yaml:"bars"` // price history depth to request
	AccountSize    float64 `yaml:"account_size"`
	RiskPercentage float64 `yaml:"risk_percentage"`
	DiscountRate   float64 `yaml:"discount_rate"`
	TerminalGrowth float64 `yaml:"terminal_growth"`

	Technical technical.Config         `yaml:"technical"`
	Ichimoku  advanced.IchimokuConfig  `yaml:"ichimoku"`
	StochRSI  advanced.StochRSIConfig  `yaml:"stoch_rsi"`
	Composite advanced.CompositeConfig `yaml:"composite"`
	Health    fundamental.HealthConfig `yaml:"health"`
	ESG       fundamental.ESGWeights   `yaml:"esg"`
	Risk      risk.Config              `yaml:"risk"`
}

// DefaultConfig returns the assembler defaults: 300 daily bars, a
// 100k account risking 2% per position, 10% discount rate with 2.5%
// terminal growth, and each engine's own defaults.
func DefaultConfig() Config {
	return Config{
		Bars:           300,
		AccountSize:    100000,
		RiskPercentage: 2,
		DiscountRate:   0.10,
		TerminalGrowth: 0.025,
		Technical:      technical.DefaultConfig(),
		Ichimoku:       advanced.DefaultIchimokuConfig(),
		StochRSI:       advanced.DefaultStochRSIConfig(),
		Composite:      advanced.DefaultCompositeConfig(),
		Health:         fundamental.DefaultHealthConfig(),
		ESG:            fundamental.DefaultESGWeights(),
		Risk:           risk.DefaultConfig(),
	}
}

// Assembler runs every engine for a symbol and gathers the results
// into a single immutable report. Metrics that cannot be computed are
// collected on the report, never dropped.
type Assembler struct {
	provider marketdata.Provider
	cfg      Config
	logger   *log.Logger
}

// NewAssembler wires a provider and configuration.
func NewAssembler(provider marketdata.Provider, cfg Config, logger *log.Logger) *Assembler {
	return &Assembler{provider: provider, cfg: cfg, logger: logger}
}

// Assemble fetches market and statement data for the symbol and runs
// the technical, advanced, fundamental and risk engines over it.
func (a *Assembler) Assemble(ctx context.Context, symbol string) (*model.Report, error) {
	prices, err := a.provider.FetchPriceSeries(ctx, symbol, a.cfg.Bars)
	if err != nil {
		return nil, fmt.Errorf("fetch price series %s: %w", symbol, err)
	}
	financials, err := a.provider.FetchFinancials(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch financials %s: %w", symbol, err)
	}

	rpt := &model.Report{
		ID:          uuid.NewString(),
		Symbol:      symbol,
		GeneratedAt: time.Now(),
		LastClose:   prices.LastClose(),
		Technical:   make(map[string]model.IndicatorResult),
		Advanced:    make(map[string]model.IndicatorResult),
	}

	closes := prices.Closes()
	highs := prices.Highs()
	lows := prices.Lows()
	volumes := prices.Volumes()

	a.runTechnical(rpt, closes, highs, lows, volumes)
	a.runAdvanced(rpt, closes, highs, lows, volumes)
	a.runFundamental(rpt, financials)
	a.runRisk(rpt, prices, closes)

	a.logger.Info().
		Str("symbol", symbol).
		Str("report_id", rpt.ID).
		Int("bars", prices.Len()).
		Int("missing", len(rpt.Missing)).
		Msg("report assembled")

	return rpt, nil
}

// record stores a computed indicator or, when the computation could
// not be answered for this series, files the failure under Missing.
func (a *Assembler) record(rpt *model.Report, dst map[string]model.IndicatorResult, name string, res model.IndicatorResult, err error) {
	if err != nil {
		a.logger.Warn().Str("symbol", rpt.Symbol).Str("metric", name).Err(err).Msg("metric unavailable")
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: name, Reason: err.Error()})
		return
	}
	dst[name] = res
}

func (a *Assembler) runTechnical(rpt *model.Report, closes, highs, lows, volumes []float64) {
	cfg := a.cfg.Technical

	res, err := technical.RSI(closes, cfg.RSIPeriod)
	a.record(rpt, rpt.Technical, "rsi", res, err)

	res, err = technical.MACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	a.record(rpt, rpt.Technical, "macd", res, err)

	res, err = technical.BollingerBands(closes, cfg.BollingerPeriod, cfg.BollingerK)
	a.record(rpt, rpt.Technical, "bollinger", res, err)

	res, err = technical.ATR(highs, lows, closes, cfg.ATRPeriod)
	a.record(rpt, rpt.Technical, "atr", res, err)

	res, err = technical.ADX(highs, lows, closes, cfg.ADXPeriod)
	a.record(rpt, rpt.Technical, "adx", res, err)

	res, err = technical.VolumeTrend(volumes, cfg.VolumePeriod, cfg.VolumeHigh, cfg.VolumeLow)
	a.record(rpt, rpt.Technical, "volume_trend", res, err)

	res, err = technical.MovingAverages(closes, cfg)
	a.record(rpt, rpt.Technical, "moving_averages", res, err)

	res, err = technical.Momentum(closes, cfg.MomentumLookback)
	a.record(rpt, rpt.Technical, "momentum", res, err)

	if n := len(closes); n > 0 {
		rpt.Technical["pivot_points"] = technical.PivotPoints(highs[n-1], lows[n-1], closes[n-1])
	} else {
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "pivot_points", Reason: "empty price series"})
	}
}

func (a *Assembler) runAdvanced(rpt *model.Report, closes, highs, lows, volumes []float64) {
	if len(highs) > 0 {
		hi, lo := highs[0], lows[0]
		for i := range highs {
			if highs[i] > hi {
				hi = highs[i]
			}
			if lows[i] < lo {
				lo = lows[i]
			}
		}
		rpt.Advanced["fibonacci"] = advanced.FibonacciRetracement(hi, lo)
	} else {
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "fibonacci", Reason: "empty price series"})
	}

	res, err := advanced.IchimokuResult(highs, lows, closes, a.cfg.Ichimoku)
	a.record(rpt, rpt.Advanced, "ichimoku", res, err)

	res, err = advanced.OBV(closes, volumes)
	a.record(rpt, rpt.Advanced, "obv", res, err)

	res, err = advanced.StochasticRSI(closes, a.cfg.StochRSI)
	a.record(rpt, rpt.Advanced, "stoch_rsi", res, err)

	res, err = advanced.MoneyFlowIndex(highs, lows, closes, volumes, a.cfg.Technical.RSIPeriod)
	a.record(rpt, rpt.Advanced, "mfi", res, err)

	res, err = advanced.MomentumComposite(closes, a.cfg.Composite)
	a.record(rpt, rpt.Advanced, "momentum_composite", res, err)
}

func (a *Assembler) runFundamental(rpt *model.Report, s model.FinancialStatementSnapshot) {
	rpt.Ratios = fundamental.Ratios(s)

	valuation, err := fundamental.DCFValuation(s.FreeCashFlows, a.cfg.DiscountRate, a.cfg.TerminalGrowth, s.SharesOutstanding)
	if err != nil {
		a.logger.Warn().Str("symbol", rpt.Symbol).Err(err).Msg("dcf unavailable")
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "dcf", Reason: err.Error()})
	} else {
		rpt.Valuation = valuation
	}

	health := fundamental.HealthScore(s, a.cfg.Health)
	rpt.HealthScore = health.Value

	cagr, err := fundamental.CAGR(s.RevenueHistory)
	if err != nil {
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "revenue_cagr", Reason: err.Error()})
	} else {
		rpt.GrowthCAGR = cagr
	}

	// Peer benchmarking and ESG run only when the provider supplies
	// the data; their absence is expected, not a gap.
	if len(s.PeerMetrics) > 0 {
		rpt.Peers = fundamental.CompetitorAnalysis(s.PeerMetrics, s.CompetitorMetrics)
	}
	if !s.ESGMetrics.Empty() {
		esg := fundamental.ESGScore(s.ESGMetrics, a.cfg.ESG)
		rpt.ESG = &esg
	}
}

func (a *Assembler) runRisk(rpt *model.Report, ps *model.PriceSeries, closes []float64) {
	entry := ps.LastClose()
	atrRes, hasATR := rpt.Technical["atr"]

	if hasATR {
		for _, side := range []model.PositionSide{model.SideLong, model.SideShort} {
			stop, err := risk.OptimizeStopLoss(entry, atrRes.Value, a.cfg.Risk.StopMultiplier, side)
			if err != nil {
				rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "stop_loss_" + string(side), Reason: err.Error()})
				continue
			}
			rpt.Stops = append(rpt.Stops, *stop)
		}
	} else {
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "stop_loss", Reason: "atr unavailable"})
	}

	if len(rpt.Stops) > 0 {
		profile, err := risk.PositionSize(model.RiskRequest{
			AccountSize:    a.cfg.AccountSize,
			RiskPercentage: a.cfg.RiskPercentage,
			EntryPrice:     entry,
			StopLoss:       rpt.Stops[0].Stop,
			Side:           rpt.Stops[0].Side,
			Confidence:     a.cfg.Risk.Confidence,
		})
		if err != nil {
			rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "position_size", Reason: err.Error()})
		} else {
			rpt.Risk = profile
		}
	}

	returns, err := series.Returns(closes)
	if err != nil {
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "var", Reason: err.Error()})
		return
	}

	positionValue := a.cfg.AccountSize
	if rpt.Risk != nil {
		positionValue = rpt.Risk.PositionValue
	}

	if res, err := risk.ParametricVaR(returns, a.cfg.Risk.Confidence, positionValue, a.cfg.Risk.MinSamples); err != nil {
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "var_parametric", Reason: err.Error()})
	} else {
		rpt.VaR = append(rpt.VaR, *res)
	}

	if res, err := risk.HistoricalVaR(returns, a.cfg.Risk.Confidence, positionValue, a.cfg.Risk.MinSamples); err != nil {
		rpt.Missing = append(rpt.Missing, model.MissingMetric{Name: "var_historical", Reason: err.Error()})
	} else {
		rpt.VaR = append(rpt.VaR, *res)
	}
}
