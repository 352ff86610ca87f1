package report

import (
	"fmt"
	"sort"
	"strings"

	"EquityLens/internal/model"
	"EquityLens/internal/series"
)

// fmtValue renders a metric value, using "n/a" for undefined
// sentinels so the narrative layer never sees raw NaN text.
func fmtValue(v float64) string {
	if series.IsUndefined(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}

func writeIndicatorSection(b *strings.Builder, title string, results map[string]model.IndicatorResult) {
	b.WriteString(fmt.Sprintf("## %s\n\n", title))

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		r := results[name]
		line := fmt.Sprintf("- **%s**: %s", r.Name, fmtValue(r.Value))
		if r.Label != "" {
			line += fmt.Sprintf(" (%s)", r.Label)
		}
		b.WriteString(line + "\n")

		keys := make([]string, 0, len(r.Components))
		for k := range r.Components {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("  - %s: %s\n", k, fmtValue(r.Components[k])))
		}
	}
	b.WriteString("\n")
}

func writeFloatMap(b *strings.Builder, title string, values map[string]float64) {
	if len(values) == 0 {
		return
	}
	b.WriteString(fmt.Sprintf("## %s\n\n", title))
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("- %s: %s\n", k, fmtValue(values[k])))
	}
	b.WriteString("\n")
}

// RenderMarkdown formats the assembled report for the narrative
// collaborator. Sections with nothing to say are omitted; missing
// metrics get their own section so gaps are always explicit.
func RenderMarkdown(rpt *model.Report, info model.SymbolInfo) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Analysis Report: %s\n\n", rpt.Symbol))
	b.WriteString(fmt.Sprintf("- Report ID: %s\n", rpt.ID))
	b.WriteString(fmt.Sprintf("- Generated: %s\n", rpt.GeneratedAt.Format("2006-01-02 15:04")))
	if rpt.LastClose > 0 {
		b.WriteString(fmt.Sprintf("- Last close: %.2f\n", rpt.LastClose))
	}
	if info.Name != "" {
		b.WriteString(fmt.Sprintf("- Company: %s\n", info.Name))
	}
	if info.Sector != "" {
		b.WriteString(fmt.Sprintf("- Sector: %s / %s\n", info.Sector, info.Industry))
	}
	b.WriteString("\n")

	writeIndicatorSection(&b, "Technical Indicators", rpt.Technical)
	writeIndicatorSection(&b, "Advanced Indicators", rpt.Advanced)
	writeFloatMap(&b, "Fundamental Ratios", rpt.Ratios)
	writeFloatMap(&b, "DCF Valuation", rpt.Valuation)

	b.WriteString("## Fundamentals Summary\n\n")
	b.WriteString(fmt.Sprintf("- Health score: %s\n", fmtValue(rpt.HealthScore)))
	b.WriteString(fmt.Sprintf("- Revenue CAGR: %s\n\n", fmtValue(rpt.GrowthCAGR)))

	if len(rpt.Peers) > 0 {
		b.WriteString("## Peer Comparison\n\n")
		names := make([]string, 0, len(rpt.Peers))
		for name := range rpt.Peers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p := rpt.Peers[name]
			b.WriteString(fmt.Sprintf("- %s: %s (industry avg %s, median %s, percentile %.0f)\n",
				name, fmtValue(p.CompanyValue), fmtValue(p.IndustryAvg), fmtValue(p.IndustryMedian), p.Percentile))
		}
		b.WriteString("\n")
	}

	if rpt.ESG != nil {
		b.WriteString("## ESG Scoring\n\n")
		b.WriteString(fmt.Sprintf("- Composite: %s\n", fmtValue(rpt.ESG.Value)))
		for _, k := range []string{"environmental", "social", "governance"} {
			b.WriteString(fmt.Sprintf("  - %s: %s\n", k, fmtValue(rpt.ESG.Components[k])))
		}
		b.WriteString("\n")
	}

	if rpt.Risk != nil || len(rpt.VaR) > 0 || len(rpt.Stops) > 0 {
		b.WriteString("## Risk Assessment\n\n")
		if rpt.Risk != nil {
			b.WriteString(fmt.Sprintf("- Position size: %d shares at %.2f (%s)\n",
				rpt.Risk.PositionSize, rpt.Risk.EntryPrice, rpt.Risk.Side))
			b.WriteString(fmt.Sprintf("- Max loss: %.2f (%.1f%% of %.0f account)\n",
				rpt.Risk.MaxLoss, rpt.Risk.RiskPercentage, rpt.Risk.AccountSize))
		}
		for _, v := range rpt.VaR {
			line := fmt.Sprintf("- VaR (%s, %.0f%%): %.2f", v.Method, v.Confidence*100, v.VaR)
			if v.CVaR > 0 {
				line += fmt.Sprintf(" | CVaR: %.2f", v.CVaR)
			}
			b.WriteString(line + "\n")
		}
		for _, s := range rpt.Stops {
			b.WriteString(fmt.Sprintf("- Suggested %s stop: %.2f (%.1fx ATR %.2f)\n",
				s.Side, s.Stop, s.Multiplier, s.ATR))
		}
		b.WriteString("\n")
	}

	if len(rpt.Missing) > 0 {
		b.WriteString("## Unavailable Metrics\n\n")
		for _, m := range rpt.Missing {
			b.WriteString(fmt.Sprintf("- %s: %s\n", m.Name, m.Reason))
		}
		b.WriteString("\n")
	}

	return b.String()
}
