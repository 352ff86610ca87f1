package marketdata

import (
	"context"
	"time"

	"EquityLens/internal/model"
)

// StaticProvider serves controllable fixed data for development and
// testing. Unset fields fall back to generated bars around BasePrice.
type StaticProvider struct {
	BasePrice  float64
	Series     map[string][]model.PricePoint
	Financials map[string]model.FinancialStatementSnapshot
	Info       map[string]model.SymbolInfo
}

func (p *StaticProvider) Name() string { return "static" }

func (p *StaticProvider) FetchPriceSeries(_ context.Context, symbol string, bars int) (*model.PriceSeries, error) {
	if pts, ok := p.Series[symbol]; ok {
		return model.NewPriceSeries(symbol, pts)
	}
	return model.NewPriceSeries(symbol, GenerateBars(p.BasePrice, bars))
}

func (p *StaticProvider) FetchFinancials(_ context.Context, symbol string) (model.FinancialStatementSnapshot, error) {
	return p.Financials[symbol], nil
}

func (p *StaticProvider) FetchSymbolInfo(_ context.Context, symbol string) (model.SymbolInfo, error) {
	if info, ok := p.Info[symbol]; ok {
		return info, nil
	}
	return model.SymbolInfo{Symbol: symbol}, nil
}

// GenerateBars produces a gently trending daily series around a base
// price, one bar per calendar day ending yesterday.
func GenerateBars(basePrice float64, count int) []model.PricePoint {
	bars := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PricePoint{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
