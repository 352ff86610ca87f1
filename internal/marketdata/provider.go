// Package marketdata defines the data-source boundary. Engines never
// fetch; they receive immutable series and snapshots from a Provider.
package marketdata

import (
	"context"

	"EquityLens/internal/model"
)

// Provider supplies price history, statement data and symbol metadata
// for one request. Implementations own transport, caching and retries.
type Provider interface {
	FetchPriceSeries(ctx context.Context, symbol string, bars int) (*model.PriceSeries, error)
	FetchFinancials(ctx context.Context, symbol string) (model.FinancialStatementSnapshot, error)
	FetchSymbolInfo(ctx context.Context, symbol string) (model.SymbolInfo, error)
	Name() string
}
