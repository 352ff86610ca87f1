package model

import (
	"fmt"
	"time"
)

// PricePoint represents a single candlestick bar.
type PricePoint struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds an ordered, ascending-timestamp sequence of bars
// for one symbol. Engines only read it; the caller owns the data.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// NewPriceSeries validates timestamp monotonicity and wraps the bars.
// The market-data provider is trusted for price/volume integrity;
// ordering is the one invariant the engines depend on everywhere.
func NewPriceSeries(symbol string, points []PricePoint) (*PriceSeries, error) {
	for i := 1; i < len(points); i++ {
		if !points[i].Time.After(points[i-1].Time) {
			return nil, fmt.Errorf("price series %s: timestamp at index %d (%s) not after index %d (%s)",
				symbol, i, points[i].Time.Format(time.RFC3339), i-1, points[i-1].Time.Format(time.RFC3339))
		}
	}
	return &PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}, nil
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.Points) }

// Closes extracts the close column.
func (s *PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Close
	}
	return out
}

// Highs extracts the high column.
func (s *PriceSeries) Highs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.High
	}
	return out
}

// Lows extracts the low column.
func (s *PriceSeries) Lows() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Low
	}
	return out
}

// Volumes extracts the volume column.
func (s *PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Volume
	}
	return out
}

// LastClose returns the most recent close, or 0 for an empty series.
func (s *PriceSeries) LastClose() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1].Close
}

// SymbolInfo carries company metadata forwarded to the narrative
// collaborator alongside the assembled report.
type SymbolInfo struct {
	Symbol    string
	Name      string
	Sector    string
	Industry  string
	MarketCap float64
}
