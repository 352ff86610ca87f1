package recorder

import "EquityLens/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *model.Report, _ float64) error { return nil }
func (n *NoopRecorder) RecordReview(_ *ReviewEvent) error               { return nil }
func (n *NoopRecorder) Close() error                                    { return nil }
