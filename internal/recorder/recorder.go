// Package recorder persists numeric analysis snapshots for later
// inspection. Narrative prose is never stored, only the measurements
// and review verdicts.
package recorder

import "EquityLens/internal/model"

// ReviewEvent records the outcome of one narrative review cycle.
type ReviewEvent struct {
	ReportID   string
	Symbol     string
	Analyst    string
	Reviewer   string
	Approved   bool
	Score      float64
	IssueCount int
}

// Recorder persists analysis history.
type Recorder interface {
	RecordAnalysis(rpt *model.Report, lastClose float64) error
	RecordReview(evt *ReviewEvent) error
	Close() error
}
