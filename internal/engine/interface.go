package engine

import (
	"context"
	"time"
)

// UseCase is the Task Intelligence Engine. Every operation is a total,
// pure function: no input makes it fail, and identical inputs (text plus
// the explicit now) produce identical outputs. The current time is always
// passed in; the engine never reads the wall clock itself.
type UseCase interface {
	// Analyze maps raw text to structured task metadata, degrading to
	// documented defaults when no signal is found.
	Analyze(ctx context.Context, text string, now time.Time) TaskAnalysis

	// Classify maps raw text to a typed command. Intent tiers are checked
	// in fixed order; the first matching tier wins.
	Classify(ctx context.Context, text string) Command

	// SuggestTitles returns up to 3 candidate task titles for the given
	// moment, keyed by hour bucket and weekday.
	SuggestTitles(ctx context.Context, now time.Time) []string

	// AnalyzeProductivity scores a snapshot of completion timestamps
	// against the given now.
	AnalyzeProductivity(ctx context.Context, completedAt []time.Time, now time.Time) ProductivityAnalysis
}
