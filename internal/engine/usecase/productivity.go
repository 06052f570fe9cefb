package usecase

import (
	"context"
	"math"
	"time"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/pkg/datemath"
)

// AnalyzeProductivity scores a snapshot of completion timestamps.
//
// Score formula: round(clamp(completedToday / max(total*0.1, 1) * 100, 0, 100)).
// Best time of day is the bucket of the most frequent completion hour; hours
// are scanned ascending 0..23 and the first maximum wins, which makes ties
// deterministic.
func (uc *implUseCase) AnalyzeProductivity(ctx context.Context, completedAt []time.Time, now time.Time) engine.ProductivityAnalysis {
	if len(completedAt) == 0 {
		return engine.ProductivityAnalysis{
			Score:         0,
			BestTimeOfDay: engine.TimeOfDayMorning,
			Suggestions:   adviceGetStarted,
		}
	}

	completedToday := 0
	var hourCounts [24]int
	for _, ts := range completedAt {
		local := ts.In(now.Location())
		if datemath.SameDay(now, local) {
			completedToday++
		}
		hourCounts[local.Hour()]++
	}

	denominator := math.Max(float64(len(completedAt))*0.1, 1)
	raw := float64(completedToday) / denominator * 100
	score := int(math.Round(math.Min(math.Max(raw, 0), 100)))

	bestHour := 0
	for hour := 1; hour < 24; hour++ {
		if hourCounts[hour] > hourCounts[bestHour] {
			bestHour = hour
		}
	}

	analysis := engine.ProductivityAnalysis{
		Score:         score,
		BestTimeOfDay: bucketOf(bestHour),
		Suggestions:   adviceForScore(score),
	}

	uc.l.Debugf(ctx, "engine.AnalyzeProductivity: total=%d today=%d score=%d best=%s",
		len(completedAt), completedToday, score, analysis.BestTimeOfDay)

	return analysis
}

// bucketOf maps an hour to its time-of-day bucket, using the same
// boundaries as the title suggestions.
func bucketOf(hour int) engine.TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return engine.TimeOfDayMorning
	case hour >= 12 && hour < 17:
		return engine.TimeOfDayAfternoon
	default:
		return engine.TimeOfDayEvening
	}
}

// adviceForScore picks the advice tier by score thresholds.
func adviceForScore(score int) []string {
	switch {
	case score >= scoreExcellent:
		return adviceExcellent
	case score >= scoreGood:
		return adviceGood
	case score >= scoreFair:
		return adviceFair
	default:
		return adviceLow
	}
}
