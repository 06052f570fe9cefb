package usecase

import (
	"context"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/internal/engine/taxonomy"
	"smart-task-assistant/internal/model"
	"smart-task-assistant/pkg/datemath"
)

// Analysis defaults and fallback thresholds. Lengths are counted in runes,
// not bytes, so Arabic input is measured the same as Latin input.
const (
	defaultDurationMinutes = 30
	quickDurationMinutes   = 15
	mediumDurationMinutes  = 60
	longDurationMinutes    = 240

	shortTextRunes    = 20
	mediumTextRunes   = 50
	longPriorityRunes = 50
)

// numericDatePattern matches D/M or D-M fragments (1–2 digit day, 1–2 digit
// month) anywhere in the text.
var numericDatePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)

// Analyze maps raw text to task metadata. Total function: any input,
// including the empty string, yields a fully populated analysis.
func (uc *implUseCase) Analyze(ctx context.Context, text string, now time.Time) engine.TaskAnalysis {
	analysis := engine.TaskAnalysis{
		Priority:          resolvePriority(text),
		DueDate:           resolveDueDate(text, now),
		EstimatedDuration: estimateDuration(text),
		Category:          suggestCategory(text),
	}

	uc.l.Debugf(ctx, "engine.Analyze: priority=%s duration=%d category=%s hasDue=%t",
		analysis.Priority, analysis.EstimatedDuration, analysis.Category, analysis.DueDate != nil)

	return analysis
}

// resolvePriority scans the priority tiers in definition order; the first
// tier with a match wins. When no tier matches, long text or a meeting
// trigger bumps the default to Medium.
func resolvePriority(text string) model.Priority {
	switch {
	case taxonomy.ContainsAny(text, taxonomy.PriorityUrgent):
		return model.PriorityHigh
	case taxonomy.ContainsAny(text, taxonomy.PriorityMedium):
		return model.PriorityMedium
	case taxonomy.ContainsAny(text, taxonomy.PriorityLow):
		return model.PriorityLow
	case utf8.RuneCountInString(text) > longPriorityRunes,
		taxonomy.ContainsAny(text, taxonomy.MeetingTriggers):
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// resolveDueDate checks relative-date phrase tiers in fixed order, then the
// numeric D/M fallback. The day-after-tomorrow tier runs before the tomorrow
// tier so the substring heuristic cannot shadow it. Numeric dates already in
// the past stay in the current year (documented limitation); out-of-range
// day/month pairs are treated as no match.
func resolveDueDate(text string, now time.Time) *time.Time {
	var due time.Time

	switch {
	case taxonomy.ContainsAny(text, taxonomy.DayAfterTomorrow):
		due = datemath.AddDays(now, 2)
	case taxonomy.ContainsAny(text, taxonomy.Tomorrow):
		due = datemath.AddDays(now, 1)
	case taxonomy.ContainsAny(text, taxonomy.NextWeek):
		due = datemath.AddDays(now, 7)
	case taxonomy.ContainsAny(text, taxonomy.NextMonth):
		due = datemath.NextMonth(now)
	default:
		match := numericDatePattern.FindStringSubmatch(text)
		if match == nil {
			return nil
		}
		day, _ := strconv.Atoi(match[1])
		month, _ := strconv.Atoi(match[2])
		parsed, ok := datemath.DateInYear(day, month, now)
		if !ok {
			return nil
		}
		due = parsed
	}

	return &due
}

// estimateDuration scans the duration tiers in definition order, then falls
// back to a text-length heuristic.
func estimateDuration(text string) int {
	switch {
	case taxonomy.ContainsAny(text, taxonomy.DurationQuick):
		return quickDurationMinutes
	case taxonomy.ContainsAny(text, taxonomy.DurationMedium):
		return mediumDurationMinutes
	case taxonomy.ContainsAny(text, taxonomy.DurationLong):
		return longDurationMinutes
	}

	switch n := utf8.RuneCountInString(text); {
	case n < shortTextRunes:
		return quickDurationMinutes
	case n < mediumTextRunes:
		return defaultDurationMinutes
	default:
		return mediumDurationMinutes
	}
}

// suggestCategory scans the topic tiers in definition order.
func suggestCategory(text string) model.Category {
	switch {
	case taxonomy.ContainsAny(text, taxonomy.CategoryWork):
		return model.CategoryWork
	case taxonomy.ContainsAny(text, taxonomy.CategoryPersonal):
		return model.CategoryPersonal
	case taxonomy.ContainsAny(text, taxonomy.CategoryStudy):
		return model.CategoryStudy
	case taxonomy.ContainsAny(text, taxonomy.CategoryHealth):
		return model.CategoryHealth
	default:
		return model.CategoryGeneral
	}
}
