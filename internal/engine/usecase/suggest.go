package usecase

import (
	"context"
	"time"
)

// Suggestion list cap per call.
const maxSuggestedTitles = 3

// SuggestTitles returns up to 3 candidate task titles, deterministic for a
// given now: the hour bucket picks the base list, then a Monday or Friday
// addendum is appended if space remains. Insertion order is preserved.
func (uc *implUseCase) SuggestTitles(ctx context.Context, now time.Time) []string {
	var titles []string

	switch hour := now.Hour(); {
	case hour >= 6 && hour < 12:
		titles = append(titles, morningTitles...)
	case hour >= 12 && hour < 17:
		titles = append(titles, afternoonTitles...)
	default:
		titles = append(titles, eveningTitles...)
	}

	switch now.Weekday() {
	case time.Monday:
		titles = append(titles, mondayTitle)
	case time.Friday:
		titles = append(titles, fridayTitle)
	}

	if len(titles) > maxSuggestedTitles {
		titles = titles[:maxSuggestedTitles]
	}

	uc.l.Debugf(ctx, "engine.SuggestTitles: hour=%d weekday=%s count=%d", now.Hour(), now.Weekday(), len(titles))
	return titles
}
