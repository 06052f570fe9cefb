package datemath

import "time"

// AddDays returns base shifted by n calendar days, preserving clock time.
func AddDays(base time.Time, n int) time.Time {
	return base.AddDate(0, 0, n)
}

// NextMonth returns base shifted by one calendar month.
//
// Rollover policy: Go's AddDate normalization is used as-is, so a source day
// that does not exist in the target month rolls into the following month
// (31 Jan + 1 month = 2 or 3 Mar depending on leap year). This is the
// documented deterministic behavior, not a bug.
func NextMonth(base time.Time) time.Time {
	return base.AddDate(0, 1, 0)
}

// DateInYear builds a date with the given day and month in ref's year and
// location, at ref's clock time.
//
// Day is accepted in 1..31 and month in 1..12 without cross-validating the
// day against the month's length; time.Date normalization handles pairs like
// 31/02. Values outside those ranges return ok=false so callers can treat
// the input as no match. Dates already past relative to ref are NOT rolled
// to the next year.
func DateInYear(day, month int, ref time.Time) (time.Time, bool) {
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}
	t := time.Date(ref.Year(), time.Month(month), day,
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())
	return t, true
}

// SameDay reports whether a and b fall on the same calendar day, evaluated
// in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
