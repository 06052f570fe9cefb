package clock

import "time"

// Clock supplies the current time. Every engine entry point takes an explicit
// time value derived from a Clock so results stay reproducible in tests.
type Clock interface {
	Now() time.Time
}

// Real reads the wall clock in the given location.
type Real struct {
	Location *time.Location
}

// NewReal creates a wall clock for the given IANA timezone.
// An unknown timezone falls back to UTC.
func NewReal(timezone string) Real {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return Real{Location: loc}
}

func (r Real) Now() time.Time {
	if r.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(r.Location)
}

// Fixed always returns the same instant. Intended for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
