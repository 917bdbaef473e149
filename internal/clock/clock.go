// Package clock supplies the current time and the calendar day arithmetic
// that streaks and weekly windows are built on.
package clock

import "time"

// Clock abstracts time so streak and window calculations stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local time zone, since workout dates are
// calendar days as the user sees them.
type System struct{}

// Now returns the current local time
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Day truncates t to its calendar date. The result is midnight UTC of the
// year/month/day t has in its own location, so days compare with == and
// subtract to whole multiples of 24h.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from b to a
func DaysBetween(a, b time.Time) int {
	return int(Day(a).Sub(Day(b)).Hours() / 24)
}
