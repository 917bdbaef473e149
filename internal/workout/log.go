package workout

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/harunkazanli9/beontrack/internal/clock"
)

// Log is the ordered workout history.
//
// Only the streak triple (current, longest, last workout date) is cached and
// it is recalculated after every mutation. Everything else is derived on demand.
type Log struct {
	clock   clock.Clock
	entries []Entry

	currentStreak   int
	longestStreak   int
	lastWorkoutDate time.Time
}

// Snapshot is the serializable form of a Log
type Snapshot struct {
	Workouts        []Entry   `json:"workouts"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
	LastWorkoutDate time.Time `json:"lastWorkoutDate"`
}

// NewLog creates an empty log reading "today" from c
func NewLog(c clock.Clock) *Log {
	if c == nil {
		c = clock.System{}
	}
	return &Log{clock: c}
}

// Append validates and records an entry. A rejected entry leaves the log untouched.
// A missing ID is filled with a fresh UUID and a zero date with the current time.
func (l *Log) Append(e Entry) (Entry, error) {
	if err := Validate(e); err != nil {
		return Entry{}, err
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = l.clock.Now()
	}

	l.entries = append(l.entries, e)
	l.RecalculateStats()
	return e, nil
}

// RecalculateStats recomputes the streak triple from the entries.
//
// The current streak counts consecutive calendar days ending at the most
// recent workout date, provided that date is today or yesterday. The longest
// streak is a high-water mark and only ever ratchets upward.
func (l *Log) RecalculateStats() {
	if len(l.entries) == 0 {
		l.currentStreak = 0
		l.lastWorkoutDate = time.Time{}
		return
	}

	dates := l.distinctDays()
	l.currentStreak = 0

	if clock.DaysBetween(l.clock.Now(), dates[0]) <= 1 {
		l.currentStreak = 1
		check := dates[0]
		for _, d := range dates[1:] {
			if clock.DaysBetween(check, d) != 1 {
				break
			}
			l.currentStreak++
			check = d
		}
	}

	l.longestStreak = max(l.longestStreak, l.currentStreak)
	l.lastWorkoutDate = l.entries[len(l.entries)-1].Date
}

// distinctDays returns the calendar days with at least one workout, newest first
func (l *Log) distinctDays() []time.Time {
	days := lo.Uniq(lo.Map(l.entries, func(e Entry, _ int) time.Time {
		return clock.Day(e.Date)
	}))
	slices.SortFunc(days, func(a, b time.Time) int {
		return b.Compare(a)
	})
	return days
}

// ActiveDays returns the number of distinct calendar days with a workout
func (l *Log) ActiveDays() int {
	if len(l.entries) == 0 {
		return 0
	}
	return len(l.distinctDays())
}

// TotalCount returns the number of recorded workouts
func (l *Log) TotalCount() int {
	return len(l.entries)
}

// TotalMinutes returns the summed duration of all workouts
func (l *Log) TotalMinutes() int {
	return lo.SumBy(l.entries, func(e Entry) int {
		return e.DurationMinutes
	})
}

// AverageDuration returns the mean workout length in minutes, 0 on an empty log
func (l *Log) AverageDuration() float64 {
	if len(l.entries) == 0 {
		return 0
	}
	return float64(l.TotalMinutes()) / float64(len(l.entries))
}

// CountsByType groups the workouts by their type label
func (l *Log) CountsByType() map[string]int {
	return lo.CountValuesBy(l.entries, func(e Entry) string {
		return e.Type
	})
}

// CountsInWindow counts workouts dated on or after start (calendar days)
func (l *Log) CountsInWindow(start time.Time) int {
	from := clock.Day(start)
	return lo.CountBy(l.entries, func(e Entry) bool {
		return !clock.Day(e.Date).Before(from)
	})
}

// CountThisWeek counts workouts since Monday of the current week
func (l *Log) CountThisWeek() int {
	today := clock.Day(l.clock.Now())
	sinceMonday := (int(today.Weekday()) + 6) % 7
	return l.CountsInWindow(today.AddDate(0, 0, -sinceMonday))
}

// CountThisMonth counts workouts since the first of the current month
func (l *Log) CountThisMonth() int {
	today := clock.Day(l.clock.Now())
	return l.CountsInWindow(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC))
}

// CurrentStreak returns the current run of consecutive workout days
func (l *Log) CurrentStreak() int {
	return l.currentStreak
}

// LongestStreak returns the best streak seen over the log's lifetime
func (l *Log) LongestStreak() int {
	return l.longestStreak
}

// LastWorkoutDate returns the date of the most recently recorded entry
func (l *Log) LastWorkoutDate() time.Time {
	return l.lastWorkoutDate
}

// Entries returns a copy of the recorded entries in insertion order
func (l *Log) Entries() []Entry {
	return append([]Entry{}, l.entries...)
}

// Snapshot captures the log for persistence
func (l *Log) Snapshot() Snapshot {
	return Snapshot{
		Workouts:        l.Entries(),
		CurrentStreak:   l.currentStreak,
		LongestStreak:   l.longestStreak,
		LastWorkoutDate: l.lastWorkoutDate,
	}
}

// Restore replaces the log contents with a snapshot. The persisted longest
// streak is kept as the starting high-water mark; the rest is recomputed.
// Entries that fail Validate are dropped and reported in the returned error,
// one wrapped error per entry.
func (l *Log) Restore(s Snapshot) error {
	var errs error
	l.entries = make([]Entry, 0, len(s.Workouts))
	for i, e := range s.Workouts {
		if err := Validate(e); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("workout %d (%s): %w", i, e.ID, err))
			continue
		}
		l.entries = append(l.entries, e)
	}
	l.longestStreak = s.LongestStreak
	l.RecalculateStats()
	return errs
}
