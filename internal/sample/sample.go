// Package sample generates simulated workouts for demos and testing the
// journey without real training data.
package sample

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/harunkazanli9/beontrack/internal/workout"
)

const (
	SimulatedNotes = "Simulated workout"
	HistoryNotes   = "Sample data"

	// DefaultHistoryDays is how far back History reaches by default
	DefaultHistoryDays = 21
	// workoutChance is the share of history days that get a workout
	workoutChance = 0.6
)

// Generator produces random workouts. A zero seed picks a random one.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a generator
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Workout returns a strength workout of 30 to 90 minutes dated at now
func (g *Generator) Workout(now time.Time) workout.Entry {
	return workout.Entry{
		Date:            now,
		Type:            workout.TypeStrength,
		DurationMinutes: g.faker.Number(30, 90),
		Notes:           SimulatedNotes,
	}
}

// History returns workouts over the days before today, oldest first. Each
// day gets a workout with a 60% chance; today is never included.
func (g *Generator) History(today time.Time, days int) []workout.Entry {
	types := workout.KnownTypes()

	var entries []workout.Entry
	for i := days; i >= 1; i-- {
		if g.faker.Float64Range(0, 1) >= workoutChance {
			continue
		}
		entries = append(entries, workout.Entry{
			Date:            today.AddDate(0, 0, -i),
			Type:            g.faker.RandomString(types),
			DurationMinutes: g.faker.Number(20, 90),
			Notes:           HistoryNotes,
		})
	}
	return entries
}
