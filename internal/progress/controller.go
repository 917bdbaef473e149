// Package progress ties the workout log, the journey path and the milestone
// tracker together and emits the events presentation layers react to.
package progress

import (
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"github.com/harunkazanli9/beontrack/internal/geometry"
	"github.com/harunkazanli9/beontrack/internal/log"
	"github.com/harunkazanli9/beontrack/internal/milestone"
	"github.com/harunkazanli9/beontrack/internal/workout"
)

// Controller owns one workout log, one path and one milestone tracker.
//
// It is not safe for concurrent use; hosts serialize calls. Subscriber
// channels are the only surface meant for other goroutines.
type Controller struct {
	stepsPerWorkout float64

	workouts   *workout.Log
	path       *geometry.Path
	milestones *milestone.Tracker
	logger     *log.Logger

	state       State
	subscribers []chan Event
}

// New creates a controller over the given components
func New(stepsPerWorkout float64, workouts *workout.Log, path *geometry.Path, milestones *milestone.Tracker, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		stepsPerWorkout: stepsPerWorkout,
		workouts:        workouts,
		path:            path,
		milestones:      milestones,
		logger:          logger.WithPrefix("progress"),
	}
}

// Initialize loads a persisted log and places the journey at its distance.
// Milestones the history already satisfies are marked celebrated silently so
// starting the app does not replay every past celebration. Persisted
// workouts that no longer validate are skipped with a warning.
func (c *Controller) Initialize(snap workout.Snapshot) {
	if err := c.workouts.Restore(snap); err != nil {
		for _, dropped := range multierr.Errors(err) {
			c.logger.Warn("skipping invalid workout", "err", dropped)
		}
	}

	distance := c.Distance()
	c.path.Generate(distance)
	marked := c.milestones.MarkReached(c.workouts.TotalCount())
	c.state = StateIdle

	c.logger.Debug("journey initialized",
		"workouts", c.workouts.TotalCount(),
		"distance", distance,
		"milestones", marked)
}

// RecordWorkout records one workout and returns the events it produced: an
// AvatarTarget followed by any MilestoneReached in ascending threshold order.
// An invalid entry changes nothing and produces no events.
func (c *Controller) RecordWorkout(e workout.Entry) ([]Event, error) {
	recorded, err := c.workouts.Append(e)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("workout recorded", "id", recorded.ID, "type", recorded.Type, "minutes", recorded.DurationMinutes)

	return c.advance(), nil
}

// RecordBatch records entries in order and advances once for the whole batch,
// so several milestones crossed in one jump arrive together. It stops at the
// first invalid entry; entries before it stay recorded.
func (c *Controller) RecordBatch(entries []workout.Entry) ([]Event, int, error) {
	recorded := 0
	var firstErr error
	for _, e := range entries {
		if _, err := c.workouts.Append(e); err != nil {
			firstErr = err
			break
		}
		recorded++
	}
	if recorded == 0 {
		return nil, 0, firstErr
	}
	c.logger.Debug("batch recorded", "count", recorded)

	return c.advance(), recorded, firstErr
}

func (c *Controller) advance() []Event {
	total := c.workouts.TotalCount()
	distance := c.Distance()

	c.path.Extend(distance)
	events := []Event{AvatarTarget{Distance: distance, TotalWorkouts: total}}

	for _, def := range c.milestones.Evaluate(total) {
		c.logger.Info("milestone reached", "threshold", def.Threshold, "title", def.Title)
		events = append(events, MilestoneReached{
			Milestone:     def,
			Distance:      c.milestones.PlacementDistance(def),
			TotalWorkouts: total,
		})
	}

	c.state = StateAdvancing
	c.publish(events)
	return events
}

func (c *Controller) publish(events []Event) {
	for _, sub := range c.subscribers {
		for _, ev := range events {
			select {
			case sub <- ev:
			default:
				c.logger.Warn("subscriber is full, dropping event", "event", ev)
			}
		}
	}
}

// Subscribe returns a channel receiving every future event. Sends never
// block: when the buffer is full the event is dropped for that subscriber.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	ch := make(chan Event, buffer)
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Close closes all subscriber channels
func (c *Controller) Close() {
	for _, sub := range c.subscribers {
		close(sub)
	}
	c.subscribers = nil
}

// ArrivalReported is called by the animation layer once the avatar reached
// its target
func (c *Controller) ArrivalReported() {
	c.state = StateIdle
}

// Reset wipes the workout history and celebrations and starts a fresh journey
func (c *Controller) Reset() {
	_ = c.workouts.Restore(workout.Snapshot{})
	c.milestones.Reset()
	c.path.Generate(0)
	c.state = StateIdle
	c.logger.Info("journey reset")
}

// State returns the movement state
func (c *Controller) State() State {
	return c.state
}

// Distance is the journey distance for the recorded workouts
func (c *Controller) Distance() float64 {
	return float64(c.workouts.TotalCount()) * c.stepsPerWorkout
}

// StepsPerWorkout returns how far one workout advances the avatar
func (c *Controller) StepsPerWorkout() float64 {
	return c.stepsPerWorkout
}

// Path exposes the path to renderers
func (c *Controller) Path() PathView {
	return c.path
}

// Snapshot returns the log state for persistence
func (c *Controller) Snapshot() workout.Snapshot {
	return c.workouts.Snapshot()
}

// Entries returns the recorded workouts
func (c *Controller) Entries() []workout.Entry {
	return c.workouts.Entries()
}

// Stats returns the aggregate statistics
func (c *Controller) Stats() Stats {
	w := c.workouts
	return Stats{
		TotalWorkouts:   w.TotalCount(),
		CurrentStreak:   w.CurrentStreak(),
		LongestStreak:   w.LongestStreak(),
		TotalMinutes:    w.TotalMinutes(),
		AverageDuration: w.AverageDuration(),
		ThisWeek:        w.CountThisWeek(),
		ThisMonth:       w.CountThisMonth(),
		ActiveDays:      w.ActiveDays(),
		Distance:        c.Distance(),
		ByType:          w.CountsByType(),
	}
}

// Markers returns every milestone positioned on the path
func (c *Controller) Markers() []Marker {
	return lo.Map(c.milestones.Catalog(), func(def milestone.Definition, _ int) Marker {
		distance := c.milestones.PlacementDistance(def)
		return Marker{
			Definition: def,
			Distance:   distance,
			Position:   c.path.PointAt(distance),
			Reached:    c.milestones.IsCelebrated(def.Threshold),
		}
	})
}

// NextMilestone returns the next milestone ahead of the avatar
func (c *Controller) NextMilestone() (milestone.Definition, bool) {
	return c.milestones.Next(c.workouts.TotalCount())
}

// PreviousMilestone returns the last milestone behind the avatar
func (c *Controller) PreviousMilestone() (milestone.Definition, bool) {
	return c.milestones.Previous(c.workouts.TotalCount())
}
