package milestone

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Tracker evaluates workout totals against the catalog. Every threshold is
// reported at most once until Reset.
type Tracker struct {
	catalog         []Definition
	stepsPerWorkout float64
	celebrated      map[int]bool
}

// NewTracker creates a tracker for the given catalog. Thresholds must be
// positive and unique; the catalog may be passed in any order.
func NewTracker(catalog []Definition, stepsPerWorkout float64) (*Tracker, error) {
	seen := make(map[int]bool, len(catalog))
	for i, def := range catalog {
		if def.Threshold <= 0 {
			return nil, fmt.Errorf("milestone[%d]: threshold must be positive, got %d", i, def.Threshold)
		}
		if seen[def.Threshold] {
			return nil, fmt.Errorf("milestone[%d]: duplicate threshold %d", i, def.Threshold)
		}
		seen[def.Threshold] = true
	}

	sorted := slices.Clone(catalog)
	slices.SortFunc(sorted, func(a, b Definition) int {
		return a.Threshold - b.Threshold
	})

	return &Tracker{
		catalog:         sorted,
		stepsPerWorkout: stepsPerWorkout,
		celebrated:      make(map[int]bool),
	}, nil
}

// Evaluate returns the milestones newly reached by totalWorkouts, lowest
// threshold first, and marks them celebrated.
func (t *Tracker) Evaluate(totalWorkouts int) []Definition {
	var reached []Definition
	for _, def := range t.catalog {
		if t.celebrated[def.Threshold] || totalWorkouts < def.Threshold {
			continue
		}
		t.celebrated[def.Threshold] = true
		reached = append(reached, def)
	}
	return reached
}

// MarkReached marks every milestone satisfied by totalWorkouts as celebrated
// without reporting them. It returns how many were newly marked.
func (t *Tracker) MarkReached(totalWorkouts int) int {
	return len(t.Evaluate(totalWorkouts))
}

// PlacementDistance is where a milestone's marker sits on the path
func (t *Tracker) PlacementDistance(def Definition) float64 {
	return float64(def.Threshold) * t.stepsPerWorkout
}

// Next returns the lowest milestone above totalWorkouts
func (t *Tracker) Next(totalWorkouts int) (Definition, bool) {
	return lo.Find(t.catalog, func(def Definition) bool {
		return def.Threshold > totalWorkouts
	})
}

// Previous returns the highest milestone at or below totalWorkouts
func (t *Tracker) Previous(totalWorkouts int) (Definition, bool) {
	def, _, ok := lo.FindLastIndexOf(t.catalog, func(def Definition) bool {
		return def.Threshold <= totalWorkouts
	})
	return def, ok
}

// IsCelebrated reports whether threshold has already been celebrated
func (t *Tracker) IsCelebrated(threshold int) bool {
	return t.celebrated[threshold]
}

// Catalog returns the milestone definitions sorted by threshold
func (t *Tracker) Catalog() []Definition {
	return slices.Clone(t.catalog)
}

// Reset forgets every celebration. Only used on a full data wipe.
func (t *Tracker) Reset() {
	clear(t.celebrated)
}
