package progress

import (
	"github.com/harunkazanli9/beontrack/internal/geometry"
	"github.com/harunkazanli9/beontrack/internal/milestone"
)

// State is the controller's movement state
type State int

const (
	// StateIdle means no avatar movement is pending
	StateIdle State = iota
	// StateAdvancing means a new target was emitted and the avatar is
	// presumed to be animating towards it
	StateAdvancing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAdvancing:
		return "advancing"
	default:
		return "unknown"
	}
}

// Event is emitted by the controller after a workout is recorded
type Event interface {
	event()
}

// AvatarTarget tells the animation layer where the avatar should walk to
type AvatarTarget struct {
	Distance      float64
	TotalWorkouts int
}

// MilestoneReached tells the UI layer to celebrate a milestone
type MilestoneReached struct {
	Milestone     milestone.Definition
	Distance      float64
	TotalWorkouts int
}

func (AvatarTarget) event()     {}
func (MilestoneReached) event() {}

// Stats is the aggregate view shown by the UI
type Stats struct {
	TotalWorkouts   int
	CurrentStreak   int
	LongestStreak   int
	TotalMinutes    int
	AverageDuration float64
	ThisWeek        int
	ThisMonth       int
	ActiveDays      int
	Distance        float64
	ByType          map[string]int
}

// Marker is a milestone positioned on the path
type Marker struct {
	milestone.Definition
	Distance float64
	Position geometry.Point
	Reached  bool
}

// PathView is the read-only part of the path handed to renderers
type PathView interface {
	PointAt(distance float64) geometry.Point
	DirectionAt(distance float64) geometry.Point
	MaxWalkedDistance() float64
	WalkedIndex() int
	IndexAt(distance float64) int
	Len() int
	Points() []geometry.Point
	Params() geometry.Params
}
