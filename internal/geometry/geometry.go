// Package geometry generates the journey path: a deterministic curve sampled
// at fixed arc-length intervals that only ever grows forward.
package geometry

import "math"

// Point is a position on the journey plane
type Point struct {
	X float64
	Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the euclidean length of p treated as a vector
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns p scaled to unit length; the zero vector is returned unchanged
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Forward is the canonical direction used where no tangent can be computed
var Forward = Point{X: 1, Y: 0}

// Params controls the shape and sampling of the path
type Params struct {
	SegmentLength  float64 `yaml:"segmentLength"`
	CurveAmplitude float64 `yaml:"curveAmplitude"`
	CurveFrequency float64 `yaml:"curveFrequency"`
	ForwardScale   float64 `yaml:"forwardScale"`
	Lookahead      float64 `yaml:"lookahead"`
	MinimumLength  float64 `yaml:"minimumLength"`
}

// DefaultParams returns the parameters of the classic BeOnTrack trail
func DefaultParams() Params {
	return Params{
		SegmentLength:  5,
		CurveAmplitude: 3,
		CurveFrequency: 0.15,
		ForwardScale:   0.3,
		Lookahead:      200,
		MinimumLength:  500,
	}
}

// Path holds the sampled points of the journey.
//
// Points are appended, never rewritten: a point handed out for a distance
// stays the same after any later Extend.
type Path struct {
	params    Params
	points    []Point
	maxWalked float64
}

// New creates an empty path. Call Generate before querying it.
func New(params Params) *Path {
	return &Path{params: params}
}

// Params returns the parameters the path was built with
func (p *Path) Params() Params {
	return p.params
}

// pointAt evaluates the curve at arc length t.
// Two layered sine waves keep the trail from looking perfectly periodic.
func (p *Path) pointAt(t float64) Point {
	a := p.params.CurveAmplitude
	f := p.params.CurveFrequency
	return Point{
		X: t * p.params.ForwardScale,
		Y: a*math.Sin(t*f) + a*0.5*math.Sin(t*f*0.5),
	}
}

func (p *Path) lastIndexFor(length float64) int {
	return int(math.Ceil(length / p.params.SegmentLength))
}

func (p *Path) appendThrough(lastIndex int) {
	for i := len(p.points); i <= lastIndex; i++ {
		p.points = append(p.points, p.pointAt(float64(i)*p.params.SegmentLength))
	}
}

// Generate rebuilds the path from distance 0 so that it covers the target
// plus the lookahead, and never less than the minimum length.
func (p *Path) Generate(targetDistance float64) {
	if targetDistance < 0 {
		targetDistance = 0
	}
	total := math.Max(targetDistance+p.params.Lookahead, p.params.MinimumLength)

	p.points = make([]Point, 0, p.lastIndexFor(total)+1)
	p.appendThrough(p.lastIndexFor(total))
	p.maxWalked = targetDistance
}

// Extend grows the path so it covers newDistance plus the lookahead.
// Distances at or behind the walked boundary are ignored.
func (p *Path) Extend(newDistance float64) {
	if newDistance <= p.maxWalked {
		return
	}
	p.appendThrough(p.lastIndexFor(newDistance + p.params.Lookahead))
	p.maxWalked = newDistance
}

// IndexAt converts a distance into a sample index clamped to the generated range
func (p *Path) IndexAt(distance float64) int {
	if len(p.points) == 0 {
		return 0
	}
	idx := int(math.Floor(distance / p.params.SegmentLength))
	return max(0, min(idx, len(p.points)-1))
}

// PointAt returns the sampled point for distance, clamped to the generated
// range. An empty path yields the origin.
func (p *Path) PointAt(distance float64) Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[p.IndexAt(distance)]
}

// DirectionAt returns the unit tangent at distance
func (p *Path) DirectionAt(distance float64) Point {
	idx := p.IndexAt(distance)
	if idx >= len(p.points)-1 {
		return Forward
	}
	dir := p.points[idx+1].Sub(p.points[idx]).Normalize()
	if dir.Len() == 0 {
		return Forward
	}
	return dir
}

// MaxWalkedDistance returns the walked boundary
func (p *Path) MaxWalkedDistance() float64 {
	return p.maxWalked
}

// WalkedIndex is the index splitting the walked trail from the one ahead
func (p *Path) WalkedIndex() int {
	return p.IndexAt(p.maxWalked)
}

// Len returns the number of sampled points
func (p *Path) Len() int {
	return len(p.points)
}

// Points returns a copy of the sampled points
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}
