package game

import "math"

// Point is a position in arena space. The origin is the arena's top-left
// corner with y growing downward, matching screen coordinates.
type Point struct {
	X, Y float64
}

// DistTo returns the Euclidean distance to q.
func (p Point) DistTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BearingTo returns the angle from p to q in radians.
func (p Point) BearingTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// StepToward returns p advanced dist pixels along the bearing to q.
// The step is a full stride even when q is closer than dist — arrival
// handling (waypoint deactivation) is the caller's job.
func (p Point) StepToward(q Point, dist float64) Point {
	a := p.BearingTo(q)
	return Point{
		X: p.X + dist*math.Cos(a),
		Y: p.Y + dist*math.Sin(a),
	}
}

// Rect is an axis-aligned box. X,Y is the minimum corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns the square of the given edge length centred on c.
// Homes and enemy hit boxes are all centre+size squares.
func RectAround(c Point, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}

// Contains reports whether p lies inside the rectangle. Edges count as
// inside: a point exactly on the boundary is contained.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
