package game

// homeSize is the edge length of the home square in pixels.
const homeSize = 20.0

// Home is a square region of the arena. The real home is the win
// condition; the boss also scatters decoy homes that look identical but
// are semantically inert.
type Home struct {
	center Point
	size   float64
}

// NewHome creates a home square of the given edge length centred on c.
func NewHome(c Point, size float64) *Home {
	return &Home{center: c, size: size}
}

// Rect returns the home's bounding square.
func (h *Home) Rect() Rect {
	return RectAround(h.center, h.size)
}

// Contains reports whether p is inside the home square, edges inclusive.
func (h *Home) Contains(p Point) bool {
	return h.Rect().Contains(p)
}

// Center returns the home's midpoint.
func (h *Home) Center() Point {
	return h.center
}

// Size returns the home's edge length.
func (h *Home) Size() float64 {
	return h.size
}
