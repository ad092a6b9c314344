package game

// Waypoint is the player's movement target. It is set by a mouse click
// (or scripted in headless runs) and cleared when the player arrives.
type Waypoint struct {
	pos    Point
	active bool
}

// Activate points the waypoint at p and marks it live.
func (wp *Waypoint) Activate(p Point) {
	wp.pos = p
	wp.active = true
}

// Deactivate clears the waypoint. The position is retained but ignored.
func (wp *Waypoint) Deactivate() {
	wp.active = false
}

// Active reports whether the waypoint is currently steering the player.
func (wp *Waypoint) Active() bool {
	return wp.active
}

// Pos returns the waypoint's target position.
func (wp *Waypoint) Pos() Point {
	return wp.pos
}
