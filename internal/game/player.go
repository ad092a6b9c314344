package game

const (
	// playerSpeed is the turtle's stride in pixels per tick.
	playerSpeed = 5.0
	// playerStartX is the spawn column; the row is the arena's vertical centre.
	playerStartX = 50.0
)

// Player is the turtle. It is a point for collision purposes: the home
// containment test and every enemy hit box test use its centre position.
type Player struct {
	pos     Point
	speed   float64
	heading float64 // radians; retained for rendering even when idle
}

// NewPlayer creates the turtle at p with the default speed.
func NewPlayer(p Point) *Player {
	return &Player{pos: p, speed: playerSpeed}
}

// Pos returns the turtle's position.
func (p *Player) Pos() Point {
	return p.pos
}

// Speed returns the turtle's stride per tick.
func (p *Player) Speed() float64 {
	return p.speed
}

// Heading returns the last movement bearing in radians.
func (p *Player) Heading() float64 {
	return p.heading
}

// Update advances the turtle one tick. The home check runs before any
// movement: arriving inside the home square on a previous tick wins even
// if a waypoint is still pending.
func (p *Player) Update(w *World) {
	if w.home.Contains(p.pos) {
		w.endWin()
		return
	}
	wp := w.waypoint
	if !wp.Active() {
		return
	}
	p.heading = p.pos.BearingTo(wp.Pos())
	p.pos = p.pos.StepToward(wp.Pos(), p.speed)
	// Within one stride of the target: the next step would orbit, so the
	// waypoint is considered reached.
	if p.pos.DistTo(wp.Pos()) < p.speed {
		wp.Deactivate()
	}
}
