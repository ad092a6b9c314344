package game

import "math/rand"

const (
	// tps is the fixed simulation rate. Ebiten's default tick rate matches,
	// so one Advance per Update keeps wall-clock and sim time aligned.
	tps = 60

	defaultArenaWidth  = 800
	defaultArenaHeight = 600
	// homeInsetX is the home centre's distance from the arena's right edge.
	homeInsetX = 100.0
)

// Config describes a world. Zero values select the defaults.
type Config struct {
	Width, Height int
	Level         int
	Seed          int64
	// DisableSpawner builds a world with no enemy generator; tests place
	// enemies by hand.
	DisableSpawner bool
}

// World is the render-free simulation core. The ebiten layer and the
// headless harness both drive it exclusively through Advance, so a seeded
// world produces the same tick-by-tick history in a window and in a test.
type World struct {
	width, height int
	level         int
	seed          int64
	rng           *rand.Rand

	player    *Player
	home      *Home
	fakeHomes []*Home
	waypoint  *Waypoint
	enemies   []Enemy
	spawner   *EnemyGenerator

	tick   int
	reason OutcomeReason
}

// NewWorld builds a world from cfg: home on the right, turtle on the left,
// waypoint inactive, spawner armed to fire on the first tick.
func NewWorld(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = defaultArenaWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultArenaHeight
	}
	if cfg.Level <= 0 {
		cfg.Level = 1
	}
	w := &World{
		width:  cfg.Width,
		height: cfg.Height,
		level:  cfg.Level,
		seed:   cfg.Seed,
		rng:    rand.New(rand.NewSource(cfg.Seed)), // #nosec G404 -- game only
	}
	w.home = NewHome(Point{X: float64(w.width) - homeInsetX, Y: float64(w.height) / 2}, homeSize)
	w.player = NewPlayer(Point{X: playerStartX, Y: float64(w.height) / 2})
	w.waypoint = &Waypoint{}
	if !cfg.DisableSpawner {
		w.spawner = NewEnemyGenerator(w.level, w.rng)
	}
	return w
}

// Advance runs one simulation tick: spawner, then player, then enemies.
// Once an outcome is decided the world is frozen and Advance is a no-op.
func (w *World) Advance() {
	if w.reason.Outcome != OutcomePending {
		return
	}
	w.tick++
	if w.spawner != nil {
		w.spawner.Tick(w)
	}
	w.player.Update(w)
	if w.reason.Outcome != OutcomePending {
		return
	}
	for _, e := range w.enemies {
		e.Update(w)
		if w.reason.Outcome != OutcomePending {
			return
		}
	}
}

// ActivateWaypoint sets the player's movement target. Ignored once the
// run has ended.
func (w *World) ActivateWaypoint(p Point) {
	if w.reason.Outcome != OutcomePending {
		return
	}
	w.waypoint.Activate(p)
}

// endWin freezes the world with a win.
func (w *World) endWin() {
	if w.reason.Outcome != OutcomePending {
		return
	}
	w.reason = OutcomeReason{Outcome: OutcomeWin, Tick: w.tick, Cause: "reached_home"}
}

// endLose freezes the world with a loss attributed to e.
func (w *World) endLose(e Enemy) {
	if w.reason.Outcome != OutcomePending {
		return
	}
	w.reason = OutcomeReason{
		Outcome:   OutcomeLose,
		Tick:      w.tick,
		Cause:     "caught_by_enemy",
		EnemyKind: e.Kind(),
	}
}

// addEnemy registers a spawned or hand-placed enemy.
func (w *World) addEnemy(e Enemy) {
	w.enemies = append(w.enemies, e)
}

// --- Accessors ---

// Size returns the arena dimensions in pixels.
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// Level returns the difficulty level.
func (w *World) Level() int {
	return w.level
}

// Seed returns the RNG seed the world was built with.
func (w *World) Seed() int64 {
	return w.seed
}

// Tick returns the current simulation tick.
func (w *World) Tick() int {
	return w.tick
}

// Player returns the turtle.
func (w *World) Player() *Player {
	return w.player
}

// Home returns the real home.
func (w *World) Home() *Home {
	return w.home
}

// FakeHomes returns the boss's decoy homes.
func (w *World) FakeHomes() []*Home {
	return w.fakeHomes
}

// Waypoint returns the player's movement target.
func (w *World) Waypoint() *Waypoint {
	return w.waypoint
}

// Enemies returns all live enemies in spawn order.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Spawner returns the enemy generator, or nil when disabled.
func (w *World) Spawner() *EnemyGenerator {
	return w.spawner
}

// Outcome returns the run's terminal state.
func (w *World) Outcome() Outcome {
	return w.reason.Outcome
}

// OutcomeReason returns how the run ended; the zero reason means the run
// is still live.
func (w *World) OutcomeReason() OutcomeReason {
	return w.reason
}
