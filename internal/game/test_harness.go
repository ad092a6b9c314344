package game

import "fmt"

// TestSim is a headless simulation harness used by tests and the report
// CLI. It drives a World exactly the way the ebiten layer does, but with
// deterministic seeding and structured logging instead of rendering.
type TestSim struct {
	World    *World
	SimLog   *SimLog
	Reporter *RunReporter

	// diff state for change detection between ticks
	prevEnemies int
	prevActive  bool
	prevOutcome Outcome
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // arena size, seed, level, verbose — applied first
	simOptEntity                      // placements and hand-spawned enemies — applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim, *Config)
}

// WithArenaSize sets the playfield dimensions.
func WithArenaSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(_ *TestSim, cfg *Config) {
		cfg.Width = w
		cfg.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(_ *TestSim, cfg *Config) {
		cfg.Seed = seed
	}}
}

// WithLevel sets the difficulty level.
func WithLevel(level int) SimOption {
	return SimOption{simOptInfra, func(_ *TestSim, cfg *Config) {
		cfg.Level = level
	}}
}

// WithSpawnerDisabled builds a world with no enemy generator, for tests
// that place every enemy by hand.
func WithSpawnerDisabled() SimOption {
	return SimOption{simOptInfra, func(_ *TestSim, cfg *Config) {
		cfg.DisableSpawner = true
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim, _ *Config) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithPlayerAt moves the turtle's start position.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim, _ *Config) {
		ts.World.player.pos = Point{X: x, Y: y}
	}}
}

// WithHomeAt moves the home centre.
func WithHomeAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim, _ *Config) {
		ts.World.home.center = Point{X: x, Y: y}
	}}
}

// WithEnemy hand-places an enemy of the given kind before the first tick.
func WithEnemy(kind EnemyKind, x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim, _ *Config) {
		e := newEnemyOfKind(kind, ts.World)
		e.setPos(Point{X: x, Y: y})
		ts.World.addEnemy(e)
	}}
}

// WithWaypointAt activates the waypoint before the first tick.
func WithWaypointAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim, _ *Config) {
		ts.World.ActivateWaypoint(Point{X: x, Y: y})
	}}
}

// newEnemyOfKind constructs a bare enemy for hand placement.
func newEnemyOfKind(kind EnemyKind, w *World) Enemy {
	switch kind {
	case EnemyRandomWalk:
		return NewRandomWalkEnemy(w.rng)
	case EnemyChasing:
		return NewChasingEnemy()
	case EnemyFencing:
		return NewFencingEnemy()
	default:
		return NewBossEnemy()
	}
}

// NewTestSim constructs a TestSim in two ordered passes:
//  1. Infrastructure (arena size, seed, level, verbose, spawner disable)
//  2. Entity placement (player, home, enemies, waypoint)
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog:   NewSimLog(false),
		Reporter: NewRunReporter(),
	}
	cfg := Config{}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts, &cfg)
		}
	}
	ts.World = NewWorld(cfg)
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts, &cfg)
		}
	}
	ts.prevEnemies = len(ts.World.Enemies())
	ts.prevActive = ts.World.Waypoint().Active()
	return ts
}

// ActivateWaypoint sets the player's target, logging the activation.
func (ts *TestSim) ActivateWaypoint(x, y float64) {
	ts.World.ActivateWaypoint(Point{X: x, Y: y})
	if ts.World.Waypoint().Active() {
		ts.SimLog.Add(ts.World.Tick(), "player", "waypoint", "activate",
			fmt.Sprintf("(%.0f,%.0f)", x, y), 0)
		ts.prevActive = true
	}
}

// RunTicks advances the simulation n ticks, logging events to SimLog.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.World.Tick()
		}
	}
	return -1
}

// runOneTick advances the world once and diffs state into the SimLog.
// A finished world is left untouched.
func (ts *TestSim) runOneTick() {
	w := ts.World
	if w.Outcome() != OutcomePending {
		return
	}
	w.Advance()
	tick := w.Tick()

	enemies := w.Enemies()
	for i := ts.prevEnemies; i < len(enemies); i++ {
		e := enemies[i]
		ts.SimLog.Add(tick, enemyLabel(i), "spawn", "enemy",
			fmt.Sprintf("%s at (%.0f,%.0f)", e.Kind(), e.Pos().X, e.Pos().Y), 0)
	}
	ts.prevEnemies = len(enemies)

	active := w.Waypoint().Active()
	if ts.prevActive && !active && w.Outcome() == OutcomePending {
		p := w.Player().Pos()
		ts.SimLog.Add(tick, "player", "waypoint", "reached",
			fmt.Sprintf("(%.0f,%.0f)", p.X, p.Y), 0)
	}
	ts.prevActive = active

	if out := w.Outcome(); out != ts.prevOutcome {
		reason := w.OutcomeReason()
		detail := reason.Cause
		if out == OutcomeLose {
			detail = fmt.Sprintf("%s (%s)", reason.Cause, reason.EnemyKind)
		}
		ts.SimLog.Add(tick, "--", "outcome", out.String(), detail, 0)
		ts.prevOutcome = out
	}

	p := w.Player().Pos()
	ts.SimLog.AddVerbose(tick, "player", "player", "position",
		fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y), 0)
	for i, e := range enemies {
		ep := e.Pos()
		ts.SimLog.AddVerbose(tick, enemyLabel(i), "enemy", "position",
			fmt.Sprintf("(%.1f,%.1f)", ep.X, ep.Y), ep.DistTo(p))
	}

	ts.Reporter.Observe(w)
}

// enemyLabel returns the log label for the i-th spawned enemy.
func enemyLabel(i int) string {
	return fmt.Sprintf("E%d", i)
}

// SimSnapshot captures a lightweight state summary for determinism checks.
type SimSnapshot struct {
	Tick           int
	Outcome        Outcome
	PlayerX        float64
	PlayerY        float64
	WaypointActive bool
	Enemies        []EnemySnapshot
}

// EnemySnapshot is a lightweight copy of one enemy's state at a tick.
type EnemySnapshot struct {
	Kind EnemyKind
	X, Y float64
	Size float64
}

// Snapshot returns the current state of the world.
func (ts *TestSim) Snapshot() SimSnapshot {
	w := ts.World
	p := w.Player().Pos()
	snap := SimSnapshot{
		Tick:           w.Tick(),
		Outcome:        w.Outcome(),
		PlayerX:        p.X,
		PlayerY:        p.Y,
		WaypointActive: w.Waypoint().Active(),
	}
	for _, e := range w.Enemies() {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			Kind: e.Kind(),
			X:    e.Pos().X,
			Y:    e.Pos().Y,
			Size: e.Size(),
		})
	}
	return snap
}
