package game

import "math/rand"

const (
	// Spawn cadence: base interval shrinks with level down to a hard floor.
	spawnBaseIntervalMS  = 1000
	spawnIntervalStepMS  = 10
	spawnIntervalFloorMS = 200

	// Spawn placement: minimum distance from the player, tightening with
	// level down to a floor.
	spawnMinDistBase  = 250.0
	spawnMinDistStep  = 10.0
	spawnMinDistFloor = 100.0

	// spawnMaxAttempts bounds rejection sampling so a cramped arena cannot
	// stall the tick; the farthest rejected candidate is used as fallback.
	spawnMaxAttempts = 64
)

// EnemyGenerator creates one enemy per firing and reschedules itself on a
// level-dependent countdown. Scheduling is cooperative: the generator is
// ticked from inside World.Advance, never from a timer or goroutine.
type EnemyGenerator struct {
	level     int
	rng       *rand.Rand
	countdown int // ticks until the next spawn; 0 fires on the next tick
	spawned   int
}

// NewEnemyGenerator creates a generator that fires on the first tick.
func NewEnemyGenerator(level int, rng *rand.Rand) *EnemyGenerator {
	return &EnemyGenerator{level: level, rng: rng}
}

// Level returns the difficulty level the generator was built with.
func (g *EnemyGenerator) Level() int {
	return g.level
}

// Spawned returns how many enemies the generator has created.
func (g *EnemyGenerator) Spawned() int {
	return g.spawned
}

// IntervalTicks returns the current rescheduling delay in ticks.
func (g *EnemyGenerator) IntervalTicks() int {
	ms := spawnBaseIntervalMS - spawnIntervalStepMS*g.level
	if ms < spawnIntervalFloorMS {
		ms = spawnIntervalFloorMS
	}
	return ms * tps / 1000
}

// MinSpawnDistance returns the minimum allowed spawn distance from the
// player at the generator's level.
func (g *EnemyGenerator) MinSpawnDistance() float64 {
	d := spawnMinDistBase - spawnMinDistStep*float64(g.level)
	if d < spawnMinDistFloor {
		d = spawnMinDistFloor
	}
	return d
}

// Tick advances the countdown and fires when it reaches zero.
func (g *EnemyGenerator) Tick(w *World) {
	if g.countdown > 0 {
		g.countdown--
		return
	}
	g.spawnOne(w)
	g.countdown = g.IntervalTicks()
}

// kindForNext returns the enemy kind the generator produces at its level.
func (g *EnemyGenerator) kindForNext() EnemyKind {
	switch g.level % 4 {
	case 1:
		return EnemyRandomWalk
	case 2:
		return EnemyChasing
	case 3:
		return EnemyFencing
	default:
		return EnemyBoss
	}
}

// spawnOne creates a single enemy, places it, and registers it with the
// world. Fencers always start on their patrol ring; every other kind is
// placed at least MinSpawnDistance from the player.
func (g *EnemyGenerator) spawnOne(w *World) {
	kind := g.kindForNext()

	var e Enemy
	switch kind {
	case EnemyRandomWalk:
		e = NewRandomWalkEnemy(g.rng)
	case EnemyChasing:
		e = NewChasingEnemy()
	case EnemyFencing:
		e = NewFencingEnemy()
	default:
		e = NewBossEnemy()
	}

	var at Point
	if kind == EnemyFencing {
		hc := w.home.Center()
		at = Point{X: hc.X + fencerOffset, Y: hc.Y + fencerOffset}
	} else {
		at = g.pickSpawnPoint(w)
	}

	e.setPos(at)
	if kind == EnemyBoss {
		scatterFakeHomes(w)
	}

	w.addEnemy(e)
	g.spawned++
}

// pickSpawnPoint samples uniform arena positions until one is at least
// MinSpawnDistance from the player. Attempts are bounded; if every sample
// is rejected the farthest candidate seen wins.
func (g *EnemyGenerator) pickSpawnPoint(w *World) Point {
	minDist := g.MinSpawnDistance()
	playerAt := w.player.Pos()

	best := Point{}
	bestDist := -1.0
	for i := 0; i < spawnMaxAttempts; i++ {
		p := Point{
			X: g.rng.Float64() * float64(w.width),
			Y: g.rng.Float64() * float64(w.height),
		}
		d := p.DistTo(playerAt)
		if d >= minDist {
			return p
		}
		if d > bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}
