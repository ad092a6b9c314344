package game

import (
	"fmt"
	"math"
	"strings"
)

// reportWindowTicks is the sliding window for recent-behaviour summaries
// (~10s at 60 TPS).
const reportWindowTicks = 600

// windowSample is one per-tick observation kept in the sliding window.
type windowSample struct {
	tick       int
	enemyCount int
	homeDist   float64
	minEnemy   float64 // +Inf when no enemies exist
}

// RunSummary is the final per-run statistics block.
type RunSummary struct {
	Ticks           int
	Outcome         Outcome
	Cause           string
	KillerKind      EnemyKind // meaningful only for losses
	SpawnsByKind    [enemyKindCount]int
	TotalSpawns     int
	WaypointLegs    int
	ClosestApproach float64 // min player-enemy distance seen; +Inf if no enemy
}

// WindowReport summarises the most recent reportWindowTicks observations.
type WindowReport struct {
	SampleCount  int
	FromTick     int
	ToTick       int
	AvgEnemies   float64
	AvgHomeDist  float64
	MinEnemyDist float64
}

// RunReporter watches a world tick by tick and accumulates run analytics:
// spawn counts per enemy kind, completed waypoint legs, and the closest
// any enemy came to the player. Call Observe once after every Advance.
type RunReporter struct {
	prevEnemies  int
	prevActive   bool
	spawnsByKind [enemyKindCount]int
	waypointLegs int
	closest      float64
	window       []windowSample
}

// NewRunReporter creates a reporter with no observations.
func NewRunReporter() *RunReporter {
	return &RunReporter{closest: math.Inf(1)}
}

// Observe records one tick's worth of state. It detects spawns and
// completed waypoint legs by diffing against the previous observation.
func (r *RunReporter) Observe(w *World) {
	enemies := w.Enemies()
	for _, e := range enemies[r.prevEnemies:] {
		r.spawnsByKind[e.Kind()]++
	}
	r.prevEnemies = len(enemies)

	active := w.Waypoint().Active()
	if r.prevActive && !active {
		r.waypointLegs++
	}
	r.prevActive = active

	playerAt := w.Player().Pos()
	minEnemy := math.Inf(1)
	for _, e := range enemies {
		if d := e.Pos().DistTo(playerAt); d < minEnemy {
			minEnemy = d
		}
	}
	if minEnemy < r.closest {
		r.closest = minEnemy
	}

	r.window = append(r.window, windowSample{
		tick:       w.Tick(),
		enemyCount: len(enemies),
		homeDist:   playerAt.DistTo(w.Home().Center()),
		minEnemy:   minEnemy,
	})
	if len(r.window) > reportWindowTicks {
		r.window = r.window[len(r.window)-reportWindowTicks:]
	}
}

// Summary returns the run's final statistics.
func (r *RunReporter) Summary(w *World) RunSummary {
	total := 0
	for _, n := range r.spawnsByKind {
		total += n
	}
	reason := w.OutcomeReason()
	return RunSummary{
		Ticks:           w.Tick(),
		Outcome:         reason.Outcome,
		Cause:           reason.Cause,
		KillerKind:      reason.EnemyKind,
		SpawnsByKind:    r.spawnsByKind,
		TotalSpawns:     total,
		WaypointLegs:    r.waypointLegs,
		ClosestApproach: r.closest,
	}
}

// WindowSummary summarises the sliding window, or nil with no samples.
func (r *RunReporter) WindowSummary() *WindowReport {
	if len(r.window) == 0 {
		return nil
	}
	var enemySum, distSum float64
	minEnemy := math.Inf(1)
	for _, s := range r.window {
		enemySum += float64(s.enemyCount)
		distSum += s.homeDist
		if s.minEnemy < minEnemy {
			minEnemy = s.minEnemy
		}
	}
	n := float64(len(r.window))
	return &WindowReport{
		SampleCount:  len(r.window),
		FromTick:     r.window[0].tick,
		ToTick:       r.window[len(r.window)-1].tick,
		AvgEnemies:   enemySum / n,
		AvgHomeDist:  distSum / n,
		MinEnemyDist: minEnemy,
	}
}

// FormatSummary renders a RunSummary as the fixed block used by the
// report CLI and the in-game debug report.
func FormatSummary(s RunSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "outcome=%s cause=%s ticks=%d\n", s.Outcome, orDash(s.Cause), s.Ticks)
	if s.Outcome == OutcomeLose {
		fmt.Fprintf(&sb, "killer=%s\n", s.KillerKind)
	}
	fmt.Fprintf(&sb, "spawns: total=%d random_walk=%d chasing=%d fencing=%d boss=%d\n",
		s.TotalSpawns,
		s.SpawnsByKind[EnemyRandomWalk],
		s.SpawnsByKind[EnemyChasing],
		s.SpawnsByKind[EnemyFencing],
		s.SpawnsByKind[EnemyBoss])
	fmt.Fprintf(&sb, "waypoint_legs=%d closest_approach=%s\n",
		s.WaypointLegs, formatDist(s.ClosestApproach))
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}

func formatDist(d float64) string {
	if math.IsInf(d, 1) {
		return "n/a"
	}
	return fmt.Sprintf("%.1fpx", d)
}
