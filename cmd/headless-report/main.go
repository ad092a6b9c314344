package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/davekift/turtle-adventure/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	summary        game.RunSummary
	firstSpawnTick int
	windowSummary  *game.WindowReport
}

func main() {
	var runs int
	var ticks int
	var level int
	var seedBase int64
	var seedStep int64
	var scenario string

	flag.IntVar(&runs, "runs", 5, "number of headless game runs")
	flag.IntVar(&ticks, "ticks", 3600, "tick budget per run")
	flag.IntVar(&level, "level", 1, "difficulty level")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "beeline-home", "scenario name")
	flag.Parse()

	if runs <= 0 {
		fmt.Fprintln(os.Stderr, "error: -runs must be > 0")
		os.Exit(1)
	}
	if ticks <= 0 {
		fmt.Fprintln(os.Stderr, "error: -ticks must be > 0")
		os.Exit(1)
	}
	if level < 1 {
		fmt.Fprintln(os.Stderr, "error: -level must be >= 1")
		os.Exit(1)
	}
	if scenario != "beeline-home" {
		fmt.Fprintf(os.Stderr, "error: unsupported scenario %q (supported: beeline-home)\n", scenario)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Run Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d level=%d seed_base=%d seed_step=%d\n\n",
		scenario, runs, ticks, level, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenarioBeelineHome(i+1, seed, level, ticks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runScenarioBeelineHome plays a run with the simplest competent policy:
// the waypoint always points at the home centre, re-armed whenever the
// player completes a leg, until the run ends or the tick budget runs out.
func runScenarioBeelineHome(runIndex int, seed int64, level, ticks int) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithLevel(level),
	)
	target := ts.World.Home().Center()
	ts.ActivateWaypoint(target.X, target.Y)
	ts.RunUntil(func(ts *game.TestSim) bool {
		if ts.World.Outcome() != game.OutcomePending {
			return true
		}
		if !ts.World.Waypoint().Active() {
			ts.ActivateWaypoint(target.X, target.Y)
		}
		return false
	}, ticks)

	firstSpawn := -1
	if spawns := ts.SimLog.Filter("spawn", "enemy"); len(spawns) > 0 {
		firstSpawn = spawns[0].Tick
	}

	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		summary:        ts.Reporter.Summary(ts.World),
		firstSpawnTick: firstSpawn,
		windowSummary:  ts.Reporter.WindowSummary(),
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(game.FormatSummary(rs.summary))
	fmt.Printf("first_spawn_tick=%d\n", rs.firstSpawnTick)
	if rs.windowSummary != nil {
		fmt.Printf("window: samples=%d ticks=%d..%d avg_enemies=%.1f avg_home_dist=%.1fpx\n",
			rs.windowSummary.SampleCount, rs.windowSummary.FromTick, rs.windowSummary.ToTick,
			rs.windowSummary.AvgEnemies, rs.windowSummary.AvgHomeDist)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("win_rate=%.0f%%\n", winRate(all)*100)
	fmt.Printf("avg_ticks=%.1f\n", avgTicks(all))
	spawns := mergeSpawns(all)
	fmt.Printf("avg_spawns_per_run: random_walk=%.1f chasing=%.1f fencing=%.1f boss=%.1f\n",
		avgOf(spawns[game.EnemyRandomWalk], len(all)),
		avgOf(spawns[game.EnemyChasing], len(all)),
		avgOf(spawns[game.EnemyFencing], len(all)),
		avgOf(spawns[game.EnemyBoss], len(all)))
	fmt.Printf("min_closest_approach=%s\n", closestOverall(all))
}

// winRate returns the fraction of runs that ended in a win.
func winRate(all []runStats) float64 {
	if len(all) == 0 {
		return 0
	}
	wins := 0
	for _, rs := range all {
		if rs.summary.Outcome == game.OutcomeWin {
			wins++
		}
	}
	return float64(wins) / float64(len(all))
}

// avgTicks returns the mean run length in ticks.
func avgTicks(all []runStats) float64 {
	if len(all) == 0 {
		return 0
	}
	sum := 0
	for _, rs := range all {
		sum += rs.summary.Ticks
	}
	return float64(sum) / float64(len(all))
}

// mergeSpawns sums per-kind spawn counts across runs.
func mergeSpawns(all []runStats) [4]int {
	var out [4]int
	for _, rs := range all {
		for k, n := range rs.summary.SpawnsByKind {
			out[k] += n
		}
	}
	return out
}

func avgOf(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// closestOverall returns the smallest closest-approach across runs.
func closestOverall(all []runStats) string {
	best := math.Inf(1)
	for _, rs := range all {
		if rs.summary.ClosestApproach < best {
			best = rs.summary.ClosestApproach
		}
	}
	if math.IsInf(best, 1) {
		return "n/a"
	}
	return fmt.Sprintf("%.1fpx", best)
}
