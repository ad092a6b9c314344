package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// runReport renders a human-readable snapshot of the current run:
// header, reporter summary, sliding-window stats, and the entity table.
func (g *Game) runReport() string {
	w := g.world
	var b strings.Builder

	fmt.Fprintf(&b, "--- Turtle Adventure run report ---\n")
	fmt.Fprintf(&b, "seed=%d level=%d tick=%d\n\n", w.Seed(), w.Level(), w.Tick())

	b.WriteString(FormatSummary(g.reporter.Summary(w)))

	if win := g.reporter.WindowSummary(); win != nil {
		fmt.Fprintf(&b, "window: samples=%d ticks=%d..%d avg_enemies=%.1f avg_home_dist=%.1fpx min_enemy_dist=%s\n",
			win.SampleCount, win.FromTick, win.ToTick,
			win.AvgEnemies, win.AvgHomeDist, formatDist(win.MinEnemyDist))
	}

	p := w.Player().Pos()
	fmt.Fprintf(&b, "\nplayer at (%.1f,%.1f)\n", p.X, p.Y)
	hc := w.Home().Center()
	fmt.Fprintf(&b, "home at (%.0f,%.0f) fake_homes=%d\n", hc.X, hc.Y, len(w.FakeHomes()))
	for i, e := range w.Enemies() {
		ep := e.Pos()
		fmt.Fprintf(&b, "%s %-12s at (%.1f,%.1f) size=%.1f dist=%.1fpx\n",
			enemyLabel(i), e.Kind(), ep.X, ep.Y, e.Size(), ep.DistTo(p))
	}
	return b.String()
}

// copyRunReport places the run report on the system clipboard.
func (g *Game) copyRunReport() error {
	return clipboard.WriteAll(g.runReport())
}
