package game

import (
	"reflect"
	"testing"
)

func TestNewWorld_Defaults(t *testing.T) {
	w := NewWorld(Config{})

	width, height := w.Size()
	if width != defaultArenaWidth || height != defaultArenaHeight {
		t.Fatalf("expected %dx%d arena, got %dx%d", defaultArenaWidth, defaultArenaHeight, width, height)
	}
	if hc := w.Home().Center(); hc.X != 700 || hc.Y != 300 {
		t.Fatalf("home should sit %gpx in from the right edge, got (%g,%g)", homeInsetX, hc.X, hc.Y)
	}
	if pp := w.Player().Pos(); pp.X != playerStartX || pp.Y != 300 {
		t.Fatalf("player should start at the left mid-height, got (%g,%g)", pp.X, pp.Y)
	}
	if w.Level() != 1 {
		t.Fatalf("zero config should default to level 1, got %d", w.Level())
	}
	if w.Waypoint().Active() {
		t.Fatal("waypoint should start inactive")
	}
	if w.Spawner() == nil {
		t.Fatal("spawner should be armed by default")
	}
	if NewWorld(Config{DisableSpawner: true}).Spawner() != nil {
		t.Fatal("DisableSpawner should leave the world without a generator")
	}
}

func TestWorld_FrozenAfterOutcome(t *testing.T) {
	ts := NewTestSim(
		WithSpawnerDisabled(),
		WithPlayerAt(200, 200),
		WithEnemy(EnemyChasing, 200, 212),
	)
	ts.RunTicks(1)
	if ts.World.Outcome() != OutcomeLose {
		t.Fatalf("setup should lose on tick 1, got %s", ts.World.Outcome())
	}

	frozen := ts.Snapshot()
	for i := 0; i < 10; i++ {
		ts.World.Advance()
	}
	ts.World.ActivateWaypoint(Point{X: 700, Y: 300})

	if got := ts.Snapshot(); !reflect.DeepEqual(got, frozen) {
		t.Fatalf("finished world must not change:\nbefore %+v\nafter  %+v", frozen, got)
	}
	if ts.World.Waypoint().Active() {
		t.Fatal("waypoint activation must be ignored after the run ends")
	}
}

func TestWorld_DeterministicForSeed(t *testing.T) {
	run := func() SimSnapshot {
		ts := NewTestSim(WithLevel(4), WithSeed(11))
		ts.RunTicks(400)
		return ts.Snapshot()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed should replay identically:\na %+v\nb %+v", a, b)
	}
}

func TestWorld_EnemiesKeepSpawnOrder(t *testing.T) {
	ts := NewTestSim(WithSpawnerDisabled())
	for i, kind := range []EnemyKind{EnemyChasing, EnemyFencing, EnemyBoss} {
		e := newEnemyOfKind(kind, ts.World)
		e.setPos(Point{X: 400, Y: float64(100 + 100*i)})
		ts.World.addEnemy(e)
	}

	enemies := ts.World.Enemies()
	want := []EnemyKind{EnemyChasing, EnemyFencing, EnemyBoss}
	for i, kind := range want {
		if enemies[i].Kind() != kind {
			t.Fatalf("enemy %d: expected %s, got %s", i, kind, enemies[i].Kind())
		}
	}
}
