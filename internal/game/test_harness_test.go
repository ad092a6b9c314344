package game

import "testing"

func TestTestSim_OptionsApplyInOrder(t *testing.T) {
	// Entity options must see the configured world, whatever the argument order.
	ts := NewTestSim(
		WithPlayerAt(10, 10),
		WithArenaSize(400, 400),
		WithHomeAt(390, 390),
		WithSpawnerDisabled(),
	)

	if width, height := ts.World.Size(); width != 400 || height != 400 {
		t.Fatalf("expected a 400x400 arena, got %dx%d", width, height)
	}
	if pp := ts.World.Player().Pos(); pp.X != 10 || pp.Y != 10 {
		t.Fatalf("player placement lost: (%g,%g)", pp.X, pp.Y)
	}
	if hc := ts.World.Home().Center(); hc.X != 390 || hc.Y != 390 {
		t.Fatalf("home placement lost: (%g,%g)", hc.X, hc.Y)
	}
}

func TestTestSim_RunUntilReportsEndTick(t *testing.T) {
	ts := NewTestSim(WithSpawnerDisabled(), WithPlayerAt(100, 300))
	ts.ActivateWaypoint(700, 300)

	end := ts.RunUntil(func(ts *TestSim) bool {
		return ts.World.Outcome() == OutcomeWin
	}, 300)
	if end < 0 {
		t.Fatalf("beeline should win within 300 ticks\n%s", ts.SimLog.Format())
	}
	if end != ts.World.Tick() {
		t.Fatalf("RunUntil should return the satisfying tick %d, got %d", ts.World.Tick(), end)
	}

	idle := NewTestSim(WithSpawnerDisabled())
	if got := idle.RunUntil(func(ts *TestSim) bool { return false }, 50); got != -1 {
		t.Fatalf("unsatisfied predicate should return -1, got %d", got)
	}
	if idle.World.Tick() != 50 {
		t.Fatalf("RunUntil should still burn its budget, got tick %d", idle.World.Tick())
	}
}

func TestTestSim_LogsWaypointLifecycle(t *testing.T) {
	ts := NewTestSim(WithSpawnerDisabled())
	ts.ActivateWaypoint(150, 300)
	ts.RunTicks(25)

	if !ts.SimLog.HasEntry("waypoint", "activate", "(150,300)") {
		t.Fatalf("missing activation entry\n%s", ts.SimLog.Format())
	}
	reached, ok := ts.SimLog.LastOf("waypoint", "reached")
	if !ok {
		t.Fatalf("missing reached entry\n%s", ts.SimLog.Format())
	}
	if reached.Tick != 20 {
		t.Fatalf("100px due east is 20 strides, reached at tick %d", reached.Tick)
	}
}
