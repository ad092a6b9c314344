package game

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndCount(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "E0", "spawn", "enemy", "fencing at (750,350)", 0)
	sl.Add(5, "player", "waypoint", "activate", "(700,300)", 0)
	sl.Add(60, "E1", "spawn", "enemy", "fencing at (750,350)", 0)
	sl.Add(129, "--", "outcome", "win", "reached_home", 0)

	if got := sl.CountCategory("spawn", "enemy"); got != 2 {
		t.Fatalf("expected 2 spawn entries, got %d", got)
	}
	if got := len(sl.Filter("waypoint", "")); got != 1 {
		t.Fatalf("expected 1 waypoint entry, got %d", got)
	}
	if got := len(sl.FilterActor("E1")); got != 1 {
		t.Fatalf("expected 1 entry for E1, got %d", got)
	}

	last, ok := sl.LastOf("spawn", "enemy")
	if !ok || last.Tick != 60 || last.Actor != "E1" {
		t.Fatalf("LastOf should return the tick-60 spawn, got %+v ok=%v", last, ok)
	}
	if _, ok := sl.LastOf("spawn", "nothing"); ok {
		t.Fatal("LastOf should report no match for an unknown key")
	}

	if !sl.HasEntry("outcome", "win", "reached") {
		t.Fatal("HasEntry should match on a value substring")
	}
	if sl.HasEntry("outcome", "lose", "") {
		t.Fatal("HasEntry should not invent a lose entry")
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "player", "player", "position", "(50.0,300.0)", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entries must be dropped when verbose mode is off")
	}

	loud := NewSimLog(true)
	loud.AddVerbose(1, "player", "player", "position", "(50.0,300.0)", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose entries must be kept when verbose mode is on")
	}
}

func TestSimLogEntry_Format(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(42, "E2", "spawn", "enemy", "chasing at (512,88)", 0)
	out := sl.Format()
	if !strings.HasPrefix(out, "[T=042] E2") {
		t.Fatalf("unexpected log line format: %q", out)
	}
	if !strings.Contains(out, "chasing at (512,88)") {
		t.Fatalf("log line missing detail: %q", out)
	}
}
