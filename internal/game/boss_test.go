package game

import (
	"math"
	"testing"
)

func TestBossEnemy_GrowsAndAccelerates(t *testing.T) {
	ts := NewTestSim(
		WithSpawnerDisabled(),
		WithEnemy(EnemyBoss, 600, 500),
	)
	b, ok := ts.World.Enemies()[0].(*BossEnemy)
	if !ok {
		t.Fatalf("expected a *BossEnemy, got %T", ts.World.Enemies()[0])
	}

	ts.RunTicks(10)

	wantSize := enemySize + 10*bossGrowthRate
	if math.Abs(b.Size()-wantSize) > 1e-9 {
		t.Fatalf("boss size after 10 ticks: expected %g, got %g", wantSize, b.Size())
	}
	wantSpeed := bossStartSpeed + 10*bossSpeedGain
	if math.Abs(b.speed-wantSpeed) > 1e-9 {
		t.Fatalf("boss speed after 10 ticks: expected %g, got %g", wantSpeed, b.speed)
	}
}

func TestBossEnemy_ClosesOnIdlePlayer(t *testing.T) {
	ts := NewTestSim(
		WithSpawnerDisabled(),
		WithEnemy(EnemyBoss, 600, 500),
	)
	playerAt := ts.World.Player().Pos()
	before := ts.World.Enemies()[0].Pos().DistTo(playerAt)

	ts.RunTicks(20)

	after := ts.World.Enemies()[0].Pos().DistTo(playerAt)
	// 20 strides at a speed creeping up from 3.0.
	if closed := before - after; closed < 20*bossStartSpeed-1e-9 {
		t.Fatalf("boss should close at least %gpx in 20 ticks, closed %g", 20*bossStartSpeed, closed)
	}
}

func TestBossSpawn_ScattersFakeHomes(t *testing.T) {
	ts := NewTestSim(WithLevel(4), WithSeed(3))
	ts.RunTicks(1)

	enemies := ts.World.Enemies()
	if len(enemies) != 1 || enemies[0].Kind() != EnemyBoss {
		t.Fatalf("level 4 should spawn a boss first, got %v", enemies)
	}
	fakes := ts.World.FakeHomes()
	if len(fakes) != bossFakeHomes {
		t.Fatalf("expected %d decoy homes, got %d", bossFakeHomes, len(fakes))
	}
	width, height := ts.World.Size()
	for i, fh := range fakes {
		c := fh.Center()
		if c.X < 0 || c.X > float64(width) || c.Y < 0 || c.Y > float64(height) {
			t.Errorf("decoy %d scattered outside the arena: (%g,%g)", i, c.X, c.Y)
		}
	}
}

func TestFakeHome_NeverWins(t *testing.T) {
	w := NewWorld(Config{DisableSpawner: true})
	w.fakeHomes = append(w.fakeHomes, NewHome(w.Player().Pos(), fakeHomeSize))

	for i := 0; i < 5; i++ {
		w.Advance()
	}
	if w.Outcome() != OutcomePending {
		t.Fatalf("standing on a decoy home must not end the run, got %s", w.Outcome())
	}
}
