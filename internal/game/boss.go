package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	bossStartSpeed = 3.0
	// bossGrowthRate is the hit-box growth in pixels per tick.
	bossGrowthRate = 0.7
	// bossSpeedGain is the per-tick speed increase.
	bossSpeedGain = 0.001
	// bossFakeHomes is how many decoy homes the boss scatters at spawn.
	bossFakeHomes = 5
	fakeHomeSize  = 20.0
)

// BossEnemy chases the player like a ChasingEnemy but grows in size and
// speed every tick, so waiting it out is not an option. At spawn it
// scatters decoy homes across the arena; they render like the real home
// but never satisfy the win condition.
type BossEnemy struct {
	baseEnemy
	speed float64
}

// NewBossEnemy creates a boss with the starting size and speed.
func NewBossEnemy() *BossEnemy {
	return &BossEnemy{
		baseEnemy: baseEnemy{size: enemySize},
		speed:     bossStartSpeed,
	}
}

func (e *BossEnemy) Kind() EnemyKind { return EnemyBoss }

func (e *BossEnemy) Update(w *World) {
	e.pos = e.pos.StepToward(w.player.Pos(), e.speed)
	e.size += bossGrowthRate
	e.speed += bossSpeedGain
	if e.hits(w.player.Pos()) {
		w.endLose(e)
	}
}

func (e *BossEnemy) Draw(dst *ebiten.Image) {
	x := float32(e.pos.X)
	y := float32(e.pos.Y)
	r := float32(e.size / 2)
	vector.FillCircle(dst, x, y, r, color.RGBA{R: 24, G: 20, B: 28, A: 255}, true)
	// Pale rim so the boss stays visible against the dark water.
	vector.StrokeCircle(dst, x, y, r, 1.5, color.RGBA{R: 190, G: 170, B: 210, A: 200}, true)
}

// scatterFakeHomes adds the boss's decoy homes at uniform random arena
// positions. Called by the spawner when a boss appears.
func scatterFakeHomes(w *World) {
	for i := 0; i < bossFakeHomes; i++ {
		c := Point{
			X: w.rng.Float64() * float64(w.width),
			Y: w.rng.Float64() * float64(w.height),
		}
		w.fakeHomes = append(w.fakeHomes, NewHome(c, fakeHomeSize))
	}
}
