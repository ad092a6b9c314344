package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// enemySize is the default hit-box edge length for all enemy kinds.
	enemySize = 20.0

	walkerSpeed = 3.0
	chaserSpeed = 3.0
	fencerSpeed = 5.0
	// fencerOffset is the fencing enemy's patrol distance from the home centre.
	fencerOffset = 50.0
)

// EnemyKind identifies an enemy's movement behaviour.
type EnemyKind int

const (
	EnemyRandomWalk EnemyKind = iota
	EnemyChasing
	EnemyFencing
	EnemyBoss

	enemyKindCount = 4
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyRandomWalk:
		return "random_walk"
	case EnemyChasing:
		return "chasing"
	case EnemyFencing:
		return "fencing"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy is a hostile entity. Update runs once per tick and must call
// World.endLose when the enemy touches the player.
type Enemy interface {
	Kind() EnemyKind
	Pos() Point
	Size() float64
	Update(w *World)
	Draw(dst *ebiten.Image)

	// setPos places the enemy; used by the spawner and the test harness.
	setPos(p Point)
}

// baseEnemy carries the position and hit-box state shared by all kinds.
type baseEnemy struct {
	pos  Point
	size float64
}

func (b *baseEnemy) Pos() Point {
	return b.pos
}

func (b *baseEnemy) Size() float64 {
	return b.size
}

func (b *baseEnemy) setPos(p Point) {
	b.pos = p
}

// hits reports whether the player point is inside this enemy's bounding
// square. Edges count as a hit.
func (b *baseEnemy) hits(player Point) bool {
	return RectAround(b.pos, b.size).Contains(player)
}

// drawDisc renders the standard enemy body: a filled circle sized to the
// hit box.
func (b *baseEnemy) drawDisc(dst *ebiten.Image, fill color.RGBA) {
	vector.FillCircle(dst, float32(b.pos.X), float32(b.pos.Y), float32(b.size/2), fill, true)
}

// --- Random walk ---

// RandomWalkEnemy drifts with independent horizontal and vertical
// direction states. A direction flips once its coordinate has crossed the
// matching arena edge, so the enemy may overshoot the boundary by up to
// one stride before turning back.
type RandomWalkEnemy struct {
	baseEnemy
	speed float64
	dirX  float64 // +1 right, -1 left
	dirY  float64 // +1 down, -1 up
}

// NewRandomWalkEnemy creates a walker with randomly chosen initial
// directions on both axes.
func NewRandomWalkEnemy(rng *rand.Rand) *RandomWalkEnemy {
	e := &RandomWalkEnemy{
		baseEnemy: baseEnemy{size: enemySize},
		speed:     walkerSpeed,
		dirX:      1,
		dirY:      1,
	}
	if rng.Intn(2) == 0 {
		e.dirX = -1
	}
	if rng.Intn(2) == 0 {
		e.dirY = -1
	}
	return e
}

func (e *RandomWalkEnemy) Kind() EnemyKind { return EnemyRandomWalk }

func (e *RandomWalkEnemy) Update(w *World) {
	e.pos.X += e.dirX * e.speed
	if e.pos.X > float64(w.width) {
		e.dirX = -1
	}
	if e.pos.X < 0 {
		e.dirX = 1
	}
	e.pos.Y += e.dirY * e.speed
	if e.pos.Y > float64(w.height) {
		e.dirY = -1
	}
	if e.pos.Y < 0 {
		e.dirY = 1
	}
	if e.hits(w.player.Pos()) {
		w.endLose(e)
	}
}

func (e *RandomWalkEnemy) Draw(dst *ebiten.Image) {
	e.drawDisc(dst, color.RGBA{R: 70, G: 190, B: 90, A: 255})
}

// --- Chasing ---

// ChasingEnemy moves along the exact bearing to the player every tick.
type ChasingEnemy struct {
	baseEnemy
	speed float64
}

// NewChasingEnemy creates a chaser with the default speed.
func NewChasingEnemy() *ChasingEnemy {
	return &ChasingEnemy{
		baseEnemy: baseEnemy{size: enemySize},
		speed:     chaserSpeed,
	}
}

func (e *ChasingEnemy) Kind() EnemyKind { return EnemyChasing }

func (e *ChasingEnemy) Update(w *World) {
	e.pos = e.pos.StepToward(w.player.Pos(), e.speed)
	if e.hits(w.player.Pos()) {
		w.endLose(e)
	}
}

func (e *ChasingEnemy) Draw(dst *ebiten.Image) {
	e.drawDisc(dst, color.RGBA{R: 225, G: 70, B: 55, A: 255})
}

// --- Fencing ---

// fencerDirCount is the number of patrol legs (right, down, left, up).
const fencerDirCount = 4

// FencingEnemy patrols a square ring at a fixed offset around the home,
// cycling right, down, left, up. The spawner places it at the ring's
// bottom-right corner, so the first two legs complete immediately and the
// steady-state patrol runs left → up → right → down around the ring.
type FencingEnemy struct {
	baseEnemy
	speed    float64
	offset   float64
	dirIndex int // 0 right, 1 down, 2 left, 3 up
}

// NewFencingEnemy creates a fencer patrolling at the default offset.
func NewFencingEnemy() *FencingEnemy {
	return &FencingEnemy{
		baseEnemy: baseEnemy{size: enemySize},
		speed:     fencerSpeed,
		offset:    fencerOffset,
	}
}

func (e *FencingEnemy) Kind() EnemyKind { return EnemyFencing }

func (e *FencingEnemy) Update(w *World) {
	hc := w.home.Center()
	switch e.dirIndex {
	case 0: // right
		e.pos.X += e.speed
		if e.pos.X >= hc.X+e.offset {
			e.dirIndex = (e.dirIndex + 1) % fencerDirCount
		}
	case 1: // down
		e.pos.Y += e.speed
		if e.pos.Y >= hc.Y+e.offset {
			e.dirIndex = (e.dirIndex + 1) % fencerDirCount
		}
	case 2: // left
		e.pos.X -= e.speed
		if e.pos.X <= hc.X-e.offset {
			e.dirIndex = (e.dirIndex + 1) % fencerDirCount
		}
	case 3: // up
		e.pos.Y -= e.speed
		if e.pos.Y <= hc.Y-e.offset {
			e.dirIndex = (e.dirIndex + 1) % fencerDirCount
		}
	}
	if e.hits(w.player.Pos()) {
		w.endLose(e)
	}
}

func (e *FencingEnemy) Draw(dst *ebiten.Image) {
	e.drawDisc(dst, color.RGBA{R: 80, G: 140, B: 235, A: 255})
}
