package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// borderWidth is the pixel gap between the window edge and the arena.
const borderWidth = 24

// hudScale is the integer upscale factor applied to all HUD text (3 = 3× larger).
const hudScale = 3

// playerRadius is the turtle's drawn body radius. Collision ignores it:
// the turtle is a point for hit purposes.
const playerRadius = 8

type Game struct {
	world    *World
	reporter *RunReporter
	level    int

	width  int // window width
	height int // window height
	offX   int // pixel offset from window left to arena left
	offY   int // pixel offset from window top to arena top

	// Edge-triggered input state.
	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	showHUD bool
	// Offscreen buffer for the arena — blitted to the screen at the border offset.
	worldBuf *ebiten.Image
	// Offscreen buffer for HUD text — rendered at 1x then blitted at hudScale.
	hudBuf *ebiten.Image

	// Outcome banner cache, rebuilt when the message changes.
	bannerBuf *ebiten.Image
	bannerMsg string

	// copyFlash counts down frames of the "report copied" HUD notice.
	copyFlash int
}

// New creates a game at the given difficulty level with a wall-clock seed.
func New(level int) *Game {
	return newGame(level, time.Now().UnixNano())
}

func newGame(level int, seed int64) *Game {
	w := NewWorld(Config{Level: level, Seed: seed})
	aw, ah := w.Size()
	g := &Game{
		world:    w,
		reporter: NewRunReporter(),
		level:    level,
		width:    borderWidth + aw + borderWidth,
		height:   borderWidth + ah + borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		prevKeys: make(map[ebiten.Key]bool),
		simSpeed: 1.0,
		showHUD:  true,
	}
	g.worldBuf = ebiten.NewImage(aw, ah)
	g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	return g
}

// restart replaces the world with a fresh one at the same level.
func (g *Game) restart() {
	g.world = NewWorld(Config{Level: g.level, Seed: time.Now().UnixNano()})
	g.reporter = NewRunReporter()
	g.tickAccum = 0
	g.bannerMsg = ""
	g.bannerBuf = nil
}

func (g *Game) Update() error {
	// Handle input every frame regardless of sim speed.
	g.handleInput()

	if g.copyFlash > 0 {
		g.copyFlash--
	}
	if g.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		if g.world.Outcome() == OutcomePending {
			g.world.Advance()
			g.reporter.Observe(g.world)
		}
	}
	return nil
}

// handleInput processes clicks and edge-triggered keypresses.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressedOnce := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// Left mouse click: activate the waypoint at the cursor.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !g.prevMouseLeft {
		mx, my := ebiten.CursorPosition()
		ax := float64(mx - g.offX)
		ay := float64(my - g.offY)
		aw, ah := g.world.Size()
		if ax >= 0 && ax <= float64(aw) && ay >= 0 && ay <= float64(ah) {
			g.world.ActivateWaypoint(Point{X: ax, Y: ay})
		}
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// P: pause/resume.
	if pressedOnce(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}

	// ,/.: slower/faster.
	speeds := []float64{0, 0.5, 1, 2, 4}
	if pressedOnce(ebiten.KeyComma) {
		for i, s := range speeds {
			if s >= g.simSpeed && i > 0 {
				g.simSpeed = speeds[i-1]
				break
			}
		}
	}
	if pressedOnce(ebiten.KeyPeriod) {
		for i, s := range speeds {
			if s <= g.simSpeed && i < len(speeds)-1 {
				if speeds[i+1] > g.simSpeed {
					g.simSpeed = speeds[i+1]
					break
				}
			}
		}
	}

	// R: restart at the same level.
	if pressedOnce(ebiten.KeyR) {
		g.restart()
	}

	// C: copy the run report to the clipboard.
	if pressedOnce(ebiten.KeyC) {
		if err := g.copyRunReport(); err == nil {
			g.copyFlash = 90
		}
	}

	// H: toggle HUD.
	if pressedOnce(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.prevKeys = currentKeys
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Window background: very dark, outside the arena.
	screen.Fill(color.RGBA{R: 10, G: 12, B: 14, A: 255})

	g.worldBuf.Clear()
	g.drawWorld(g.worldBuf)

	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(float64(g.offX), float64(g.offY))
	screen.DrawImage(g.worldBuf, &blit)

	// Arena border frame (screen coords, not part of the arena buffer).
	ox := float32(g.offX)
	oy := float32(g.offY)
	aw, ah := g.world.Size()
	gw := float32(aw)
	gh := float32(ah)
	borderCol := color.RGBA{R: 60, G: 90, B: 100, A: 255}
	vector.StrokeRect(screen, ox-1, oy-1, gw+2, gh+2, 2.0, borderCol, false)
	vector.StrokeRect(screen, ox-3, oy-3, gw+6, gh+6, 1.0, color.RGBA{R: 35, G: 55, B: 62, A: 100}, false)

	if g.showHUD {
		g.drawHUD(screen)
	}

	switch g.world.Outcome() {
	case OutcomeWin:
		g.drawBanner(screen, "You Win", color.RGBA{R: 90, G: 220, B: 110, A: 255})
	case OutcomeLose:
		g.drawBanner(screen, "You Lose", color.RGBA{R: 235, G: 80, B: 70, A: 255})
	}
}

// drawWorld renders the arena in arena coordinates.
func (g *Game) drawWorld(dst *ebiten.Image) {
	aw, ah := g.world.Size()

	// Pond fill and grid.
	vector.FillRect(dst, 0, 0, float32(aw), float32(ah), color.RGBA{R: 16, G: 36, B: 44, A: 255}, false)
	drawGridOffset(dst, 0, 0, aw, ah, 20, color.RGBA{R: 20, G: 42, B: 50, A: 255})
	drawGridOffset(dst, 0, 0, aw, ah, 100, color.RGBA{R: 26, G: 52, B: 62, A: 255})

	// Decoy homes first so the real one draws over any overlap.
	for _, fh := range g.world.FakeHomes() {
		drawHomeRect(dst, fh, color.RGBA{R: 140, G: 90, B: 50, A: 200})
	}
	drawHomeRect(dst, g.world.Home(), color.RGBA{R: 200, G: 130, B: 60, A: 255})

	g.drawWaypoint(dst)

	for _, e := range g.world.Enemies() {
		e.Draw(dst)
	}

	g.drawPlayer(dst)
}

// drawHomeRect renders a home as an outlined square.
func drawHomeRect(dst *ebiten.Image, h *Home, col color.RGBA) {
	r := h.Rect()
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2.0, col, false)
}

// drawWaypoint renders the active waypoint as a green X.
func (g *Game) drawWaypoint(dst *ebiten.Image) {
	wp := g.world.Waypoint()
	if !wp.Active() {
		return
	}
	x := float32(wp.Pos().X)
	y := float32(wp.Pos().Y)
	const arm = 10
	col := color.RGBA{R: 70, G: 210, B: 90, A: 255}
	vector.StrokeLine(dst, x-arm, y-arm, x+arm, y+arm, 2.0, col, false)
	vector.StrokeLine(dst, x-arm, y+arm, x+arm, y-arm, 2.0, col, false)
}

// drawPlayer renders the turtle: shell, head along the heading, and four
// feet offset diagonally from the heading.
func (g *Game) drawPlayer(dst *ebiten.Image) {
	p := g.world.Player()
	x := float32(p.Pos().X)
	y := float32(p.Pos().Y)
	h := p.Heading()

	shell := color.RGBA{R: 60, G: 170, B: 80, A: 255}
	rim := color.RGBA{R: 120, G: 230, B: 130, A: 255}
	limb := color.RGBA{R: 80, G: 190, B: 95, A: 255}

	// Feet at ±45° and ±135° from the heading.
	for _, da := range []float64{math.Pi / 4, -math.Pi / 4, 3 * math.Pi / 4, -3 * math.Pi / 4} {
		fx := x + float32(math.Cos(h+da))*playerRadius
		fy := y + float32(math.Sin(h+da))*playerRadius
		vector.FillCircle(dst, fx, fy, 3, limb, true)
	}
	// Head.
	hx := x + float32(math.Cos(h))*(playerRadius+3)
	hy := y + float32(math.Sin(h))*(playerRadius+3)
	vector.FillCircle(dst, hx, hy, 3.5, limb, true)
	// Shell on top.
	vector.FillCircle(dst, x, y, playerRadius, shell, true)
	vector.StrokeCircle(dst, x, y, playerRadius, 1.5, rim, true)
}

// drawHUD renders status and key hints in the bottom-left corner.
// Text is drawn into hudBuf at 1x then composited onto the screen at hudScale.
func (g *Game) drawHUD(screen *ebiten.Image) {
	speedStr := fmt.Sprintf("%gx", g.simSpeed)
	if g.simSpeed == 0 {
		speedStr = "PAUSED"
	}

	lines := []string{
		fmt.Sprintf("level %d  T=%d  %s", g.level, g.world.Tick(), speedStr),
		fmt.Sprintf("enemies: %d", len(g.world.Enemies())),
		"click=set waypoint  P=pause  ,/.=speed",
		"R=restart  C=copy report  H=hide",
	}
	if g.copyFlash > 0 {
		lines = append(lines, "report copied")
	}

	const lineH = 12 // debug font line height at 1x
	const charW = 6  // debug font char width at 1x
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	bufH := float32(g.height / hudScale)
	bx := float32(4)
	by := bufH - boxH - 4

	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH,
		color.RGBA{R: 6, G: 10, B: 12, A: 210}, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH,
		1.0, color.RGBA{R: 55, G: 95, B: 105, A: 180}, false)

	for i, line := range lines {
		tx := int(bx) + padX
		ty := int(by) + padY + i*lineH
		ebitenutil.DebugPrintAt(g.hudBuf, line, tx, ty)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hudScale), float64(hudScale))
	screen.DrawImage(g.hudBuf, opts)
}

func drawGridOffset(screen *ebiten.Image, offX, offY, w, h, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	ox, oy := float32(offX), float32(offY)
	for x := 0; x <= w; x += spacing {
		xf := ox + float32(x)
		vector.StrokeLine(screen, xf, oy, xf, oy+float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		yf := oy + float32(y)
		vector.StrokeLine(screen, ox, yf, ox+float32(w), yf, 1.0, c, false)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
