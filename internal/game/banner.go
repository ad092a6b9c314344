package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// bannerScale is the upscale factor for the outcome banner. The bitmap
// face is rendered at 1x into a cached buffer and blitted scaled, the
// same trick the HUD uses for DebugPrint text.
const bannerScale = 6

// drawBanner renders msg centred on the screen in the given colour.
func (g *Game) drawBanner(screen *ebiten.Image, msg string, clr color.RGBA) {
	face := basicfont.Face7x13
	if g.bannerBuf == nil || g.bannerMsg != msg {
		w := font.MeasureString(face, msg).Ceil()
		h := face.Metrics().Height.Ceil()
		g.bannerBuf = ebiten.NewImage(w+2, h+2)
		text.Draw(g.bannerBuf, msg, face, 1, face.Metrics().Ascent.Ceil()+1, color.White)
		g.bannerMsg = msg
	}

	bw, bh := g.bannerBuf.Bounds().Dx(), g.bannerBuf.Bounds().Dy()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(bannerScale, bannerScale)
	opts.GeoM.Translate(
		float64(g.width)/2-float64(bw*bannerScale)/2,
		float64(g.height)/2-float64(bh*bannerScale)/2,
	)
	opts.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(g.bannerBuf, opts)
}
