package gui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

const skyBands = 16

var face font.Face = basicfont.Face7x13

// Draw renders the sky, balloons, HUD and any dialog.
func (a *App) Draw(screen *ebiten.Image) {
	w, h := a.cfg.Field.Width, a.cfg.Field.Height
	snap := a.ctrl.Snapshot()

	drawSky(screen, w, h)
	a.drawBalloons(screen, snap)
	drawHUD(screen, w, snap)

	switch snap.Phase {
	case balloon.PhaseIdle:
		drawModal(screen, w, h, "Balloon Pop", "Pop them before they land!", "")
	case balloon.PhaseGameOver:
		drawModal(screen, w, h,
			"Time's up!",
			fmt.Sprintf("Popped %d   Missed %d", snap.Popped, snap.Missed),
			fmt.Sprintf("Score %d", snap.FinalScore()),
		)
	}

	for _, b := range layoutButtons(snap.Phase, w, h) {
		drawButton(screen, b)
	}
}

// drawSky paints a vertical gradient in horizontal bands.
func drawSky(screen *ebiten.Image, w, h int) {
	band := float32(h) / skyBands
	for i := 0; i < skyBands; i++ {
		c := lerpRGBA(skyTop, skyBottom, float64(i)/(skyBands-1))
		vector.DrawFilledRect(screen, 0, float32(i)*band, float32(w), band+1, c, false)
	}
}

func (a *App) drawBalloons(screen *ebiten.Image, snap balloon.Snapshot) {
	size := float32(a.cfg.Spawn.BalloonSize)
	r := size / 2
	for i, b := range snap.Balloons {
		cx := float32(b.X) + r
		cy := float32(b.Y) + r
		vector.StrokeLine(screen, cx, cy+r, cx, cy+r+size/2, 1, stringColor, true)
		vector.DrawFilledCircle(screen, cx, cy, r, balloonRGBA(a.ctrl.ColorFor(i)), true)
		// Highlight
		vector.DrawFilledCircle(screen, cx-r/3, cy-r/3, r/5, color.RGBA{0xff, 0xff, 0xff, 0x80}, true)
	}
}

func drawHUD(screen *ebiten.Image, w int, snap balloon.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), hudHeight, hudColor, false)
	line := fmt.Sprintf("%s  Speed %d  Popped %d  Missed %d", snap.Clock(), snap.Speed, snap.Popped, snap.Missed)
	text.Draw(screen, line, face, 8, hudHeight/2+5, textColor)
}

func drawModal(screen *ebiten.Image, w, h int, title, line1, line2 string) {
	m := modalRect(w, h)
	vector.DrawFilledRect(screen, float32(m.Min.X), float32(m.Min.Y), float32(m.Dx()), float32(m.Dy()), modalColor, false)
	vector.StrokeRect(screen, float32(m.Min.X), float32(m.Min.Y), float32(m.Dx()), float32(m.Dy()), 2, titleColor, false)

	drawCentered(screen, m, m.Min.Y+32, title, titleColor)
	drawCentered(screen, m, m.Min.Y+64, line1, textColor)
	drawCentered(screen, m, m.Min.Y+88, line2, textColor)
}

func drawButton(screen *ebiten.Image, b button) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColor, false)
	label := strings.Trim(b.Kind.Label(), "[] ")
	drawCentered(screen, r, r.Min.Y+r.Dy()/2+5, label, textColor)
}

// drawCentered draws s horizontally centered in r with its baseline at y.
func drawCentered(screen *ebiten.Image, r image.Rectangle, y int, s string, c color.Color) {
	if s == "" {
		return
	}
	bounds := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	text.Draw(screen, s, face, x, y, c)
}
