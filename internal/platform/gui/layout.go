package gui

import (
	"image"
	"image/color"

	"github.com/vovakirdan/balloon-pop/internal/core"
	"github.com/vovakirdan/balloon-pop/internal/games/balloon"
)

const (
	hudHeight    = 28
	buttonWidth  = 96
	buttonHeight = 32
	buttonGap    = 16
	modalWidth   = 260
	modalHeight  = 180
)

// button is a tappable rectangle in window pixels.
type button struct {
	Kind balloon.Button
	Rect image.Rectangle
}

// modalRect returns the dialog rectangle centered in a w x h window.
func modalRect(w, h int) image.Rectangle {
	x := (w - modalWidth) / 2
	y := (h - modalHeight) / 2
	return image.Rect(x, y, x+modalWidth, y+modalHeight)
}

// layoutButtons positions the buttons visible in the given phase.
func layoutButtons(phase balloon.Phase, w, h int) []button {
	switch phase {
	case balloon.PhaseRunning:
		x := w - buttonWidth - 8
		y := (hudHeight - 22) / 2
		return []button{{balloon.ButtonReset, image.Rect(x, y, x+buttonWidth, y+22)}}

	case balloon.PhaseIdle:
		return buttonRow(modalRect(w, h), balloon.ButtonStart)

	case balloon.PhaseGameOver:
		return buttonRow(modalRect(w, h), balloon.ButtonReplay, balloon.ButtonReset)
	}
	return nil
}

func buttonRow(modal image.Rectangle, kinds ...balloon.Button) []button {
	total := len(kinds)*buttonWidth + (len(kinds)-1)*buttonGap
	x := modal.Min.X + (modal.Dx()-total)/2
	y := modal.Max.Y - buttonHeight - 16

	out := make([]button, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, button{k, image.Rect(x, y, x+buttonWidth, y+buttonHeight)})
		x += buttonWidth + buttonGap
	}
	return out
}

// buttonAt returns the button containing p, if any.
func buttonAt(buttons []button, p image.Point) (balloon.Button, bool) {
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.Kind, true
		}
	}
	return balloon.ButtonNone, false
}

var (
	skyTop      = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	skyBottom   = color.RGBA{0xe0, 0xf6, 0xff, 0xff}
	hudColor    = color.RGBA{0x1e, 0x2a, 0x3a, 0xd0}
	modalColor  = color.RGBA{0x1e, 0x2a, 0x3a, 0xf0}
	buttonColor = color.RGBA{0x2e, 0xa0, 0x5a, 0xff}
	stringColor = color.RGBA{0x55, 0x55, 0x55, 0xff}
	textColor   = color.White
	titleColor  = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// balloonColors maps palette entries to window colors.
var balloonColors = map[core.Color]color.RGBA{
	core.ColorRed:           {0xe5, 0x39, 0x35, 0xff},
	core.ColorGreen:         {0x43, 0xa0, 0x47, 0xff},
	core.ColorYellow:        {0xfd, 0xd8, 0x35, 0xff},
	core.ColorBlue:          {0x1e, 0x88, 0xe5, 0xff},
	core.ColorMagenta:       {0xd8, 0x1b, 0x60, 0xff},
	core.ColorCyan:          {0x00, 0xac, 0xc1, 0xff},
	core.ColorWhite:         {0xf5, 0xf5, 0xf5, 0xff},
	core.ColorBrightRed:     {0xff, 0x52, 0x52, 0xff},
	core.ColorBrightGreen:   {0x69, 0xf0, 0xae, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightBlue:    {0x44, 0x8a, 0xff, 0xff},
	core.ColorBrightMagenta: {0xe0, 0x40, 0xfb, 0xff},
	core.ColorBrightCyan:    {0x18, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xfb, 0x8c, 0x00, 0xff},
	core.ColorGray:          {0x9e, 0x9e, 0x9e, 0xff},
}

func balloonRGBA(c core.Color) color.RGBA {
	if rgba, ok := balloonColors[c]; ok {
		return rgba
	}
	return balloonColors[core.ColorRed]
}

// lerpRGBA blends a toward b by t in [0, 1].
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
