package balloon

import "github.com/vovakirdan/balloon-pop/internal/core"

// Button is an on-screen control in the terminal layout.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonReset
	ButtonReplay
)

// Label returns the text drawn for the button.
func (b Button) Label() string {
	switch b {
	case ButtonStart:
		return "[ Start ]"
	case ButtonReset:
		return "[ Reset ]"
	case ButtonReplay:
		return "[ Replay ]"
	default:
		return ""
	}
}

// Action returns the lifecycle action the button triggers.
func (b Button) Action() core.Action {
	switch b {
	case ButtonStart:
		return core.ActionStart
	case ButtonReset:
		return core.ActionReset
	case ButtonReplay:
		return core.ActionReplay
	default:
		return core.ActionNone
	}
}

const (
	hudHeight   = 1
	modalWidth  = 34
	modalHeight = 7
	buttonGap   = 2
)

type placedButton struct {
	button Button
	rect   core.Rect
}

// screenLayout positions the HUD, the play field and the buttons on a
// terminal of w x h cells. It depends only on size and phase so that
// Step and Render agree on where every button is.
type screenLayout struct {
	hud     core.Rect
	field   core.Rect
	modal   core.Rect // Zero while Running
	buttons []placedButton
}

func computeLayout(w, h int, phase Phase) screenLayout {
	l := screenLayout{
		hud:   core.NewRect(0, 0, w, core.Min(hudHeight, h)),
		field: core.NewRect(0, hudHeight, w, core.Max(h-hudHeight, 0)),
	}

	switch phase {
	case PhaseRunning:
		label := ButtonReset.Label()
		x := core.Max(w-len(label)-1, 0)
		l.buttons = append(l.buttons, placedButton{ButtonReset, core.NewRect(x, 0, len(label), 1)})

	case PhaseIdle:
		l.modal = centeredModal(w, h)
		l.buttons = rowOfButtons(l.modal, ButtonStart)

	case PhaseGameOver:
		l.modal = centeredModal(w, h)
		l.buttons = rowOfButtons(l.modal, ButtonReplay, ButtonReset)
	}

	return l
}

func centeredModal(w, h int) core.Rect {
	mw := core.Min(modalWidth, w)
	mh := core.Min(modalHeight, h)
	return core.NewRect((w-mw)/2, (h-mh)/2, mw, mh)
}

// rowOfButtons centers the buttons on the second-to-last row of the modal.
func rowOfButtons(modal core.Rect, buttons ...Button) []placedButton {
	total := 0
	for i, b := range buttons {
		if i > 0 {
			total += buttonGap
		}
		total += len(b.Label())
	}

	x := modal.X + (modal.W-total)/2
	y := modal.Bottom() - 2
	placed := make([]placedButton, 0, len(buttons))
	for _, b := range buttons {
		n := len(b.Label())
		placed = append(placed, placedButton{b, core.NewRect(x, y, n, 1)})
		x += n + buttonGap
	}
	return placed
}

// buttonAt returns the button under the cell (x, y).
func (l screenLayout) buttonAt(x, y int) Button {
	for _, pb := range l.buttons {
		if pb.rect.Contains(x, y) {
			return pb.button
		}
	}
	return ButtonNone
}

// balloonCells maps a balloon from field units onto the field's cell area.
// The result is at least one cell in each direction.
func (l screenLayout) balloonCells(b Balloon, size, fieldW, fieldH int) core.Rect {
	if fieldW <= 0 || fieldH <= 0 {
		return core.Rect{}
	}
	x0 := l.field.X + b.X*l.field.W/fieldW
	x1 := l.field.X + (b.X+size)*l.field.W/fieldW
	y0 := l.field.Y + b.Y*l.field.H/fieldH
	y1 := l.field.Y + (b.Y+size)*l.field.H/fieldH
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
