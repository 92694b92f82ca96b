package core

// Action represents a semantic lifecycle action, abstracted from physical
// key presses or on-screen buttons.
type Action int

const (
	ActionNone   Action = iota
	ActionStart         // S, Enter on the idle screen, Start button
	ActionReset         // R, Reset button
	ActionReplay        // Enter on the game over screen, Replay button
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionReplay:
		return "Replay"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Tap is a single point-and-tap event in screen coordinates
// (cells for the terminal, pixels for the window).
type Tap struct {
	X, Y int
}

// InputFrame represents the input gathered during one platform tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Taps holds taps in the order they arrived.
	Taps []Tap
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddTap records a tap at screen position (x, y).
func (f *InputFrame) AddTap(x, y int) {
	f.Taps = append(f.Taps, Tap{X: x, Y: y})
}

// Clear resets all actions and taps for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Taps = f.Taps[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Taps) > 0 {
		clone.Taps = append([]Tap(nil), f.Taps...)
	}
	return clone
}
