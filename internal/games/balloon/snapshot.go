package balloon

import (
	"fmt"

	"github.com/vovakirdan/balloon-pop/internal/core"
)

// Snapshot captures the round state published to the presentation layer.
// Balloons is a copy and may be retained by the receiver.
type Snapshot struct {
	Phase            Phase
	RemainingSeconds int
	Speed            int
	Popped           int
	Missed           int
	Balloons         []Balloon
}

// FinalScore applies the scoring rule to the snapshot's counters.
func (s Snapshot) FinalScore() int {
	return FinalScore(s.Popped, s.Missed)
}

// Clock returns the remaining time formatted as MM:SS.
func (s Snapshot) Clock() string {
	return FormatClock(s.RemainingSeconds)
}

// FinalScore is popped minus missed, but only once something was popped.
// A round with no pops scores 0 however many balloons were missed, while a
// round with pops may score below zero.
func FinalScore(popped, missed int) int {
	if popped > 0 {
		return popped - missed
	}
	return 0
}

// FormatClock renders whole seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// PaletteColor picks the color for the balloon at on-screen index i.
func PaletteColor(palette []core.Color, i int) core.Color {
	if len(palette) == 0 {
		return core.ColorDefault
	}
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}
