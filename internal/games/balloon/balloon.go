// Package balloon implements Balloon Pop: balloons spawn at the top of the
// field, drift downward and must be tapped before they reach the bottom.
// A countdown bounds each round.
package balloon

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/balloon-pop/internal/core"
)

// Phase is the coarse lifecycle state of a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Balloon is a spawned target. X is fixed at spawn; Y grows every movement
// tick. Both are in field units with the origin at the top-left.
type Balloon struct {
	ID string
	X  int
	Y  int
}

// Rect returns the balloon's tap area in field units.
func (b Balloon) Rect(size int) core.Rect {
	return core.NewRect(b.X, b.Y, size, size)
}

// newBalloonID draws a UUID from the round RNG so seeded rounds repeat exactly.
func newBalloonID(rng *rand.Rand, seq int) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return fmt.Sprintf("balloon-%d", seq)
	}
	return id.String()
}
