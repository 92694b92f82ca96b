package balloon

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/balloon-pop/internal/clock"
	"github.com/vovakirdan/balloon-pop/internal/config"
	"github.com/vovakirdan/balloon-pop/internal/core"
)

// Controller owns one round: its timers, balloons and counters.
// All methods must be called from a single goroutine (the front end's
// update loop); timer callbacks run inside Advance on that same goroutine.
type Controller struct {
	cfg     config.BalloonConfig
	palette []core.Color
	rng     *rand.Rand
	sched   *clock.Scheduler

	// Exactly these four handles are armed while Running, none otherwise.
	spawnTimer     *clock.Handle
	moveTimer      *clock.Handle
	speedTimer     *clock.Handle
	countdownTimer *clock.Handle

	phase     Phase
	remaining int
	speed     int
	popped    int
	missed    int
	balloons  []Balloon
	spawned   int // Balloons spawned since the controller was created
	listeners map[int]func(Snapshot)
	nextSubID int
}

// NewController creates an idle controller. The seed drives spawn positions
// and balloon IDs.
func NewController(cfg config.BalloonConfig, seed int64) *Controller {
	c := &Controller{
		cfg:       cfg,
		palette:   cfg.Colors(),
		rng:       rand.New(rand.NewSource(seed)),
		sched:     clock.NewScheduler(),
		balloons:  make([]Balloon, 0, 16),
		listeners: make(map[int]func(Snapshot)),
	}
	c.clearRound()
	return c
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.BalloonConfig {
	return c.cfg
}

// Start begins a round from Idle or GameOver. It is a no-op while Running
// and reports whether a round was started.
func (c *Controller) Start() bool {
	if c.phase == PhaseRunning {
		return false
	}

	c.cancelTimers()
	c.clearRound()
	c.phase = PhaseRunning

	// Arm order doubles as the firing order for equal deadlines.
	c.spawnTimer = c.sched.Every(c.cfg.Spawn.Interval, c.TickSpawn)
	c.moveTimer = c.sched.Every(c.cfg.Movement.Interval, c.TickMove)
	c.speedTimer = c.sched.Every(c.cfg.Speed.RampInterval, c.TickSpeed)
	c.countdownTimer = c.sched.Every(c.cfg.Round.CountdownInterval, c.TickCountdown)

	c.publish()
	return true
}

// Reset returns to Idle from any phase, discarding the round.
func (c *Controller) Reset() {
	c.cancelTimers()
	c.clearRound()
	c.phase = PhaseIdle
	c.publish()
}

// Replay resets and immediately starts a new round.
func (c *Controller) Replay() {
	c.Reset()
	c.Start()
}

// Advance moves simulated time forward, firing due timers in order.
func (c *Controller) Advance(dt time.Duration) {
	c.sched.Advance(dt)
}

// TickSpawn inserts one balloon at a random column on the top edge.
func (c *Controller) TickSpawn() {
	if c.phase != PhaseRunning {
		return
	}

	span := c.cfg.Field.Width - c.cfg.Spawn.BalloonSize
	x := 0
	if span > 0 {
		x = c.rng.Intn(span + 1)
	}

	c.spawned++
	c.balloons = append(c.balloons, Balloon{
		ID: newBalloonID(c.rng, c.spawned),
		X:  x,
		Y:  0,
	})
	c.publish()
}

// TickMove advances every balloon by the current speed, then evicts those
// that reached the bottom, counting each as missed once.
func (c *Controller) TickMove() {
	if c.phase != PhaseRunning {
		return
	}

	for i := range c.balloons {
		c.balloons[i].Y += c.speed
	}

	kept := c.balloons[:0]
	for _, b := range c.balloons {
		if b.Y >= c.cfg.Field.Height {
			c.missed += c.cfg.Scoring.MissPenalty
			continue
		}
		kept = append(kept, b)
	}
	c.balloons = kept

	c.publish()
}

// TickSpeed raises the speed by one, up to the configured cap.
func (c *Controller) TickSpeed() {
	if c.phase != PhaseRunning {
		return
	}
	c.speed = core.Min(c.speed+1, c.cfg.Speed.Max)
	c.publish()
}

// TickCountdown takes one second off the clock and ends the round at zero.
// Balloons still on screen at the end are discarded without scoring.
func (c *Controller) TickCountdown() {
	if c.phase != PhaseRunning {
		return
	}

	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.cancelTimers()
		c.phase = PhaseGameOver
		c.balloons = c.balloons[:0]
	}
	c.publish()
}

// Pop removes the balloon with the given ID and credits the pop.
// Returns false if the round is not running or the balloon is already gone
// (popped earlier or evicted by a movement tick).
func (c *Controller) Pop(id string) bool {
	if c.phase != PhaseRunning {
		return false
	}

	for i, b := range c.balloons {
		if b.ID != id {
			continue
		}
		c.balloons = append(c.balloons[:i], c.balloons[i+1:]...)
		c.popped += c.cfg.Scoring.PopPoints
		c.publish()
		return true
	}
	return false
}

// HitTest returns the topmost balloon containing the field point (x, y).
// Later spawns are drawn over earlier ones, so the search runs newest first.
func (c *Controller) HitTest(x, y int) (Balloon, bool) {
	size := c.cfg.Spawn.BalloonSize
	for i := len(c.balloons) - 1; i >= 0; i-- {
		if c.balloons[i].Rect(size).Contains(x, y) {
			return c.balloons[i], true
		}
	}
	return Balloon{}, false
}

// Tap pops the topmost balloon under the field point (x, y), if any.
func (c *Controller) Tap(x, y int) (string, bool) {
	b, ok := c.HitTest(x, y)
	if !ok {
		return "", false
	}
	return b.ID, c.Pop(b.ID)
}

// FinalScore returns the score for the current counters.
func (c *Controller) FinalScore() int {
	return FinalScore(c.popped, c.missed)
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Speed returns the current movement speed in field units per tick.
func (c *Controller) Speed() int {
	return c.speed
}

// ActiveTimers returns how many round timers are armed.
func (c *Controller) ActiveTimers() int {
	return c.sched.Len()
}

// Elapsed returns the simulated time since the controller was created.
func (c *Controller) Elapsed() time.Duration {
	return c.sched.Now()
}

// ColorFor returns the palette color for the balloon at on-screen index i.
func (c *Controller) ColorFor(i int) core.Color {
	return PaletteColor(c.palette, i)
}

// Snapshot returns a copy of the current round state.
func (c *Controller) Snapshot() Snapshot {
	balloons := make([]Balloon, len(c.balloons))
	copy(balloons, c.balloons)

	return Snapshot{
		Phase:            c.phase,
		RemainingSeconds: c.remaining,
		Speed:            c.speed,
		Popped:           c.popped,
		Missed:           c.missed,
		Balloons:         balloons,
	}
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	id := c.nextSubID
	c.nextSubID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// publish notifies subscribers.
func (c *Controller) publish() {
	if len(c.listeners) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range c.listeners {
		fn(snap)
	}
}

// cancelTimers disarms all four round timers unconditionally.
func (c *Controller) cancelTimers() {
	c.spawnTimer.Cancel()
	c.moveTimer.Cancel()
	c.speedTimer.Cancel()
	c.countdownTimer.Cancel()
	c.spawnTimer, c.moveTimer, c.speedTimer, c.countdownTimer = nil, nil, nil, nil
}

// clearRound restores counters, clock and speed to their round-start values.
func (c *Controller) clearRound() {
	c.remaining = c.cfg.Round.DurationSeconds
	c.speed = c.cfg.Speed.Initial
	c.popped = 0
	c.missed = 0
	c.balloons = c.balloons[:0]
}
