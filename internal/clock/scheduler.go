// Package clock provides a deterministic scheduler of repeating timers.
// It stands in for a UI event loop: callbacks fire serially, never in
// parallel, and only when the owner advances simulated time.
package clock

import "time"

// Handle is the cancellation handle of one repeating timer.
type Handle struct {
	seq      uint64        // Arm order, breaks ties between equal deadlines
	interval time.Duration // Period between firings
	next     time.Duration // Next deadline in scheduler time
	fn       func()
	active   bool
}

// Cancel disarms the timer. Safe to call more than once and on a nil handle.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.active = false
}

// Active reports whether the timer is still armed.
func (h *Handle) Active() bool {
	return h != nil && h.active
}

// Interval returns the timer period.
func (h *Handle) Interval() time.Duration {
	if h == nil {
		return 0
	}
	return h.interval
}

// Scheduler owns a set of repeating timers and a simulated clock.
// Not safe for concurrent use; all calls must come from one goroutine.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Handle
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make([]*Handle, 0, 4),
	}
}

// Now returns the simulated time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every arms a repeating timer whose first firing is one interval from now.
// Returns nil if interval is not positive.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	if interval <= 0 || fn == nil {
		return nil
	}
	s.seq++
	h := &Handle{
		seq:      s.seq,
		interval: interval,
		next:     s.now + interval,
		fn:       fn,
		active:   true,
	}
	s.timers = append(s.timers, h)
	return h
}

// Advance moves the clock forward by dt, firing every due callback in
// deadline order. A timer due several times within dt fires once per period.
// Callbacks may cancel or arm timers; a timer cancelled mid-advance does not
// fire again, even if it was due at the same instant.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	target := s.now + dt

	for {
		h := s.nextDue(target)
		if h == nil {
			break
		}
		s.now = h.next
		h.next += h.interval
		h.fn()
	}

	s.now = target
	s.prune()
}

// nextDue returns the armed timer with the earliest deadline not after limit.
func (s *Scheduler) nextDue(limit time.Duration) *Handle {
	var best *Handle
	for _, h := range s.timers {
		if !h.active || h.next > limit {
			continue
		}
		if best == nil || h.next < best.next || (h.next == best.next && h.seq < best.seq) {
			best = h
		}
	}
	return best
}

// prune drops cancelled timers from the set.
func (s *Scheduler) prune() {
	kept := s.timers[:0]
	for _, h := range s.timers {
		if h.active {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept
}

// CancelAll disarms every timer.
func (s *Scheduler) CancelAll() {
	for _, h := range s.timers {
		h.active = false
	}
	s.prune()
}

// Len returns the number of armed timers.
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.timers {
		if h.active {
			n++
		}
	}
	return n
}
