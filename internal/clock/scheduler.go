// Package clock provides frame-driven game time and repeating timers.
package clock

import "time"

// maxCatchUp bounds how many times a single timer may fire during one Advance.
// A long stall (debugger, suspended terminal) must not replay minutes of ticks.
const maxCatchUp = 8

// Handle identifies an armed timer. The zero Handle is never armed.
type Handle uint64

// Valid reports whether the handle refers to a timer that was armed at some point.
func (h Handle) Valid() bool {
	return h != 0
}

type timer struct {
	id       Handle
	interval time.Duration
	next     time.Duration
	fn       func()
}

// Scheduler runs repeating callbacks against virtual game time.
// It is not safe for concurrent use; all calls happen on the game goroutine.
type Scheduler struct {
	now    time.Duration
	nextID Handle
	timers map[Handle]*timer
}

// NewScheduler creates a scheduler starting at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[Handle]*timer),
	}
}

// Now returns elapsed game time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every arms fn to run every interval, first firing one interval from now.
// Non-positive intervals are raised to one nanosecond.
func (s *Scheduler) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	s.nextID++
	t := &timer{
		id:       s.nextID,
		interval: interval,
		next:     s.now + interval,
		fn:       fn,
	}
	s.timers[t.id] = t
	return t.id
}

// Clear disarms the timer referenced by h and zeroes h.
// Clearing a nil, zero or already cleared handle is a no-op.
func (s *Scheduler) Clear(h *Handle) {
	if h == nil || *h == 0 {
		return
	}
	delete(s.timers, *h)
	*h = 0
}

// Armed reports whether h refers to a live timer.
func (s *Scheduler) Armed(h Handle) bool {
	_, ok := s.timers[h]
	return ok
}

// Len returns the number of armed timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Advance moves game time forward by dt, firing due timers in due order.
// Callbacks may arm and clear timers; a timer cleared by an earlier callback
// does not fire.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	fired := make(map[Handle]int)

	for {
		t := s.earliestDue(target, fired)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.interval
		fired[t.id]++
		t.fn()
	}

	s.now = target

	// Drop backlog for timers that hit the catch-up cap.
	for id, n := range fired {
		t, ok := s.timers[id]
		if ok && n >= maxCatchUp && t.next <= target {
			t.next = target + t.interval
		}
	}
}

// earliestDue returns the armed timer with the smallest due time not after
// target. Ties go to the timer armed first.
func (s *Scheduler) earliestDue(target time.Duration, fired map[Handle]int) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.next > target || fired[t.id] >= maxCatchUp {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.id < best.id) {
			best = t
		}
	}
	return best
}
