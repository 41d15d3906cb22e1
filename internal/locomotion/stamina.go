package locomotion

import (
	"math"
	"time"
)

// Stamina is a bounded resource drained and recovered in fixed ticks.
// Current always stays within [0, Max].
type Stamina struct {
	Current         float64
	Max             float64
	DepletionRate   time.Duration
	DepletionAmount float64
}

// NewStamina creates a full pool. A non-positive max is raised to 1.
func NewStamina(max, amount float64, rate time.Duration) *Stamina {
	if max <= 0 {
		max = 1
	}
	return &Stamina{
		Current:         max,
		Max:             max,
		DepletionRate:   rate,
		DepletionAmount: amount,
	}
}

// Drain removes one tick of stamina. It reports true when the pool is empty,
// either because it already was or because this tick emptied it.
func (s *Stamina) Drain() bool {
	if s.Current <= 0 {
		s.Current = 0
		return true
	}
	s.set(s.Current - s.DepletionAmount)
	return s.Current <= 0
}

// Recover adds one tick of stamina while below max. It reports true once the
// pool is full.
func (s *Stamina) Recover() bool {
	if s.Current < s.Max {
		s.set(s.Current + s.DepletionAmount)
	}
	return s.Full()
}

// Refill sets the pool to max.
func (s *Stamina) Refill() {
	s.Current = s.Max
}

// Empty reports whether no stamina is left.
func (s Stamina) Empty() bool {
	return s.Current <= 0
}

// Full reports whether the pool is at max.
func (s Stamina) Full() bool {
	return s.Current >= s.Max
}

// Ratio returns Current/Max in [0, 1].
func (s Stamina) Ratio() float64 {
	return s.Current / s.Max
}

func (s *Stamina) set(v float64) {
	s.Current = math.Max(0, math.Min(s.Max, v))
}
