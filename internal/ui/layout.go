package ui

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samdwyer/windrider/internal/world"
)

// DefaultGaugeAnim is how long the stamina gauge takes to slide in or out.
const DefaultGaugeAnim = 250 * time.Millisecond

// StaminaSource is an actor that exposes a stamina ratio for the gauge.
type StaminaSource interface {
	StaminaRatio() float64
}

// Layout is the HUD widget. It receives gauge notifications from the
// locomotion controller and animates the stamina gauge.
type Layout struct {
	AnimDuration time.Duration

	owner    uuid.UUID
	visible  bool
	progress float64 // 0 hidden, 1 fully shown
	log      *zap.Logger
}

// NewLayout creates a layout with the gauge hidden.
func NewLayout(log *zap.Logger) *Layout {
	if log == nil {
		log = zap.NewNop()
	}
	return &Layout{
		AnimDuration: DefaultGaugeAnim,
		log:          log.Named("layout"),
	}
}

// ConstructDeferred binds the layout to its owning actor once that actor
// exists.
func (l *Layout) ConstructDeferred(owner uuid.UUID) {
	l.owner = owner
	l.log.Debug("layout bound", zap.Stringer("owner", owner))
}

// Owner returns the bound actor ID, uuid.Nil before ConstructDeferred.
func (l *Layout) Owner() uuid.UUID { return l.owner }

// SetGaugeVisible starts the show or hide animation.
func (l *Layout) SetGaugeVisible(visible bool) {
	if l.visible == visible {
		return
	}
	l.visible = visible
	l.log.Debug("stamina gauge", zap.Bool("visible", visible))
}

// GaugeVisible reports the requested gauge visibility.
func (l *Layout) GaugeVisible() bool { return l.visible }

// GaugeProgress returns how far the gauge has slid in, in [0, 1].
func (l *Layout) GaugeProgress() float64 { return l.progress }

// Update advances the gauge animation.
func (l *Layout) Update(dt time.Duration) {
	step := 1.0
	if l.AnimDuration > 0 {
		step = float64(dt) / float64(l.AnimDuration)
	}
	if l.visible {
		l.progress = min(1, l.progress+step)
	} else {
		l.progress = max(0, l.progress-step)
	}
}

// Stamina resolves the owner and returns its stamina ratio. ok is false when
// the owner is unbound, gone or has no stamina.
func (l *Layout) Stamina(reg *world.Registry) (ratio float64, ok bool) {
	a, found := reg.Lookup(l.owner)
	if !found {
		return 0, false
	}
	s, isSource := a.(StaminaSource)
	if !isSource {
		return 0, false
	}
	return s.StaminaRatio(), true
}
