package locomotion

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/windrider/internal/clock"
	"github.com/samdwyer/windrider/internal/physics"
	"github.com/samdwyer/windrider/internal/telemetry"
)

// MotionIntegrator is the physical movement solver driven by the controller.
type MotionIntegrator interface {
	SetMaxSpeed(speed float64)
	SetAirControl(control float64)
	SetMode(m physics.Mode)
	ApplyImpulse(v mgl64.Vec3)
	IsAirborne() bool
}

// PresentationSink receives UI notifications.
type PresentationSink interface {
	SetGaugeVisible(visible bool)
}

// GroundProbe answers the ground-clearance check for glide entry.
type GroundProbe interface {
	GlideClearance(dist float64) bool
}

// Scheduler arms and clears repeating timers.
type Scheduler interface {
	Every(interval time.Duration, fn func()) clock.Handle
	Clear(h *clock.Handle)
}

// Deps are the controller's collaborators. Any of Motion, Sink and Probe may
// be nil; the matching effects then do nothing and glides are denied.
type Deps struct {
	Scheduler Scheduler
	Motion    MotionIntegrator
	Sink      PresentationSink
	Probe     GroundProbe
	Logger    *zap.Logger
}

// Controller owns one entity's locomotion state and stamina timers.
type Controller struct {
	params Params
	deps   Deps
	log    *zap.Logger
	tracer trace.Tracer

	state    State
	previous State
	stamina  *Stamina

	drain   clock.Handle
	recover clock.Handle
	glide   clock.Handle
}

// NewController creates a controller in StateUninitialized. Call Init once the
// owner is spawned.
func NewController(p Params, deps Deps) *Controller {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		params:  p,
		deps:    deps,
		log:     log.Named("locomotion"),
		tracer:  telemetry.Tracer("locomotion"),
		stamina: NewStamina(p.StaminaMax, p.DepletionAmount, p.DepletionRate),
	}
}

// Init fills stamina and drives the state to walking.
func (c *Controller) Init() {
	c.stamina.Refill()
	c.handle(EventSpawned, false)
}

// SprintStart handles the sprint input being pressed.
func (c *Controller) SprintStart() { c.handle(EventSprintStart, false) }

// SprintStop handles the sprint input being released.
func (c *Controller) SprintStop() { c.handle(EventSprintStop, false) }

// SprintHeld handles the per-frame sprint hold; sprinting without movement
// input falls back to walking.
func (c *Controller) SprintHeld(moveIntentZero bool) { c.handle(EventSprintHeld, moveIntentZero) }

// JumpGlideStart handles the jump/glide input: jump from the ground, open the
// glider in the air, fold it while gliding.
func (c *Controller) JumpGlideStart() { c.handle(EventJumpStart, false) }

// JumpGlideStop handles the jump/glide input being released. The glider stays
// open until the next press.
func (c *Controller) JumpGlideStop() { c.handle(EventJumpStop, false) }

// Landed is called by the motion integrator on touchdown.
func (c *Controller) Landed() { c.handle(EventLanded, false) }

// State returns the current locomotion state.
func (c *Controller) State() State { return c.state }

// Previous returns the state held before the last fall.
func (c *Controller) Previous() State { return c.previous }

// Stamina returns a copy of the stamina pool.
func (c *Controller) Stamina() Stamina { return *c.stamina }

// Params returns the tuning in use.
func (c *Controller) Params() Params { return c.params }

// DrainArmed reports whether the drain timer is armed.
func (c *Controller) DrainArmed() bool { return c.drain.Valid() }

// RecoverArmed reports whether the recover timer is armed.
func (c *Controller) RecoverArmed() bool { return c.recover.Valid() }

// GlideGravityArmed reports whether the glide impulse timer is armed.
func (c *Controller) GlideGravityArmed() bool { return c.glide.Valid() }

func (c *Controller) handle(ev Event, moveIntentZero bool) {
	d := Decide(c.params, Input{
		Current:  c.state,
		Previous: c.previous,
		Event:    ev,
		Guards:   c.guards(ev == EventJumpStart, moveIntentZero),
	})
	c.apply(ev, d)
}

func (c *Controller) guards(probe, moveIntentZero bool) Guards {
	g := Guards{
		MoveIntentZero: moveIntentZero,
		StaminaEmpty:   c.stamina.Empty(),
		StaminaFull:    c.stamina.Full(),
	}
	if c.deps.Motion != nil {
		g.Airborne = c.deps.Motion.IsAirborne()
	}
	// The ray is only cast when a glide could actually open.
	if probe && g.Airborne && c.deps.Probe != nil {
		g.GlideClear = c.deps.Probe.GlideClearance(c.params.GlideClearance)
	}
	return g
}

func (c *Controller) apply(ev Event, d Decision) {
	from := c.state
	c.state = d.Next
	c.previous = d.Previous

	if d.Changed {
		c.log.Info("locomotion transition",
			zap.Stringer("from", from),
			zap.Stringer("to", d.Next),
			zap.Stringer("event", ev),
			zap.Float64("stamina", c.stamina.Current),
		)
		// Each transition is its own trace.
		_, span := c.tracer.Start(context.Background(), "locomotion.transition", trace.WithNewRoot())
		span.SetAttributes(
			attribute.String("locomotion.from", from.String()),
			attribute.String("locomotion.to", d.Next.String()),
			attribute.String("locomotion.event", ev.String()),
			attribute.Float64("locomotion.stamina", c.stamina.Current),
		)
		span.End()
	}

	for _, e := range d.Effects {
		c.perform(e)
	}
}

func (c *Controller) perform(e Effect) {
	m := c.deps.Motion

	switch e := e.(type) {
	case SetMaxSpeed:
		if m != nil {
			m.SetMaxSpeed(e.Speed)
		}
	case SetAirControl:
		if m != nil {
			m.SetAirControl(e.Control)
		}
	case SetMode:
		if m != nil {
			m.SetMode(e.Mode)
		}
	case ApplyJumpImpulse:
		if m != nil {
			m.ApplyImpulse(mgl64.Vec3{0, 0, c.params.JumpImpulse})
		}
	case ArmDrain:
		c.clearStaminaTimers()
		c.drain = c.every(c.params.DepletionRate, c.drainTick)
		c.setGaugeVisible(true)
	case ArmRecover:
		c.clearStaminaTimers()
		c.recover = c.every(c.params.DepletionRate, c.recoverTick)
	case ClearStaminaTimers:
		c.clearStaminaTimers()
	case ArmGlideGravity:
		if !c.glide.Valid() {
			c.glide = c.every(c.params.GlideInterval, c.glideTick)
		}
	case ClearGlideGravity:
		c.clear(&c.glide)
	case SetGaugeVisible:
		c.setGaugeVisible(e.Visible)
	}
}

func (c *Controller) drainTick() {
	if c.stamina.Drain() {
		c.handle(EventStaminaDepleted, false)
	}
}

func (c *Controller) recoverTick() {
	if c.stamina.Recover() {
		c.handle(EventStaminaFull, false)
	}
}

func (c *Controller) glideTick() {
	if c.deps.Motion != nil {
		c.deps.Motion.ApplyImpulse(mgl64.Vec3{0, 0, -c.params.GlideImpulse})
	}
}

func (c *Controller) every(interval time.Duration, fn func()) clock.Handle {
	if c.deps.Scheduler == nil {
		return 0
	}
	return c.deps.Scheduler.Every(interval, fn)
}

func (c *Controller) clear(h *clock.Handle) {
	if c.deps.Scheduler == nil {
		*h = 0
		return
	}
	c.deps.Scheduler.Clear(h)
}

func (c *Controller) clearStaminaTimers() {
	c.clear(&c.drain)
	c.clear(&c.recover)
}

func (c *Controller) setGaugeVisible(visible bool) {
	if c.deps.Sink != nil {
		c.deps.Sink.SetGaugeVisible(visible)
	}
}
