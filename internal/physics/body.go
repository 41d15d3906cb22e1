package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

const (
	// supportProbe is how far below the feet a grounded body looks for a floor.
	supportProbe = 2.0

	defaultGravity      = 980.0
	defaultAcceleration = 2048.0
	defaultBraking      = 2048.0
	defaultFlyingDrag   = 4.0
	defaultHalfWidth    = 34.0
	defaultHeight       = 176.0
)

// Body is a character movement integrator. Position is the feet point.
type Body struct {
	ID       uuid.UUID
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	HalfWidth float64
	Height    float64

	MaxSpeed     float64
	AirControl   float64
	Gravity      float64
	Acceleration float64
	Braking      float64
	FlyingDrag   float64 // vertical damping per second while flying

	// OnLanded is called once when an airborne body touches down.
	OnLanded func()

	mode     Mode
	settling bool // forced grounded from the air, landing not yet reported
	intent   mgl64.Vec2
	accel    mgl64.Vec3
}

// NewBody creates a grounded body at pos with default movement settings.
func NewBody(id uuid.UUID, pos mgl64.Vec3) *Body {
	return &Body{
		ID:           id,
		Position:     pos,
		HalfWidth:    defaultHalfWidth,
		Height:       defaultHeight,
		MaxSpeed:     500,
		AirControl:   0.35,
		Gravity:      defaultGravity,
		Acceleration: defaultAcceleration,
		Braking:      defaultBraking,
		FlyingDrag:   defaultFlyingDrag,
		mode:         ModeGrounded,
	}
}

// SetMaxSpeed caps horizontal speed.
func (b *Body) SetMaxSpeed(speed float64) { b.MaxSpeed = speed }

// SetAirControl sets the fraction of ground acceleration available in the air.
func (b *Body) SetAirControl(control float64) { b.AirControl = control }

// SetMode switches the support mode. Forcing grounded from the air is
// resolved on the next step: the body either settles onto a floor within the
// support probe and reports OnLanded, or falls and lands normally.
func (b *Body) SetMode(m Mode) {
	if m == ModeFlying && b.mode != ModeFlying {
		b.Velocity[2] = 0
	}
	b.settling = m == ModeGrounded && b.mode != ModeGrounded
	b.mode = m
}

// Mode returns the current support mode.
func (b *Body) Mode() Mode { return b.mode }

// IsAirborne returns true unless the body is grounded.
func (b *Body) IsAirborne() bool { return b.mode != ModeGrounded }

// ApplyImpulse adds a one-shot velocity change. An upward impulse lifts a
// grounded body off the floor.
func (b *Body) ApplyImpulse(v mgl64.Vec3) {
	b.Velocity = b.Velocity.Add(v)
	if v[2] > 0 && b.mode == ModeGrounded {
		b.mode = ModeFalling
	}
}

// AddWorldOffset teleports the body by v without sweeping.
func (b *Body) AddWorldOffset(v mgl64.Vec3) {
	b.Position = b.Position.Add(v)
}

// SetMoveIntent sets the desired horizontal direction, each axis in [-1, 1].
func (b *Body) SetMoveIntent(v mgl64.Vec2) {
	b.intent = mgl64.Vec2{clamp(v[0], -1, 1), clamp(v[1], -1, 1)}
}

// MoveIntent returns the desired horizontal direction.
func (b *Body) MoveIntent() mgl64.Vec2 { return b.intent }

// CurrentAcceleration returns the acceleration applied during the last step.
func (b *Body) CurrentAcceleration() mgl64.Vec3 { return b.accel }

// Bounds returns the body's collision box.
func (b *Body) Bounds() Box {
	return b.boundsAt(b.Position)
}

func (b *Body) boundsAt(p mgl64.Vec3) Box {
	return Box{
		Min:   mgl64.Vec3{p[0] - b.HalfWidth, p[1] - b.HalfWidth, p[2]},
		Max:   mgl64.Vec3{p[0] + b.HalfWidth, p[1] + b.HalfWidth, p[2] + b.Height},
		Owner: b.ID,
	}
}

// Step integrates the body over dt seconds against the geometry.
func (b *Body) Step(dt float64, g *Geometry) {
	if dt <= 0 {
		return
	}
	b.integrateHorizontal(dt)

	switch b.mode {
	case ModeFalling:
		b.Velocity[2] -= b.Gravity * dt
	case ModeFlying:
		b.Velocity[2] -= b.Velocity[2] * math.Min(1, b.FlyingDrag*dt)
	case ModeGrounded:
		b.Velocity[2] = 0
	}

	b.moveAxis(0, dt, g)
	b.moveAxis(1, dt, g)
	b.moveVertical(dt, g)

	if b.mode == ModeGrounded && g != nil {
		hit, ok := g.Raycast(b.Position, Down, supportProbe, b.ID)
		switch {
		case !ok:
			b.mode = ModeFalling
		case b.settling:
			b.Position[2] = hit.Point[2]
			b.settling = false
			b.land()
		}
	}
	if b.mode != ModeGrounded {
		b.settling = false
	}
}

func (b *Body) land() {
	if b.OnLanded != nil {
		b.OnLanded()
	}
}

func (b *Body) integrateHorizontal(dt float64) {
	desired := mgl64.Vec3{b.intent[0] * b.MaxSpeed, b.intent[1] * b.MaxSpeed, 0}
	current := mgl64.Vec3{b.Velocity[0], b.Velocity[1], 0}

	rate := b.Acceleration
	if b.intent.Len() == 0 {
		rate = b.Braking
	}
	if b.mode != ModeGrounded {
		rate *= b.AirControl
	}

	delta := desired.Sub(current)
	maxDelta := rate * dt
	if l := delta.Len(); l > maxDelta && l > 0 {
		delta = delta.Mul(maxDelta / l)
	}
	b.accel = delta.Mul(1 / dt)
	if b.intent.Len() == 0 {
		b.accel = mgl64.Vec3{}
	}

	current = current.Add(delta)
	if speed := current.Len(); speed > b.MaxSpeed && speed > 0 {
		current = current.Mul(b.MaxSpeed / speed)
	}
	b.Velocity[0], b.Velocity[1] = current[0], current[1]
}

func (b *Body) moveAxis(axis int, dt float64, g *Geometry) {
	step := b.Velocity[axis] * dt
	if step == 0 {
		return
	}
	next := b.Position
	next[axis] += step
	if _, blocked := g.Blocked(b.boundsAt(next), b.ID); blocked {
		b.Velocity[axis] = 0
		return
	}
	b.Position = next
}

func (b *Body) moveVertical(dt float64, g *Geometry) {
	step := b.Velocity[2] * dt
	if step == 0 {
		return
	}
	next := b.Position
	next[2] += step
	hit, blocked := g.Blocked(b.boundsAt(next), b.ID)
	if !blocked {
		b.Position = next
		return
	}

	if step < 0 {
		b.Position[2] = hit.Max[2]
		b.Velocity[2] = 0
		if b.mode != ModeGrounded {
			b.mode = ModeGrounded
			b.land()
		}
		return
	}

	b.Position[2] = math.Min(b.Position[2], hit.Min[2]-b.Height)
	b.Velocity[2] = 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
