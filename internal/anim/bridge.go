// Package anim exposes per-frame animation inputs derived from a character.
package anim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/windrider/internal/world"
)

// moveThreshold is the ground speed above which the move blend plays.
const moveThreshold = 5.0

// Pawn is what the bridge reads from its owner.
type Pawn interface {
	Velocity() mgl64.Vec3
	Acceleration() mgl64.Vec3
	IsFalling() bool
	IsGliding() bool
	IsReadyToThrow() bool
}

// Snapshot is the set of values the animation graph consumes.
type Snapshot struct {
	GroundSpeed  float64
	AirSpeed     float64
	IsFalling    bool
	ShouldMove   bool
	IsGliding    bool
	ReadyToThrow bool
}

// Bridge recomputes a Snapshot for one owner each frame.
type Bridge struct {
	Owner    uuid.UUID
	snapshot Snapshot
}

// NewBridge creates a bridge for the actor registered under owner.
func NewBridge(owner uuid.UUID) *Bridge {
	return &Bridge{Owner: owner}
}

// Update resolves the owner and refreshes the snapshot. If the owner is gone
// or is not a pawn the previous snapshot is kept. Returns whether it updated.
func (b *Bridge) Update(reg *world.Registry) bool {
	a, ok := reg.Lookup(b.Owner)
	if !ok {
		return false
	}
	p, ok := a.(Pawn)
	if !ok {
		return false
	}
	b.snapshot = Compute(p)
	return true
}

// Snapshot returns the most recent values.
func (b *Bridge) Snapshot() Snapshot {
	return b.snapshot
}

// Compute derives a snapshot from a pawn.
func Compute(p Pawn) Snapshot {
	v := p.Velocity()
	ground := mgl64.Vec2{v[0], v[1]}.Len()
	falling := p.IsFalling()
	return Snapshot{
		GroundSpeed:  ground,
		AirSpeed:     v[2],
		IsFalling:    falling,
		ShouldMove:   !falling && ground > moveThreshold && p.Acceleration().Len() > 0,
		IsGliding:    p.IsGliding(),
		ReadyToThrow: p.IsReadyToThrow(),
	}
}

// Pose is the sprite pose a renderer draws for a snapshot.
type Pose int

const (
	PoseIdle Pose = iota
	PoseMove
	PoseJump
	PoseFall
	PoseGlide
	PoseThrow
)

// String returns the pose name.
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseMove:
		return "move"
	case PoseJump:
		return "jump"
	case PoseFall:
		return "fall"
	case PoseGlide:
		return "glide"
	case PoseThrow:
		return "throw"
	default:
		return "unknown"
	}
}

// Pose picks the pose for s. Airborne poses win over ground ones.
func (s Snapshot) Pose() Pose {
	switch {
	case s.IsGliding:
		return PoseGlide
	case s.IsFalling && s.AirSpeed > 0:
		return PoseJump
	case s.IsFalling:
		return PoseFall
	case s.ReadyToThrow:
		return PoseThrow
	case s.ShouldMove:
		return PoseMove
	default:
		return PoseIdle
	}
}
