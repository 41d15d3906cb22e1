// Package entity provides the player character.
package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/windrider/internal/gamedata"
	"github.com/samdwyer/windrider/internal/locomotion"
	"github.com/samdwyer/windrider/internal/physics"
)

// Player is the controllable character: a physics body driven by a
// locomotion controller, plus rune state.
type Player struct {
	Body       *physics.Body
	Controller *locomotion.Controller
	Symbol     rune // display symbol

	// ActiveRune is the rune chosen in the selection menu, nil for none.
	ActiveRune   *gamedata.RuneDef
	ReadyToThrow bool

	id       uuid.UUID
	geometry *physics.Geometry
}

// NewPlayer creates a player standing at spawn. The body becomes the
// controller's motion integrator and the player its ground probe; the other
// collaborators come from deps. Call Init once the presentation sink exists.
func NewPlayer(id uuid.UUID, spawn mgl64.Vec3, geometry *physics.Geometry, params locomotion.Params, deps locomotion.Deps) *Player {
	p := &Player{
		Body:     physics.NewBody(id, spawn),
		Symbol:   '@',
		id:       id,
		geometry: geometry,
	}
	deps.Motion = p.Body
	deps.Probe = p
	p.Controller = locomotion.NewController(params, deps)
	p.Body.OnLanded = p.Controller.Landed
	return p
}

// Init starts the locomotion state machine.
func (p *Player) Init() {
	p.Controller.Init()
}

// ID returns the player's registry ID.
func (p *Player) ID() uuid.UUID { return p.id }

// Bounds returns the player's collision box.
func (p *Player) Bounds() physics.Box { return p.Body.Bounds() }

// Position returns the feet position.
func (p *Player) Position() mgl64.Vec3 { return p.Body.Position }

// Move sets the planar move intent. Components are clamped to [-1, 1].
func (p *Player) Move(x, y float64) {
	p.Body.SetMoveIntent(mgl64.Vec2{x, y})
}

// SprintStart forwards the sprint press.
func (p *Player) SprintStart() { p.Controller.SprintStart() }

// SprintStop forwards the sprint release.
func (p *Player) SprintStop() { p.Controller.SprintStop() }

// SprintHeld reports the sprint input still held this frame.
func (p *Player) SprintHeld() {
	p.Controller.SprintHeld(p.Body.MoveIntent().Len() == 0)
}

// JumpGlideStart forwards the jump press.
func (p *Player) JumpGlideStart() { p.Controller.JumpGlideStart() }

// JumpGlideStop forwards the jump release.
func (p *Player) JumpGlideStop() { p.Controller.JumpGlideStop() }

// Update integrates the body over dt seconds. Landing is reported to the
// controller from inside the step.
func (p *Player) Update(dt float64) {
	p.Body.Step(dt, p.geometry)
}

// GlideClearance reports whether nothing but the player itself lies within
// dist below the feet.
func (p *Player) GlideClearance(dist float64) bool {
	return p.geometry.ClearanceBelow(p.Body.Position, dist, p.id)
}

// IsGliding reports whether the controller is in the gliding state.
func (p *Player) IsGliding() bool {
	return p.Controller.State() == locomotion.StateGliding
}

// AddWorldOffset teleports the body by v without sweeping.
func (p *Player) AddWorldOffset(v mgl64.Vec3) {
	p.Body.AddWorldOffset(v)
}

// Velocity returns the body velocity.
func (p *Player) Velocity() mgl64.Vec3 { return p.Body.Velocity }

// Acceleration returns the body's current input acceleration.
func (p *Player) Acceleration() mgl64.Vec3 { return p.Body.CurrentAcceleration() }

// IsFalling reports whether the body is in falling mode. Gliding is flying,
// not falling.
func (p *Player) IsFalling() bool { return p.Body.Mode() == physics.ModeFalling }

// IsReadyToThrow reports the throw-ready flag.
func (p *Player) IsReadyToThrow() bool { return p.ReadyToThrow }

// SetActiveRune selects a rune. Selecting a rune that cannot be thrown, or
// none, drops the throw-ready pose.
func (p *Player) SetActiveRune(def *gamedata.RuneDef) {
	p.ActiveRune = def
	if def == nil || !def.Throwable {
		p.ReadyToThrow = false
	}
}

// ToggleThrow raises or lowers a throwable rune. Returns the new flag.
func (p *Player) ToggleThrow() bool {
	if p.ActiveRune == nil || !p.ActiveRune.Throwable {
		p.ReadyToThrow = false
		return false
	}
	p.ReadyToThrow = !p.ReadyToThrow
	return p.ReadyToThrow
}

// StaminaRatio returns current stamina over max, in [0, 1].
func (p *Player) StaminaRatio() float64 {
	return p.Controller.Stamina().Ratio()
}
