package locomotion

import (
	"fmt"

	"github.com/samdwyer/windrider/internal/physics"
)

// Effect is a side effect requested by a decision. The controller applies
// effects in order; Decide never performs them.
type Effect interface {
	effect()
	String() string
}

// SetMaxSpeed caps ground speed.
type SetMaxSpeed struct{ Speed float64 }

// SetAirControl sets the airborne steering fraction.
type SetAirControl struct{ Control float64 }

// SetMode switches the motion integrator's support mode.
type SetMode struct{ Mode physics.Mode }

// ApplyJumpImpulse launches the body upward.
type ApplyJumpImpulse struct{}

// ArmDrain clears both stamina timers and arms the drain timer.
type ArmDrain struct{}

// ArmRecover clears both stamina timers and arms the recover timer.
type ArmRecover struct{}

// ClearStaminaTimers disarms drain and recover.
type ClearStaminaTimers struct{}

// ArmGlideGravity arms the repeating downward impulse used while gliding.
// Arming while already armed keeps the existing timer.
type ArmGlideGravity struct{}

// ClearGlideGravity disarms the glide impulse timer.
type ClearGlideGravity struct{}

// SetGaugeVisible shows or hides the stamina gauge.
type SetGaugeVisible struct{ Visible bool }

func (SetMaxSpeed) effect()        {}
func (SetAirControl) effect()      {}
func (SetMode) effect()            {}
func (ApplyJumpImpulse) effect()   {}
func (ArmDrain) effect()           {}
func (ArmRecover) effect()         {}
func (ClearStaminaTimers) effect() {}
func (ArmGlideGravity) effect()    {}
func (ClearGlideGravity) effect()  {}
func (SetGaugeVisible) effect()    {}

func (e SetMaxSpeed) String() string      { return fmt.Sprintf("max_speed=%g", e.Speed) }
func (e SetAirControl) String() string    { return fmt.Sprintf("air_control=%g", e.Control) }
func (e SetMode) String() string          { return "mode=" + e.Mode.String() }
func (ApplyJumpImpulse) String() string   { return "jump_impulse" }
func (ArmDrain) String() string           { return "arm_drain" }
func (ArmRecover) String() string         { return "arm_recover" }
func (ClearStaminaTimers) String() string { return "clear_stamina_timers" }
func (ArmGlideGravity) String() string    { return "arm_glide_gravity" }
func (ClearGlideGravity) String() string  { return "clear_glide_gravity" }
func (e SetGaugeVisible) String() string  { return fmt.Sprintf("gauge_visible=%t", e.Visible) }
