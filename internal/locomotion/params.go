package locomotion

import "time"

// Params are the designer-tunable values the state machine works with.
type Params struct {
	WalkSpeed      float64
	SprintSpeed    float64
	ExhaustedSpeed float64

	GroundAirControl float64
	GlideAirControl  float64

	JumpImpulse float64 // upward velocity added on jump

	GlideImpulse   float64       // downward velocity added per glide tick
	GlideInterval  time.Duration // glide tick period, one frame by default
	GlideClearance float64       // ground-clearance ray length

	StaminaMax      float64
	DepletionAmount float64       // stamina per drain or recover tick
	DepletionRate   time.Duration // time between drain or recover ticks
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		WalkSpeed:        500,
		SprintSpeed:      1500,
		ExhaustedSpeed:   300,
		GroundAirControl: 0.35,
		GlideAirControl:  0.6,
		JumpImpulse:      620,
		GlideImpulse:     6,
		GlideInterval:    time.Second / 60,
		GlideClearance:   150,
		StaminaMax:       100,
		DepletionAmount:  1,
		DepletionRate:    100 * time.Millisecond,
	}
}
