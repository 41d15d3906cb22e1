// Package locomotion implements the player's movement state machine and the
// stamina timers that gate sprinting and gliding.
package locomotion

// State is the player's locomotion state.
type State int

const (
	// StateUninitialized is held from spawn until stamina is set up.
	StateUninitialized State = iota
	// StateWalking moves on the ground at walk speed.
	StateWalking
	// StateSprinting moves on the ground at sprint speed and drains stamina.
	StateSprinting
	// StateExhausted is slowed; no sprint, jump or glide until stamina refills.
	StateExhausted
	// StateGliding floats down under a glider and drains stamina.
	StateGliding
	// StateFalling is airborne after a jump, a glide cancel or a ledge.
	StateFalling
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateWalking:
		return "walking"
	case StateSprinting:
		return "sprinting"
	case StateExhausted:
		return "exhausted"
	case StateGliding:
		return "gliding"
	case StateFalling:
		return "falling"
	default:
		return "unknown"
	}
}
