// Package physics provides character movement integration and collision queries.
package physics

// Mode is the support mode of a moving body.
type Mode int

const (
	// ModeGrounded means the body walks on a surface and ignores gravity.
	ModeGrounded Mode = iota
	// ModeFlying means the body floats; only impulses move it vertically.
	ModeFlying
	// ModeFalling means the body is airborne under gravity.
	ModeFalling
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeFlying:
		return "flying"
	case ModeFalling:
		return "falling"
	default:
		return "unknown"
	}
}
