// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying runs the simulation and routes input to the player.
	StatePlaying State = iota
	// StateRuneMenu pauses the simulation while the rune wheel is open.
	StateRuneMenu
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateRuneMenu:
		return "rune_menu"
	default:
		return "unknown"
	}
}
