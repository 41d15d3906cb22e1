package locomotion

// Event is a discrete request fed to the state machine.
type Event int

const (
	// EventSpawned fires once stamina is initialised.
	EventSpawned Event = iota
	EventSprintStart
	EventSprintStop
	// EventSprintHeld fires every frame the sprint input stays down.
	EventSprintHeld
	EventJumpStart
	EventJumpStop
	// EventLanded is reported by the motion integrator on touchdown.
	EventLanded
	// EventStaminaDepleted is raised by the drain timer.
	EventStaminaDepleted
	// EventStaminaFull is raised by the recover timer.
	EventStaminaFull
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventSpawned:
		return "spawned"
	case EventSprintStart:
		return "sprint_start"
	case EventSprintStop:
		return "sprint_stop"
	case EventSprintHeld:
		return "sprint_held"
	case EventJumpStart:
		return "jump_start"
	case EventJumpStop:
		return "jump_stop"
	case EventLanded:
		return "landed"
	case EventStaminaDepleted:
		return "stamina_depleted"
	case EventStaminaFull:
		return "stamina_full"
	default:
		return "unknown"
	}
}

// Guards are the observations a decision depends on, sampled by the caller
// before calling Decide.
type Guards struct {
	Airborne       bool // motion integrator is not grounded
	MoveIntentZero bool // no movement input this frame
	GlideClear     bool // ground-clearance ray found nothing below
	StaminaEmpty   bool // current stamina <= 0
	StaminaFull    bool // current stamina >= max
}

// Input is everything Decide needs.
type Input struct {
	Current  State
	Previous State
	Event    Event
	Guards   Guards
}
