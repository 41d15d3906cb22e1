package locomotion

import "github.com/samdwyer/windrider/internal/physics"

// Decision is the outcome of feeding one event to the state machine.
type Decision struct {
	Next     State
	Previous State
	Effects  []Effect
	Changed  bool // Next differs from the input state
}

func (d *Decision) add(e ...Effect) {
	d.Effects = append(d.Effects, e...)
}

// Decide maps (state, event, guards) to the next state and the effects to
// apply. It has no side effects.
func Decide(p Params, in Input) Decision {
	d := Decision{Next: in.Current, Previous: in.Previous}
	g := in.Guards

	switch in.Event {
	case EventSpawned:
		if in.Current == StateUninitialized {
			d.enter(p, StateWalking, g)
		}

	case EventSprintStart:
		if in.Current == StateWalking || in.Current == StateUninitialized {
			d.enter(p, StateSprinting, g)
		}

	case EventSprintStop:
		if in.Current == StateSprinting {
			d.enter(p, StateWalking, g)
		}

	case EventSprintHeld:
		if in.Current == StateSprinting && g.MoveIntentZero {
			d.enter(p, StateWalking, g)
		}

	case EventJumpStart:
		decideJump(&d, p, in)

	case EventLanded:
		switch in.Current {
		case StateExhausted:
			d.add(ArmRecover{})
		case StateGliding:
			d.enter(p, StateWalking, g)
		case StateFalling:
			if in.Previous == StateSprinting {
				d.enter(p, StateSprinting, g)
			} else {
				d.enter(p, StateWalking, g)
			}
		}

	case EventStaminaDepleted:
		if in.Current != StateUninitialized {
			d.enter(p, StateExhausted, g)
		}

	case EventStaminaFull:
		if in.Current == StateExhausted {
			d.enter(p, StateWalking, g)
		} else {
			d.add(ClearStaminaTimers{}, SetGaugeVisible{Visible: false})
		}
	}

	return d
}

func decideJump(d *Decision, p Params, in Input) {
	g := in.Guards

	switch in.Current {
	case StateUninitialized, StateExhausted:
		return

	case StateGliding:
		// Second press folds the glider; no re-jump.
		d.Previous = StateGliding
		d.enter(p, StateFalling, g)
		d.add(
			SetAirControl{Control: p.GroundAirControl},
			SetMode{Mode: physics.ModeFalling},
			ClearStaminaTimers{},
		)
		return
	}

	if !g.Airborne {
		if in.Current == StateWalking || in.Current == StateSprinting {
			d.Previous = in.Current
			d.enter(p, StateFalling, g)
			d.add(ApplyJumpImpulse{})
		}
		return
	}

	// Airborne: try to open the glider.
	if g.GlideClear && !g.StaminaEmpty {
		d.enter(p, StateGliding, g)
	}
}

func (d *Decision) enter(p Params, to State, g Guards) {
	from := d.Next
	if from == to {
		return
	}
	d.Next = to
	d.Changed = true

	if from == StateGliding && to != StateSprinting {
		d.add(ClearGlideGravity{})
	}

	switch to {
	case StateWalking:
		d.add(
			SetMaxSpeed{Speed: p.WalkSpeed},
			SetAirControl{Control: p.GroundAirControl},
			SetMode{Mode: physics.ModeGrounded},
		)
		if g.StaminaFull {
			d.add(ClearStaminaTimers{}, SetGaugeVisible{Visible: false})
		} else {
			d.add(ArmRecover{})
		}

	case StateSprinting:
		d.add(
			SetMaxSpeed{Speed: p.SprintSpeed},
			SetAirControl{Control: p.GroundAirControl},
			ClearGlideGravity{},
			SetMode{Mode: physics.ModeGrounded},
			ArmDrain{},
		)

	case StateExhausted:
		d.add(
			SetMaxSpeed{Speed: p.ExhaustedSpeed},
			SetAirControl{Control: p.GroundAirControl},
			ClearStaminaTimers{},
		)
		if g.Airborne {
			d.add(SetMode{Mode: physics.ModeGrounded})
		} else {
			d.add(ArmRecover{})
		}

	case StateGliding:
		d.add(
			SetAirControl{Control: p.GlideAirControl},
			SetMode{Mode: physics.ModeFlying},
			ArmDrain{},
			ArmGlideGravity{},
		)
	}
}
