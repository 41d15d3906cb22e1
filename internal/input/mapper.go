// Package input turns terminal key presses into game actions.
//
// Terminals report presses and auto-repeats but never releases. The mapper
// treats a key as held while presses keep arriving within a hold window and
// synthesizes the release once the window lapses.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHoldWindow covers the usual gap between terminal auto-repeats.
const DefaultHoldWindow = 200 * time.Millisecond

// Kind identifies an action.
type Kind int

const (
	ActionMoveAxis Kind = iota
	ActionLookAxis
	ActionSprintStart
	ActionSprintStop
	ActionSprintHeld
	ActionJumpGlideStart
	ActionJumpGlideStop
	ActionThrow
	ActionOpenRuneMenu
	ActionMenuPrev
	ActionMenuNext
	ActionMenuConfirm
	ActionMenuCancel
	ActionQuit
)

// String returns the action name.
func (k Kind) String() string {
	switch k {
	case ActionMoveAxis:
		return "move_axis"
	case ActionLookAxis:
		return "look_axis"
	case ActionSprintStart:
		return "sprint_start"
	case ActionSprintStop:
		return "sprint_stop"
	case ActionSprintHeld:
		return "sprint_held"
	case ActionJumpGlideStart:
		return "jump_glide_start"
	case ActionJumpGlideStop:
		return "jump_glide_stop"
	case ActionThrow:
		return "throw"
	case ActionOpenRuneMenu:
		return "open_rune_menu"
	case ActionMenuPrev:
		return "menu_prev"
	case ActionMenuNext:
		return "menu_next"
	case ActionMenuConfirm:
		return "menu_confirm"
	case ActionMenuCancel:
		return "menu_cancel"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is one input action. X and Y carry the axis value for
// ActionMoveAxis and ActionLookAxis.
type Action struct {
	Kind Kind
	X, Y float64
}

// held tracks one emulated key hold.
type held struct {
	active  bool
	expires time.Duration
}

// Mapper converts key events into actions. It is driven by virtual time
// through Tick so tests control the hold windows.
type Mapper struct {
	HoldWindow time.Duration

	// MenuOpen switches arrow keys and Enter/Escape to menu navigation.
	MenuOpen bool

	now       time.Duration
	moveX     float64
	moveY     float64
	move      held
	jump      held
	sprinting bool
}

// NewMapper creates a mapper with the default hold window.
func NewMapper() *Mapper {
	return &Mapper{HoldWindow: DefaultHoldWindow}
}

// Sprinting reports whether the sprint toggle is on.
func (m *Mapper) Sprinting() bool {
	return m.sprinting
}

// HandleKey maps a single key event. Repeats of a held key refresh the hold
// instead of producing new start actions.
func (m *Mapper) HandleKey(ev *tcell.EventKey) []Action {
	if ev.Key() == tcell.KeyCtrlC {
		return []Action{{Kind: ActionQuit}}
	}
	if m.MenuOpen {
		return m.handleMenuKey(ev)
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return []Action{{Kind: ActionQuit}}
	case tcell.KeyLeft:
		return m.pressMove(-1, 0)
	case tcell.KeyRight:
		return m.pressMove(1, 0)
	case tcell.KeyUp:
		return m.pressMove(0, 1)
	case tcell.KeyDown:
		return m.pressMove(0, -1)
	case tcell.KeyTab:
		return m.toggleSprint()
	case tcell.KeyRune:
		return m.handleRune(ev.Rune())
	}
	return nil
}

func (m *Mapper) handleRune(r rune) []Action {
	switch r {
	case 'a', 'A':
		return m.pressMove(-1, 0)
	case 'd', 'D':
		return m.pressMove(1, 0)
	case 'w', 'W':
		return m.pressMove(0, 1)
	case 's', 'S':
		return m.pressMove(0, -1)
	case 'j', 'J':
		return []Action{{Kind: ActionLookAxis, X: -1}}
	case 'l', 'L':
		return []Action{{Kind: ActionLookAxis, X: 1}}
	case 'i', 'I':
		return []Action{{Kind: ActionLookAxis, Y: 1}}
	case 'k', 'K':
		return []Action{{Kind: ActionLookAxis, Y: -1}}
	case ' ':
		return m.pressJump()
	case 'r', 'R':
		return m.toggleSprint()
	case 'e', 'E':
		return []Action{{Kind: ActionOpenRuneMenu}}
	case 't', 'T':
		return []Action{{Kind: ActionThrow}}
	case 'q', 'Q':
		return []Action{{Kind: ActionQuit}}
	}
	return nil
}

func (m *Mapper) handleMenuKey(ev *tcell.EventKey) []Action {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyUp:
		return []Action{{Kind: ActionMenuPrev}}
	case tcell.KeyRight, tcell.KeyDown:
		return []Action{{Kind: ActionMenuNext}}
	case tcell.KeyEnter:
		return []Action{{Kind: ActionMenuConfirm}}
	case tcell.KeyEscape:
		return []Action{{Kind: ActionMenuCancel}}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'w', 'W':
			return []Action{{Kind: ActionMenuPrev}}
		case 'd', 'D', 's', 'S':
			return []Action{{Kind: ActionMenuNext}}
		case ' ':
			return []Action{{Kind: ActionMenuConfirm}}
		case 'e', 'E', 'q', 'Q':
			return []Action{{Kind: ActionMenuCancel}}
		}
	}
	return nil
}

// pressMove sets the held axis. A new direction replaces the old one on the
// axes it names; the other axis keeps its value while the hold lasts.
func (m *Mapper) pressMove(x, y float64) []Action {
	if !m.move.active {
		m.moveX, m.moveY = 0, 0
	}
	if x != 0 {
		m.moveX = x
	}
	if y != 0 {
		m.moveY = y
	}
	m.move = held{active: true, expires: m.now + m.HoldWindow}
	return []Action{{Kind: ActionMoveAxis, X: m.moveX, Y: m.moveY}}
}

func (m *Mapper) pressJump() []Action {
	wasHeld := m.jump.active
	m.jump = held{active: true, expires: m.now + m.HoldWindow}
	if wasHeld {
		return nil
	}
	return []Action{{Kind: ActionJumpGlideStart}}
}

func (m *Mapper) toggleSprint() []Action {
	m.sprinting = !m.sprinting
	if m.sprinting {
		return []Action{{Kind: ActionSprintStart}}
	}
	return []Action{{Kind: ActionSprintStop}}
}

// Tick advances virtual time by dt and returns the synthesized releases,
// followed by SprintHeld while sprint is toggled on.
func (m *Mapper) Tick(dt time.Duration) []Action {
	m.now += dt

	var out []Action
	if m.move.active && m.now >= m.move.expires {
		m.move.active = false
		m.moveX, m.moveY = 0, 0
		out = append(out, Action{Kind: ActionMoveAxis})
	}
	if m.jump.active && m.now >= m.jump.expires {
		m.jump.active = false
		out = append(out, Action{Kind: ActionJumpGlideStop})
	}
	if m.sprinting && !m.MenuOpen {
		out = append(out, Action{Kind: ActionSprintHeld})
	}
	return out
}

// Reset releases every held key and turns sprint off, returning the
// matching release actions. Used when a menu takes focus.
func (m *Mapper) Reset() []Action {
	var out []Action
	if m.move.active {
		m.move.active = false
		m.moveX, m.moveY = 0, 0
		out = append(out, Action{Kind: ActionMoveAxis})
	}
	if m.jump.active {
		m.jump.active = false
		out = append(out, Action{Kind: ActionJumpGlideStop})
	}
	if m.sprinting {
		m.sprinting = false
		out = append(out, Action{Kind: ActionSprintStop})
	}
	return out
}
