package ui

import (
	"github.com/google/uuid"

	"github.com/samdwyer/windrider/internal/gamedata"
	"github.com/samdwyer/windrider/internal/world"
)

// RuneHolder is an actor that can carry an active rune.
type RuneHolder interface {
	SetActiveRune(def *gamedata.RuneDef)
}

// RuneSelection is the rune wheel. It never owns the player; the selected
// rune is pushed to whichever actor is registered under Owner.
type RuneSelection struct {
	Owner uuid.UUID
	Runes *gamedata.RuneRegistry

	open   bool
	cursor int
}

// NewRuneSelection creates a closed menu over runes.
func NewRuneSelection(owner uuid.UUID, runes *gamedata.RuneRegistry) *RuneSelection {
	return &RuneSelection{Owner: owner, Runes: runes}
}

// IsOpen reports whether the menu is showing.
func (s *RuneSelection) IsOpen() bool { return s.open }

// Open shows the menu with the cursor on current, or the first rune.
func (s *RuneSelection) Open(current *gamedata.RuneDef) {
	s.open = true
	s.cursor = 0
	if current != nil && s.Runes != nil {
		if i := s.Runes.IndexOf(current.ID); i >= 0 {
			s.cursor = i
		}
	}
}

// Close hides the menu without selecting.
func (s *RuneSelection) Close() { s.open = false }

// Next moves the cursor forward, wrapping.
func (s *RuneSelection) Next() { s.move(1) }

// Prev moves the cursor back, wrapping.
func (s *RuneSelection) Prev() { s.move(-1) }

func (s *RuneSelection) move(delta int) {
	if s.Runes == nil || s.Runes.Count() == 0 {
		return
	}
	n := s.Runes.Count()
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Cursor returns the highlighted menu index.
func (s *RuneSelection) Cursor() int { return s.cursor }

// Highlighted returns the rune under the cursor, nil when there are none.
func (s *RuneSelection) Highlighted() *gamedata.RuneDef {
	if s.Runes == nil {
		return nil
	}
	return s.Runes.At(s.cursor)
}

// SelectRune sets def as the owner's active rune. It does nothing when the
// owner is not registered or cannot hold runes, and reports whether the rune
// was applied.
func (s *RuneSelection) SelectRune(def *gamedata.RuneDef, reg *world.Registry) bool {
	a, ok := reg.Lookup(s.Owner)
	if !ok {
		return false
	}
	h, ok := a.(RuneHolder)
	if !ok {
		return false
	}
	h.SetActiveRune(def)
	return true
}

// Confirm selects the highlighted rune and closes the menu.
func (s *RuneSelection) Confirm(reg *world.Registry) bool {
	applied := s.SelectRune(s.Highlighted(), reg)
	s.open = false
	return applied
}
