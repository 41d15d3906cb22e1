package gamedata

import "errors"

// RuneRegistry holds loaded rune definitions in menu order.
type RuneRegistry struct {
	byID map[string]*RuneDef
	all  []RuneDef
}

// NewRuneRegistry creates a registry from loaded rune definitions.
func NewRuneRegistry(runes []RuneDef) *RuneRegistry {
	registry := &RuneRegistry{
		byID: make(map[string]*RuneDef),
		all:  runes,
	}
	for i := range runes {
		registry.byID[runes[i].ID] = &runes[i]
	}
	return registry
}

// LoadRuneRegistry loads and creates a registry from the embedded runes.json.
func LoadRuneRegistry() (*RuneRegistry, error) {
	runes, err := LoadRunes()
	if err != nil {
		return nil, err
	}
	if len(runes) == 0 {
		return nil, errors.New("no runes loaded from runes.json")
	}
	return NewRuneRegistry(runes), nil
}

// GetByID returns the rune definition with the given ID, or nil if not found.
func (r *RuneRegistry) GetByID(id string) *RuneDef {
	return r.byID[id]
}

// At returns the rune at menu index i, wrapping in both directions.
// Returns nil for an empty registry.
func (r *RuneRegistry) At(i int) *RuneDef {
	n := len(r.all)
	if n == 0 {
		return nil
	}
	i %= n
	if i < 0 {
		i += n
	}
	return &r.all[i]
}

// IndexOf returns the menu index of id, or -1.
func (r *RuneRegistry) IndexOf(id string) int {
	for i := range r.all {
		if r.all[i].ID == id {
			return i
		}
	}
	return -1
}

// All returns all rune definitions.
func (r *RuneRegistry) All() []RuneDef {
	return r.all
}

// Count returns the number of runes in the registry.
func (r *RuneRegistry) Count() int {
	return len(r.all)
}
