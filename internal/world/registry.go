package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/windrider/internal/physics"
)

// Actor is anything placed in the world that other systems look up by ID.
type Actor interface {
	ID() uuid.UUID
	Bounds() physics.Box
}

// Rider is an actor a wind tunnel can lift.
type Rider interface {
	Actor
	IsGliding() bool
	AddWorldOffset(offset mgl64.Vec3)
}

// Registry maps IDs to actors. Holders of an ID never own the actor; they
// resolve it on use and treat a miss as "gone".
type Registry struct {
	actors map[uuid.UUID]Actor
	order  []uuid.UUID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actors: make(map[uuid.UUID]Actor)}
}

// Add registers an actor. The ID must be set and unused.
func (r *Registry) Add(a Actor) error {
	id := a.ID()
	if id == uuid.Nil {
		return errors.New("actor has no ID")
	}
	if _, ok := r.actors[id]; ok {
		return fmt.Errorf("actor %s already registered", id)
	}
	r.actors[id] = a
	r.order = append(r.order, id)
	return nil
}

// Remove unregisters an actor. Returns false if it was not registered.
func (r *Registry) Remove(id uuid.UUID) bool {
	if _, ok := r.actors[id]; !ok {
		return false
	}
	delete(r.actors, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the actor registered under id.
func (r *Registry) Lookup(id uuid.UUID) (Actor, bool) {
	if r == nil {
		return nil, false
	}
	a, ok := r.actors[id]
	return a, ok
}

// Each calls fn for every actor in registration order.
func (r *Registry) Each(fn func(Actor)) {
	if r == nil {
		return
	}
	for _, id := range r.order {
		fn(r.actors[id])
	}
}

// Len returns the number of registered actors.
func (r *Registry) Len() int {
	return len(r.order)
}
