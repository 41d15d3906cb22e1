package world

import (
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/windrider/internal/physics"
)

// TemporaryLifespan is how long a temporary tunnel lasts.
const TemporaryLifespan = 30 * time.Second

// WindTunnel lifts gliding riders inside its volume along its up axis.
type WindTunnel struct {
	ID     uuid.UUID
	Volume physics.Box
	Up     mgl64.Vec3 // unit length
	Push   float64    // world units per frame

	// Lifespan is zero for permanent tunnels.
	Lifespan time.Duration

	age       time.Duration
	occupants []uuid.UUID
}

// NewWindTunnel creates a permanent tunnel. A zero up vector defaults to
// world up.
func NewWindTunnel(volume physics.Box, up mgl64.Vec3, push float64) *WindTunnel {
	if up.Len() == 0 {
		up = mgl64.Vec3{0, 0, 1}
	}
	return &WindTunnel{
		ID:     uuid.New(),
		Volume: volume,
		Up:     up.Normalize(),
		Push:   push,
	}
}

// NewTemporaryWindTunnel creates a tunnel that expires after
// TemporaryLifespan.
func NewTemporaryWindTunnel(volume physics.Box, up mgl64.Vec3, push float64) *WindTunnel {
	t := NewWindTunnel(volume, up, push)
	t.Lifespan = TemporaryLifespan
	return t
}

// OnEntityEnter records an actor entering the volume.
func (t *WindTunnel) OnEntityEnter(id uuid.UUID) {
	if !t.Contains(id) {
		t.occupants = append(t.occupants, id)
	}
}

// OnEntityExit forgets an actor leaving the volume.
func (t *WindTunnel) OnEntityExit(id uuid.UUID) {
	if i := slices.Index(t.occupants, id); i >= 0 {
		t.occupants = slices.Delete(t.occupants, i, i+1)
	}
}

// Contains reports whether id is currently inside.
func (t *WindTunnel) Contains(id uuid.UUID) bool {
	return slices.Contains(t.occupants, id)
}

// Occupants returns the IDs currently inside, in entry order.
func (t *WindTunnel) Occupants() []uuid.UUID {
	return slices.Clone(t.occupants)
}

// Tick ages the tunnel and pushes every gliding occupant once. Occupants
// missing from the registry, or that cannot ride, are skipped.
func (t *WindTunnel) Tick(dt time.Duration, reg *Registry) {
	t.age += dt
	if t.Expired() {
		return
	}
	offset := t.Up.Mul(t.Push)
	for _, id := range t.occupants {
		a, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		r, ok := a.(Rider)
		if !ok || !r.IsGliding() {
			continue
		}
		r.AddWorldOffset(offset)
	}
}

// Expired reports whether a temporary tunnel has outlived its lifespan.
func (t *WindTunnel) Expired() bool {
	return t.Lifespan > 0 && t.age >= t.Lifespan
}

// Remaining returns the lifespan left, or zero for permanent tunnels.
func (t *WindTunnel) Remaining() time.Duration {
	if t.Lifespan == 0 {
		return 0
	}
	return max(0, t.Lifespan-t.age)
}

func (t *WindTunnel) pruneMissing(reg *Registry) {
	t.occupants = slices.DeleteFunc(t.occupants, func(id uuid.UUID) bool {
		_, ok := reg.Lookup(id)
		return !ok
	})
}
