package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Down is the world down axis. Z is up.
var Down = mgl64.Vec3{0, 0, -1}

// Box is an axis-aligned solid. Owner ties it to an entity so queries can
// exclude the entity's own collider; terrain uses uuid.Nil.
type Box struct {
	Min, Max mgl64.Vec3
	Owner    uuid.UUID
}

// NewBox creates a box spanning the two corners in any order.
func NewBox(a, b mgl64.Vec3) Box {
	return Box{
		Min: mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])},
		Max: mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])},
	}
}

// Contains returns true if p lies inside or on the box.
func (b Box) Contains(p mgl64.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Overlaps returns true if the interiors of the two boxes intersect.
// Touching faces do not count, so a body standing on a box does not overlap it.
func (b Box) Overlaps(o Box) bool {
	return b.Min[0] < o.Max[0] && b.Max[0] > o.Min[0] &&
		b.Min[1] < o.Max[1] && b.Max[1] > o.Min[1] &&
		b.Min[2] < o.Max[2] && b.Max[2] > o.Min[2]
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// intersectRay runs the slab test for a normalized direction and returns the
// entry distance along the ray, clamped to [0, maxDist].
func (b Box) intersectRay(origin, dir mgl64.Vec3, maxDist float64) (float64, bool) {
	tmin, tmax := 0.0, maxDist

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[i] - origin[i]) / dir[i]
		t2 := (b.Max[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// Hit describes a raycast result.
type Hit struct {
	Distance float64
	Point    mgl64.Vec3
	Box      int // index into Geometry.Boxes
	Owner    uuid.UUID
}

// Geometry is the static and dynamic collision set of a level.
type Geometry struct {
	Boxes []Box
}

// Add appends a box and returns its index.
func (g *Geometry) Add(b Box) int {
	g.Boxes = append(g.Boxes, b)
	return len(g.Boxes) - 1
}

// Raycast returns the closest box hit by the ray within maxDist.
// Boxes owned by ignore are skipped; pass uuid.Nil to include all terrain
// and skip nothing that belongs to an entity.
func (g *Geometry) Raycast(origin, dir mgl64.Vec3, maxDist float64, ignore uuid.UUID) (Hit, bool) {
	if g == nil || maxDist <= 0 || dir.Len() == 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	best := Hit{Distance: math.Inf(1), Box: -1}
	for i, b := range g.Boxes {
		if ignore != uuid.Nil && b.Owner == ignore {
			continue
		}
		d, ok := b.intersectRay(origin, dir, maxDist)
		if !ok || d >= best.Distance {
			continue
		}
		best = Hit{Distance: d, Box: i, Owner: b.Owner}
		if d == 0 {
			break // cannot get closer than the origin
		}
	}
	if best.Box < 0 {
		return Hit{}, false
	}
	best.Point = origin.Add(dir.Mul(best.Distance))
	return best, true
}

// ClearanceBelow reports whether nothing lies within dist straight below pos,
// ignoring boxes owned by self. This decides glide eligibility.
func (g *Geometry) ClearanceBelow(pos mgl64.Vec3, dist float64, self uuid.UUID) bool {
	_, hit := g.Raycast(pos, Down, dist, self)
	return !hit
}

// Blocked returns the first solid not owned by self that overlaps b.
func (g *Geometry) Blocked(b Box, self uuid.UUID) (Box, bool) {
	if g == nil {
		return Box{}, false
	}
	for _, o := range g.Boxes {
		if self != uuid.Nil && o.Owner == self {
			continue
		}
		if b.Overlaps(o) {
			return o, true
		}
	}
	return Box{}, false
}
