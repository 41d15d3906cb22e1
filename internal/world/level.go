package world

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/windrider/internal/physics"
	"github.com/samdwyer/windrider/internal/telemetry"
)

const (
	// Default level dimensions, in cells.
	DefaultWidth  = 160
	DefaultHeight = 40

	// CellSize is the edge of one cell in world units.
	CellSize = 50.0

	// laneDepth is the half extent of terrain along Y; the level is played
	// in the XZ plane.
	laneDepth = 4 * CellSize

	minPlatformWidth = 6
	maxPlatformWidth = 16
	minGapWidth      = 3
	maxGapWidth      = 6
	startTop         = 4

	tunnelChance    = 2 // one in tunnelChance gaps gets a tunnel
	temporaryChance = 3 // one in temporaryChance tunnels is temporary
	towerChance     = 5 // one in towerChance platforms is a tower
	tunnelPush      = 10.0
	tunnelCeiling   = 0.75 // fraction of the level height
)

// Level is a side-on terrain strip with wind tunnels.
type Level struct {
	Width     int   // columns
	Height    int   // rows
	Tops      []int // solid rows per column, at least 1
	Platforms []Platform
	Tunnels   []*WindTunnel
	Geometry  *physics.Geometry
	Spawn     mgl64.Vec3

	// TunnelPush is the per-frame offset of generated tunnels.
	TunnelPush float64
	// TemporaryLifespan is the lifespan given to generated temporary tunnels.
	TemporaryLifespan time.Duration

	rng *rand.Rand
}

// NewLevel creates an empty level. The rng drives generation so a seed
// reproduces the same terrain.
func NewLevel(width, height int, rng *rand.Rand) *Level {
	return &Level{
		Width:             width,
		Height:            height,
		Tops:              make([]int, width),
		Geometry:          &physics.Geometry{},
		TunnelPush:        tunnelPush,
		TemporaryLifespan: TemporaryLifespan,
		rng:               rng,
	}
}

// Generate lays out platforms, gaps and wind tunnels.
func (l *Level) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	l.layoutColumns()
	l.buildGeometry()
	l.placeSpawn()

	span.SetAttributes(
		attribute.Int("level.width", l.Width),
		attribute.Int("level.height", l.Height),
		attribute.Int("level.platform_count", len(l.Platforms)),
		attribute.Int("level.tunnel_count", len(l.Tunnels)),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// layoutColumns walks left to right alternating platforms and gaps.
func (l *Level) layoutColumns() {
	maxTop := l.Height / 2
	tallTop := int(float64(l.Height) * 0.6)
	top := min(startTop, maxTop)

	col := 0
	first := true
	for col < l.Width {
		width := minPlatformWidth + l.rng.Intn(maxPlatformWidth-minPlatformWidth+1)
		if col+width > l.Width {
			width = l.Width - col
		}
		if !first {
			top = max(2, min(top+l.rng.Intn(8)-3, maxTop))
		}
		platformTop := top
		if !first && l.rng.Intn(towerChance) == 0 {
			platformTop = max(top, tallTop)
		}

		p := Platform{X: col, Width: width, Top: platformTop}
		l.Platforms = append(l.Platforms, p)
		for c := p.X; c < p.End(); c++ {
			l.Tops[c] = platformTop
		}
		col = p.End()
		first = false

		if col >= l.Width {
			break
		}

		gap := minGapWidth + l.rng.Intn(maxGapWidth-minGapWidth+1)
		if col+gap > l.Width {
			gap = l.Width - col
		}
		for c := col; c < col+gap; c++ {
			l.Tops[c] = 1
		}
		if l.rng.Intn(tunnelChance) == 0 {
			l.addGapTunnel(col, gap)
		}
		col += gap
	}
}

func (l *Level) addGapTunnel(col, width int) {
	ceiling := math.Max(2, float64(l.Height)*tunnelCeiling) * CellSize
	volume := physics.NewBox(
		mgl64.Vec3{float64(col) * CellSize, -laneDepth, CellSize},
		mgl64.Vec3{float64(col+width) * CellSize, laneDepth, ceiling},
	)
	t := NewWindTunnel(volume, mgl64.Vec3{0, 0, 1}, l.TunnelPush)
	if l.rng.Intn(temporaryChance) == 0 {
		t.Lifespan = l.TemporaryLifespan
	}
	l.Tunnels = append(l.Tunnels, t)
}

// buildGeometry emits one box per platform, one per gap floor, and walls at
// both ends.
func (l *Level) buildGeometry() {
	col := 0
	for col < l.Width {
		start, top := col, l.Tops[col]
		for col < l.Width && l.Tops[col] == top {
			col++
		}
		l.Geometry.Add(physics.NewBox(
			mgl64.Vec3{float64(start) * CellSize, -laneDepth, 0},
			mgl64.Vec3{float64(col) * CellSize, laneDepth, float64(top) * CellSize},
		))
	}

	wallTop := float64(l.Height) * CellSize * 4
	l.Geometry.Add(physics.NewBox(
		mgl64.Vec3{-CellSize, -laneDepth, 0},
		mgl64.Vec3{0, laneDepth, wallTop},
	))
	l.Geometry.Add(physics.NewBox(
		mgl64.Vec3{float64(l.Width) * CellSize, -laneDepth, 0},
		mgl64.Vec3{float64(l.Width+1) * CellSize, laneDepth, wallTop},
	))
}

func (l *Level) placeSpawn() {
	if len(l.Platforms) == 0 {
		l.Spawn = mgl64.Vec3{CellSize / 2, 0, CellSize}
		return
	}
	p := l.Platforms[0]
	l.Spawn = mgl64.Vec3{(float64(p.Center()) + 0.5) * CellSize, 0, float64(p.Top) * CellSize}
}

// SurfaceAt returns the terrain top in world units under x.
func (l *Level) SurfaceAt(x float64) float64 {
	col := int(math.Floor(x / CellSize))
	if col < 0 || col >= l.Width {
		return 0
	}
	return float64(l.Tops[col]) * CellSize
}

// TileAt returns the tile at column col and row (0 is the bottom row).
func (l *Level) TileAt(col, row int) Tile {
	if col < 0 || col >= l.Width || row < 0 {
		return TileGround
	}
	top := l.Tops[col]
	switch {
	case row < top-1:
		return TileGround
	case row == top-1:
		return TileSurface
	}
	center := mgl64.Vec3{(float64(col) + 0.5) * CellSize, 0, (float64(row) + 0.5) * CellSize}
	for _, t := range l.Tunnels {
		if t.Volume.Contains(center) {
			return TileWind
		}
	}
	return TileAir
}

// AddTunnel places a tunnel in the level.
func (l *Level) AddTunnel(t *WindTunnel) {
	l.Tunnels = append(l.Tunnels, t)
}

// UpdateOverlaps compares every registered actor against every tunnel volume
// and reports enters and exits to the tunnels.
func (l *Level) UpdateOverlaps(reg *Registry) {
	for _, t := range l.Tunnels {
		reg.Each(func(a Actor) {
			inside := t.Volume.Overlaps(a.Bounds())
			switch {
			case inside && !t.Contains(a.ID()):
				t.OnEntityEnter(a.ID())
			case !inside && t.Contains(a.ID()):
				t.OnEntityExit(a.ID())
			}
		})
		t.pruneMissing(reg)
	}
}

// TickTunnels advances every tunnel and drops the expired ones.
func (l *Level) TickTunnels(dt time.Duration, reg *Registry) {
	live := l.Tunnels[:0]
	for _, t := range l.Tunnels {
		t.Tick(dt, reg)
		if !t.Expired() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(l.Tunnels); i++ {
		l.Tunnels[i] = nil
	}
	l.Tunnels = live
}
