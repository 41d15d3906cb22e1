package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

const frame = 1.0 / 60.0

func TestBodyFallsAndLands(t *testing.T) {
	g := &Geometry{}
	g.Add(floorAt(0))

	b := NewBody(uuid.New(), mgl64.Vec3{0, 0, 300})
	landed := 0
	b.OnLanded = func() { landed++ }

	b.Step(frame, g)
	if b.Mode() != ModeFalling {
		t.Fatalf("Mode() = %v, want falling when unsupported", b.Mode())
	}

	for i := 0; i < 300 && b.IsAirborne(); i++ {
		b.Step(frame, g)
	}

	if b.IsAirborne() {
		t.Fatal("body never landed")
	}
	if landed != 1 {
		t.Errorf("OnLanded called %d times, want 1", landed)
	}
	if b.Position[2] != 0 {
		t.Errorf("Position.z = %v, want 0", b.Position[2])
	}
}

func TestBodyJumpImpulse(t *testing.T) {
	g := &Geometry{}
	g.Add(floorAt(0))

	b := NewBody(uuid.New(), mgl64.Vec3{0, 0, 0})
	b.Step(frame, g)
	if b.IsAirborne() {
		t.Fatal("body on floor reported airborne")
	}

	b.ApplyImpulse(mgl64.Vec3{0, 0, 600})
	if b.Mode() != ModeFalling {
		t.Errorf("Mode() after jump = %v, want falling", b.Mode())
	}

	b.Step(frame, g)
	if b.Position[2] <= 0 {
		t.Errorf("Position.z after jump step = %v, want > 0", b.Position[2])
	}
}

func TestBodyRespectsMaxSpeed(t *testing.T) {
	g := &Geometry{}
	g.Add(floorAt(0))

	b := NewBody(uuid.New(), mgl64.Vec3{0, 0, 0})
	b.SetMaxSpeed(1500)
	b.SetMoveIntent(mgl64.Vec2{1, 0})

	for i := 0; i < 120; i++ {
		b.Step(frame, g)
	}

	speed := mgl64.Vec2{b.Velocity[0], b.Velocity[1]}.Len()
	if speed > 1500+1e-6 {
		t.Errorf("speed = %v, want <= 1500", speed)
	}
	if speed < 1499 {
		t.Errorf("speed = %v, want to reach 1500", speed)
	}
	if b.CurrentAcceleration().Len() != 0 {
		t.Errorf("CurrentAcceleration() at top speed = %v, want 0", b.CurrentAcceleration())
	}
}

func TestBodyBlockedByWall(t *testing.T) {
	g := &Geometry{}
	g.Add(floorAt(0))
	g.Add(NewBox(mgl64.Vec3{100, -1000, 0}, mgl64.Vec3{200, 1000, 1000}))

	b := NewBody(uuid.New(), mgl64.Vec3{0, 0, 0})
	b.SetMoveIntent(mgl64.Vec2{1, 0})
	for i := 0; i < 120; i++ {
		b.Step(frame, g)
	}

	if b.Position[0]+b.HalfWidth > 100 {
		t.Errorf("body passed through wall: x = %v", b.Position[0])
	}
}

func TestFlyingIgnoresGravity(t *testing.T) {
	b := NewBody(uuid.New(), mgl64.Vec3{0, 0, 500})
	b.SetMode(ModeFlying)

	b.Step(frame, &Geometry{})
	if b.Position[2] != 500 {
		t.Errorf("flying body moved vertically without impulse: z = %v", b.Position[2])
	}

	b.ApplyImpulse(mgl64.Vec3{0, 0, -10})
	b.Step(frame, &Geometry{})
	if b.Position[2] >= 500 {
		t.Errorf("flying body ignored downward impulse: z = %v", b.Position[2])
	}
}

func TestSetMoveIntentClamps(t *testing.T) {
	b := NewBody(uuid.New(), mgl64.Vec3{})
	b.SetMoveIntent(mgl64.Vec2{3, -2})

	got := b.MoveIntent()
	if got[0] != 1 || got[1] != -1 {
		t.Errorf("MoveIntent() = %v, want [1 -1]", got)
	}
}

func TestForcedGroundedSettles(t *testing.T) {
	tests := []struct {
		name  string
		z     float64
		steps int
	}{
		{"floor within probe", 1, 1},
		{"touching floor", 0, 1},
		{"high above floor", 300, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Geometry{}
			g.Add(floorAt(0))

			b := NewBody(uuid.New(), mgl64.Vec3{0, 0, tt.z})
			b.SetMode(ModeFlying)
			b.Velocity[2] = -90
			landed := 0
			b.OnLanded = func() { landed++ }

			b.SetMode(ModeGrounded)
			for i := 0; i < tt.steps && landed == 0; i++ {
				b.Step(frame, g)
			}

			if landed != 1 {
				t.Fatalf("OnLanded called %d times, want 1", landed)
			}
			if b.Mode() != ModeGrounded {
				t.Errorf("Mode() = %v, want grounded", b.Mode())
			}
			if b.Position[2] != 0 {
				t.Errorf("Position.z = %v, want 0", b.Position[2])
			}

			b.Step(frame, g)
			if landed != 1 {
				t.Errorf("OnLanded called %d times after resting, want 1", landed)
			}
		})
	}
}

func TestSetModeGroundedWhileGroundedDoesNotLand(t *testing.T) {
	g := &Geometry{}
	g.Add(floorAt(0))

	b := NewBody(uuid.New(), mgl64.Vec3{0, 0, 0})
	landed := 0
	b.OnLanded = func() { landed++ }

	b.SetMode(ModeGrounded)
	b.Step(frame, g)
	if landed != 0 {
		t.Errorf("OnLanded called %d times, want 0", landed)
	}
}
