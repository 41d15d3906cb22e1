package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/samdwyer/windrider/internal/anim"
	"github.com/samdwyer/windrider/internal/entity"
	"github.com/samdwyer/windrider/internal/gamedata"
	"github.com/samdwyer/windrider/internal/locomotion"
	"github.com/samdwyer/windrider/internal/physics"
	"github.com/samdwyer/windrider/internal/world"
)

var _ locomotion.PresentationSink = (*Layout)(nil)

func testRunes() *gamedata.RuneRegistry {
	return gamedata.NewRuneRegistry([]gamedata.RuneDef{
		{ID: "remote_bomb", Name: "Remote Bomb", Glyph: "B", Color: "#3FA9F5", Throwable: true},
		{ID: "magnesis", Name: "Magnesis", Glyph: "M", Color: "#E0479E"},
		{ID: "stasis", Name: "Stasis", Glyph: "S", Color: "#F5C242"},
	})
}

// flatLevel builds a level whose columns are all two cells tall.
func flatLevel(width int) *world.Level {
	l := world.NewLevel(width, 10, rand.New(rand.NewSource(1)))
	for i := range l.Tops {
		l.Tops[i] = 2
	}
	l.Geometry.Add(physics.NewBox(
		mgl64.Vec3{0, -200, 0},
		mgl64.Vec3{float64(width) * world.CellSize, 200, 2 * world.CellSize},
	))
	return l
}

func testPlayer(l *world.Level, sink locomotion.PresentationSink) *entity.Player {
	spawn := mgl64.Vec3{5.5 * world.CellSize, 0, 2 * world.CellSize}
	p := entity.NewPlayer(uuid.New(), spawn, l.Geometry, locomotion.DefaultParams(), locomotion.Deps{Sink: sink})
	p.Init()
	return p
}

func rowText(s *Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(s.GetContent(x, y))
	}
	return b.String()
}

func TestLayoutGaugeAnimation(t *testing.T) {
	l := NewLayout(nil)

	l.SetGaugeVisible(true)
	l.Update(DefaultGaugeAnim / 2)
	if got := l.GaugeProgress(); got != 0.5 {
		t.Errorf("GaugeProgress() halfway = %v, want 0.5", got)
	}
	l.Update(DefaultGaugeAnim)
	if got := l.GaugeProgress(); got != 1 {
		t.Errorf("GaugeProgress() shown = %v, want 1", got)
	}

	l.SetGaugeVisible(false)
	if l.GaugeVisible() {
		t.Error("GaugeVisible() = true after hide")
	}
	l.Update(time.Second)
	if got := l.GaugeProgress(); got != 0 {
		t.Errorf("GaugeProgress() hidden = %v, want 0", got)
	}
}

func TestLayoutStaminaLookup(t *testing.T) {
	lvl := flatLevel(20)
	layout := NewLayout(nil)
	p := testPlayer(lvl, layout)
	reg := world.NewRegistry()

	if _, ok := layout.Stamina(reg); ok {
		t.Error("Stamina() ok before ConstructDeferred")
	}

	layout.ConstructDeferred(p.ID())
	if _, ok := layout.Stamina(reg); ok {
		t.Error("Stamina() ok with owner missing from registry")
	}

	if err := reg.Add(p); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	ratio, ok := layout.Stamina(reg)
	if !ok || ratio != 1 {
		t.Errorf("Stamina() = %v, %v, want 1, true", ratio, ok)
	}
}

func TestLayoutReceivesControllerGaugeEffects(t *testing.T) {
	lvl := flatLevel(20)
	layout := NewLayout(nil)
	p := testPlayer(lvl, layout)

	p.SprintStart()
	if !layout.GaugeVisible() {
		t.Error("gauge hidden while sprinting")
	}
}

func TestRuneSelection(t *testing.T) {
	lvl := flatLevel(20)
	p := testPlayer(lvl, nil)
	reg := world.NewRegistry()
	runes := testRunes()
	menu := NewRuneSelection(p.ID(), runes)

	// Owner not registered yet: nothing happens.
	if menu.SelectRune(runes.GetByID("stasis"), reg) {
		t.Error("SelectRune() = true with no registered owner")
	}
	if p.ActiveRune != nil {
		t.Errorf("ActiveRune = %v, want nil", p.ActiveRune)
	}

	_ = reg.Add(p)
	if !menu.SelectRune(runes.GetByID("stasis"), reg) {
		t.Error("SelectRune() = false with registered owner")
	}
	if p.ActiveRune == nil || p.ActiveRune.ID != "stasis" {
		t.Errorf("ActiveRune = %v, want stasis", p.ActiveRune)
	}

	menu.Open(p.ActiveRune)
	if got := menu.Cursor(); got != 2 {
		t.Errorf("Cursor() after Open = %d, want 2", got)
	}
	menu.Next()
	if got := menu.Highlighted().ID; got != "remote_bomb" {
		t.Errorf("Highlighted() after wrap = %q, want remote_bomb", got)
	}
	menu.Prev()
	menu.Prev()
	if got := menu.Highlighted().ID; got != "magnesis" {
		t.Errorf("Highlighted() = %q, want magnesis", got)
	}

	if !menu.Confirm(reg) {
		t.Error("Confirm() = false")
	}
	if menu.IsOpen() {
		t.Error("menu still open after Confirm")
	}
	if p.ActiveRune.ID != "magnesis" {
		t.Errorf("ActiveRune = %q, want magnesis", p.ActiveRune.ID)
	}
}

func TestRendererDrawsWorldAndHUD(t *testing.T) {
	screen, err := NewSimulationScreen(40, 12)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error = %v", err)
	}
	defer screen.Close()

	lvl := flatLevel(20)
	layout := NewLayout(nil)
	p := testPlayer(lvl, layout)
	reg := world.NewRegistry()
	_ = reg.Add(p)
	layout.ConstructDeferred(p.ID())
	layout.SetGaugeVisible(true)
	layout.Update(DefaultGaugeAnim)

	r := NewRenderer(screen)
	r.Render(View{Level: lvl, Player: p, Registry: reg, Pose: anim.PoseIdle, Layout: layout})

	if hud := rowText(screen, 0); !strings.HasPrefix(hud, "walking") {
		t.Errorf("HUD = %q, want it to start with the state", hud)
	}

	// 40x12 screen: the view is 10 rows tall, the player stands in column 5
	// on row 2, so the camera puts it at (20, 8) with the surface below.
	if got := screen.GetContent(20, 8); got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	if got := screen.GetContent(20, 9); got != world.TileSurface.Rune() {
		t.Errorf("cell under player = %q, want surface", got)
	}

	if got := screen.GetContent(0, 1); got != '█' {
		t.Errorf("gauge start = %q, want filled", got)
	}
	if got := screen.GetContent(gaugeWidth-1, 1); got != '█' {
		t.Errorf("gauge end = %q, want filled at full stamina", got)
	}
	if got := screen.GetContent(gaugeWidth, 1); got != ' ' {
		t.Errorf("cell past gauge = %q, want blank", got)
	}
}

func TestRendererDrawsRuneMenu(t *testing.T) {
	screen, err := NewSimulationScreen(40, 12)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error = %v", err)
	}
	defer screen.Close()

	lvl := flatLevel(20)
	p := testPlayer(lvl, nil)
	menu := NewRuneSelection(p.ID(), testRunes())
	menu.Open(nil)

	NewRenderer(screen).Render(View{Level: lvl, Player: p, Pose: anim.PoseIdle, Menu: menu})

	var all strings.Builder
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		all.WriteString(rowText(screen, y))
		all.WriteByte('\n')
	}
	for _, want := range []string{"Runes", "B Remote Bomb", "M Magnesis", "S Stasis"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("screen missing %q:\n%s", want, all.String())
		}
	}
}

func TestPlayerGlyphFollowsPose(t *testing.T) {
	lvl := flatLevel(20)
	p := testPlayer(lvl, nil)
	r := &Renderer{}

	tests := []struct {
		pose anim.Pose
		want rune
	}{
		{anim.PoseIdle, '@'},
		{anim.PoseMove, '>'},
		{anim.PoseJump, '^'},
		{anim.PoseFall, 'v'},
		{anim.PoseGlide, 'T'},
		{anim.PoseThrow, '!'},
	}

	for _, tt := range tests {
		if got := r.playerGlyph(View{Player: p, Pose: tt.pose}); got != tt.want {
			t.Errorf("playerGlyph(%v) = %q, want %q", tt.pose, got, tt.want)
		}
	}
}
