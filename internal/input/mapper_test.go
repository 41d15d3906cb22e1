package input

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func kinds(actions []Action) []Kind {
	out := make([]Kind, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Kind)
	}
	return out
}

func TestMapperKeyBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []Action
	}{
		{"right arrow", key(tcell.KeyRight), []Action{{Kind: ActionMoveAxis, X: 1}}},
		{"a", runeKey('a'), []Action{{Kind: ActionMoveAxis, X: -1}}},
		{"w", runeKey('w'), []Action{{Kind: ActionMoveAxis, Y: 1}}},
		{"look left", runeKey('j'), []Action{{Kind: ActionLookAxis, X: -1}}},
		{"look up", runeKey('i'), []Action{{Kind: ActionLookAxis, Y: 1}}},
		{"space", runeKey(' '), []Action{{Kind: ActionJumpGlideStart}}},
		{"tab", key(tcell.KeyTab), []Action{{Kind: ActionSprintStart}}},
		{"rune menu", runeKey('e'), []Action{{Kind: ActionOpenRuneMenu}}},
		{"throw", runeKey('t'), []Action{{Kind: ActionThrow}}},
		{"escape", key(tcell.KeyEscape), []Action{{Kind: ActionQuit}}},
		{"ctrl-c", key(tcell.KeyCtrlC), []Action{{Kind: ActionQuit}}},
		{"unbound", runeKey('z'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper()
			if got := m.HandleKey(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HandleKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapperMoveReleasesAfterHoldWindow(t *testing.T) {
	m := NewMapper()

	m.HandleKey(key(tcell.KeyRight))
	if got := m.Tick(DefaultHoldWindow / 2); len(got) != 0 {
		t.Errorf("Tick() inside window = %v, want nothing", got)
	}

	// An auto-repeat extends the hold.
	m.HandleKey(key(tcell.KeyRight))
	if got := m.Tick(DefaultHoldWindow * 3 / 4); len(got) != 0 {
		t.Errorf("Tick() after repeat = %v, want nothing", got)
	}

	got := m.Tick(DefaultHoldWindow)
	want := []Action{{Kind: ActionMoveAxis}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tick() after window = %v, want %v", got, want)
	}
	if got := m.Tick(DefaultHoldWindow); len(got) != 0 {
		t.Errorf("second release = %v, want nothing", got)
	}
}

func TestMapperCombinesAxesWhileHeld(t *testing.T) {
	m := NewMapper()

	m.HandleKey(key(tcell.KeyRight))
	got := m.HandleKey(key(tcell.KeyUp))
	want := []Action{{Kind: ActionMoveAxis, X: 1, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HandleKey(up) while right held = %v, want %v", got, want)
	}

	got = m.HandleKey(key(tcell.KeyLeft))
	want = []Action{{Kind: ActionMoveAxis, X: -1, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HandleKey(left) = %v, want %v", got, want)
	}

	m.Tick(DefaultHoldWindow)
	got = m.HandleKey(key(tcell.KeyUp))
	want = []Action{{Kind: ActionMoveAxis, Y: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HandleKey(up) after release = %v, want %v", got, want)
	}
}

func TestMapperJumpRepeatDoesNotRestart(t *testing.T) {
	m := NewMapper()

	if got := kinds(m.HandleKey(runeKey(' '))); !reflect.DeepEqual(got, []Kind{ActionJumpGlideStart}) {
		t.Fatalf("first press = %v, want jump start", got)
	}
	if got := m.HandleKey(runeKey(' ')); got != nil {
		t.Errorf("repeat press = %v, want nothing", got)
	}

	if got := kinds(m.Tick(DefaultHoldWindow)); !reflect.DeepEqual(got, []Kind{ActionJumpGlideStop}) {
		t.Errorf("Tick() after window = %v, want jump stop", got)
	}
	if got := kinds(m.HandleKey(runeKey(' '))); !reflect.DeepEqual(got, []Kind{ActionJumpGlideStart}) {
		t.Errorf("press after release = %v, want jump start", got)
	}
}

func TestMapperSprintToggle(t *testing.T) {
	m := NewMapper()

	if got := kinds(m.HandleKey(runeKey('r'))); !reflect.DeepEqual(got, []Kind{ActionSprintStart}) {
		t.Fatalf("toggle on = %v, want sprint start", got)
	}
	if !m.Sprinting() {
		t.Error("Sprinting() = false after toggle on")
	}
	for i := 0; i < 3; i++ {
		if got := kinds(m.Tick(time.Second / 60)); !reflect.DeepEqual(got, []Kind{ActionSprintHeld}) {
			t.Errorf("Tick() #%d = %v, want sprint held", i, got)
		}
	}

	if got := kinds(m.HandleKey(key(tcell.KeyTab))); !reflect.DeepEqual(got, []Kind{ActionSprintStop}) {
		t.Errorf("toggle off = %v, want sprint stop", got)
	}
	if got := m.Tick(time.Second / 60); len(got) != 0 {
		t.Errorf("Tick() with sprint off = %v, want nothing", got)
	}
}

func TestMapperMenuMode(t *testing.T) {
	m := NewMapper()
	m.MenuOpen = true

	tests := []struct {
		ev   *tcell.EventKey
		want Kind
	}{
		{key(tcell.KeyLeft), ActionMenuPrev},
		{key(tcell.KeyRight), ActionMenuNext},
		{runeKey('d'), ActionMenuNext},
		{key(tcell.KeyEnter), ActionMenuConfirm},
		{runeKey(' '), ActionMenuConfirm},
		{key(tcell.KeyEscape), ActionMenuCancel},
		{runeKey('e'), ActionMenuCancel},
	}

	for _, tt := range tests {
		got := m.HandleKey(tt.ev)
		if len(got) != 1 || got[0].Kind != tt.want {
			t.Errorf("HandleKey(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestMapperReset(t *testing.T) {
	m := NewMapper()
	m.HandleKey(key(tcell.KeyRight))
	m.HandleKey(runeKey(' '))
	m.HandleKey(runeKey('r'))

	got := kinds(m.Reset())
	want := []Kind{ActionMoveAxis, ActionJumpGlideStop, ActionSprintStop}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reset() = %v, want %v", got, want)
	}
	if got := m.Reset(); got != nil {
		t.Errorf("second Reset() = %v, want nothing", got)
	}
}
