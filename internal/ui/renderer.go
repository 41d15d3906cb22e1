package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/windrider/internal/anim"
	"github.com/samdwyer/windrider/internal/entity"
	"github.com/samdwyer/windrider/internal/locomotion"
	"github.com/samdwyer/windrider/internal/world"
)

const (
	hudRows    = 2
	gaugeWidth = 30
)

// View is everything drawn in one frame.
type View struct {
	Level    *world.Level
	Player   *entity.Player
	Registry *world.Registry
	Pose     anim.Pose
	Layout   *Layout
	Menu     *RuneSelection
	Look     [2]int // camera pan in cells
	Message  string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the level side-on around the player, then the HUD and the
// rune menu when open.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	if v.Level != nil && v.Player != nil {
		r.renderWorld(v)
		r.renderHUD(v)
	}
	if v.Menu != nil && v.Menu.IsOpen() {
		r.renderMenu(v.Menu)
	}
	if v.Message != "" {
		_, h := r.screen.Size()
		r.RenderMessage(v.Message, h-1)
	}

	r.screen.Show()
}

// camera returns the leftmost column and bottom row in view.
func (r *Renderer) camera(v View) (left, bottom, viewH int) {
	w, h := r.screen.Size()
	viewH = max(1, h-hudRows)
	pos := v.Player.Position()
	pc, pr := cellOf(pos[0]), cellOf(pos[2])
	left = pc - w/2 + v.Look[0]
	bottom = pr - viewH/3 + v.Look[1]
	return left, bottom, viewH
}

// screenY maps a level row to a screen row.
func screenY(row, bottom, viewH int) int {
	return hudRows + (viewH - 1) - (row - bottom)
}

func cellOf(units float64) int {
	return int(math.Floor(units / world.CellSize))
}

func (r *Renderer) renderWorld(v View) {
	w, _ := r.screen.Size()
	left, bottom, viewH := r.camera(v)

	for sy := hudRows; sy < hudRows+viewH; sy++ {
		row := bottom + (viewH - 1) - (sy - hudRows)
		for sx := 0; sx < w; sx++ {
			tile := v.Level.TileAt(left+sx, row)
			r.screen.SetContent(sx, sy, tile.Rune(), r.getTileStyle(tile))
		}
	}

	pos := v.Player.Position()
	px := cellOf(pos[0]) - left
	py := screenY(cellOf(pos[2]), bottom, viewH)
	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(px, py, r.playerGlyph(v), playerStyle)
}

// playerGlyph picks the character for the current pose.
func (r *Renderer) playerGlyph(v View) rune {
	switch v.Pose {
	case anim.PoseMove:
		if v.Player.Velocity()[0] < 0 {
			return '<'
		}
		return '>'
	case anim.PoseJump:
		return '^'
	case anim.PoseFall:
		return 'v'
	case anim.PoseGlide:
		return 'T'
	case anim.PoseThrow:
		return '!'
	default:
		return v.Player.Symbol
	}
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileGround:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileSurface:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case world.TileWind:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) renderHUD(v View) {
	p := v.Player
	runeName := "none"
	if p.ActiveRune != nil {
		runeName = p.ActiveRune.Name
	}
	status := fmt.Sprintf("%-10s stamina %3.0f%%  rune %s", p.Controller.State(), p.StaminaRatio()*100, runeName)
	if p.ReadyToThrow {
		status += " (ready)"
	}
	r.drawText(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	if v.Layout == nil || v.Layout.GaugeProgress() <= 0 {
		return
	}
	ratio, ok := v.Layout.Stamina(v.Registry)
	if !ok {
		return
	}
	r.renderGauge(ratio, v.Layout.GaugeProgress(), p.Controller.State() == locomotion.StateExhausted)
}

// renderGauge draws the stamina bar on the second HUD row. progress scales
// the drawn width while the gauge slides in or out.
func (r *Renderer) renderGauge(ratio, progress float64, exhausted bool) {
	width := int(math.Round(gaugeWidth * progress))
	filled := int(math.Round(float64(width) * ratio))

	color := tcell.ColorGreen
	switch {
	case exhausted:
		color = tcell.ColorRed
	case ratio < 0.3:
		color = tcell.ColorYellow
	}

	for i := 0; i < width; i++ {
		ch, style := '░', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		if i < filled {
			ch, style = '█', tcell.StyleDefault.Foreground(color)
		}
		r.screen.SetContent(i, 1, ch, style)
	}
}

func (r *Renderer) renderMenu(m *RuneSelection) {
	if m.Runes == nil || m.Runes.Count() == 0 {
		return
	}
	w, h := r.screen.Size()

	inner := len("Runes")
	for _, def := range m.Runes.All() {
		inner = max(inner, len(def.Name)+4)
	}
	boxW, boxH := inner+2, m.Runes.Count()+2
	x0, y0 := (w-boxW)/2, (h-boxH)/2

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			ch := ' '
			switch {
			case y == y0 || y == y0+boxH-1:
				ch = '-'
			case x == x0 || x == x0+boxW-1:
				ch = '|'
			}
			r.screen.SetContent(x, y, ch, border)
		}
	}
	r.drawText(x0+2, y0, "Runes", border.Bold(true))

	for i, def := range m.Runes.All() {
		style := tcell.StyleDefault.Foreground(def.GetColor())
		if i == m.Cursor() {
			style = style.Reverse(true)
		}
		line := fmt.Sprintf(" %c %s", def.GetGlyph(), def.Name)
		r.drawText(x0+1, y0+1+i, fmt.Sprintf("%-*s", inner, line), style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
