package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RuneDef defines a rune ability as loaded from JSON.
type RuneDef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Glyph     string `json:"glyph"`
	Color     string `json:"color"`
	Throwable bool   `json:"throwable"`
}

// RunesFile represents the structure of runes.json.
type RunesFile struct {
	Runes []RuneDef `json:"runes"`
}

// LoadRunes loads rune definitions from the embedded runes.json.
func LoadRunes() ([]RuneDef, error) {
	file, err := Load[RunesFile]("runes.json")
	if err != nil {
		return nil, err
	}
	return file.Runes, nil
}

// GetGlyph returns the first rune of the glyph string, or '?' if empty.
func (r *RuneDef) GetGlyph() rune {
	for _, ch := range r.Glyph {
		return ch
	}
	return '?'
}

// GetColor returns the rune color, or white if the hex value is invalid.
func (r *RuneDef) GetColor() tcell.Color {
	c, err := ParseHexColor(r.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return c
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}
