// Package ui provides terminal rendering using tcell.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// NewSimulationScreen creates an in-memory screen of the given size, for
// tests and headless runs.
func NewSimulationScreen(width, height int) (*Screen, error) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetSize(width, height)
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state. Safe to call more
// than once.
func (s *Screen) Close() {
	s.closeOnce.Do(s.screen.Fini)
}

// PollEvent waits for and returns the next terminal event. It returns nil
// once the screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// GetContent returns the rune in the cell at the given position.
func (s *Screen) GetContent(x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

// Style returns the style of the cell at the given position.
func (s *Screen) Style(x, y int) tcell.Style {
	_, _, style, _ := s.screen.GetContent(x, y)
	return style
}

// InjectKey queues a key event. Only simulation screens accept it.
func (s *Screen) InjectKey(key tcell.Key, r rune) {
	if sim, ok := s.screen.(tcell.SimulationScreen); ok {
		sim.InjectKey(key, r, tcell.ModNone)
	}
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
