package world

// Platform is a run of columns sharing one surface height, in cells.
type Platform struct {
	X     int // first column
	Width int // number of columns
	Top   int // number of solid rows
}

// Center returns the middle column of the platform.
func (p Platform) Center() int {
	return p.X + p.Width/2
}

// Contains returns true if the column lies on the platform.
func (p Platform) Contains(col int) bool {
	return col >= p.X && col < p.X+p.Width
}

// End returns the first column past the platform.
func (p Platform) End() int {
	return p.X + p.Width
}
