// Package world provides level generation, the entity registry and wind
// tunnels.
package world

// Tile is the display kind of a level cell.
type Tile rune

const (
	// TileAir is an empty cell.
	TileAir Tile = ' '
	// TileGround is a solid cell below the surface.
	TileGround Tile = '#'
	// TileSurface is the topmost solid cell of a column.
	TileSurface Tile = '='
	// TileWind is an empty cell inside a wind tunnel.
	TileWind Tile = '^'
)

// IsSolid returns true if the tile blocks movement.
func (t Tile) IsSolid() bool {
	return t == TileGround || t == TileSurface
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
