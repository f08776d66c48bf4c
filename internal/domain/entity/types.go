package entity

// EmptyTile marks a grid cell with nothing to draw
const EmptyTile = -1

// TileMap represents a loaded map's tile grid and spawn point
type TileMap struct {
	Name     string
	Width    int
	Height   int
	TileSize int
	Tiles    [][]int // 0-based tile indices, EmptyTile for blanks
	SpawnX   float64
	SpawnY   float64
}

// IsEmpty reports whether the map has no tile data
func (m *TileMap) IsEmpty() bool {
	return m == nil || len(m.Tiles) == 0
}

// TileAt returns the tile index at the given tile coordinates
func (m *TileMap) TileAt(tx, ty int) int {
	if m.IsEmpty() || ty < 0 || ty >= len(m.Tiles) || tx < 0 || tx >= len(m.Tiles[ty]) {
		return EmptyTile
	}
	return m.Tiles[ty][tx]
}

// PixelWidth returns the map width in pixels
func (m *TileMap) PixelWidth() float64 {
	return float64(m.Width * m.TileSize)
}

// PixelHeight returns the map height in pixels
func (m *TileMap) PixelHeight() float64 {
	return float64(m.Height * m.TileSize)
}

// InBounds checks if a pixel position lies within the map
func (m *TileMap) InBounds(px, py float64) bool {
	return px >= 0 && py >= 0 && px <= m.PixelWidth() && py <= m.PixelHeight()
}
