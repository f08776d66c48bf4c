package entity

import "math"

// ToTileCoords converts pixel coordinates to tile coordinates
func ToTileCoords(px, py float64, tileSize int) (int, int) {
	ts := float64(tileSize)
	return int(math.Floor(px / ts)), int(math.Floor(py / ts))
}

// ToPixelCenter converts tile coordinates to the pixel center of that tile
func ToPixelCenter(tx, ty, tileSize int) (float64, float64) {
	half := float64(tileSize) / 2
	return float64(tx*tileSize) + half, float64(ty*tileSize) + half
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
