package entity

import "math"

// DefaultPlayerSpeed is the travel speed in pixels per second
const DefaultPlayerSpeed = 240.0

// Player is the character walking on the map
type Player struct {
	X, Y             float64
	TargetX, TargetY float64
	TileSize         int
	Speed            float64 // pixels per second
	Instinct         string
}

// NewPlayer creates a player standing at (x, y)
func NewPlayer(x, y float64, tileSize int) *Player {
	return &Player{
		X:        x,
		Y:        y,
		TargetX:  x,
		TargetY:  y,
		TileSize: tileSize,
		Speed:    DefaultPlayerSpeed,
	}
}

// Place teleports the player and cancels any movement in progress
func (p *Player) Place(x, y float64) {
	p.X, p.Y = x, y
	p.TargetX, p.TargetY = x, y
}

// MoveToTile sets the movement target to the center of a tile
func (p *Player) MoveToTile(tx, ty int) {
	p.TargetX, p.TargetY = ToPixelCenter(tx, ty, p.TileSize)
}

// Tile returns the tile the player currently stands on
func (p *Player) Tile() (int, int) {
	return ToTileCoords(p.X, p.Y, p.TileSize)
}

// Moving reports whether the player has not reached its target yet
func (p *Player) Moving() bool {
	return p.X != p.TargetX || p.Y != p.TargetY
}

// Update moves the player toward its target at constant speed.
// The last step snaps exactly onto the target.
func (p *Player) Update(dt float64) {
	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	dist := math.Hypot(dx, dy)
	step := p.Speed * dt

	if dist > step {
		p.X += dx / dist * step
		p.Y += dy / dist * step
		return
	}
	p.X = p.TargetX
	p.Y = p.TargetY
}
