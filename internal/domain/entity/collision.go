package entity

import "math"

// Player hitbox, anchored bottom-center at (x, y).
const (
	PlayerHalfWidth = 1.2
	PlayerHeight    = 7.0
)

// Box is an axis-aligned box anchored at its bottom-center
type Box struct {
	X, Y      float64 // bottom-center
	HalfWidth float64
	Height    float64
}

// Top returns the y of the top edge
func (b Box) Top() float64 {
	return b.Y - b.Height
}

// Overlaps reports strict overlap; touching edges do not collide
func (b Box) Overlaps(o Box) bool {
	if math.Abs(b.X-o.X) >= b.HalfWidth+o.HalfWidth {
		return false
	}
	return b.Y > o.Top() && b.Top() < o.Y
}

// PlayerBox returns the player's hitbox at (x, y)
func PlayerBox(x, y float64) Box {
	return Box{X: x, Y: y, HalfWidth: PlayerHalfWidth, Height: PlayerHeight}
}

// CheckCollision tests the fixed player hitbox at (playerX, playerY) against
// a target of size targetW x targetH anchored bottom-center at (targetX, targetY).
func CheckCollision(playerX, playerY, targetX, targetY, targetW, targetH float64) bool {
	target := Box{X: targetX, Y: targetY, HalfWidth: targetW / 2, Height: targetH}
	return PlayerBox(playerX, playerY).Overlaps(target)
}
