package system

import (
	"math"

	"github.com/younwookim/runway/internal/infrastructure/config"
)

// Camera smooths the horizontal view offset toward the player. Only the
// camera writes its offset; everything else reads scene-space positions.
type Camera struct {
	config    config.CameraConfig
	x         float64
	published float64
}

// NewCamera creates a camera at offset 0
func NewCamera(cfg config.CameraConfig) *Camera {
	return &Camera{config: cfg}
}

// X returns the last published offset
func (c *Camera) X() float64 {
	return c.published
}

// Reset jumps the camera to x without smoothing
func (c *Camera) Reset(x float64) {
	c.x = x
	c.published = x
}

// Target returns where the camera wants to be
func (c *Camera) Target(playerX, levelWidth float64, challenge bool) float64 {
	span := c.config.ViewSpan
	if challenge || levelWidth <= span {
		return 0
	}
	return clamp(playerX-span/2, 0, levelWidth-span)
}

// Update moves the camera one frame toward its target and reports whether
// the published offset changed.
func (c *Camera) Update(playerX, levelWidth float64, challenge bool) bool {
	target := c.Target(playerX, levelWidth, challenge)

	if !challenge && levelWidth <= c.config.ViewSpan {
		c.x = 0
	} else if math.Abs(target-c.x) < c.config.Snap {
		c.x = target
	} else {
		c.x += (target - c.x) * c.config.Lerp
	}

	if math.Abs(c.x-c.published) > c.config.Epsilon || (c.x == target && c.published != target) {
		c.published = c.x
		return true
	}
	return false
}
