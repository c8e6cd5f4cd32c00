package system

import (
	"math"

	"github.com/younwookim/runway/internal/domain/entity"
)

// groundContact is how close the feet must be to the local ground for the
// ledge guard to treat the player as walking.
const groundContact = 1.0

// ObstacleBlocker clamps horizontal movement against the solid obstacles of
// the current scene. Geometry is injected once per scene change.
type ObstacleBlocker struct {
	obstacles []entity.Obstacle
	groundY   float64
	segments  []entity.GroundSegment
	climb     float64
}

// NewObstacleBlocker creates a blocker that refuses on-foot rises above climb
func NewObstacleBlocker(climb float64) *ObstacleBlocker {
	return &ObstacleBlocker{climb: climb}
}

// SetSceneGeometry replaces the geometry used by ResolveBlockedX
func (b *ObstacleBlocker) SetSceneGeometry(obstacles []entity.Obstacle, groundY float64, segments []entity.GroundSegment) {
	b.obstacles = obstacles
	b.groundY = groundY
	b.segments = segments
}

// ResolveBlockedX returns the furthest position toward candidateX the player
// standing at feet playerY can reach from previousX. Pass candidateX as
// previousX when the origin is unknown.
//
// Obstacles are resolved greedily in iteration order; each one may further
// constrain the result of the previous one.
func (b *ObstacleBlocker) ResolveBlockedX(candidateX, playerY, previousX float64) float64 {
	x := candidateX
	for _, o := range b.obstacles {
		bottom := entity.GroundYAt(o.X, b.groundY, b.segments)
		top := bottom - o.Height
		if playerY <= top {
			// feet at or above the obstacle top
			continue
		}

		left := o.X - o.Width/2 - entity.PlayerHalfWidth
		right := o.X + o.Width/2 + entity.PlayerHalfWidth

		switch {
		case x > left && x < right:
			if previousX < o.X {
				x = left
			} else {
				x = right
			}
		case previousX <= left && x >= right:
			// jumped clean over the footprint in one step
			x = left
		case previousX >= right && x <= left:
			x = right
		}
	}

	if b.blocksLedge(x, playerY, previousX) {
		return previousX
	}
	return x
}

// blocksLedge reports whether walking from previousX to x would climb a rise
// steeper than the climb threshold.
func (b *ObstacleBlocker) blocksLedge(x, playerY, previousX float64) bool {
	if len(b.segments) == 0 {
		return false
	}
	from := entity.GroundYAt(previousX, b.groundY, b.segments)
	if math.Abs(playerY-from) > groundContact {
		return false
	}
	to := entity.GroundYAt(x, b.groundY, b.segments)
	return from-to > b.climb
}
