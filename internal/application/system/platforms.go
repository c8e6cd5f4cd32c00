package system

import (
	"math"

	"github.com/younwookim/runway/internal/domain/entity"
)

// PlatformAnimator drives the sinusoidal motion of moving platforms and
// reports how far each one moved since the previous update.
type PlatformAnimator struct {
	defs     []entity.PlatformDefinition
	resolved []entity.Platform
	elapsed  float64
	moving   bool
}

// NewPlatformAnimator creates an animator with no platforms
func NewPlatformAnimator() *PlatformAnimator {
	return &PlatformAnimator{}
}

// SetPlatforms replaces the platform list and restarts the clock
func (a *PlatformAnimator) SetPlatforms(defs []entity.PlatformDefinition) {
	a.defs = defs
	a.elapsed = 0
	a.moving = false
	a.resolved = make([]entity.Platform, len(defs))
	for i, d := range defs {
		if d.IsMoving() {
			a.moving = true
		}
		a.resolved[i] = entity.Platform{PlatformDefinition: d}
	}
}

// Update advances the clock by dt and returns the resolved platforms with
// their per-frame deltas. Scenes without moving platforms pass through.
func (a *PlatformAnimator) Update(dt float64) []entity.Platform {
	if !a.moving {
		return a.resolved
	}
	a.elapsed += dt

	for i, d := range a.defs {
		prev := a.resolved[i]
		next := entity.Platform{PlatformDefinition: d}
		if d.IsMoving() {
			offset := math.Sin(a.elapsed*d.MoveSpeed*2*math.Pi) * d.MoveRange
			switch d.MoveAxis {
			case entity.AxisX:
				next.X += offset
			case entity.AxisY:
				next.Y += offset
			}
		}
		next.DX = next.X - prev.X
		next.DY = next.Y - prev.Y
		a.resolved[i] = next
	}
	return a.resolved
}

// Platforms returns the snapshot from the latest update
func (a *PlatformAnimator) Platforms() []entity.Platform {
	return a.resolved
}

// Elapsed returns seconds since the platform list was set
func (a *PlatformAnimator) Elapsed() float64 {
	return a.elapsed
}

// Find looks up a resolved platform by id
func (a *PlatformAnimator) Find(id entity.EntityID) (entity.Platform, bool) {
	return findPlatform(a.resolved, id)
}

func findPlatform(platforms []entity.Platform, id entity.EntityID) (entity.Platform, bool) {
	for _, p := range platforms {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Platform{}, false
}
