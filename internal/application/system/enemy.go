package system

import (
	"math"

	"github.com/younwookim/runway/internal/domain/entity"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

// EnemySystem patrols enemies and detects contact with the player
type EnemySystem struct {
	config   config.EnemyConfig
	enemies  []*entity.Enemy
	groundY  float64
	segments []entity.GroundSegment

	lastHitID entity.EntityID
	clearAt   float64

	// OnCollision receives the push direction (+1 right) and the enemy
	OnCollision func(direction float64, e *entity.Enemy)
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg config.EnemyConfig) *EnemySystem {
	return &EnemySystem{
		config:  cfg,
		enemies: make([]*entity.Enemy, 0, 8),
	}
}

// SetEnemies spawns live enemies for a new scene
func (s *EnemySystem) SetEnemies(defs []entity.EnemyDefinition, groundY float64, segments []entity.GroundSegment) {
	s.enemies = s.enemies[:0]
	for _, d := range defs {
		s.enemies = append(s.enemies, entity.NewEnemy(d))
	}
	s.groundY = groundY
	s.segments = segments
	s.lastHitID = ""
	s.clearAt = 0
}

// Enemies returns the live enemies
func (s *EnemySystem) Enemies() []*entity.Enemy {
	return s.enemies
}

// FeetY returns the y an enemy stands at
func (s *EnemySystem) FeetY(e *entity.Enemy) float64 {
	if e.Y != 0 {
		return e.Y
	}
	return entity.GroundYAt(e.X, s.groundY, s.segments)
}

// Update patrols every enemy and, unless skipCollisions, checks them
// against the player. It reports whether any enemy moved or turned.
func (s *EnemySystem) Update(p *entity.Player, now, dt, speed float64, skipCollisions bool) bool {
	moved := false
	if dt > 0 {
		for _, e := range s.enemies {
			x, dir := e.X, e.Direction
			e.Patrol(e.Speed * dt * speed)
			if e.X != x || e.Direction != dir {
				moved = true
			}
		}
	}

	s.releaseSuppression(p, now)

	if skipCollisions {
		return moved
	}

	for _, e := range s.enemies {
		if e.ID == s.lastHitID {
			continue
		}
		if !entity.CheckCollision(p.X, p.Y, e.X, s.FeetY(e), e.Width, e.Height) {
			continue
		}

		s.lastHitID = e.ID
		s.clearAt = now + s.config.RehitDelay

		dir := 1.0
		if p.X < e.X {
			dir = -1
		}
		if s.OnCollision != nil {
			s.OnCollision(dir, e)
		}
		return moved
	}
	return moved
}

// releaseSuppression lets the last enemy hit again once the delay passed
// or the player walked clear of it.
func (s *EnemySystem) releaseSuppression(p *entity.Player, now float64) {
	if s.lastHitID == "" {
		return
	}
	if now >= s.clearAt {
		s.lastHitID = ""
		return
	}
	e := s.find(s.lastHitID)
	if e == nil || math.Abs(p.X-e.X) > e.Width+s.config.ReleaseMargin {
		s.lastHitID = ""
	}
}

func (s *EnemySystem) find(id entity.EntityID) *entity.Enemy {
	for _, e := range s.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// LastHit returns the enemy currently suppressed from re-hitting
func (s *EnemySystem) LastHit() entity.EntityID {
	return s.lastHitID
}
