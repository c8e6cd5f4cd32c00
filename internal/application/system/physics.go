package system

import (
	"math"

	"github.com/younwookim/runway/internal/domain/entity"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

// LocomotionMode names which handler owns the player's x for one step
type LocomotionMode int

const (
	ModeWalking LocomotionMode = iota
	ModeAirborne
	ModeKnockback
	ModePlatformRide
)

// String returns the string representation of the mode
func (m LocomotionMode) String() string {
	switch m {
	case ModeWalking:
		return "Walking"
	case ModeAirborne:
		return "Airborne"
	case ModeKnockback:
		return "Knockback"
	case ModePlatformRide:
		return "PlatformRide"
	default:
		return "Unknown"
	}
}

// StepInput is everything one physics step consumes besides the player
type StepInput struct {
	WalkDX    float64 // horizontal intent from the movement controller
	Jump      bool    // edge-triggered jump request
	Challenge entity.ChallengeKind
	Now       float64 // world clock, seconds
}

// PhysicsSystem is the single authoritative writer of player motion. Each
// step derives a LocomotionMode and lets exactly one handler claim x.
type PhysicsSystem struct {
	config  *config.PhysicsConfig
	blocker *ObstacleBlocker
	scene   *entity.Scene
	phase   config.PhaseConfig

	shakeUntil float64

	// Event callbacks
	OnJump       func()
	OnFallInHole func()
	OnHit        func()
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, blocker *ObstacleBlocker) *PhysicsSystem {
	return &PhysicsSystem{
		config:  cfg,
		blocker: blocker,
		phase:   config.NeutralPhase,
	}
}

// SetScene swaps the geometry and phase the integrator resolves against
func (s *PhysicsSystem) SetScene(scene *entity.Scene, phase config.PhaseConfig) {
	s.scene = scene
	s.phase = phase
	s.shakeUntil = 0
}

// Mode derives the locomotion mode from player state
func (s *PhysicsSystem) Mode(p *entity.Player) LocomotionMode {
	switch {
	case math.Abs(p.KnockbackVX) > s.config.Knockback.Threshold:
		return ModeKnockback
	case !p.IsGrounded:
		return ModeAirborne
	case p.OnPlatformID != "":
		return ModePlatformRide
	default:
		return ModeWalking
	}
}

// Step advances the player by dt seconds. dt is clamped to MaxFrameDelta; a
// non-positive dt leaves the player untouched.
func (s *PhysicsSystem) Step(p *entity.Player, in StepInput, platforms []entity.Platform, dt float64) {
	if s.scene == nil || dt <= 0 {
		return
	}
	if dt > s.config.Physics.MaxFrameDelta {
		dt = s.config.Physics.MaxFrameDelta
	}

	switch s.Mode(p) {
	case ModeKnockback:
		// knockback owns x; walking intent is dropped
		s.applyKnockback(p, in, dt)
	case ModePlatformRide:
		s.carry(p, in, platforms)
		s.walk(p, in)
	default:
		s.walk(p, in)
	}

	if in.Jump && p.IsGrounded && in.Challenge == entity.ChallengeNone {
		p.VelocityY = s.config.Jump.Velocity * math.Sqrt(s.phase.GravityMultiplier)
		p.IsGrounded = false
		p.OnPlatformID = ""
		if s.OnJump != nil {
			s.OnJump()
		}
	}

	switch {
	case !p.IsGrounded:
		s.integrate(p, in, platforms, dt)
	case p.OnPlatformID != "":
		s.verifyPlatform(p, platforms)
	default:
		s.followGround(p, in)
	}
}

// walk applies the movement controller's intent
func (s *PhysicsSystem) walk(p *entity.Player, in StepInput) {
	if in.WalkDX == 0 {
		return
	}
	p.FaceToward(in.WalkDX)
	p.X = s.resolveX(p.X+in.WalkDX, p, in.Challenge)
}

// resolveX clamps a candidate to the movement bounds and, outside
// challenges, runs it through the obstacle blocker.
func (s *PhysicsSystem) resolveX(candidate float64, p *entity.Player, challenge entity.ChallengeKind) float64 {
	x := s.clampX(candidate, challenge)
	if challenge != entity.ChallengeNone {
		return x
	}
	return s.blocker.ResolveBlockedX(x, p.Y, p.X)
}

func (s *PhysicsSystem) clampX(x float64, challenge entity.ChallengeKind) float64 {
	lo := s.config.Physics.EdgeMargin
	hi := s.scene.LevelWidth - s.config.Physics.EdgeMargin
	if challenge == entity.ChallengeFallingCatch {
		lo, hi = s.config.Movement.ChallengeMinX, s.config.Movement.ChallengeMaxX
	}
	return clamp(x, lo, hi)
}

// integrate runs gravity for an airborne player and resolves the landing
func (s *PhysicsSystem) integrate(p *entity.Player, in StepInput, platforms []entity.Platform, dt float64) {
	p.VelocityY += s.config.Physics.Gravity * s.phase.GravityMultiplier * dt
	oldY := p.Y
	newY := p.Y + p.VelocityY*dt

	if newY > s.scene.GroundY+s.config.Physics.FallDeathThreshold {
		p.Y = newY
		if !p.FallingInHole {
			p.FallingInHole = true
			if s.OnFallInHole != nil {
				s.OnFallInHole()
			}
		}
		return
	}

	if p.VelocityY > 0 && !p.FallingInHole {
		for _, pl := range platforms {
			if !pl.Contains(p.X) {
				continue
			}
			if oldY <= pl.Y && newY >= pl.Y {
				s.land(p, pl.Y)
				p.OnPlatformID = pl.ID
				return
			}
		}
	}

	if s.overHole(p.X, in) {
		p.Y = newY
		return
	}

	ground := s.scene.GroundAt(p.X)
	if newY >= ground {
		s.land(p, ground)
		return
	}
	p.Y = newY
}

func (s *PhysicsSystem) land(p *entity.Player, y float64) {
	p.Y = y
	p.VelocityY = 0
	p.IsGrounded = true
	p.FallingInHole = false
}

func (s *PhysicsSystem) overHole(x float64, in StepInput) bool {
	return in.Challenge == entity.ChallengeNone && s.scene.InHole(x)
}

// verifyPlatform keeps a riding player attached or lets them walk off
func (s *PhysicsSystem) verifyPlatform(p *entity.Player, platforms []entity.Platform) {
	pl, ok := findPlatform(platforms, p.OnPlatformID)
	if ok && pl.Contains(p.X) && math.Abs(p.Y-pl.Y) <= s.config.Physics.PlatformTolerance {
		p.Y = pl.Y
		return
	}
	p.IsGrounded = false
	p.OnPlatformID = ""
}

// carry moves a riding player with the platform under them
func (s *PhysicsSystem) carry(p *entity.Player, in StepInput, platforms []entity.Platform) {
	pl, ok := findPlatform(platforms, p.OnPlatformID)
	if !ok || !pl.Moved() {
		return
	}
	p.X = s.clampX(p.X+pl.DX, in.Challenge)
	p.Y += pl.DY
}

// followGround tracks terrain under a walking player
func (s *PhysicsSystem) followGround(p *entity.Player, in StepInput) {
	if s.overHole(p.X, in) {
		p.IsGrounded = false
		p.VelocityY = 0
		return
	}
	ground := s.scene.GroundAt(p.X)
	if ground-p.Y > s.config.Physics.DropThreshold {
		p.IsGrounded = false
		p.VelocityY = 0
		return
	}
	// rises that reach here are snapped; steep ones are refused by the blocker
	p.Y = ground
}

// applyKnockback moves the player by the decaying knockback velocity
func (s *PhysicsSystem) applyKnockback(p *entity.Player, in StepInput, dt float64) {
	cfg := s.config.Knockback
	candidate := p.X + p.KnockbackVX*dt
	x := s.resolveX(candidate, p, in.Challenge)
	p.X = x
	if x != candidate {
		// hit a wall or the level edge
		p.KnockbackVX = 0
		return
	}
	p.KnockbackVX *= math.Exp(-cfg.Decay * dt)
	if math.Abs(p.KnockbackVX) < cfg.Threshold {
		p.KnockbackVX = 0
	}
}

// TriggerKnockback pushes the player away in direction (sign only) unless
// they are still invincible. It reports whether the hit landed.
func (s *PhysicsSystem) TriggerKnockback(p *entity.Player, direction float64, in StepInput) bool {
	if s.scene == nil || p.IsInvincible(in.Now) {
		return false
	}
	cfg := s.config.Knockback
	push := 1.0
	if direction < 0 {
		push = -1
	}

	p.InvincibleUntil = in.Now + cfg.Invincibility
	p.X = s.resolveX(p.X+push*cfg.Teleport, p, in.Challenge)
	p.KnockbackVX = push * cfg.Impulse
	p.Animation = entity.AnimHurt
	s.shakeUntil = in.Now + cfg.ScreenShake

	if s.OnHit != nil {
		s.OnHit()
	}
	return true
}

// Shaking reports whether the screen shake from the last hit is running
func (s *PhysicsSystem) Shaking(now float64) bool {
	return now < s.shakeUntil
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
