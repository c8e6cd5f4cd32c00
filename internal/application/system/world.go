package system

import (
	"github.com/younwookim/runway/internal/domain/entity"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

// EnemyView is the presentation snapshot of one enemy
type EnemyView struct {
	ID        entity.EntityID
	Type      string
	X, Y      float64
	Width     float64
	Height    float64
	Direction float64
}

// View is the plain state a renderer paints. Revision increases whenever
// any published value changed.
type View struct {
	Revision     uint64
	Player       entity.Player
	Mode         LocomotionMode
	CameraX      float64
	Enemies      []EnemyView
	Platforms    []entity.Platform
	Collectibles []entity.Collectible
	Shaking      bool
}

// World owns one scene's simulation and runs every subsystem from a single
// Tick in a fixed order: movement intent, physics, enemy AI, platform
// animation, camera.
type World struct {
	config *config.PhysicsConfig
	scene  *entity.Scene
	phase  config.PhaseConfig
	player *entity.Player

	blocker   *ObstacleBlocker
	physics   *PhysicsSystem
	movement  *MovementController
	enemies   *EnemySystem
	platforms *PlatformAnimator
	camera    *Camera

	clock         float64
	jumpRequested bool
	panelsOpen    bool
	paused        bool
	challenge     entity.ChallengeKind
	returnX       float64

	collected     map[entity.EntityID]bool
	gateFired     bool
	decisionFired bool
	fell          bool
	revision      uint64

	// Event callbacks, fired after the subsystems finished the tick
	OnCollision     func(direction float64, enemyType string)
	OnFallInHole    func()
	OnChallengeGate func(kind entity.ChallengeKind)
	OnDecision      func()
	OnCollect       func(item entity.Collectible)
	OnJump          func()
	OnHit           func()
}

// NewWorld creates a world with no scene loaded
func NewWorld(cfg *config.PhysicsConfig) *World {
	blocker := NewObstacleBlocker(cfg.Physics.ClimbThreshold)
	w := &World{
		config:    cfg,
		phase:     config.NeutralPhase,
		player:    entity.NewPlayer(0, 0),
		blocker:   blocker,
		physics:   NewPhysicsSystem(cfg, blocker),
		movement:  NewMovementController(cfg),
		enemies:   NewEnemySystem(cfg.Enemy),
		platforms: NewPlatformAnimator(),
		camera:    NewCamera(cfg.Camera),
		collected: make(map[entity.EntityID]bool),
	}

	w.physics.OnJump = func() {
		if w.OnJump != nil {
			w.OnJump()
		}
	}
	w.physics.OnHit = func() {
		if w.OnHit != nil {
			w.OnHit()
		}
	}
	w.physics.OnFallInHole = func() {
		w.fell = true
	}
	w.enemies.OnCollision = func(direction float64, e *entity.Enemy) {
		if !w.physics.TriggerKnockback(w.player, direction, w.stepInput(0, false)) {
			return
		}
		if w.OnCollision != nil {
			w.OnCollision(direction, e.Type)
		}
	}
	return w
}

// LoadScene injects a scene's geometry into every subsystem and resets the
// player to the scene start.
func (w *World) LoadScene(scene *entity.Scene, phase config.PhaseConfig) {
	w.scene = scene
	w.phase = phase

	w.blocker.SetSceneGeometry(scene.Obstacles, scene.GroundY, scene.GroundSegments)
	w.physics.SetScene(scene, phase)
	w.enemies.SetEnemies(scene.Enemies, scene.GroundY, scene.GroundSegments)
	w.platforms.SetPlatforms(scene.Platforms)

	w.challenge = entity.ChallengeNone
	w.gateFired = false
	w.decisionFired = false
	w.collected = make(map[entity.EntityID]bool)

	w.Respawn()
	w.camera.Reset(w.camera.Target(w.player.X, scene.LevelWidth, false))
}

// Respawn puts the player back at the scene start with no motion. Keys
// still held keep walking.
func (w *World) Respawn() {
	if w.scene == nil {
		return
	}
	x := w.scene.PlayerStartX
	w.player.Reset(x, w.scene.GroundAt(x))
	w.movement.RestartTimer()
	w.jumpRequested = false
	w.fell = false
	w.revision++
}

// HandleIntent feeds one input event into the world
func (w *World) HandleIntent(i Intent) {
	switch it := i.(type) {
	case KeyDownIntent:
		if it.Key == KeyJump {
			if !w.inputSuppressed() && w.challenge == entity.ChallengeNone {
				w.jumpRequested = true
			}
			return
		}
		w.movement.KeyDown(it.Key)
	case KeyUpIntent:
		w.movement.KeyUp(it.Key)
	}
}

// SetPanelsOpen gates input while a decision, outcome or modal is shown
func (w *World) SetPanelsOpen(open bool) {
	w.panelsOpen = open
	if open {
		w.jumpRequested = false
	}
}

// SetPaused stops the world from ticking
func (w *World) SetPaused(paused bool) {
	w.paused = paused
}

// Paused reports whether the world is paused
func (w *World) Paused() bool {
	return w.paused
}

// StartChallenge recenters the player in a fixed viewport for a mini-game
func (w *World) StartChallenge(kind entity.ChallengeKind) {
	if w.scene == nil || kind == entity.ChallengeNone {
		return
	}
	w.returnX = w.player.X
	w.challenge = kind
	x := w.config.Movement.ChallengeCenterX
	w.player.Reset(x, w.scene.GroundAt(x))
	w.movement.RestartTimer()
	w.jumpRequested = false
	w.revision++
}

// EndChallenge returns the player to where the challenge started
func (w *World) EndChallenge() {
	if w.challenge == entity.ChallengeNone {
		return
	}
	w.challenge = entity.ChallengeNone
	w.player.Reset(w.returnX, w.scene.GroundAt(w.returnX))
	w.movement.RestartTimer()
	w.revision++
}

// Challenge returns the running challenge kind
func (w *World) Challenge() entity.ChallengeKind {
	return w.challenge
}

func (w *World) inputSuppressed() bool {
	return w.panelsOpen || w.paused || w.challenge == entity.ChallengeQuickTime
}

func (w *World) stepInput(dx float64, jump bool) StepInput {
	return StepInput{
		WalkDX:    dx,
		Jump:      jump,
		Challenge: w.challenge,
		Now:       w.clock,
	}
}

// Tick advances the world by dt seconds
func (w *World) Tick(dt float64) {
	if w.scene == nil || w.paused || dt <= 0 {
		return
	}
	if dt > w.config.Physics.MaxFrameDelta {
		dt = w.config.Physics.MaxFrameDelta
	}
	w.clock += dt

	p := w.player
	beforeX, beforeY := p.X, p.Y
	inChallenge := w.challenge != entity.ChallengeNone

	// 1. movement intent
	dx := w.movement.Update(dt, p.IsGrounded, w.phase.SpeedMultiplier, w.inputSuppressed())
	jump := w.jumpRequested
	w.jumpRequested = false

	// 2. physics
	w.physics.Step(p, w.stepInput(dx, jump), w.platforms.Platforms(), dt)

	// 3. enemy AI
	enemiesMoved := w.enemies.Update(p, w.clock, dt, w.phase.EnemySpeedMultiplier, p.IsInvincible(w.clock) || inChallenge)

	// 4. platform animation
	platforms := w.platforms.Update(dt)

	// 5. camera
	cameraMoved := w.camera.Update(p.X, w.scene.LevelWidth, inChallenge)

	w.updateAnimation(p)

	if p.X != beforeX || p.Y != beforeY || cameraMoved || enemiesMoved || anyMoved(platforms) {
		w.revision++
	}

	if w.fell {
		w.fell = false
		if w.OnFallInHole != nil {
			w.OnFallInHole()
		} else {
			w.Respawn()
		}
		return
	}

	if !inChallenge {
		w.checkCollectibles(p)
		w.checkTriggers(p)
	}
}

func (w *World) updateAnimation(p *entity.Player) {
	switch {
	case p.KnockbackVX != 0 && p.IsInvincible(w.clock):
		p.Animation = entity.AnimHurt
	case !p.IsGrounded:
		p.Animation = entity.AnimJump
	case w.movement.Held() && !w.inputSuppressed():
		p.Animation = entity.AnimWalk
	default:
		p.Animation = entity.AnimIdle
	}
}

func (w *World) checkCollectibles(p *entity.Player) {
	for _, c := range w.scene.Collectibles {
		if w.collected[c.ID] {
			continue
		}
		y := c.Y
		if y == 0 {
			y = w.scene.GroundAt(c.X)
		}
		if !entity.CheckCollision(p.X, p.Y, c.X, y, c.Width, c.Height) {
			continue
		}
		w.collected[c.ID] = true
		w.revision++
		if w.OnCollect != nil {
			w.OnCollect(c)
		}
	}
}

func (w *World) checkTriggers(p *entity.Player) {
	if gate := w.scene.ChallengeGateX; gate > 0 && !w.gateFired && p.X >= gate {
		w.gateFired = true
		if w.OnChallengeGate != nil {
			w.OnChallengeGate(w.scene.Challenge)
		}
	}
	if at := w.scene.DecisionX; at > 0 && !w.decisionFired && p.X >= at {
		w.decisionFired = true
		if w.OnDecision != nil {
			w.OnDecision()
		}
	}
}

func anyMoved(platforms []entity.Platform) bool {
	for _, p := range platforms {
		if p.Moved() {
			return true
		}
	}
	return false
}

// Player returns a copy of the player state
func (w *World) Player() entity.Player {
	return *w.player
}

// Mode returns the player's current locomotion mode
func (w *World) Mode() LocomotionMode {
	return w.physics.Mode(w.player)
}

// Scene returns the loaded scene, nil before the first LoadScene
func (w *World) Scene() *entity.Scene {
	return w.scene
}

// Phase returns the physics multipliers in effect
func (w *World) Phase() config.PhaseConfig {
	return w.phase
}

// Clock returns seconds simulated since the world was created
func (w *World) Clock() float64 {
	return w.clock
}

// CameraX returns the published camera offset
func (w *World) CameraX() float64 {
	return w.camera.X()
}

// Revision returns the publish counter
func (w *World) Revision() uint64 {
	return w.revision
}

// Shaking reports whether the hit screen shake is running
func (w *World) Shaking() bool {
	return w.physics.Shaking(w.clock)
}

// View builds a presentation snapshot. The slices are copies.
func (w *World) View() View {
	v := View{
		Revision: w.revision,
		Player:   *w.player,
		Mode:     w.physics.Mode(w.player),
		CameraX:  w.camera.X(),
		Shaking:  w.Shaking(),
	}
	for _, e := range w.enemies.Enemies() {
		v.Enemies = append(v.Enemies, EnemyView{
			ID:        e.ID,
			Type:      e.Type,
			X:         e.X,
			Y:         w.enemies.FeetY(e),
			Width:     e.Width,
			Height:    e.Height,
			Direction: e.Direction,
		})
	}
	v.Platforms = append(v.Platforms, w.platforms.Platforms()...)
	if w.scene != nil {
		for _, c := range w.scene.Collectibles {
			if w.collected[c.ID] {
				continue
			}
			if c.Y == 0 {
				c.Y = w.scene.GroundAt(c.X)
			}
			v.Collectibles = append(v.Collectibles, c)
		}
	}
	return v
}
