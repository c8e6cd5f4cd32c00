package system

import (
	"github.com/younwookim/runway/internal/infrastructure/config"
)

// MovementController turns held movement keys into discrete horizontal steps
// at a fixed interval. It only produces intent; the physics step applies it.
type MovementController struct {
	config *config.PhysicsConfig
	held   []Key // press order, most recent last
	accum  float64
}

// NewMovementController creates a new movement controller
func NewMovementController(cfg *config.PhysicsConfig) *MovementController {
	return &MovementController{
		config: cfg,
		held:   make([]Key, 0, 2),
	}
}

// KeyDown marks a movement key held. The first key down primes an
// immediate step; repeats of a held key are ignored.
func (m *MovementController) KeyDown(k Key) {
	if k.direction() == 0 || m.isHeld(k) {
		return
	}
	if len(m.held) == 0 {
		m.accum = m.config.Movement.StepInterval
	}
	m.held = append(m.held, k)
}

// KeyUp releases a movement key
func (m *MovementController) KeyUp(k Key) {
	for i, h := range m.held {
		if h == k {
			m.held = append(m.held[:i], m.held[i+1:]...)
			break
		}
	}
	if len(m.held) == 0 {
		m.accum = 0
	}
}

// RestartTimer makes the next step wait a full interval. Held keys stay
// held until their KeyUp arrives.
func (m *MovementController) RestartTimer() {
	m.accum = 0
}

// Held reports whether any movement key is down
func (m *MovementController) Held() bool {
	return len(m.held) > 0
}

// Direction returns the direction of the most recently pressed held key
func (m *MovementController) Direction() float64 {
	if len(m.held) == 0 {
		return 0
	}
	return m.held[len(m.held)-1].direction()
}

func (m *MovementController) isHeld(k Key) bool {
	for _, h := range m.held {
		if h == k {
			return true
		}
	}
	return false
}

// Update advances the step timer and returns the horizontal displacement to
// apply this tick. While suppressed no steps are taken and the timer resets.
func (m *MovementController) Update(dt float64, grounded bool, speed float64, suppressed bool) float64 {
	if suppressed || len(m.held) == 0 {
		m.accum = 0
		return 0
	}
	if dt > 0 {
		m.accum += dt
	}

	interval := m.config.Movement.StepInterval
	if interval <= 0 {
		return 0
	}
	steps := 0
	for m.accum >= interval {
		m.accum -= interval
		steps++
	}
	if steps == 0 {
		return 0
	}

	step := m.config.Movement.AirStep
	if grounded {
		step = m.config.Movement.GroundStep
	}
	return m.Direction() * step * speed * float64(steps)
}
