package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/runway/internal/infrastructure/config"
)

func createTestMovement() *MovementController {
	return NewMovementController(config.DefaultPhysics())
}

func TestMovementController_FirstStepIsImmediate(t *testing.T) {
	m := createTestMovement()
	m.KeyDown(KeyRight)

	assert.Equal(t, 1.5, m.Update(frame, true, 1, false))
	assert.Equal(t, 0.0, m.Update(frame, true, 1, false))
}

func TestMovementController_StepRate(t *testing.T) {
	m := createTestMovement()
	m.KeyDown(KeyRight)

	total := 0.0
	steps := 0
	for i := 0; i < 100; i++ {
		dx := m.Update(0.01, true, 1, false)
		if dx != 0 {
			steps++
		}
		total += dx
	}

	// one primed step plus one per 50ms over a second
	assert.InDelta(t, 21, steps, 1)
	assert.InDelta(t, 1.5*float64(steps), total, 1e-9)
}

func TestMovementController_StepSize(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		speed    float64
		want     float64
	}{
		{"ground", true, 1, 1.5},
		{"air", false, 1, 0.5},
		{"ground fast phase", true, 1.2, 1.8},
		{"air fast phase", false, 1.1, 0.55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createTestMovement()
			m.KeyDown(KeyLeft)
			assert.InDelta(t, -tt.want, m.Update(frame, tt.grounded, tt.speed, false), 1e-9)
		})
	}
}

func TestMovementController_MostRecentKeyWins(t *testing.T) {
	m := createTestMovement()

	m.KeyDown(KeyRight)
	assert.Equal(t, 1.0, m.Direction())

	m.KeyDown(KeyLeft)
	assert.Equal(t, -1.0, m.Direction())

	m.KeyUp(KeyLeft)
	assert.Equal(t, 1.0, m.Direction())
	assert.True(t, m.Held())

	m.KeyUp(KeyRight)
	assert.False(t, m.Held())
	assert.Equal(t, 0.0, m.Direction())
	assert.Equal(t, 0.0, m.Update(1, true, 1, false))
}

func TestMovementController_RepeatDoesNotReprime(t *testing.T) {
	m := createTestMovement()
	m.KeyDown(KeyRight)
	assert.Equal(t, 1.5, m.Update(0.01, true, 1, false))

	m.KeyDown(KeyRight)
	assert.Equal(t, 0.0, m.Update(0.01, true, 1, false))
}

func TestMovementController_Suppressed(t *testing.T) {
	m := createTestMovement()
	m.KeyDown(KeyRight)

	assert.Equal(t, 0.0, m.Update(frame, true, 1, true))
	assert.True(t, m.Held(), "keys stay held while suppressed")

	// the timer restarted, so the next step waits a full interval
	assert.Equal(t, 0.0, m.Update(0.02, true, 1, false))
	assert.Equal(t, 1.5, m.Update(0.04, true, 1, false))
}

func TestMovementController_IgnoresNonMovementKeys(t *testing.T) {
	m := createTestMovement()
	m.KeyDown(KeyJump)

	assert.False(t, m.Held())

}

func TestMovementController_RestartTimerKeepsKeysHeld(t *testing.T) {
	m := createTestMovement()
	m.KeyDown(KeyRight)
	assert.Equal(t, 1.5, m.Update(frame, true, 1, false))

	m.RestartTimer()
	assert.True(t, m.Held())
	assert.Equal(t, 0.0, m.Update(0.02, true, 1, false))
	assert.Equal(t, 1.5, m.Update(0.04, true, 1, false))

	m.KeyUp(KeyRight)
	assert.False(t, m.Held())
}
