package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateDecision, "Decision"},
		{StateOutcome, "Outcome"},
		{StateChallengeIntro, "ChallengeIntro"},
		{StateChallenge, "Challenge"},
		{StateChallengeResult, "ChallengeResult"},
		{StateGameOver, "GameOver"},
		{StateVictory, "Victory"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StatePlaying)
	assert.Equal(t, GameState(1), StatePaused)
	assert.Equal(t, GameState(8), StateVictory)
}

func TestGameState_Gates(t *testing.T) {
	tests := []struct {
		state      GameState
		panel      bool
		simulating bool
		terminal   bool
	}{
		{StatePlaying, false, true, false},
		{StatePaused, false, false, false},
		{StateDecision, true, false, false},
		{StateOutcome, true, false, false},
		{StateChallengeIntro, true, false, false},
		{StateChallenge, false, true, false},
		{StateChallengeResult, true, false, false},
		{StateGameOver, true, false, true},
		{StateVictory, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.panel, tt.state.PanelOpen())
			assert.Equal(t, tt.simulating, tt.state.Simulating())
			assert.Equal(t, tt.terminal, tt.state.IsTerminal())
		})
	}
}
