package state

// GameState represents where the session is in its narrative loop
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateDecision
	StateOutcome
	StateChallengeIntro
	StateChallenge
	StateChallengeResult
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateDecision:
		return "Decision"
	case StateOutcome:
		return "Outcome"
	case StateChallengeIntro:
		return "ChallengeIntro"
	case StateChallenge:
		return "Challenge"
	case StateChallengeResult:
		return "ChallengeResult"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// PanelOpen reports whether a panel or modal covers the scene, which
// suppresses movement input.
func (s GameState) PanelOpen() bool {
	switch s {
	case StateDecision, StateOutcome, StateChallengeIntro, StateChallengeResult, StateGameOver, StateVictory:
		return true
	default:
		return false
	}
}

// Simulating reports whether the world ticks in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateChallenge
}

// IsTerminal reports whether the run has ended
func (s GameState) IsTerminal() bool {
	return s == StateGameOver || s == StateVictory
}
