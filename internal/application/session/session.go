// Package session drives one run: it walks the story tree, loads each node's
// scene into the world, converts gameplay events into resource changes and
// runs the challenge mini-games.
package session

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/runway/internal/application/state"
	"github.com/younwookim/runway/internal/application/system"
	"github.com/younwookim/runway/internal/domain/challenge"
	"github.com/younwookim/runway/internal/domain/entity"
	"github.com/younwookim/runway/internal/domain/story"
	"github.com/younwookim/runway/internal/infrastructure/config"
)

// Resource changes applied when a challenge completes
const (
	challengeEnergyCost  = -5
	challengeMomentumDiv = 10
)

// Quick-time tuning
var (
	quickTimeKeys    = []string{"a", "s", "d", "f"}
	quickTimePrompts = 5
	quickTimeWindow  = 1.2
)

// Sound plays the session's sound effects. audio.SoundManager satisfies it.
type Sound interface {
	PlayJump()
	PlayHit()
	PlayFall()
	PlayCollect()
	PlayChoice()
}

type silent struct{}

func (silent) PlayJump()    {}
func (silent) PlayHit()     {}
func (silent) PlayFall()    {}
func (silent) PlayCollect() {}
func (silent) PlayChoice()  {}

// Session owns the world and the narrative around it
type Session struct {
	cfg    *config.GameConfig
	world  *system.World
	sound  Sound
	rng    *rand.Rand
	scenes map[string]*entity.Scene

	node      *story.Node
	resources story.Resources
	highScore int

	state     state.GameState
	prevState state.GameState
	ending    story.Ending

	outcome     string
	pendingNext string

	challenge     challenge.Challenge
	challengeKind entity.ChallengeKind
	lastScore     int

	// OnStateChange fires after every transition
	OnStateChange func(from, to state.GameState)
}

// New creates a session over loaded game data. sound may be nil.
func New(cfg *config.GameConfig, sound Sound, seed int64) *Session {
	if sound == nil {
		sound = silent{}
	}
	s := &Session{
		cfg:       cfg,
		world:     system.NewWorld(cfg.Physics),
		sound:     sound,
		rng:       rand.New(rand.NewSource(seed)),
		scenes:    make(map[string]*entity.Scene, len(cfg.Scenes)),
		resources: story.StartingResources(),
	}
	for id, sc := range cfg.Scenes {
		s.scenes[id] = system.LoadScene(sc)
	}
	s.wireWorld()
	return s
}

func (s *Session) wireWorld() {
	w := s.world
	w.OnJump = s.sound.PlayJump
	w.OnHit = s.sound.PlayHit
	w.OnCollision = func(direction float64, enemyType string) {
		s.applyChanges(story.CollisionPenalty)
	}
	w.OnFallInHole = func() {
		s.sound.PlayFall()
		w.Respawn()
		s.applyChanges(story.FallPenalty)
	}
	w.OnCollect = func(item entity.Collectible) {
		s.sound.PlayCollect()
		s.applyChanges(item.Effects)
	}
	w.OnDecision = func() {
		if s.state == state.StatePlaying {
			s.setState(state.StateDecision)
		}
	}
	w.OnChallengeGate = func(kind entity.ChallengeKind) {
		if s.state != state.StatePlaying || kind == entity.ChallengeNone {
			return
		}
		s.challengeKind = kind
		s.setState(state.StateChallengeIntro)
	}
}

// Start begins a run at nodeID, or at the story start when nodeID is empty
func (s *Session) Start(nodeID string) error {
	if nodeID == "" {
		nodeID = s.cfg.Story.Start
	}
	s.resources = story.StartingResources()
	s.ending = story.EndingNone
	return s.enterNode(nodeID)
}

func (s *Session) enterNode(id string) error {
	n, err := s.cfg.Story.NodeByID(id)
	if err != nil {
		return err
	}
	s.node = n
	s.outcome = ""
	s.pendingNext = ""
	s.clearChallenge()
	log.Printf("session: entering node %s (%s)", n.ID, n.Title)

	if n.IsTerminal() {
		s.finish(story.Ending(n.Ending))
		return nil
	}

	sc, ok := s.scenes[n.Scene]
	if !ok {
		return fmt.Errorf("node %s: unknown scene %q", n.ID, n.Scene)
	}
	s.world.LoadScene(sc, s.cfg.Physics.Phase(n.Phase))

	if sc.DecisionX <= 0 {
		s.setState(state.StateDecision)
	} else {
		s.setState(state.StatePlaying)
	}
	return nil
}

// Choose applies the effects of the i-th choice of the current node
func (s *Session) Choose(i int) error {
	if s.state != state.StateDecision {
		return fmt.Errorf("choose in state %s", s.state)
	}
	if i < 0 || i >= len(s.node.Choices) {
		return fmt.Errorf("choice %d out of range (node %s has %d)", i, s.node.ID, len(s.node.Choices))
	}
	c := s.node.Choices[i]
	s.sound.PlayChoice()
	if s.applyChanges(c.Effects) {
		return nil
	}
	s.outcome = c.Outcome
	s.pendingNext = c.Next
	s.setState(state.StateOutcome)
	return nil
}

// Continue dismisses the outcome or challenge result panel
func (s *Session) Continue() error {
	switch s.state {
	case state.StateOutcome:
		return s.enterNode(s.pendingNext)
	case state.StateChallengeResult:
		s.challengeKind = entity.ChallengeNone
		s.setState(state.StatePlaying)
	}
	return nil
}

// StartChallenge leaves the intro panel and runs the gate's mini-game
func (s *Session) StartChallenge() {
	if s.state != state.StateChallengeIntro {
		return
	}
	switch s.challengeKind {
	case entity.ChallengeQuickTime:
		q := challenge.NewQuickTime(challenge.RandomPrompts(s.rng, quickTimeKeys, quickTimePrompts, quickTimeWindow))
		q.OnComplete = s.completeChallenge
		s.challenge = q
	case entity.ChallengeFallingCatch:
		f := challenge.NewFallingCatch(challenge.DefaultCatchConfig(s.world.Scene().GroundY), s.rng, func() (float64, float64) {
			p := s.world.Player()
			return p.X, p.Y
		})
		f.OnComplete = s.completeChallenge
		s.challenge = f
	default:
		s.setState(state.StatePlaying)
		return
	}
	s.world.StartChallenge(s.challengeKind)
	s.setState(state.StateChallenge)
}

func (s *Session) completeChallenge(score int) {
	s.lastScore = score
	s.challenge = nil
	s.world.EndChallenge()
	log.Printf("session: challenge finished with score %d", score)
	if s.applyChanges(story.Changes{Momentum: score / challengeMomentumDiv, Energy: challengeEnergyCost}) {
		return
	}
	s.setState(state.StateChallengeResult)
}

func (s *Session) clearChallenge() {
	s.challenge = nil
	s.challengeKind = entity.ChallengeNone
	s.world.EndChallenge()
}

// PressChallengeKey forwards a letter key to a running quick-time challenge
func (s *Session) PressChallengeKey(key string) bool {
	if s.state != state.StateChallenge {
		return false
	}
	q, ok := s.challenge.(*challenge.QuickTime)
	if !ok {
		return false
	}
	return q.Press(key)
}

// TogglePause pauses or resumes the run
func (s *Session) TogglePause() {
	switch {
	case s.state == state.StatePaused:
		s.setState(s.prevState)
	case s.state.IsTerminal():
		return
	default:
		s.prevState = s.state
		s.setState(state.StatePaused)
	}
}

// HandleIntent forwards movement input to the world
func (s *Session) HandleIntent(i system.Intent) {
	s.world.HandleIntent(i)
}

// Update advances the world and any running challenge by dt seconds
func (s *Session) Update(dt float64) {
	if !s.state.Simulating() || dt <= 0 {
		return
	}
	s.world.Tick(dt)
	if s.state == state.StateChallenge && s.challenge != nil {
		s.challenge.Update(dt)
	}
}

// applyChanges updates resources and reports whether the run ended
func (s *Session) applyChanges(c story.Changes) bool {
	if s.state.IsTerminal() {
		return true
	}
	s.resources = story.ApplyResourceChanges(s.resources, c)
	if s.resources.Momentum > s.highScore {
		s.highScore = s.resources.Momentum
	}
	if end, over := story.CheckGameEnd(s.resources); over {
		s.finish(end)
		return true
	}
	return false
}

func (s *Session) finish(end story.Ending) {
	s.ending = end
	s.clearChallenge()
	log.Printf("session: run ended (%s)", end)
	if end.IsVictory() {
		s.setState(state.StateVictory)
	} else {
		s.setState(state.StateGameOver)
	}
}

func (s *Session) setState(to state.GameState) {
	from := s.state
	s.state = to
	s.world.SetPaused(to == state.StatePaused)
	s.world.SetPanelsOpen(to.PanelOpen())
	if from != to && s.OnStateChange != nil {
		s.OnStateChange(from, to)
	}
}

// State returns the current session state
func (s *Session) State() state.GameState {
	return s.state
}

// World returns the simulated world
func (s *Session) World() *system.World {
	return s.world
}

// Node returns the current story node
func (s *Session) Node() *story.Node {
	return s.node
}

// Resources returns the current resources
func (s *Session) Resources() story.Resources {
	return s.resources
}

// HighScore returns the best momentum reached
func (s *Session) HighScore() int {
	return s.highScore
}

// Ending returns how the run finished, EndingNone while it runs
func (s *Session) Ending() story.Ending {
	return s.ending
}

// Outcome returns the text of the last choice's outcome
func (s *Session) Outcome() string {
	return s.outcome
}

// ChallengeKind returns the gate's mini-game while intro, challenge or result is shown
func (s *Session) ChallengeKind() entity.ChallengeKind {
	return s.challengeKind
}

// ActiveChallenge returns the running mini-game, nil outside StateChallenge
func (s *Session) ActiveChallenge() challenge.Challenge {
	return s.challenge
}

// LastScore returns the score of the last finished challenge
func (s *Session) LastScore() int {
	return s.lastScore
}
