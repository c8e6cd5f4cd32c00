// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/runway/internal/application/scene"
	"github.com/younwookim/runway/internal/application/session"
	"github.com/younwookim/runway/internal/application/state"
)

// Playing renders a session and feeds it keyboard input
type Playing struct {
	session  *session.Session
	keys     keyboard
	screenW  int
	screenH  int
	savePath string

	shakeSeed uint32

	// OnToggleMute runs when M is pressed
	OnToggleMute func()
}

// New creates a new Playing scene over a started session. When savePath is
// set, F5 and leaving the scene write progress there.
func New(s *session.Session, screenW, screenH int, savePath string) *Playing {
	return &Playing{
		session:   s,
		keys:      ebitenKeyboard{},
		screenW:   screenW,
		screenH:   screenH,
		savePath:  savePath,
		shakeSeed: 1,
	}
}

// Update handles input and advances the session (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if err := p.handleInput(); err != nil {
		return nil, err
	}
	p.session.Update(dt)
	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleInput() error {
	s := p.session
	kb := p.keys

	if kb.JustPressed(ebiten.KeyEscape) {
		s.TogglePause()
		return nil
	}
	if kb.JustPressed(ebiten.KeyF5) {
		p.save()
	}
	if kb.JustPressed(ebiten.KeyM) && p.OnToggleMute != nil {
		p.OnToggleMute()
	}

	for _, i := range movementIntents(kb) {
		s.HandleIntent(i)
	}

	switch s.State() {
	case state.StateDecision:
		for i, k := range choiceKeys {
			if kb.JustPressed(k) && i < len(s.Node().Choices) {
				return s.Choose(i)
			}
		}
	case state.StateOutcome, state.StateChallengeResult:
		if anyPressed(kb, ebiten.KeyEnter, ebiten.KeySpace) {
			return s.Continue()
		}
	case state.StateChallengeIntro:
		if anyPressed(kb, ebiten.KeyEnter, ebiten.KeySpace) {
			s.StartChallenge()
		}
	case state.StateChallenge:
		for k, letter := range promptKeys {
			if kb.JustPressed(k) {
				s.PressChallengeKey(letter)
			}
		}
	case state.StateGameOver, state.StateVictory:
		if kb.JustPressed(ebiten.KeyEnter) {
			return s.Start("")
		}
	}
	return nil
}

func (p *Playing) save() {
	if p.savePath == "" || p.session.State().IsTerminal() {
		return
	}
	if err := p.session.Save(p.savePath); err != nil {
		log.Printf("Failed to save progress: %v", err)
		return
	}
	log.Printf("Progress saved: %s", p.savePath)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Session is already started by the host
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.save()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
