package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/runway/internal/application/session"
	"github.com/younwookim/runway/internal/application/state"
	"github.com/younwookim/runway/internal/application/system"
	"github.com/younwookim/runway/internal/domain/entity"
)

// host maps terminal key events onto a session
type host struct {
	session  *session.Session
	hold     *holdTracker
	savePath string
	quit     bool

	onMute func()
}

func newHost(s *session.Session, savePath string) *host {
	return &host{
		session:  s,
		hold:     newHoldTracker(holdTimeout),
		savePath: savePath,
	}
}

// movementKey maps a terminal key to a movement key
func movementKey(key tcell.Key, r rune) (system.Key, bool) {
	switch key {
	case tcell.KeyLeft:
		return system.KeyLeft, true
	case tcell.KeyRight:
		return system.KeyRight, true
	case tcell.KeyUp:
		return system.KeyJump, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'h':
			return system.KeyLeft, true
		case 'd', 'l':
			return system.KeyRight, true
		case 'w', 'k', ' ':
			return system.KeyJump, true
		}
	}
	return 0, false
}

// handleKey applies one key event
func (h *host) handleKey(key tcell.Key, r rune, now time.Time) error {
	s := h.session

	switch {
	case key == tcell.KeyCtrlC, (key == tcell.KeyRune && r == 'q'):
		h.quit = true
		return nil
	case key == tcell.KeyEscape:
		h.release()
		s.TogglePause()
		return nil
	case key == tcell.KeyF5:
		h.save()
		return nil
	case key == tcell.KeyRune && r == 'm':
		if h.onMute != nil {
			h.onMute()
		}
		return nil
	}

	st := s.State()
	if st == state.StateChallenge && s.ChallengeKind() == entity.ChallengeQuickTime {
		if key == tcell.KeyRune {
			s.PressChallengeKey(string(r))
		}
		return nil
	}

	if k, ok := movementKey(key, r); ok {
		for _, i := range h.hold.Press(k, now) {
			s.HandleIntent(i)
		}
	}

	confirm := key == tcell.KeyEnter || (key == tcell.KeyRune && r == ' ')
	switch st {
	case state.StateDecision:
		if key == tcell.KeyRune && r >= '1' && r <= '9' {
			i := int(r - '1')
			if i < len(s.Node().Choices) {
				return s.Choose(i)
			}
		}
	case state.StateOutcome, state.StateChallengeResult:
		if confirm {
			return s.Continue()
		}
	case state.StateChallengeIntro:
		if confirm {
			h.release()
			s.StartChallenge()
		}
	case state.StateGameOver, state.StateVictory:
		if key == tcell.KeyEnter {
			return s.Start("")
		}
	}
	return nil
}

// tick releases expired holds and advances the session
func (h *host) tick(now time.Time, dt float64) {
	for _, i := range h.hold.Expire(now) {
		h.session.HandleIntent(i)
	}
	h.session.Update(dt)
}

func (h *host) release() {
	for _, i := range h.hold.ReleaseAll() {
		h.session.HandleIntent(i)
	}
}

func (h *host) save() {
	if h.savePath == "" || h.session.State().IsTerminal() {
		return
	}
	if err := h.session.Save(h.savePath); err != nil {
		log.Printf("Failed to save progress: %v", err)
		return
	}
	log.Printf("Progress saved: %s", h.savePath)
}
