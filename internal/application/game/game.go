// Package game provides the ebiten.Game that owns the current scene and
// measures the frame delta.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/runway/internal/application/scene"
)

// defaultDT is used for the first frame, before a delta can be measured
const defaultDT = 1.0 / 60.0

// Game implements ebiten.Game and manages Scene transitions. Each Update
// passes the wall time since the previous Update, clamped to maxDT.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	maxDT   float64

	now  func() time.Time
	last time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, maxDT float64) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		maxDT:   maxDT,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.frameDelta())
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		// the new scene starts with a fresh delta
		g.last = time.Time{}
	}

	return nil
}

func (g *Game) frameDelta() float64 {
	now := g.now()
	dt := defaultDT
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	if dt < 0 {
		dt = 0
	}
	if g.maxDT > 0 && dt > g.maxDT {
		dt = g.maxDT
	}
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetClock replaces the time source. Useful for testing.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
