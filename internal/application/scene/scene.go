// Package scene defines the screen interface the ebiten host drives.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the windowed host.
//
// The game loop forwards Update and Draw to the current scene and swaps
// scenes when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt seconds of wall time. It returns the
	// next scene, nil to stay, or an error to stop the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced.
	OnExit()
}
