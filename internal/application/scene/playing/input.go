package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/runway/internal/application/system"
)

// keyboard reports key edges for one frame and which keys are down
type keyboard interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
	Pressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }
func (ebitenKeyboard) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }

// Movement bindings; both WASD and arrows
var movementBindings = []struct {
	key    ebiten.Key
	intent system.Key
}{
	{ebiten.KeyA, system.KeyLeft},
	{ebiten.KeyArrowLeft, system.KeyLeft},
	{ebiten.KeyD, system.KeyRight},
	{ebiten.KeyArrowRight, system.KeyRight},
	{ebiten.KeyW, system.KeyJump},
	{ebiten.KeyArrowUp, system.KeyJump},
	{ebiten.KeySpace, system.KeyJump},
}

// Quick-time prompt letters
var promptKeys = map[ebiten.Key]string{
	ebiten.KeyA: "a",
	ebiten.KeyS: "s",
	ebiten.KeyD: "d",
	ebiten.KeyF: "f",
}

var choiceKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// movementIntents translates this frame's key edges into world intents.
// Releases are always reported so a key held across a panel never sticks,
// unless another key bound to the same direction is still down.
func movementIntents(kb keyboard) []system.Intent {
	var intents []system.Intent
	for _, b := range movementBindings {
		if kb.JustPressed(b.key) {
			intents = append(intents, system.KeyDownIntent{Key: b.intent})
		}
		if kb.JustReleased(b.key) && !boundKeyDown(kb, b.intent) {
			intents = append(intents, system.KeyUpIntent{Key: b.intent})
		}
	}
	return intents
}

func boundKeyDown(kb keyboard, k system.Key) bool {
	for _, b := range movementBindings {
		if b.intent == k && kb.Pressed(b.key) {
			return true
		}
	}
	return false
}

func anyPressed(kb keyboard, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if kb.JustPressed(k) {
			return true
		}
	}
	return false
}
