package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/SvenDH/go-bartog/ui"
)

const (
	delay    = 30
	interval = 3
)

type binding struct {
	key    ebiten.Key
	button ui.Button
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyZ, ui.ButtonA, false},
	{ebiten.KeySpace, ui.ButtonA, false},
	{ebiten.KeyX, ui.ButtonB, false},
	{ebiten.KeyBackspace, ui.ButtonB, false},
	{ebiten.KeyTab, ui.ButtonSelect, false},
	{ebiten.KeyEnter, ui.ButtonStart, false},
	{ebiten.KeyArrowUp, ui.ButtonUp, true},
	{ebiten.KeyArrowDown, ui.ButtonDown, true},
	{ebiten.KeyArrowLeft, ui.ButtonLeft, true},
	{ebiten.KeyArrowRight, ui.ButtonRight, true},
}

// repeatingKeyPressed returns true on first press and then at an interval while held
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	if d >= delay && (d-delay)%interval == 0 {
		return true
	}
	return false
}

// Buttons is the part of the game a keyboard drives.
type Buttons interface {
	Press(ui.Button)
	Release(ui.Button)
}

func pollKeys(b Buttons, keys *ui.Keys[ebiten.Key]) {
	for _, k := range bindings {
		switch {
		case k.repeat && repeatingKeyPressed(k.key),
			!k.repeat && inpututil.IsKeyJustPressed(k.key):
			keys.Down(k.key, k.button)
			b.Press(k.button)
		case inpututil.IsKeyJustReleased(k.key):
			if button, ok := keys.Up(k.key); ok {
				b.Release(button)
			}
		}
	}
}
