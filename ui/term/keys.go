package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/SvenDH/go-bartog/ui"
)

var keyButtons = map[tcell.Key]ui.Button{
	tcell.KeyBackspace:  ui.ButtonB,
	tcell.KeyBackspace2: ui.ButtonB,
	tcell.KeyTab:        ui.ButtonSelect,
	tcell.KeyEnter:      ui.ButtonStart,
	tcell.KeyUp:         ui.ButtonUp,
	tcell.KeyDown:       ui.ButtonDown,
	tcell.KeyLeft:       ui.ButtonLeft,
	tcell.KeyRight:      ui.ButtonRight,
}

var runeButtons = map[rune]ui.Button{
	'z': ui.ButtonA,
	' ': ui.ButtonA,
	'x': ui.ButtonB,
}

// button maps a key event to a game button. quit is set for the keys that
// leave the game.
func button(ev *tcell.EventKey) (b ui.Button, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, true
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return 0, true
		}
		return runeButtons[ev.Rune()], false
	}
	return keyButtons[ev.Key()], false
}
