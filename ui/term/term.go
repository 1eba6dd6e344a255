// Package term runs the game in a terminal. Each character cell stands for
// one glyph of the game's font.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/SvenDH/go-bartog/game"
	"github.com/SvenDH/go-bartog/ui"
)

const frameTime = 16 * time.Millisecond

// Terminal drives a game.Game from tcell events. Terminals report key
// presses but not releases, so every key is a tap: pressed for one frame
// and released on the next.
type Terminal struct {
	Game    *game.Game
	Screen  tcell.Screen
	Speaker *Speaker

	pressed []ui.Button
}

// handle feeds one event to the game. It returns false when the player
// quits.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		b, quit := button(ev)
		if quit {
			return false
		}
		if b != 0 {
			t.Game.Press(b)
			t.pressed = append(t.pressed, b)
		}
	case *tcell.EventResize:
		t.Screen.Sync()
	}
	return true
}

// frame runs one tick and releases the buttons pressed before it.
func (t *Terminal) frame() []ui.Command {
	cmds, sfx := t.Game.Frame()
	for _, b := range t.pressed {
		t.Game.Release(b)
	}
	t.pressed = t.pressed[:0]
	if t.Speaker != nil {
		t.Speaker.Play(sfx)
	}
	return cmds
}

func (t *Terminal) Loop() {
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.Screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handle(ev) {
				return
			}
		case <-ticker.C:
			cmds := t.frame()
			t.Screen.Clear()
			Render(t.Screen, cmds)
			t.Screen.Show()
		}
	}
}

// Run takes over the terminal until the player quits.
func Run(g *game.Game, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	t := &Terminal{Game: g, Screen: screen}
	if !mute {
		sp, err := NewSpeaker()
		if err != nil {
			return err
		}
		defer sp.Close()
		t.Speaker = sp
	}
	t.Loop()
	return nil
}
