// Package window runs the game in an ebiten window.
package window

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-bartog/game"
	"github.com/SvenDH/go-bartog/ui"
)

// Program is an ebiten.Game around a game.Game.
type Program struct {
	Game      *game.Game
	Speaker   *Speaker
	ShowDebug bool
	// Scale of the PNGs written when F12 is pressed.
	ScreenshotScale int

	commands []ui.Command
	keys     ui.Keys[ebiten.Key]
	shoot    bool
}

func (p *Program) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		p.shoot = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		p.ShowDebug = !p.ShowDebug
	}
	pollKeys(p.Game, &p.keys)
	cmds, sfx := p.Game.Frame()
	p.commands = append(p.commands[:0], cmds...)
	if p.Speaker != nil {
		p.Speaker.Play(sfx)
	}
	return nil
}

func (p *Program) Draw(screen *ebiten.Image) {
	Draw(screen, p.commands)
	if p.shoot {
		p.shoot = false
		path := fmt.Sprintf("bartog-%s.png", ulid.Make())
		if err := writeScreenshot(path, grab(screen), p.ScreenshotScale); err != nil {
			log.Printf("screenshot: %v", err)
		} else {
			log.Printf("screenshot saved to %s", path)
		}
	}
	if p.ShowDebug {
		msg := fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS())
		ebitenutil.DebugPrint(screen, msg)
	}
}

func (p *Program) Layout(outsideW, outsideH int) (int, int) {
	return ui.ScreenWidth, ui.ScreenHeight
}

// Run opens a window scale times the game's resolution and blocks until it
// is closed.
func Run(g *game.Game, scale int, mute bool) error {
	ebiten.SetWindowSize(ui.ScreenWidth*scale, ui.ScreenHeight*scale)
	ebiten.SetWindowTitle("Bartog")
	p := &Program{Game: g, ScreenshotScale: scale}
	if !mute {
		p.Speaker = NewSpeaker()
	}
	return ebiten.RunGame(p)
}
