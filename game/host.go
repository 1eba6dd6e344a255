package game

import "github.com/SvenDH/go-bartog/ui"

// Game drives a State from a frontend: it owns the input masks and the per
// frame command and sound buffers.
type Game struct {
	State *State

	input    ui.Input
	commands ui.Commands
	speaker  ui.Speaker
}

func NewGame(cfg Config, logger Logger) (*Game, error) {
	s, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Game{State: s}, nil
}

// Frame runs one tick. The returned slices are reused by the next call.
func (g *Game) Frame() ([]ui.Command, []ui.SFX) {
	g.commands.Reset()
	g.speaker.Clear()

	g.State.UpdateAndRender(&g.commands, g.input, &g.speaker)

	g.input.Previous = g.input.Gamepad
	return g.commands.Slice(), g.speaker.Slice()
}

// Press marks b as held. A press of a button that is already held counts as
// a new press on the next frame, so key repeat works.
func (g *Game) Press(b ui.Button) {
	g.input.Previous.Remove(b)
	g.input.Gamepad.Insert(b)
}

func (g *Game) Release(b ui.Button) {
	g.input.Gamepad.Remove(b)
}

func (g *Game) Input() ui.Input { return g.input }
