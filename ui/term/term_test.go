package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/game"
	"github.com/SvenDH/go-bartog/ui"
)

type grid struct {
	w, h  int
	runes map[[2]int]rune
	style map[[2]int]tcell.Style
}

func newGrid() *grid {
	return &grid{w: Cols, h: Rows, runes: map[[2]int]rune{}, style: map[[2]int]tcell.Style{}}
}

func (g *grid) SetContent(x, y int, r rune, _ []rune, st tcell.Style) {
	g.runes[[2]int{x, y}] = r
	g.style[[2]int{x, y}] = st
}

func (g *grid) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return g.runes[[2]int{x, y}], nil, g.style[[2]int{x, y}], 1
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) row(y int) string {
	out := make([]rune, g.w)
	for x := range out {
		r := g.runes[[2]int{x, y}]
		if r == 0 {
			r = ' '
		}
		out[x] = r
	}
	return string(out)
}

func TestRenderText(t *testing.T) {
	g := newGrid()
	Render(g, []ui.Command{
		ui.Clear{Colour: ui.Green},
		ui.Text{Text: "you win!\nagain?", X: CellWidth * 2, Y: CellHeight, Colour: ui.White},
	})
	if got := g.row(1)[2:10]; got != "you win!" {
		t.Fatalf("row 1 = %q", got)
	}
	if got := g.row(2)[2:8]; got != "again?" {
		t.Fatalf("row 2 = %q", got)
	}
	_, bg, _ := g.style[[2]int{2, 1}].Decompose()
	if bg != colours[ui.Green] {
		t.Fatalf("text replaced the background")
	}
}

func TestRenderCard(t *testing.T) {
	g := newGrid()
	c, _ := cards.Parse("10H")
	Render(g, []ui.Command{ui.Card{Card: c, X: 0, Y: 0}})
	if got := g.row(0)[:3]; got != "10H" {
		t.Fatalf("card label = %q", got)
	}
	fg, _, _ := g.style[[2]int{0, 0}].Decompose()
	if fg != tcell.ColorRed {
		t.Fatalf("hearts not drawn red")
	}
}

func TestRenderWidgets(t *testing.T) {
	g := newGrid()
	Render(g, []ui.Command{
		ui.ButtonChrome{X: 0, Y: 0, W: CellWidth * 8, H: CellHeight, Text: "yes", Look: ui.LookHot},
		ui.Checkbox{X: 0, Y: CellHeight * 2, Text: "QH", Checked: true},
	})
	if got := g.row(0); got[:8] != " [yes]  " {
		t.Fatalf("button row = %q", got[:8])
	}
	if got := g.row(2)[:6]; got != "[x] QH" {
		t.Fatalf("checkbox row = %q", got)
	}
}

func TestKeyTaps(t *testing.T) {
	cfg := game.DefaultConfig()
	g, err := game.NewGame(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	term := &Terminal{Game: g}

	if !term.handle(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Fatalf("z quit the game")
	}
	if !g.Input().Held(ui.ButtonA) {
		t.Fatalf("z did not press A")
	}
	term.frame()
	if g.Input().Held(ui.ButtonA) {
		t.Fatalf("A still held after the frame")
	}
	if term.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatalf("escape did not quit")
	}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want ui.Button
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ui.ButtonA},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ui.ButtonB},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ui.ButtonSelect},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ui.ButtonStart},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ui.ButtonLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), 0},
	}
	for _, tt := range tests {
		if got, quit := button(tt.ev); got != tt.want || quit {
			t.Errorf("button(%v) = %v, %v", tt.ev.Name(), got, quit)
		}
	}
}

func TestRenderRect(t *testing.T) {
	g := newGrid()
	x, y := CellWidth*3, CellHeight*2
	Render(g, []ui.Command{
		ui.Clear{Colour: ui.Green},
		ui.Rect{X: x, Y: y, W: ui.FontAdvance + 1, H: ui.FontSize, Colour: ui.White},
		ui.Text{Text: "S", X: x, Y: y, Colour: ui.Black},
	})
	if got := g.row(2)[3:4]; got != "S" {
		t.Fatalf("row 2 = %q", g.row(2))
	}
	fg, bg, _ := g.style[[2]int{3, 2}].Decompose()
	if bg != colours[ui.White] || fg != colours[ui.Black] {
		t.Fatalf("suit cell colours = %v on %v", fg, bg)
	}
	if _, bg, _ := g.style[[2]int{4, 2}].Decompose(); bg != colours[ui.Green] {
		t.Fatalf("rect spilled into the next cell")
	}
}
