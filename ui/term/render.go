package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/ui"
)

// A cell covers one character of the game's font.
const (
	CellWidth  = ui.FontAdvance
	CellHeight = ui.FontSize

	Cols = (ui.ScreenWidth + CellWidth - 1) / CellWidth
	Rows = (ui.ScreenHeight + CellHeight - 1) / CellHeight

	cardCols = (cards.CardWidth + CellWidth - 1) / CellWidth
	cardRows = (cards.CardHeight + CellHeight - 1) / CellHeight
)

// Surface is the part of tcell.Screen the renderer draws on.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	Size() (width, height int)
}

var colours = map[ui.Colour]tcell.Color{
	ui.Green:  tcell.ColorDarkGreen,
	ui.White:  tcell.ColorWhite,
	ui.Black:  tcell.ColorBlack,
	ui.Red:    tcell.ColorRed,
	ui.Blue:   tcell.ColorBlue,
	ui.Yellow: tcell.ColorYellow,
	ui.Grey:   tcell.ColorGray,
	ui.Purple: tcell.ColorPurple,
}

var (
	windowStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	cardStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	backStyle   = tcell.StyleDefault.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite)
)

func cell(x, y int) (int, int) { return x / CellWidth, y / CellHeight }

func fill(s Surface, cx, cy, w, h int, r rune, style tcell.Style) {
	for y := cy; y < cy+h; y++ {
		for x := cx; x < cx+w; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}

// put writes text starting at a cell, keeping the background already there.
func put(s Surface, cx, cy int, text string, fg tcell.Color) {
	for i, line := range strings.Split(text, "\n") {
		x := cx
		for _, r := range line {
			_, _, style, _ := s.GetContent(x, cy+i)
			s.SetContent(x, cy+i, r, nil, style.Foreground(fg))
			x++
		}
	}
}

func box(s Surface, cx, cy, w, h int, style tcell.Style) {
	fill(s, cx, cy, w, h, ' ', style)
	if w < 2 || h < 2 {
		return
	}
	for x := cx + 1; x < cx+w-1; x++ {
		s.SetContent(x, cy, tcell.RuneHLine, nil, style)
		s.SetContent(x, cy+h-1, tcell.RuneHLine, nil, style)
	}
	for y := cy + 1; y < cy+h-1; y++ {
		s.SetContent(cx, y, tcell.RuneVLine, nil, style)
		s.SetContent(cx+w-1, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(cx, cy, tcell.RuneULCorner, nil, style)
	s.SetContent(cx+w-1, cy, tcell.RuneURCorner, nil, style)
	s.SetContent(cx, cy+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(cx+w-1, cy+h-1, tcell.RuneLRCorner, nil, style)
}

func drawCard(s Surface, c ui.Card) {
	cx, cy := cell(c.X, c.Y)
	style := cardStyle
	if c.Highlighted {
		style = style.Background(tcell.ColorYellow)
		cy--
	}
	fill(s, cx, cy, cardCols, cardRows, ' ', style)
	fg := tcell.ColorBlack
	if c.Card.Suit().Red() {
		fg = tcell.ColorRed
	}
	put(s, cx, cy, c.Card.Short(), fg)
}

func drawButton(s Surface, b ui.ButtonChrome) {
	cx, cy := cell(b.X, b.Y)
	w, h := max(b.W/CellWidth, 1), max(b.H/CellHeight, 1)
	style := tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)
	switch b.Look {
	case ui.LookHot:
		style = style.Foreground(tcell.ColorYellow).Bold(true)
	case ui.LookPressed:
		style = style.Reverse(true)
	}
	fill(s, cx, cy, w, h, ' ', style)
	label := b.Text
	if b.Look != ui.LookNormal {
		label = "[" + label + "]"
	}
	x := cx + max((w-len(label))/2, 0)
	for i, r := range label {
		s.SetContent(x+i, cy+h/2, r, nil, style)
	}
}

func drawCheckbox(s Surface, c ui.Checkbox) {
	cx, cy := cell(c.X, c.Y)
	mark := "[ ] "
	if c.Checked {
		mark = "[x] "
	}
	fg := tcell.ColorWhite
	if c.Look != ui.LookNormal {
		fg = tcell.ColorYellow
	}
	put(s, cx, cy, mark+c.Text, fg)
}

// Render draws one frame of commands onto s.
func Render(s Surface, cmds []ui.Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case ui.Clear:
			w, h := s.Size()
			fill(s, 0, 0, w, h, ' ', tcell.StyleDefault.Background(colours[c.Colour]))
		case ui.Rect:
			cx, cy := cell(c.X, c.Y)
			fill(s, cx, cy, c.W/CellWidth, c.H/CellHeight, ' ', tcell.StyleDefault.Background(colours[c.Colour]))
		case ui.Panel:
			cx, cy := cell(c.X, c.Y)
			box(s, cx, cy, c.W/CellWidth, c.H/CellHeight, windowStyle)
		case ui.Card:
			drawCard(s, c)
		case ui.CardBack:
			cx, cy := cell(c.X, c.Y)
			fill(s, cx, cy, cardCols, cardRows, '░', backStyle)
		case ui.Text:
			cx, cy := cell(c.X, c.Y)
			put(s, cx, cy, c.Text, colours[c.Colour])
		case ui.ButtonChrome:
			drawButton(s, c)
		case ui.Checkbox:
			drawCheckbox(s, c)
		}
	}
}
