package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/ui"
)

var palette = map[ui.Colour]color.RGBA{
	ui.Green:  {0x00, 0x87, 0x51, 0xff},
	ui.White:  {0xff, 0xf1, 0xe8, 0xff},
	ui.Black:  {0x00, 0x00, 0x00, 0xff},
	ui.Red:    {0xff, 0x00, 0x4d, 0xff},
	ui.Blue:   {0x29, 0xad, 0xff, 0xff},
	ui.Yellow: {0xff, 0xec, 0x27, 0xff},
	ui.Grey:   {0x5f, 0x57, 0x4f, 0xff},
	ui.Purple: {0x7e, 0x25, 0x53, 0xff},
}

var (
	windowFill = color.RGBA{0x1d, 0x2b, 0x53, 0xff}
	cardBack   = color.RGBA{0x83, 0x76, 0x9c, 0xff}
)

var face = text.NewGoXFace(basicfont.Face7x13)

func rect(dst *ebiten.Image, x, y, w, h int, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func stroke(dst *ebiten.Image, x, y, w, h int, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), width, c, false)
}

func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = ui.FontSize
	text.Draw(dst, s, face, op)
}

func printCentered(dst *ebiten.Image, s string, x, y, w, h int, c color.Color) {
	tw, th := ui.TextDimensions(s)
	drawText(dst, s, x+(w-tw)/2, y+(h-th)/2, c)
}

func drawCard(dst *ebiten.Image, card cards.Card, x, y int, highlighted bool) {
	if highlighted {
		y -= 4
	}
	rect(dst, x, y, cards.CardWidth, cards.CardHeight, palette[ui.White])
	edge := palette[ui.Black]
	if highlighted {
		edge = palette[ui.Yellow]
	}
	stroke(dst, x, y, cards.CardWidth, cards.CardHeight, 1, edge)

	ink := palette[ui.Black]
	if card.Suit().Red() {
		ink = palette[ui.Red]
	}
	drawText(dst, card.Rank().Short(), x+2, y+1, ink)
	drawText(dst, string(card.Suit().Char()), x+2, y+1+ui.FontSize, ink)
}

func drawCardBack(dst *ebiten.Image, x, y int) {
	rect(dst, x, y, cards.CardWidth, cards.CardHeight, cardBack)
	stroke(dst, x, y, cards.CardWidth, cards.CardHeight, 1, palette[ui.Black])
	stroke(dst, x+3, y+3, cards.CardWidth-6, cards.CardHeight-6, 1, palette[ui.White])
}

func drawButton(dst *ebiten.Image, b ui.ButtonChrome) {
	fill, edge, ink := palette[ui.Grey], palette[ui.White], palette[ui.White]
	switch b.Look {
	case ui.LookHot:
		edge = palette[ui.Yellow]
	case ui.LookPressed:
		fill, ink = palette[ui.Yellow], palette[ui.Black]
	}
	rect(dst, b.X, b.Y, b.W, b.H, fill)
	stroke(dst, b.X, b.Y, b.W, b.H, 2, edge)
	printCentered(dst, b.Text, b.X, b.Y, b.W, b.H, ink)
}

func drawCheckbox(dst *ebiten.Image, c ui.Checkbox) {
	edge := palette[ui.White]
	switch c.Look {
	case ui.LookHot:
		edge = palette[ui.Yellow]
	case ui.LookPressed:
		edge = palette[ui.Blue]
	}
	stroke(dst, c.X, c.Y, ui.CheckboxSize, ui.CheckboxSize, 1, edge)
	if c.Checked {
		rect(dst, c.X+2, c.Y+2, ui.CheckboxSize-4, ui.CheckboxSize-4, edge)
	}
	drawText(dst, c.Text, c.X+ui.CheckboxSize+4, c.Y+(ui.CheckboxSize-ui.FontSize)/2, palette[ui.White])
}

// Draw renders one frame of commands.
func Draw(dst *ebiten.Image, cmds []ui.Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case ui.Clear:
			dst.Fill(palette[c.Colour])
		case ui.Rect:
			rect(dst, c.X, c.Y, c.W, c.H, palette[c.Colour])
		case ui.Panel:
			rect(dst, c.X, c.Y, c.W, c.H, windowFill)
			stroke(dst, c.X+2, c.Y+2, c.W-4, c.H-4, 2, palette[ui.White])
		case ui.Card:
			drawCard(dst, c.Card, c.X, c.Y, c.Highlighted)
		case ui.CardBack:
			drawCardBack(dst, c.X, c.Y)
		case ui.Text:
			drawText(dst, c.Text, c.X, c.Y, palette[c.Colour])
		case ui.ButtonChrome:
			drawButton(dst, c)
		case ui.Checkbox:
			drawCheckbox(dst, c)
		}
	}
}
