package ui

import "github.com/SvenDH/go-bartog/cards"

type Colour uint8

const (
	Green Colour = iota
	White
	Black
	Red
	Blue
	Yellow
	Grey
	Purple
)

// Look is the visual state of a widget.
type Look uint8

const (
	LookNormal Look = iota
	LookHot
	LookPressed
)

// Command is one declarative draw call. Frontends switch over the concrete
// types.
type Command interface {
	isCommand()
}

type (
	Clear struct {
		Colour Colour
	}
	Rect struct {
		X, Y, W, H int
		Colour     Colour
	}
	// Panel is a framed window, drawn over whatever is below it.
	Panel struct {
		X, Y, W, H int
	}
	Card struct {
		Card        cards.Card
		X, Y        int
		Highlighted bool
	}
	CardBack struct {
		X, Y int
	}
	Text struct {
		Text   string
		X, Y   int
		Colour Colour
	}
	ButtonChrome struct {
		X, Y, W, H int
		Text       string
		Look       Look
	}
	Checkbox struct {
		X, Y    int
		Text    string
		Checked bool
		Look    Look
	}
)

func (Clear) isCommand()        {}
func (Rect) isCommand()         {}
func (Panel) isCommand()        {}
func (Card) isCommand()         {}
func (CardBack) isCommand()     {}
func (Text) isCommand()         {}
func (ButtonChrome) isCommand() {}
func (Checkbox) isCommand()     {}

// Commands is the append-only draw list of one frame.
type Commands struct {
	list []Command
}

func (c *Commands) Push(cmd Command) { c.list = append(c.list, cmd) }

func (c *Commands) Reset() { c.list = c.list[:0] }

func (c *Commands) Slice() []Command { return c.list }

func (c *Commands) ClearTo(colour Colour) { c.Push(Clear{Colour: colour}) }

// Fill draws a solid rectangle.
func (c *Commands) Fill(x, y, w, h int, colour Colour) {
	c.Push(Rect{X: x, Y: y, W: w, H: h, Colour: colour})
}

func (c *Commands) DrawCard(card cards.Card, x, y int) {
	c.Push(Card{Card: card, X: x, Y: y})
}

func (c *Commands) DrawHighlightedCard(card cards.Card, x, y int) {
	c.Push(Card{Card: card, X: x, Y: y, Highlighted: true})
}

func (c *Commands) DrawCardBack(x, y int) { c.Push(CardBack{X: x, Y: y}) }

// Print draws text with its top left corner at x, y. Newlines start new rows.
func (c *Commands) Print(text string, x, y int, colour Colour) {
	c.Push(Text{Text: text, X: x, Y: y, Colour: colour})
}

// FullWindow frames the whole screen for a dialog.
func (c *Commands) FullWindow() {
	c.Push(Panel{X: 0, Y: 0, W: ScreenWidth, H: ScreenHeight})
}
