package ui

const (
	ScreenWidth  = 320
	ScreenHeight = 240

	SpriteSize  = 8
	FontAdvance = 7
	FontSize    = 13

	// Interior of a full window panel.
	InteriorSize         = ScreenWidth - 2*SpriteSize
	InteriorHeight       = ScreenHeight - 2*SpriteSize
	InteriorWidthInChars = InteriorSize / FontAdvance
)

type Area struct {
	X, Y, W, H int
}

// Interior is the area inside a full window panel.
var Interior = Area{X: SpriteSize, Y: SpriteSize, W: InteriorSize, H: InteriorHeight}

// CenterRect returns the top left corner of a w by h rectangle centred in r.
func CenterRect(w, h int, r Area) (int, int) {
	return r.X + (r.W-w)/2, r.Y + (r.H-h)/2
}

// CenterLine centres a single line of n characters in r.
func CenterLine(n int, r Area) (int, int) {
	return CenterRect(n*FontAdvance, FontSize, r)
}
