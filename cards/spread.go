package cards

const (
	CardWidth  = 28
	CardHeight = 40
)

type Point struct {
	X, Y int
}

type Direction uint8

const (
	LeftToRight Direction = iota
	TopToBottom
)

// Spread lays a hand out along one axis between Min and Max, at Cross on the
// other axis. It only affects positions, never rules.
type Spread struct {
	Dir      Direction
	Min, Max int
	Cross    int
}

func LTR(minX, maxX, y int) Spread {
	return Spread{Dir: LeftToRight, Min: minX, Max: maxX, Cross: y}
}

func TTB(minY, maxY, x int) Spread {
	return Spread{Dir: TopToBottom, Min: minY, Max: maxY, Cross: x}
}

func (s Spread) extent() int {
	if s.Dir == LeftToRight {
		return CardWidth
	}
	return CardHeight
}

// CardOffset is the distance between consecutive cards of an n card hand.
// Cards overlap once the hand no longer fits and never spread further apart
// than one card plus a pixel.
func CardOffset(s Spread, n int) int {
	if n <= 1 {
		return 0
	}
	usable := s.Max - s.Min - s.extent()
	if usable <= 0 {
		return 0
	}
	return min(usable/(n-1), s.extent()+1)
}

// CardPosition is where card i of an n card hand is drawn.
func CardPosition(s Spread, n, i int) Point {
	along := s.Min + CardOffset(s, n)*i
	if s.Dir == LeftToRight {
		return Point{X: along, Y: s.Cross}
	}
	return Point{X: s.Cross, Y: along}
}
