package cards

// PositionedCard is a card together with where it is drawn.
type PositionedCard struct {
	Card Card
	Point
}

type Hand struct {
	Cards  []Card
	Spread Spread
}

func NewHand(spread Spread) Hand {
	return Hand{Spread: spread}
}

func (h *Hand) Len() int { return len(h.Cards) }

func (h *Hand) Push(c Card) { h.Cards = append(h.Cards, c) }

func (h *Hand) Get(i int) (Card, bool) {
	if i < 0 || i >= len(h.Cards) {
		return 0, false
	}
	return h.Cards[i], true
}

func (h *Hand) Remove(i int) (Card, bool) {
	c, ok := h.Get(i)
	if !ok {
		return 0, false
	}
	h.Cards = append(h.Cards[:i], h.Cards[i+1:]...)
	return c, true
}

// RemovePositioned removes card i and returns it at the position it had in
// the hand before removal.
func (h *Hand) RemovePositioned(i int) (PositionedCard, bool) {
	pos := CardPosition(h.Spread, len(h.Cards), i)
	c, ok := h.Remove(i)
	if !ok {
		return PositionedCard{}, false
	}
	return PositionedCard{Card: c, Point: pos}, true
}

// MostCommonSuit returns the suit held most often. Ties go to the suit that
// comes first in Suits. An empty hand has no answer.
func (h *Hand) MostCommonSuit() (Suit, bool) {
	if len(h.Cards) == 0 {
		return 0, false
	}
	var counts [SuitCount]int
	for _, c := range h.Cards {
		counts[c.Suit()]++
	}
	best := Suits[0]
	for _, s := range Suits[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best, true
}
