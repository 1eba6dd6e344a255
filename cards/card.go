package cards

import "fmt"

type Suit uint8
type Rank uint8

// Card is a value in 0..DeckSize-1. The suit is c/RanksPerSuit and the rank is
// c%RanksPerSuit, ace first.
type Card uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

const (
	SuitCount    = 4
	RanksPerSuit = 13
	DeckSize     = SuitCount * RanksPerSuit
)

// Suits lists every suit in canonical order.
var Suits = [SuitCount]Suit{Clubs, Diamonds, Hearts, Spades}

func New(suit Suit, rank Rank) Card {
	return Card(uint8(suit)*RanksPerSuit + uint8(rank))
}

func (c Card) Suit() Suit { return Suit(uint8(c) / RanksPerSuit) }
func (c Card) Rank() Rank { return Rank(uint8(c) % RanksPerSuit) }

// Wild reports whether c is an eight.
func (c Card) Wild() bool { return c.Rank() == Eight }

// Next returns the card n places after c, wrapping around the deck.
func (c Card) Next(n int) Card {
	v := (int(c) + n) % DeckSize
	if v < 0 {
		v += DeckSize
	}
	return Card(v)
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return "unknown"
}

// Char is the one letter abbreviation used in rule files and narrow labels.
func (s Suit) Char() byte {
	return "CDHS?"[min(int(s), SuitCount)]
}

// Red reports whether the suit is drawn in red.
func (s Suit) Red() bool { return s == Diamonds || s == Hearts }

var rankNames = [RanksPerSuit]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

var rankShort = [RanksPerSuit]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

func (r Rank) String() string {
	if int(r) >= RanksPerSuit {
		return "unknown"
	}
	return rankNames[r]
}

func (r Rank) Short() string {
	if int(r) >= RanksPerSuit {
		return "?"
	}
	return rankShort[r]
}

// String returns e.g. "Queen of Hearts".
func (c Card) String() string {
	if int(c) >= DeckSize {
		return fmt.Sprintf("card(%d)", uint8(c))
	}
	return c.Rank().String() + " of " + c.Suit().String()
}

// Short returns e.g. "QH" or "10S".
func (c Card) Short() string {
	return c.Rank().Short() + string(c.Suit().Char())
}

// Article returns "an" for cards whose name starts with a vowel sound.
func (c Card) Article() string {
	if r := c.Rank(); r == Ace || r == Eight {
		return "an"
	}
	return "a"
}

// ParseSuit accepts a suit letter (C, D, H, S).
func ParseSuit(b byte) (Suit, bool) {
	for _, s := range Suits {
		if s.Char() == b {
			return s, true
		}
	}
	return 0, false
}

// ParseRank accepts the short rank names used by Short.
func ParseRank(s string) (Rank, bool) {
	for i, name := range rankShort {
		if name == s {
			return Rank(i), true
		}
	}
	return 0, false
}

// Parse reads the Short form of a card.
func Parse(s string) (Card, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("card %q: too short", s)
	}
	rank, ok := ParseRank(s[:len(s)-1])
	if !ok {
		return 0, fmt.Errorf("card %q: unknown rank", s)
	}
	suit, ok := ParseSuit(s[len(s)-1])
	if !ok {
		return 0, fmt.Errorf("card %q: unknown suit", s)
	}
	return New(suit, rank), nil
}
