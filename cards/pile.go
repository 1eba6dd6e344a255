package cards

import "github.com/SvenDH/go-bartog/rng"

// Pile is a stack of cards with the top at the end.
type Pile struct {
	cards []Card
}

// NewDeck returns a full, unshuffled deck.
func NewDeck() Pile {
	p := Pile{cards: make([]Card, 0, DeckSize)}
	for c := 0; c < DeckSize; c++ {
		p.cards = append(p.cards, Card(c))
	}
	return p
}

func (p *Pile) Len() int { return len(p.cards) }

func (p *Pile) Push(cards ...Card) { p.cards = append(p.cards, cards...) }

// Draw removes and returns the top card.
func (p *Pile) Draw() (Card, bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	card := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return card, true
}

func (p *Pile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	return p.cards[len(p.cards)-1], true
}

// Drain empties the pile and returns what it held.
func (p *Pile) Drain() []Card {
	cards := p.cards
	p.cards = nil
	return cards
}

func (p *Pile) Shuffle(src rng.Source) { rng.Shuffle(src, p.cards) }

// Cards is a read-only view, bottom first.
func (p *Pile) Cards() []Card { return p.cards }
