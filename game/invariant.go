package game

import (
	"fmt"
	"slices"

	"github.com/SvenDH/go-bartog/cards"
)

// violation reports broken internal state. Strict games panic. Otherwise the
// pending choice and menu are dropped so the frame loop can carry on.
func (s *State) violation(msg string) {
	s.logger.log("invariant violation: " + msg)
	if s.cfg.Strict {
		panic("invariant violation: " + msg)
	}
	s.choice.Reset()
	s.context.Reset()
	s.menu = menuNone
}

// MissingCards returns every card that is not held exactly once by the
// deck, the discard pile, a hand or an animation.
func (s *State) MissingCards() []cards.Card {
	var seen [cards.DeckSize]int
	count := func(cs []cards.Card) {
		for _, c := range cs {
			if int(c) < cards.DeckSize {
				seen[c]++
			}
		}
	}
	count(s.deck.Cards())
	count(s.discard.Cards())
	for i := range s.hands {
		count(s.hands[i].Cards)
	}
	for _, a := range s.animations.All() {
		count([]cards.Card{a.Card.Card})
	}

	var missing []cards.Card
	for c, n := range seen {
		if n != 1 {
			missing = append(missing, cards.Card(c))
		}
	}
	return missing
}

func (s *State) checkCards() {
	missing := s.MissingCards()
	if len(missing) == 0 {
		return
	}
	short := make([]string, len(missing))
	for i, c := range missing {
		short[i] = c.Short()
	}
	slices.Sort(short)
	s.violation(fmt.Sprintf("cards not held exactly once: %v", short))
	if !s.cfg.Strict {
		s.Reset()
	}
}
