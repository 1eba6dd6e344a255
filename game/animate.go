package game

import (
	"fmt"

	"github.com/SvenDH/go-bartog/anim"
	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/ui"
)

func (s *State) moveToDiscard(card cards.Card) {
	if !card.Wild() {
		s.hasDeclared = false
	}
	s.discard.Push(card)
}

func (s *State) logWildSelection(player int) {
	if s.hasDeclared {
		s.event(fmt.Sprintf("%s selected %s.", s.PlayerName(player), s.declared))
	}
}

func (s *State) advanceAnimations(speaker *ui.Speaker) {
	s.animations.Advance(func(a anim.CardAnimation, last cards.Point) {
		card := a.Card.Card
		switch action := a.Action.(type) {
		case anim.MoveToDiscard:
			s.moveToDiscard(card)
			speaker.Request(ui.CardPlace)
		case anim.SelectWildSuit:
			if s.IsCPU(action.Player) {
				suit, ok := s.hands[action.Player].MostCommonSuit()
				if !ok {
					suit = card.Suit()
				}
				s.declare(suit)
				s.logWildSelection(action.Player)
				s.moveToDiscard(card)
				speaker.Request(ui.CardPlace)
				return
			}
			suit, ok, err := s.choice.ChooseSuit()
			if err != nil {
				s.violation(err.Error())
				ok = false
			}
			if ok {
				s.declare(suit)
				s.logWildSelection(action.Player)
				s.moveToDiscard(card)
				speaker.Request(ui.CardPlace)
				return
			}
			a.Card.Point = last
			s.animations.Push(a)
		case anim.MoveToHand:
			s.hands[action.Player].Push(card)
			speaker.Request(ui.CardPlace)
		}
	})
}
