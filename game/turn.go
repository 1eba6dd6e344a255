package game

import (
	"fmt"

	"github.com/SvenDH/go-bartog/anim"
	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/rng"
	"github.com/SvenDH/go-bartog/ui"
)

// CanPlay reports whether card may go on the discard pile right now.
func (s *State) CanPlay(card cards.Card) bool {
	top, ok := s.discard.Top()
	if !ok || card.Wild() {
		return true
	}
	if top.Wild() {
		return s.hasDeclared && s.declared == card.Suit()
	}
	return s.rules.IsPlayableOn(card, top)
}

// Playable returns the indices of the cards in player's hand that can be
// played.
func (s *State) Playable(player int) []int {
	var out []int
	for i, card := range s.hands[player].Cards {
		if s.CanPlay(card) {
			out = append(out, i)
		}
	}
	return out
}

func (s *State) cpuWouldPlay(player int) (int, bool) {
	return rng.Choose(s.rng, s.Playable(player))
}

func (s *State) moveCursor(input ui.Input, speaker *ui.Speaker) bool {
	switch {
	case input.PressedThisFrame(ui.ButtonRight):
		if s.handIndex < s.hands[s.Human()].Len()-1 {
			s.handIndex++
		}
	case input.PressedThisFrame(ui.ButtonLeft):
		s.handIndex = max(s.handIndex-1, 0)
	default:
		return false
	}
	speaker.Request(ui.CardSlide)
	return true
}

// discardAnimation takes card i out of player's hand and sends it to the
// discard pile.
func (s *State) discardAnimation(player, i int) (anim.CardAnimation, bool) {
	card, ok := s.hands[player].RemovePositioned(i)
	if !ok {
		return anim.CardAnimation{}, false
	}
	s.event(fmt.Sprintf("%s played %s %s.", s.PlayerName(player), card.Card.Article(), card.Card))

	if card.Card.Wild() {
		if s.animations.CountPending(isSelectWild) > 0 {
			s.violation("a second wild is waiting for its suit")
		}
		return anim.New(card, DiscardPos, anim.SelectWildSuit{Player: player}), true
	}
	return anim.New(card, DiscardPos, anim.MoveToDiscard{}), true
}

// drawAnimation takes the top of the deck and sends it to player's hand.
// An empty deck is refilled from everything but the top of the discard
// pile. With nothing left anywhere there is no animation.
func (s *State) drawAnimation(player int) (anim.CardAnimation, bool) {
	card, ok := s.deck.Draw()
	if !ok {
		top, ok := s.discard.Draw()
		if !ok {
			return anim.CardAnimation{}, false
		}
		s.deck.Push(s.discard.Drain()...)
		s.deck.Shuffle(s.rng)
		s.discard.Push(top)

		if card, ok = s.deck.Draw(); !ok {
			return anim.CardAnimation{}, false
		}
		s.event("the discard pile was shuffled into the deck.")
	}

	hand := &s.hands[player]
	n := hand.Len()
	target := cards.CardPosition(hand.Spread, n+1, n)
	s.event(fmt.Sprintf("%s drew a card.", s.PlayerName(player)))

	return anim.New(cards.PositionedCard{Card: card, Point: DeckPos}, target, anim.MoveToHand{Player: player}), true
}

func (s *State) push(a anim.CardAnimation, ok bool) {
	if ok {
		s.animations.Push(a)
	}
}

func (s *State) takeTurn(input ui.Input, speaker *ui.Speaker) {
	player := s.current
	if s.IsCPU(player) {
		if i, ok := s.cpuWouldPlay(player); ok {
			s.push(s.discardAnimation(player, i))
		} else {
			s.push(s.drawAnimation(player))
		}
		s.current++
	} else {
		switch {
		case s.moveCursor(input, speaker):
		case input.PressedThisFrame(ui.ButtonA):
			card, ok := s.hands[player].Get(s.handIndex)
			if !ok || !s.CanPlay(card) {
				break
			}
			s.push(s.discardAnimation(player, s.handIndex))
			s.handIndex = max(min(s.handIndex, s.hands[player].Len()-1), 0)
			s.current = 0
		case input.PressedThisFrame(ui.ButtonB):
			s.push(s.drawAnimation(player))
			s.current = 0
		case input.PressedThisFrame(ui.ButtonSelect):
			s.menu = menuPrompt
		}
	}

	var winners []int
	for p := range s.hands {
		if s.hands[p].Len() == 0 {
			winners = append(winners, p)
		}
	}
	if len(winners) > 0 {
		s.winners = winners
	}
}

func isSelectWild(a anim.Action) bool {
	_, ok := a.(anim.SelectWildSuit)
	return ok
}
