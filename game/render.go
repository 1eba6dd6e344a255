package game

import (
	"github.com/SvenDH/go-bartog/anim"
	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/ui"
)

// declaredPos is where the declared suit letter sits, right of the deck.
func declaredPos() (int, int) {
	return DeckPos.X + cards.CardWidth + 2, DeckPos.Y + (cards.CardHeight-ui.FontSize)/2
}

func (s *State) render(cmds *ui.Commands) {
	cmds.ClearTo(ui.Green)

	for p := range s.cfg.CPUs {
		s.drawHand(cmds, p, false)
	}

	if s.deck.Len() > 0 {
		cmds.DrawCardBack(DeckPos.X, DeckPos.Y)
	}
	if s.hasDeclared {
		colour := ui.Black
		if s.declared.Red() {
			colour = ui.Red
		}
		x, y := declaredPos()
		cmds.Fill(x, y, ui.FontAdvance+1, ui.FontSize, ui.White)
		cmds.Print(string(s.declared.Char()), x, y, colour)
	}
	if top, ok := s.discard.Top(); ok {
		cmds.DrawCard(top, DiscardPos.X, DiscardPos.Y)
	}

	s.drawHand(cmds, s.Human(), true)

	for _, a := range s.animations.All() {
		switch a.Action.(type) {
		case anim.MoveToHand:
			cmds.DrawCardBack(a.Card.X, a.Card.Y)
		case anim.MoveToDiscard, anim.SelectWildSuit:
			cmds.DrawCard(a.Card.Card, a.Card.X, a.Card.Y)
		}
	}
}

// drawHand draws player's hand, face up with the cursor card highlighted and
// drawn last, or face down.
func (s *State) drawHand(cmds *ui.Commands, player int, faceUp bool) {
	hand := &s.hands[player]
	n := hand.Len()
	for i, card := range hand.Cards {
		pos := cards.CardPosition(hand.Spread, n, i)
		switch {
		case !faceUp:
			cmds.DrawCardBack(pos.X, pos.Y)
		case i != s.handIndex:
			cmds.DrawCard(card, pos.X, pos.Y)
		}
	}
	if card, ok := hand.Get(s.handIndex); ok && faceUp {
		pos := cards.CardPosition(hand.Spread, n, s.handIndex)
		cmds.DrawHighlightedCard(card, pos.X, pos.Y)
	}
}
