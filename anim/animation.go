// Package anim moves cards between the deck, hands and the discard pile. An
// animation owns its card while it is in flight and hands it on through its
// completion action when it arrives.
package anim

import (
	"math"

	"github.com/SvenDH/go-bartog/cards"
)

// Step is how far a card travels per frame, in pixels.
const Step = 6

// Action says what happens to the card when it arrives.
type Action interface {
	isAction()
}

type MoveToDiscard struct{}

// SelectWildSuit holds the card until Player has declared a suit.
type SelectWildSuit struct {
	Player int
}

type MoveToHand struct {
	Player int
}

func (MoveToDiscard) isAction()  {}
func (SelectWildSuit) isAction() {}
func (MoveToHand) isAction()     {}

type CardAnimation struct {
	Card   cards.PositionedCard
	Target cards.Point
	Action Action
}

func New(card cards.PositionedCard, target cards.Point, action Action) CardAnimation {
	return CardAnimation{Card: card, Target: target, Action: action}
}

// Lerp is unclamped linear interpolation from a (t = 0) to b (t = 1).
func Lerp(a, t, b float32) float32 {
	return a + t*(b-a)
}

// ApproachTarget moves the card Step pixels along the line to its target,
// snapping once it is within one step.
func (a *CardAnimation) ApproachTarget() {
	dx := float64(a.Target.X - a.Card.X)
	dy := float64(a.Target.Y - a.Card.Y)
	dist := math.Hypot(dx, dy)
	if dist <= Step {
		a.Card.Point = a.Target
		return
	}
	t := float32(Step / dist)
	a.Card.X = int(math.Round(float64(Lerp(float32(a.Card.X), t, float32(a.Target.X)))))
	a.Card.Y = int(math.Round(float64(Lerp(float32(a.Card.Y), t, float32(a.Target.Y)))))
}

func (a *CardAnimation) IsComplete() bool {
	return a.Card.Point == a.Target
}
