package anim

import "github.com/SvenDH/go-bartog/cards"

// Queue holds the animations in flight, oldest first.
type Queue struct {
	items []CardAnimation
}

func (q *Queue) Push(a CardAnimation) { q.items = append(q.items, a) }

func (q *Queue) Len() int { return len(q.items) }

// All is a read-only view, oldest first.
func (q *Queue) All() []CardAnimation { return q.items }

func (q *Queue) Clear() { q.items = nil }

// CountPending returns how many queued animations satisfy match.
func (q *Queue) CountPending(match func(Action) bool) int {
	n := 0
	for _, a := range q.items {
		if match(a.Action) {
			n++
		}
	}
	return n
}

// Advance steps every animation once. Animations that arrive are removed and
// passed to done, newest first, together with the position they had before
// this step. done may Push; those animations are kept but not stepped until
// the next call.
func (q *Queue) Advance(done func(a CardAnimation, last cards.Point)) {
	current := q.items
	q.items = nil

	live := make([]CardAnimation, 0, len(current))
	for i := len(current) - 1; i >= 0; i-- {
		a := current[i]
		last := a.Card.Point
		a.ApproachTarget()
		if a.IsComplete() {
			done(a, last)
			continue
		}
		live = append(live, a)
	}

	for i, j := 0, len(live)-1; i < j; i, j = i+1, j-1 {
		live[i], live[j] = live[j], live[i]
	}
	q.items = append(live, q.items...)
}
