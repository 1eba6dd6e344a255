// Package rules holds the playability graph: for every card, the set of cards
// it may be played on. The graph is only changed by committing a list of
// Changes, so an edit session can be thrown away without touching it.
package rules

import (
	"math/bits"

	"github.com/SvenDH/go-bartog/cards"
)

// Edges is a set of cards, one bit per card.
type Edges uint64

const allEdges = Edges(1)<<cards.DeckSize - 1

func EdgesOf(cs ...cards.Card) Edges {
	var e Edges
	for _, c := range cs {
		e |= 1 << c
	}
	return e
}

func (e Edges) Has(c cards.Card) bool { return e&(1<<c) != 0 }

func (e *Edges) Toggle(c cards.Card) { *e ^= 1 << c }

func (e Edges) Len() int { return bits.OnesCount64(uint64(e & allEdges)) }

// Cards lists the members in deck order.
func (e Edges) Cards() []cards.Card {
	out := make([]cards.Card, 0, e.Len())
	for c := cards.Card(0); c < cards.DeckSize; c++ {
		if e.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Graph maps each card to the cards it may be played on.
type Graph struct {
	edges [cards.DeckSize]Edges
}

// Default is the rule before any edit: same suit or same rank.
func Default() Graph {
	var g Graph
	for c := cards.Card(0); c < cards.DeckSize; c++ {
		for o := cards.Card(0); o < cards.DeckSize; o++ {
			if c.Suit() == o.Suit() || c.Rank() == o.Rank() {
				g.edges[c] |= 1 << o
			}
		}
	}
	return g
}

func (g *Graph) Edges(c cards.Card) Edges { return g.edges[c] }

func (g *Graph) IsPlayableOn(candidate, top cards.Card) bool {
	return g.edges[candidate].Has(top)
}

// Change replaces the edge set of one card.
type Change struct {
	Card  cards.Card
	Edges Edges
}

// Commit returns a copy of g with every change applied in order. g itself is
// left as it was.
func (g Graph) Commit(changes []Change) Graph {
	for _, ch := range changes {
		g.edges[ch.Card] = ch.Edges & allEdges
	}
	return g
}

// Diff lists the cards whose edges differ between g and other.
func (g *Graph) Diff(other *Graph) []cards.Card {
	var out []cards.Card
	for c := cards.Card(0); c < cards.DeckSize; c++ {
		if g.edges[c] != other.edges[c] {
			out = append(out, c)
		}
	}
	return out
}
