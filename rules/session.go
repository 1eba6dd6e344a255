package rules

import "github.com/SvenDH/go-bartog/cards"

type Layer uint8

const (
	// LayerCard picks which card to edit.
	LayerCard Layer = iota
	// LayerEdges picks the cards the selected card may be played on.
	LayerEdges
)

// Session is the state of one trip through the rule editor. Nothing in it is
// visible through a Graph until the Changes are committed.
type Session struct {
	Layer      Layer
	Card       cards.Card
	CardScroll cards.Card
	EdgeScroll cards.Card
	Edges      Edges
	Changes    []Change
}

// Outcome is what the editor resolves to.
type Outcome struct {
	Changes   []Change
	Committed bool
}

// Open selects card for editing and loads its working edge set: the newest
// pending change for it if there is one, otherwise the committed edges.
func (s *Session) Open(g *Graph, card cards.Card) {
	s.Card = card
	s.Layer = LayerEdges
	s.Edges = s.PendingEdges(g, card)
}

func (s *Session) PendingEdges(g *Graph, card cards.Card) Edges {
	for i := len(s.Changes) - 1; i >= 0; i-- {
		if s.Changes[i].Card == card {
			return s.Changes[i].Edges
		}
	}
	return g.Edges(card)
}

// Stage records the working edge set as a change and returns to card
// selection.
func (s *Session) Stage() {
	s.Changes = append(s.Changes, Change{Card: s.Card, Edges: s.Edges})
	s.Layer = LayerCard
}

// Back returns to card selection without staging.
func (s *Session) Back() { s.Layer = LayerCard }

// Reset drops every pending change.
func (s *Session) Reset() { *s = Session{} }

func (s *Session) Done() Outcome {
	changes := make([]Change, len(s.Changes))
	copy(changes, s.Changes)
	return Outcome{Changes: changes, Committed: true}
}

func (s *Session) Cancel() Outcome { return Outcome{} }
