// Package choice lets game logic ask the player for a value without blocking.
// Asking when nothing is pending opens a request and returns no value; a
// dialog later resolves it; the next ask returns the value once and clears
// the slot.
package choice

import (
	"errors"
	"fmt"

	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/rules"
)

var (
	// ErrKindMismatch means a different kind of choice is already pending or
	// resolved. Only one choice may be outstanding at a time.
	ErrKindMismatch = errors.New("choice: another kind of choice is outstanding")
	// ErrNotAwaiting means a value was produced that nobody asked for.
	ErrNotAwaiting = errors.New("choice: no matching choice is awaited")
)

type Kind uint8

const (
	KindNone Kind = iota
	KindUnit
	KindBool
	KindSuit
	KindGraph
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnit:
		return "unit"
	case KindBool:
		return "bool"
	case KindSuit:
		return "suit"
	case KindGraph:
		return "graph"
	}
	return "unknown"
}

// State is the sum of the states a Slot can be in.
type State interface {
	Kind() Kind
}

type (
	Idle         struct{}
	AwaitingUnit struct{}
	AwaitingBool struct{}
	AwaitingSuit struct{}
	// AwaitingGraph carries the rule editor's working state.
	AwaitingGraph struct {
		Session *rules.Session
	}
	Resolved struct {
		Value Value
	}
)

func (Idle) Kind() Kind          { return KindNone }
func (AwaitingUnit) Kind() Kind  { return KindUnit }
func (AwaitingBool) Kind() Kind  { return KindBool }
func (AwaitingSuit) Kind() Kind  { return KindSuit }
func (AwaitingGraph) Kind() Kind { return KindGraph }
func (r Resolved) Kind() Kind    { return r.Value.Kind() }

// Value is the sum of the values a dialog can produce.
type Value interface {
	Kind() Kind
}

type (
	Unit       struct{}
	Bool       bool
	SuitValue  cards.Suit
	GraphValue rules.Outcome
)

func (Unit) Kind() Kind       { return KindUnit }
func (Bool) Kind() Kind       { return KindBool }
func (SuitValue) Kind() Kind  { return KindSuit }
func (GraphValue) Kind() Kind { return KindGraph }

// Slot holds at most one outstanding choice. The zero value is idle.
type Slot struct {
	state State
}

func (s *Slot) State() State {
	if s.state == nil {
		return Idle{}
	}
	return s.state
}

// Idle reports whether game logic may run: nothing is awaited.
func (s *Slot) Idle() bool {
	switch s.State().(type) {
	case Idle, Resolved:
		return true
	}
	return false
}

// Awaiting returns the kind currently awaited, or KindNone.
func (s *Slot) Awaiting() Kind {
	if s.Idle() {
		return KindNone
	}
	return s.State().Kind()
}

func (s *Slot) Reset() { s.state = Idle{} }

// Resolve stores a produced value. A second value of the same kind before it
// is read replaces the first.
func (s *Slot) Resolve(v Value) error {
	if s.State().Kind() != v.Kind() {
		return fmt.Errorf("%w: resolving %v while slot holds %v", ErrNotAwaiting, v.Kind(), s.State().Kind())
	}
	s.state = Resolved{Value: v}
	return nil
}

// choose is the shared read side: request when idle, wait while awaiting,
// return and clear once resolved.
func choose[V Value](s *Slot, request State) (V, bool, error) {
	var zero V
	switch st := s.State().(type) {
	case Idle:
		s.state = request
		return zero, false, nil
	case Resolved:
		v, ok := st.Value.(V)
		if !ok {
			return zero, false, fmt.Errorf("%w: want %v, resolved %v", ErrKindMismatch, request.Kind(), st.Kind())
		}
		s.state = Idle{}
		return v, true, nil
	default:
		if st.Kind() != request.Kind() {
			return zero, false, fmt.Errorf("%w: want %v, awaiting %v", ErrKindMismatch, request.Kind(), st.Kind())
		}
		return zero, false, nil
	}
}

func (s *Slot) ChooseUnit() (bool, error) {
	_, ok, err := choose[Unit](s, AwaitingUnit{})
	return ok, err
}

func (s *Slot) ChooseBool() (value bool, ok bool, err error) {
	v, ok, err := choose[Bool](s, AwaitingBool{})
	return bool(v), ok, err
}

func (s *Slot) ChooseSuit() (cards.Suit, bool, error) {
	v, ok, err := choose[SuitValue](s, AwaitingSuit{})
	return cards.Suit(v), ok, err
}

// ChooseGraph opens the rule editor with a fresh session.
func (s *Slot) ChooseGraph() (rules.Outcome, bool, error) {
	v, ok, err := choose[GraphValue](s, AwaitingGraph{Session: &rules.Session{}})
	return rules.Outcome(v), ok, err
}
