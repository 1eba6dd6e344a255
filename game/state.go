// Package game runs Bartog one frame at a time: turn order, card
// animations, the choice dialogs and the rule editor all advance inside
// UpdateAndRender.
package game

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-bartog/anim"
	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/choice"
	"github.com/SvenDH/go-bartog/rng"
	"github.com/SvenDH/go-bartog/rules"
	"github.com/SvenDH/go-bartog/ui"
)

// Table positions.
var (
	DeckPos    = cards.Point{X: 124, Y: 96}
	DiscardPos = cards.Point{X: 168, Y: 96}
)

// Spreads for the simulated players, by how many of them there are.
var (
	leftSpread   = cards.TTB(52, 188, 8)
	topSpread    = cards.LTR(44, 276, 4)
	rightSpread  = cards.TTB(52, 188, ui.ScreenWidth-cards.CardWidth-8)
	humanSpread  = cards.LTR(44, 276, ui.ScreenHeight-cards.CardHeight-8)
	cpuSpreadsBy = [MaxCPUs + 1][]cards.Spread{
		1: {topSpread},
		2: {leftSpread, rightSpread},
		3: {leftSpread, topSpread, rightSpread},
	}
)

type menu uint8

const (
	menuNone menu = iota
	// menuPrompt asks whether to open the rule editor.
	menuPrompt
	menuEditor
)

type State struct {
	ID   ulid.ULID
	Seed uint64

	cfg    Config
	logger Logger
	rng    *rng.Rand

	deck    cards.Pile
	discard cards.Pile
	// hands holds the simulated players first and the human last.
	hands     []cards.Hand
	handIndex int
	current   int

	rules      rules.Graph
	choice     choice.Slot
	animations anim.Queue
	context    ui.Context
	menu       menu

	eventLog   EventLog
	logHeading LogHeading
	logHeight  int
	logTop     int

	declared    cards.Suit
	hasDeclared bool
	winners     []int
}

// New deals the first game.
func New(cfg Config, logger Logger) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		cfg:    cfg,
		logger: logger,
		rules:  cfg.graph(),
	}
	s.deal(cfg.Seed)
	return s, nil
}

// Reset starts a fresh deal with a seed drawn from the current random
// source. House rules are kept.
func (s *State) Reset() {
	s.deal(s.rng.NewSeed())
}

func (s *State) deal(seed uint64) {
	s.ID = ulid.Make()
	s.Seed = seed
	s.rng = rng.New(seed)

	s.deck = cards.NewDeck()
	s.deck.Shuffle(s.rng)
	s.discard = cards.Pile{}
	s.animations.Clear()
	s.choice.Reset()
	s.context.Reset()
	s.menu = menuNone
	s.current = 0
	s.handIndex = 0
	s.hasDeclared = false
	s.winners = nil

	spreads := append(append([]cards.Spread{}, cpuSpreadsBy[s.cfg.CPUs]...), humanSpread)
	s.hands = make([]cards.Hand, len(spreads))
	for i, spread := range spreads {
		s.hands[i] = cards.NewHand(spread)
	}
	for range s.cfg.HandSize {
		for i := range s.hands {
			card, _ := s.deck.Draw()
			s.hands[i].Push(card)
		}
	}

	starter, _ := s.deck.Draw()
	s.discard.Push(starter)
	if starter.Wild() {
		s.declare(starter.Suit())
	}

	s.event(fmt.Sprintf("deal %s: seed %d.", s.ID, s.Seed))
	s.event(fmt.Sprintf("the starter is %s %s.", starter.Article(), starter))
}

func (s *State) Config() Config { return s.cfg }

func (s *State) PlayerCount() int { return len(s.hands) }

// Human is the index of the human player.
func (s *State) Human() int { return len(s.hands) - 1 }

func (s *State) IsCPU(player int) bool { return player < s.cfg.CPUs }

func (s *State) PlayerName(player int) string {
	if s.IsCPU(player) {
		return fmt.Sprintf("cpu %d", player+1)
	}
	return "you"
}

func (s *State) Hand(player int) *cards.Hand { return &s.hands[player] }

func (s *State) Deck() *cards.Pile { return &s.deck }

func (s *State) Discard() *cards.Pile { return &s.discard }

func (s *State) Rules() *rules.Graph { return &s.rules }

func (s *State) Choice() *choice.Slot { return &s.choice }

func (s *State) Animations() *anim.Queue { return &s.animations }

func (s *State) Context() *ui.Context { return &s.context }

func (s *State) EventLog() *EventLog { return &s.eventLog }

func (s *State) CurrentPlayer() int { return s.current }

func (s *State) HandIndex() int { return s.handIndex }

func (s *State) Winners() []int { return s.winners }

// LogOpen reports whether the event log panel covers any of the table.
func (s *State) LogOpen() bool { return s.logHeight > 0 }

// Declared returns the suit chosen for the wild on top of the discard pile.
func (s *State) Declared() (cards.Suit, bool) { return s.declared, s.hasDeclared }

func (s *State) declare(suit cards.Suit) {
	s.declared = suit
	s.hasDeclared = true
}
