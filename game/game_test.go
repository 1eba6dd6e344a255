package game

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/SvenDH/go-bartog/anim"
	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/choice"
	"github.com/SvenDH/go-bartog/rules"
	"github.com/SvenDH/go-bartog/ui"
)

func mustCard(s string) cards.Card {
	c, err := cards.Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hand(names ...string) []cards.Card {
	out := make([]cards.Card, len(names))
	for i, n := range names {
		out[i] = mustCard(n)
	}
	return out
}

func newGame(t *testing.T, cpus int, logger Logger) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CPUs = cpus
	cfg.Seed = 42
	cfg.Strict = true
	g, err := NewGame(cfg, logger)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// setTable deals the given hands and discard top and puts every other card
// in the deck.
func setTable(s *State, top cards.Card, hands ...[]cards.Card) {
	used := map[cards.Card]bool{top: true}
	for i, h := range hands {
		s.hands[i].Cards = append([]cards.Card(nil), h...)
		for _, c := range h {
			used[c] = true
		}
	}
	s.discard = cards.Pile{}
	s.discard.Push(top)
	s.deck = cards.Pile{}
	for c := cards.Card(0); c < cards.DeckSize; c++ {
		if !used[c] {
			s.deck.Push(c)
		}
	}
	s.hasDeclared = false
	s.animations.Clear()
	s.handIndex = 0
	s.winners = nil
}

func tap(g *Game, b ui.Button) {
	g.Press(b)
	g.Frame()
	g.Release(b)
	g.Frame()
}

// tapWidget makes id hot on the next frame and activates it.
func tapWidget(g *Game, id ui.ID) {
	g.State.context.SetNextHot(id)
	tap(g, ui.ButtonA)
}

func runUntil(t *testing.T, g *Game, done func() bool) {
	t.Helper()
	for range 2000 {
		if done() {
			return
		}
		g.Frame()
	}
	t.Fatalf("condition not reached")
}

func collect(lines *[]string) Logger {
	return func(s string) { *lines = append(*lines, s) }
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"one cpu", func(c *Config) { c.CPUs = 1 }, true},
		{"no cpus", func(c *Config) { c.CPUs = 0 }, false},
		{"too many cpus", func(c *Config) { c.CPUs = 4 }, false},
		{"empty hands", func(c *Config) { c.HandSize = 0 }, false},
		{"largest hands", func(c *Config) { c.HandSize = 12 }, true},
		{"hands too large", func(c *Config) { c.HandSize = 13 }, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.edit(&cfg)
		err := cfg.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
		if err != nil && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: error %v is not ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestDeal(t *testing.T) {
	g := newGame(t, 3, nil)
	s := g.State
	if s.PlayerCount() != 4 || s.Human() != 3 {
		t.Fatalf("players = %d, human = %d", s.PlayerCount(), s.Human())
	}
	for p := range s.PlayerCount() {
		if n := s.Hand(p).Len(); n != DefaultHandSize {
			t.Fatalf("player %d holds %d cards", p, n)
		}
	}
	if s.Discard().Len() != 1 || s.Deck().Len() != cards.DeckSize-4*DefaultHandSize-1 {
		t.Fatalf("deck %d, discard %d", s.Deck().Len(), s.Discard().Len())
	}
	if missing := s.MissingCards(); len(missing) != 0 {
		t.Fatalf("missing cards after deal: %v", missing)
	}

	other := newGame(t, 3, nil).State
	for p := range s.PlayerCount() {
		if !slices.Equal(s.Hand(p).Cards, other.Hand(p).Cards) {
			t.Fatalf("same seed dealt different hands to player %d", p)
		}
	}
}

func TestCanPlay(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), nil, nil)

	tests := []struct {
		card string
		want bool
	}{
		{"5C", true},
		{"9D", true},
		{"9C", false},
		{"8C", true},
	}
	for _, tt := range tests {
		if got := s.CanPlay(mustCard(tt.card)); got != tt.want {
			t.Errorf("CanPlay(%s) on 5D = %v", tt.card, got)
		}
	}

	setTable(s, mustCard("8H"), nil, nil)
	s.declare(cards.Spades)
	if !s.CanPlay(mustCard("9S")) || s.CanPlay(mustCard("9H")) {
		t.Fatalf("wild on top must follow the declared suit")
	}
	if !s.CanPlay(mustCard("8D")) {
		t.Fatalf("wild must be playable on a wild")
	}

	s.discard = cards.Pile{}
	if !s.CanPlay(mustCard("KC")) {
		t.Fatalf("an empty discard pile accepts anything")
	}
}

func TestHumanPlay(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), hand("2C", "3C", "4C"), hand("9C", "5H", "KS"))
	s.current = s.Human()
	s.handIndex = 1

	g.Press(ui.ButtonA)
	_, sounds := g.Frame()
	g.Release(ui.ButtonA)
	if len(sounds) != 0 {
		t.Fatalf("sounds on play = %v", sounds)
	}
	if s.Animations().Len() != 1 {
		t.Fatalf("animations = %d, want 1", s.Animations().Len())
	}
	if _, ok := s.Animations().All()[0].Action.(anim.MoveToDiscard); !ok {
		t.Fatalf("animation action = %T", s.Animations().All()[0].Action)
	}
	if s.Hand(s.Human()).Len() != 2 {
		t.Fatalf("played card still in hand")
	}
	if top, _ := s.Discard().Top(); top != mustCard("5D") {
		t.Fatalf("card landed before its animation finished")
	}
	if s.CurrentPlayer() != 0 {
		t.Fatalf("turn did not pass to player 0")
	}

	runUntil(t, g, func() bool { return s.Animations().Len() == 0 })
	if top, _ := s.Discard().Top(); top != mustCard("5H") || s.Hand(s.Human()).Len() != 2 {
		t.Fatalf("after landing: top of discard %v, hand %d", s.Discard().Cards(), s.Hand(s.Human()).Len())
	}
}

func TestIllegalPlayRejected(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), hand("2C"), hand("9C", "KS"))
	s.current = s.Human()

	tap(g, ui.ButtonA)
	if s.Animations().Len() != 0 || s.Hand(s.Human()).Len() != 2 || s.CurrentPlayer() != s.Human() {
		t.Fatalf("illegal play was not ignored")
	}
}

func TestHumanDraw(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), hand("2C"), hand("9C", "KS"))
	s.current = s.Human()

	g.Press(ui.ButtonB)
	g.Frame()
	g.Release(ui.ButtonB)
	runUntil(t, g, func() bool { return s.Animations().Len() == 0 })
	if s.Hand(s.Human()).Len() != 3 {
		t.Fatalf("hand = %d after drawing", s.Hand(s.Human()).Len())
	}
}

func TestMoveCursor(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), hand("2C"), hand("9C", "KS", "QS"))
	s.current = s.Human()

	g.Press(ui.ButtonRight)
	_, sounds := g.Frame()
	if !slices.Equal(sounds, []ui.SFX{ui.CardSlide}) {
		t.Fatalf("sounds = %v", sounds)
	}
	g.Release(ui.ButtonRight)
	for range 4 {
		tap(g, ui.ButtonRight)
	}
	if s.HandIndex() != 2 {
		t.Fatalf("cursor = %d, want it clamped to 2", s.HandIndex())
	}
	for range 4 {
		tap(g, ui.ButtonLeft)
	}
	if s.HandIndex() != 0 {
		t.Fatalf("cursor = %d, want 0", s.HandIndex())
	}
}

func TestAnimationsCompleteTogether(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), hand("2C"), hand("9C"))
	start := s.Hand(0).Len()

	first, _ := s.deck.Draw()
	second, _ := s.deck.Draw()
	for _, c := range []cards.Card{first, second} {
		s.animations.Push(anim.New(
			cards.PositionedCard{Card: c, Point: cards.Point{X: 10, Y: 10}},
			cards.Point{X: 12, Y: 10},
			anim.MoveToHand{Player: 0},
		))
	}

	var sp ui.Speaker
	s.advanceAnimations(&sp)
	if s.Animations().Len() != 0 {
		t.Fatalf("animations left: %d", s.Animations().Len())
	}
	h := s.Hand(0)
	if h.Len() != start+2 {
		t.Fatalf("hand = %d, want %d", h.Len(), start+2)
	}
	if h.Cards[start] != second || h.Cards[start+1] != first {
		t.Fatalf("completions did not run newest first: %v", h.Cards)
	}
	if len(sp.Slice()) != 2 {
		t.Fatalf("sounds = %v", sp.Slice())
	}
	if missing := s.MissingCards(); len(missing) != 0 {
		t.Fatalf("missing cards: %v", missing)
	}
}

func TestHumanWildChoosesSuit(t *testing.T) {
	var lines []string
	g := newGame(t, 1, collect(&lines))
	s := g.State
	setTable(s, mustCard("KS"), hand("2D", "4D", "6D"), hand("8H", "3C"))
	s.current = s.Human()

	tap(g, ui.ButtonA)
	runUntil(t, g, func() bool { return s.Choice().Awaiting() == choice.KindSuit })
	if top, _ := s.Discard().Top(); top != mustCard("KS") {
		t.Fatalf("wild landed before its suit was chosen")
	}

	g.Frame()
	tapWidget(g, 1)
	runUntil(t, g, func() bool { return s.Animations().Len() == 0 })

	if suit, ok := s.Declared(); !ok || suit != cards.Clubs {
		t.Fatalf("declared = %v %v, want Clubs", suit, ok)
	}
	if top, _ := s.Discard().Top(); top != mustCard("8H") {
		t.Fatalf("top of discard = %v", top)
	}
	if !slices.Contains(lines, "you selected Clubs.") {
		t.Fatalf("log = %q", lines)
	}
}

func TestCPUWildDeclaresMostCommonSuit(t *testing.T) {
	tests := []struct {
		name string
		hand []cards.Card
		want cards.Suit
	}{
		{"most common", hand("8D", "2H", "3H", "4S"), cards.Hearts},
		{"tie goes to canonical order", hand("8D", "2H", "3S"), cards.Hearts},
		{"empty hand keeps the wild's suit", hand("8D"), cards.Diamonds},
	}
	for _, tt := range tests {
		g := newGame(t, 1, nil)
		s := g.State
		setTable(s, mustCard("KC"), tt.hand, hand("2C", "3C"))
		s.current = 0

		g.Frame()
		if s.Animations().Len() != 1 {
			t.Fatalf("%s: cpu did not play", tt.name)
		}
		runUntil(t, g, func() bool { return s.Animations().Len() == 0 })
		if suit, ok := s.Declared(); !ok || suit != tt.want {
			t.Errorf("%s: declared %v, want %v", tt.name, suit, tt.want)
		}
		if top, _ := s.Discard().Top(); top != mustCard("8D") {
			t.Errorf("%s: top of discard = %v", tt.name, top)
		}
	}
}

func TestCPUWinsWithLastCard(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("KC"), hand("QC"), hand("2D", "3D"))
	s.current = 0

	g.Frame()
	if !slices.Equal(s.Winners(), []int{0}) {
		t.Fatalf("winners = %v", s.Winners())
	}
	if s.WinnerText() != "cpu 1 wins!" {
		t.Fatalf("winner text = %q", s.WinnerText())
	}
	runUntil(t, g, func() bool { return s.Choice().Awaiting() == choice.KindUnit })
}

func TestWinnerText(t *testing.T) {
	g := newGame(t, 3, nil)
	s := g.State
	tests := []struct {
		winners []int
		want    string
	}{
		{[]int{3}, "you win!"},
		{[]int{1}, "cpu 2 wins!"},
		{[]int{0, 3}, "cpu 1 and you win!"},
		{[]int{0, 1, 2}, "cpu 1, cpu 2 and cpu 3 win!"},
	}
	for _, tt := range tests {
		s.winners = tt.winners
		if got := s.WinnerText(); got != tt.want {
			t.Errorf("WinnerText(%v) = %q, want %q", tt.winners, got, tt.want)
		}
	}
}

func TestPlayAgainKeepsRules(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	edited := rules.Default().Commit([]rules.Change{{Card: mustCard("AC"), Edges: rules.EdgesOf(mustCard("2D"))}})
	s.rules = edited
	seed := s.Seed
	s.winners = []int{1}

	g.Frame()
	if s.Choice().Awaiting() != choice.KindUnit {
		t.Fatalf("play again not offered")
	}
	tapWidget(g, 1)
	g.Frame()

	if len(s.Winners()) != 0 || s.Seed == seed {
		t.Fatalf("game was not reset: winners %v, seed %d", s.Winners(), s.Seed)
	}
	if diff := s.rules.Diff(&edited); len(diff) != 0 {
		t.Fatalf("rules lost on reset: %v", diff)
	}
	if missing := s.MissingCards(); len(missing) != 0 {
		t.Fatalf("missing cards after reset: %v", missing)
	}
}

// openEditor opens the rule editor from the human's turn and selects the
// first card button, the ace of clubs.
func openEditor(t *testing.T, g *Game) {
	t.Helper()
	s := g.State
	tap(g, ui.ButtonSelect)
	if s.Choice().Awaiting() != choice.KindBool {
		t.Fatalf("rule prompt not shown, awaiting %v", s.Choice().Awaiting())
	}
	tapWidget(g, 1)
	g.Frame()
	if s.Choice().Awaiting() != choice.KindGraph {
		t.Fatalf("rule editor not shown, awaiting %v", s.Choice().Awaiting())
	}
	tapWidget(g, firstCardButton)
	session := s.Choice().State().(choice.AwaitingGraph).Session
	if session.Layer != rules.LayerEdges || session.Card != mustCard("AC") {
		t.Fatalf("session = %+v", session)
	}
}

// toggle2D toggles the two of diamonds for the open card and stages it.
func toggle2D(g *Game) {
	tapWidget(g, firstCheckbox+ui.ID(mustCard("2D")))
	tapWidget(g, 1)
}

func TestRuleEditorCancel(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	s.current = s.Human()
	before := s.rules

	openEditor(t, g)
	toggle2D(g)
	session := s.Choice().State().(choice.AwaitingGraph).Session
	if len(session.Changes) != 1 || !session.Changes[0].Edges.Has(mustCard("2D")) {
		t.Fatalf("changes = %+v", session.Changes)
	}
	if s.rules.Edges(mustCard("AC")).Has(mustCard("2D")) {
		t.Fatalf("staged change visible before commit")
	}

	tapWidget(g, 2)
	g.Frame()
	if !s.Choice().Idle() || s.menu != menuNone {
		t.Fatalf("editor still open")
	}
	if diff := before.Diff(&s.rules); len(diff) != 0 {
		t.Fatalf("cancel changed the rules: %v", diff)
	}
}

func TestRuleEditorDone(t *testing.T) {
	var lines []string
	g := newGame(t, 1, collect(&lines))
	s := g.State
	s.current = s.Human()

	openEditor(t, g)
	toggle2D(g)
	tapWidget(g, 3)
	g.Frame()

	if !s.rules.Edges(mustCard("AC")).Has(mustCard("2D")) {
		t.Fatalf("committed change not visible")
	}
	if !s.rules.IsPlayableOn(mustCard("AC"), mustCard("2D")) {
		t.Fatalf("ace of clubs not playable on the two of diamonds")
	}
	if !slices.Contains(lines, "rules changed: 1 card.") {
		t.Fatalf("log = %q", lines)
	}
}

func TestRuleEditorReset(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	s.current = s.Human()

	openEditor(t, g)
	toggle2D(g)
	tapWidget(g, 1)
	session := s.Choice().State().(choice.AwaitingGraph).Session
	if len(session.Changes) != 0 {
		t.Fatalf("reset kept %d changes", len(session.Changes))
	}
}

func TestRulePromptNo(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	s.current = s.Human()

	tap(g, ui.ButtonSelect)
	tapWidget(g, 2)
	g.Frame()
	if !s.Choice().Idle() || s.menu != menuNone {
		t.Fatalf("prompt not closed by no")
	}
}

func TestReshuffle(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), hand("2C"), hand("9C"))
	rest := s.deck.Drain()
	top, _ := s.discard.Draw()
	s.discard.Push(rest...)
	s.discard.Push(top)

	a, ok := s.drawAnimation(0)
	if !ok {
		t.Fatalf("no card drawn after reshuffle")
	}
	s.animations.Push(a)
	if got, _ := s.discard.Top(); got != top || s.discard.Len() != 1 {
		t.Fatalf("discard = %v, want only %v", s.discard.Cards(), top)
	}
	if s.deck.Len() != len(rest)-1 {
		t.Fatalf("deck = %d, want %d", s.deck.Len(), len(rest)-1)
	}
	if missing := s.MissingCards(); len(missing) != 0 {
		t.Fatalf("missing cards: %v", missing)
	}
}

func TestNothingToDraw(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("5D"), hand("2C"), hand("9C"))
	s.deck.Drain()

	if _, ok := s.drawAnimation(0); ok {
		t.Fatalf("drew from an empty deck and a single discard")
	}
	if top, _ := s.discard.Top(); top != mustCard("5D") {
		t.Fatalf("top of discard lost")
	}
}

func TestMissingCards(t *testing.T) {
	var lines []string
	cfg := DefaultConfig()
	cfg.CPUs = 1
	g, err := NewGame(cfg, collect(&lines))
	if err != nil {
		t.Fatal(err)
	}
	s := g.State
	lost, _ := s.deck.Draw()
	if missing := s.MissingCards(); !slices.Equal(missing, []cards.Card{lost}) {
		t.Fatalf("MissingCards = %v, want %v", missing, lost)
	}
	s.hands[0].Push(s.hands[1].Cards[0])
	if missing := s.MissingCards(); len(missing) != 2 {
		t.Fatalf("duplicate not reported: %v", missing)
	}

	g.Frame()
	if missing := s.MissingCards(); len(missing) != 0 {
		t.Fatalf("deal not reset after census failure: %v", missing)
	}
	found := false
	for _, l := range lines {
		found = found || strings.HasPrefix(l, "invariant violation")
	}
	if !found {
		t.Fatalf("violation not logged: %q", lines)
	}
}

func TestChoiceMismatch(t *testing.T) {
	var lines []string
	cfg := DefaultConfig()
	cfg.CPUs = 1
	g, err := NewGame(cfg, collect(&lines))
	if err != nil {
		t.Fatal(err)
	}
	s := g.State
	s.choice.ChooseSuit()
	s.menu = menuPrompt

	g.Frame()
	if s.menu != menuNone {
		t.Fatalf("menu not cleared")
	}
	if !s.Choice().Idle() {
		t.Fatalf("choice still awaiting %v", s.Choice().Awaiting())
	}
	if !slices.ContainsFunc(lines, func(l string) bool { return strings.HasPrefix(l, "invariant violation") }) {
		t.Fatalf("violation not logged: %q", lines)
	}
}

func TestStrictViolationPanics(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	s.choice.ChooseSuit()
	s.menu = menuPrompt

	defer func() {
		if recover() == nil {
			t.Fatalf("strict game did not panic")
		}
	}()
	g.Frame()
}

func TestLogPanelFreezesGame(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	s.current = 0

	g.Press(ui.ButtonStart)
	g.Frame()
	g.Release(ui.ButtonStart)
	if s.Animations().Len() != 1 {
		t.Fatalf("cpu should have moved on the frame the panel started opening")
	}
	runUntil(t, g, func() bool { return s.Animations().Len() == 0 || s.LogOpen() })
	current := s.CurrentPlayer()
	for range 60 {
		g.Frame()
	}
	if s.CurrentPlayer() != current {
		t.Fatalf("turns advanced under the log panel")
	}
	cmds, _ := g.Frame()
	if _, ok := cmds[len(cmds)-1].(ui.Text); !ok {
		if _, ok := cmds[len(cmds)-1].(ui.Panel); !ok {
			t.Fatalf("log panel not drawn last: %T", cmds[len(cmds)-1])
		}
	}

	tap(g, ui.ButtonStart)
	runUntil(t, g, func() bool { return !s.LogOpen() })
}

func TestEventLog(t *testing.T) {
	var l EventLog
	l.Push("cpu 1 played an Eight of Hearts.")
	l.Push(strings.Repeat("word ", 20))
	if l.Len() < 3 {
		t.Fatalf("long entry was not wrapped: %q", l.Lines())
	}
	for _, line := range l.Lines() {
		if len(line) > logWidth {
			t.Fatalf("line %q wider than the panel", line)
		}
	}
	if w := l.Window(1); len(w) != l.Len()-1 {
		t.Fatalf("Window(1) = %d lines", len(w))
	}
	if l.Window(l.Len()) != nil {
		t.Fatalf("window past the end is not empty")
	}
}

func TestSecondPendingWild(t *testing.T) {
	var lines []string
	cfg := DefaultConfig()
	cfg.CPUs = 1
	g, err := NewGame(cfg, collect(&lines))
	if err != nil {
		t.Fatal(err)
	}
	s := g.State
	setTable(s, mustCard("KC"), hand("2C"), hand("8H", "8D"))

	first, ok := s.discardAnimation(s.Human(), 0)
	if !ok {
		t.Fatalf("first wild not played")
	}
	s.animations.Push(first)
	violated := func() bool {
		return slices.Contains(lines, "invariant violation: a second wild is waiting for its suit")
	}
	if violated() {
		t.Fatalf("one pending wild reported as a violation")
	}

	if _, ok := s.discardAnimation(s.Human(), 0); !ok {
		t.Fatalf("second wild not played")
	}
	if !violated() {
		t.Fatalf("second pending wild not reported: %q", lines)
	}
}

func TestSecondPendingWildStrict(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("KC"), hand("2C"), hand("8H", "8D"))
	first, _ := s.discardAnimation(s.Human(), 0)
	s.animations.Push(first)

	defer func() {
		if recover() == nil {
			t.Fatalf("strict game did not panic")
		}
	}()
	s.discardAnimation(s.Human(), 0)
}

func TestRenderDeclaredSuit(t *testing.T) {
	g := newGame(t, 1, nil)
	s := g.State
	setTable(s, mustCard("8H"), hand("2C"), hand("3C"))
	s.declare(cards.Spades)

	var cmds ui.Commands
	s.render(&cmds)
	x, y := declaredPos()
	list := cmds.Slice()
	i := slices.IndexFunc(list, func(c ui.Command) bool {
		r, ok := c.(ui.Rect)
		return ok && r.X == x && r.Y == y && r.Colour == ui.White
	})
	if i < 0 || i+1 >= len(list) {
		t.Fatalf("no backing drawn for the declared suit: %v", list)
	}
	if got := list[i+1]; got != ui.Command(ui.Text{Text: "S", X: x, Y: y, Colour: ui.Black}) {
		t.Fatalf("after the backing: %v", got)
	}

	s.hasDeclared = false
	cmds.Reset()
	s.render(&cmds)
	if slices.ContainsFunc(cmds.Slice(), func(c ui.Command) bool { _, ok := c.(ui.Rect); return ok }) {
		t.Fatalf("backing drawn with no declared suit")
	}
}
