package cards

import (
	"testing"

	"github.com/SvenDH/go-bartog/rng"
)

func TestCardEncoding(t *testing.T) {
	tests := []struct {
		card  Card
		suit  Suit
		rank  Rank
		short string
		name  string
	}{
		{New(Clubs, Ace), Clubs, Ace, "AC", "Ace of Clubs"},
		{New(Hearts, Eight), Hearts, Eight, "8H", "Eight of Hearts"},
		{New(Spades, King), Spades, King, "KS", "King of Spades"},
		{New(Diamonds, Ten), Diamonds, Ten, "10D", "Ten of Diamonds"},
	}
	for _, tt := range tests {
		if tt.card.Suit() != tt.suit || tt.card.Rank() != tt.rank {
			t.Errorf("%v: got suit %v rank %v", tt.card, tt.card.Suit(), tt.card.Rank())
		}
		if tt.card.Short() != tt.short {
			t.Errorf("Short() = %q, want %q", tt.card.Short(), tt.short)
		}
		if tt.card.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.card.String(), tt.name)
		}
		parsed, err := Parse(tt.short)
		if err != nil || parsed != tt.card {
			t.Errorf("Parse(%q) = %v, %v", tt.short, parsed, err)
		}
	}
	if !New(Clubs, Eight).Wild() || New(Clubs, Seven).Wild() {
		t.Fatalf("only eights are wild")
	}
	if _, err := Parse("1X"); err == nil {
		t.Fatalf("expected error for bad card")
	}
}

func TestNextWraps(t *testing.T) {
	if got := Card(51).Next(1); got != 0 {
		t.Fatalf("51+1 = %d, want 0", got)
	}
	if got := Card(0).Next(DeckSize - 1); got != 51 {
		t.Fatalf("0+51 = %d, want 51", got)
	}
	if got := Card(3).Next(-4); got != 51 {
		t.Fatalf("3-4 = %d, want 51", got)
	}
}

func TestMostCommonSuit(t *testing.T) {
	tests := []struct {
		name  string
		cards []Card
		want  Suit
		ok    bool
	}{
		{"empty", nil, 0, false},
		{"single", []Card{New(Spades, Two)}, Spades, true},
		{"majority", []Card{New(Hearts, Two), New(Spades, Two), New(Hearts, Three)}, Hearts, true},
		{"tie goes to canonical order", []Card{New(Spades, Two), New(Diamonds, Two)}, Diamonds, true},
	}
	for _, tt := range tests {
		h := Hand{Cards: tt.cards}
		got, ok := h.MostCommonSuit()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: got %v, %v want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSpreadPositions(t *testing.T) {
	s := LTR(10, 200, 50)
	if off := CardOffset(s, 1); off != 0 {
		t.Fatalf("single card offset = %d", off)
	}
	if off := CardOffset(s, 2); off != CardWidth+1 {
		t.Fatalf("two cards should sit side by side, offset = %d", off)
	}
	n := 20
	off := CardOffset(s, n)
	last := CardPosition(s, n, n-1)
	if last.X+CardWidth > s.Max {
		t.Fatalf("last card overflows: x=%d off=%d", last.X, off)
	}
	if last.Y != 50 {
		t.Fatalf("cross axis not kept: %v", last)
	}

	v := TTB(0, 100, 7)
	p := CardPosition(v, 3, 2)
	if p.X != 7 || p.Y != 2*CardOffset(v, 3) {
		t.Fatalf("unexpected ttb position %v", p)
	}
}

func TestRemovePositioned(t *testing.T) {
	h := Hand{Cards: []Card{1, 2, 3}, Spread: LTR(0, 300, 10)}
	want := CardPosition(h.Spread, 3, 1)
	pc, ok := h.RemovePositioned(1)
	if !ok || pc.Card != 2 || pc.Point != want {
		t.Fatalf("got %+v, %v", pc, ok)
	}
	if h.Len() != 2 {
		t.Fatalf("hand len = %d", h.Len())
	}
	if _, ok := h.RemovePositioned(5); ok {
		t.Fatalf("removed out of range card")
	}
}

func TestPile(t *testing.T) {
	deck := NewDeck()
	if deck.Len() != DeckSize {
		t.Fatalf("deck len %d", deck.Len())
	}
	deck.Shuffle(rng.New(3))
	top, _ := deck.Top()
	drawn, ok := deck.Draw()
	if !ok || drawn != top || deck.Len() != DeckSize-1 {
		t.Fatalf("draw did not take the top card")
	}
	all := deck.Drain()
	if len(all) != DeckSize-1 || deck.Len() != 0 {
		t.Fatalf("drain left %d cards", deck.Len())
	}
	if _, ok := deck.Draw(); ok {
		t.Fatalf("drew from empty pile")
	}
}
