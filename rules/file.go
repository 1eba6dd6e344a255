package rules

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/SvenDH/go-bartog/cards"
)

// A house-rules file has one rule per line:
//
//	QS on KH, 5S       # the queen of spades may only be played on these
//	*H also on *D      # hearts may additionally be played on diamonds
//	8C never on 8D
//
// A * in the rank or suit position matches every rank or suit.
type File struct {
	Rules []*Rule `@@*`
}

type Rule struct {
	Pos     lexer.Position
	Subject Pattern   `@Card`
	Also    bool      `( @"also"`
	Never   bool      `| @"never" )?`
	Targets []Pattern `"on" @Card ( "," @Card )*`
}

// Pattern is a card with optional wildcards, e.g. "QS", "*H", "10*", "**".
type Pattern string

func (p *Pattern) Capture(values []string) error {
	*p = Pattern(values[0])
	_, err := p.Cards()
	return err
}

// Cards expands the pattern to the cards it matches.
func (p Pattern) Cards() ([]cards.Card, error) {
	s := string(p)
	if len(s) < 2 {
		return nil, fmt.Errorf("pattern %q: too short", s)
	}
	rankPart, suitPart := s[:len(s)-1], s[len(s)-1]

	var out []cards.Card
	for c := cards.Card(0); c < cards.DeckSize; c++ {
		if rankPart != "*" {
			r, ok := cards.ParseRank(rankPart)
			if !ok {
				return nil, fmt.Errorf("pattern %q: unknown rank %q", s, rankPart)
			}
			if c.Rank() != r {
				continue
			}
		}
		if suitPart != '*' {
			su, ok := cards.ParseSuit(suitPart)
			if !ok {
				return nil, fmt.Errorf("pattern %q: unknown suit %q", s, suitPart)
			}
			if c.Suit() != su {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

var fileParser = participle.MustBuild[File](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[\s]+`},
		{Name: "Card", Pattern: `(10|[2-9AJQK*])[CDHS*]`},
		{Name: "Ident", Pattern: `[a-z]+`},
		{Name: "Punct", Pattern: `,`},
	})),
	participle.Elide("Comment", "Whitespace"),
)

func ParseString(name, src string) (*File, error) {
	return fileParser.ParseString(name, src)
}

func Parse(name string, r io.Reader) (*File, error) {
	return fileParser.Parse(name, r)
}

func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Changes turns the file into a change list against base. Rules apply in
// order, so a later rule sees the effect of an earlier one.
func (f *File) Changes(base Graph) ([]Change, error) {
	working := base
	var changes []Change
	for _, rule := range f.Rules {
		subjects, err := rule.Subject.Cards()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rule.Pos, err)
		}
		var targets Edges
		for _, p := range rule.Targets {
			cs, err := p.Cards()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", rule.Pos, err)
			}
			targets |= EdgesOf(cs...)
		}
		for _, c := range subjects {
			edges := working.Edges(c)
			switch {
			case rule.Also:
				edges |= targets
			case rule.Never:
				edges &^= targets
			default:
				edges = targets
			}
			ch := Change{Card: c, Edges: edges}
			working = working.Commit([]Change{ch})
			changes = append(changes, ch)
		}
	}
	return changes, nil
}
