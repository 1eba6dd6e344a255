package ui

type SFX uint8

const (
	CardPlace SFX = iota
	CardSlide
	ButtonPress
)

func (s SFX) String() string {
	switch s {
	case CardPlace:
		return "card-place"
	case CardSlide:
		return "card-slide"
	case ButtonPress:
		return "button-press"
	}
	return "unknown"
}

// Speaker collects the sound requests of one frame.
type Speaker struct {
	requests []SFX
}

func (s *Speaker) Request(sfx SFX) { s.requests = append(s.requests, sfx) }

func (s *Speaker) Clear() { s.requests = s.requests[:0] }

func (s *Speaker) Slice() []SFX { return s.requests }
