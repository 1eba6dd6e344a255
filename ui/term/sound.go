package term

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/SvenDH/go-bartog/ui"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq     float64
	duration time.Duration
}

var tones = map[ui.SFX]tone{
	ui.CardPlace:   {freq: 196, duration: 60 * time.Millisecond},
	ui.CardSlide:   {freq: 523, duration: 30 * time.Millisecond},
	ui.ButtonPress: {freq: 784, duration: 50 * time.Millisecond},
}

// Speaker plays sound requests as short sine tones.
type Speaker struct{}

func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

func (s *Speaker) Play(requests []ui.SFX) {
	for _, sfx := range requests {
		t, ok := tones[sfx]
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		speaker.Play(&effects.Volume{
			Streamer: beep.Take(sampleRate.N(t.duration), sine),
			Base:     2,
			Volume:   -2,
		})
	}
}

func (s *Speaker) Close() { speaker.Close() }
