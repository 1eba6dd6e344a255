package window

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/SvenDH/go-bartog/ui"
)

const sampleRate = 44100

type tone struct {
	freq     float64
	duration float64
}

var tones = map[ui.SFX]tone{
	ui.CardPlace:   {freq: 196, duration: 0.06},
	ui.CardSlide:   {freq: 523, duration: 0.03},
	ui.ButtonPress: {freq: 784, duration: 0.05},
}

// pcm renders a decaying sine as 16 bit little endian stereo, the format
// audio players read.
func pcm(t tone) []byte {
	n := int(t.duration * sampleRate)
	buf := make([]byte, n*4)
	for i := range n {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*t.freq*float64(i)/sampleRate) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// Speaker plays sound requests through ebiten's audio context.
type Speaker struct {
	players map[ui.SFX]*audio.Player
}

func NewSpeaker() *Speaker {
	ctx := audio.NewContext(sampleRate)
	s := &Speaker{players: make(map[ui.SFX]*audio.Player, len(tones))}
	for sfx, t := range tones {
		s.players[sfx] = ctx.NewPlayerFromBytes(pcm(t))
	}
	return s
}

func (s *Speaker) Play(requests []ui.SFX) {
	for _, sfx := range requests {
		p, ok := s.players[sfx]
		if !ok {
			continue
		}
		if err := p.Rewind(); err != nil {
			continue
		}
		p.Play()
	}
}
