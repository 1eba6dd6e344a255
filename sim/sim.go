// Package sim plays Bartog without a frontend. An autopilot stands in for
// the human and taps buttons the way a player would.
package sim

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/SvenDH/go-bartog/choice"
	"github.com/SvenDH/go-bartog/game"
	"github.com/SvenDH/go-bartog/rng"
	"github.com/SvenDH/go-bartog/ui"
)

// Autopilot picks one button to tap per frame for the human player.
type Autopilot struct {
	held ui.Button
}

// Decide returns the button to press this frame, or 0.
func (a *Autopilot) Decide(s *game.State) ui.Button {
	if s.LogOpen() {
		return 0
	}
	if s.Choice().Awaiting() != choice.KindNone {
		if s.Context().Hot != 0 {
			return ui.ButtonA
		}
		return 0
	}
	if s.Animations().Len() > 0 || len(s.Winners()) > 0 || s.CurrentPlayer() != s.Human() {
		return 0
	}

	playable := s.Playable(s.Human())
	if len(playable) == 0 {
		return ui.ButtonB
	}
	target := playable[0]
	switch {
	case s.HandIndex() < target:
		return ui.ButtonRight
	case s.HandIndex() > target:
		return ui.ButtonLeft
	}
	return ui.ButtonA
}

// Step runs one frame. A button pressed on one frame is released on the
// next, so every press is a tap.
func (a *Autopilot) Step(g *game.Game) {
	if a.held != 0 {
		g.Release(a.held)
		a.held = 0
	} else if b := a.Decide(g.State); b != 0 {
		g.Press(b)
		a.held = b
	}
	g.Frame()
}

type Result struct {
	ID       ulid.ULID
	Seed     uint64
	CPUs     int
	Frames   int
	Events   int
	Winners  []string
	Finished bool
}

// Run plays one deal until somebody wins or maxFrames pass. A broken
// invariant in a strict game is returned as an error.
func Run(cfg game.Config, maxFrames int, logger game.Logger) (res Result, err error) {
	g, err := game.NewGame(cfg, logger)
	if err != nil {
		return Result{}, err
	}
	s := g.State
	res = Result{ID: s.ID, Seed: s.Seed, CPUs: cfg.CPUs}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("deal %s (seed %d) frame %d: %v", res.ID, res.Seed, res.Frames, r)
		}
	}()

	var pilot Autopilot
	for res.Frames < maxFrames {
		if len(s.Winners()) > 0 && s.Animations().Len() == 0 {
			res.Finished = true
			break
		}
		pilot.Step(g)
		res.Frames++
	}

	for _, w := range s.Winners() {
		res.Winners = append(res.Winners, s.PlayerName(w))
	}
	res.Events = s.EventLog().Len()
	return res, nil
}

// Batch plays games deals. Their seeds are drawn from a source seeded with
// cfg.Seed, so a batch is reproducible.
func Batch(cfg game.Config, games, maxFrames int, logger game.Logger) ([]Result, error) {
	seeds := rng.New(cfg.Seed)
	results := make([]Result, 0, games)
	for range games {
		c := cfg
		c.Seed = seeds.NewSeed()
		res, err := Run(c, maxFrames, logger)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
