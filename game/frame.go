package game

import (
	"fmt"

	"github.com/SvenDH/go-bartog/choice"
	"github.com/SvenDH/go-bartog/ui"
)

const editRulesQuestion = "edit the rules?"

func (s *State) update(input ui.Input, speaker *ui.Speaker) {
	s.updateLogPanel(input)

	switch {
	case s.LogOpen():
		s.scrollLog(input)
	case !s.choice.Idle():
	case s.animations.Len() > 0:
		s.advanceAnimations(speaker)
		s.moveCursor(input, speaker)
	case len(s.winners) == 0:
		s.takeTurn(input, speaker)
	}
}

// resolveMenus moves through the rule editor flow: the prompt, then the
// editor, then commit or cancel.
func (s *State) resolveMenus() {
	if s.menu == menuPrompt {
		yes, ok, err := s.choice.ChooseBool()
		switch {
		case err != nil:
			s.violation(err.Error())
			return
		case !ok:
			return
		case yes:
			s.menu = menuEditor
		default:
			s.menu = menuNone
		}
	}
	if s.menu == menuEditor {
		outcome, ok, err := s.choice.ChooseGraph()
		switch {
		case err != nil:
			s.violation(err.Error())
		case ok:
			s.menu = menuNone
			if outcome.Committed {
				before := s.rules
				s.rules = s.rules.Commit(outcome.Changes)
				n := len(before.Diff(&s.rules))
				if n == 1 {
					s.event("rules changed: 1 card.")
				} else {
					s.event(fmt.Sprintf("rules changed: %d cards.", n))
				}
			}
		}
	}
}

func (s *State) offerPlayAgain() {
	if len(s.winners) == 0 || s.animations.Len() > 0 {
		return
	}
	ok, err := s.choice.ChooseUnit()
	if err != nil {
		s.violation(err.Error())
		return
	}
	if ok {
		s.Reset()
	}
}

// dispatch runs the one dialog matching the awaited choice.
func (s *State) dispatch(env ui.Env) {
	switch st := s.choice.State().(type) {
	case choice.AwaitingGraph:
		s.doGraphChoice(env, st.Session)
	case choice.AwaitingSuit:
		s.doSuitChoice(env)
	case choice.AwaitingBool:
		s.doBoolChoice(env, editRulesQuestion)
	case choice.AwaitingUnit:
		s.doUnitChoice(env)
	case choice.Idle, choice.Resolved:
	}
}

// UpdateAndRender advances the game by one frame and draws it.
func (s *State) UpdateAndRender(cmds *ui.Commands, input ui.Input, speaker *ui.Speaker) {
	s.context.FrameInit()

	s.update(input, speaker)
	s.resolveMenus()
	s.checkCards()

	s.render(cmds)

	s.offerPlayAgain()

	if s.LogOpen() {
		s.drawEventLog(cmds)
	} else {
		s.dispatch(s.env(cmds, input, speaker))
	}
}
