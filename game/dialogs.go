package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SvenDH/go-bartog/cards"
	"github.com/SvenDH/go-bartog/choice"
	"github.com/SvenDH/go-bartog/rules"
	"github.com/SvenDH/go-bartog/ui"
)

const (
	buttonW = ui.SpriteSize * 5
	buttonH = ui.SpriteSize * 3
	// sideButtonX is the column of buttons on the right of a full window.
	sideButtonX = ui.ScreenWidth - (buttonW + ui.SpriteSize)
)

func (s *State) env(cmds *ui.Commands, input ui.Input, speaker *ui.Speaker) ui.Env {
	return ui.Env{Commands: cmds, Context: &s.context, Input: input, Speaker: speaker}
}

func (s *State) resolve(v choice.Value) {
	if err := s.choice.Resolve(v); err != nil {
		s.violation(err.Error())
	}
}

// WinnerText names the winners, e.g. "cpu 1 and you win!".
func (s *State) WinnerText() string {
	names := make([]string, len(s.winners))
	for i, w := range s.winners {
		names[i] = s.PlayerName(w)
	}
	var who string
	switch len(names) {
	case 0:
		return ""
	case 1:
		who = names[0]
	default:
		who = strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
	if len(names) == 1 && s.IsCPU(s.winners[0]) {
		return who + " wins!"
	}
	return who + " win!"
}

func (s *State) doUnitChoice(env ui.Env) {
	env.Commands.FullWindow()

	text := ui.Reflow(s.WinnerText(), ui.InteriorWidthInChars)
	w, h := ui.TextDimensions(text)
	x, _ := ui.CenterRect(w, h, ui.Interior)
	env.Commands.Print(text, x, ui.SpriteSize, ui.Yellow)

	question := "would you like to play again?"
	x, y := ui.CenterLine(len(question), ui.Interior)
	env.Commands.Print(question, x, y, ui.White)

	y = ui.ScreenHeight - (buttonH + ui.SpriteSize)
	x, _ = ui.CenterRect(buttonW, buttonH, ui.Area{X: 0, Y: y, W: ui.ScreenWidth, H: buttonH})
	if ui.DoButton(env, ui.ButtonSpec{ID: 1, X: x, Y: y, W: buttonW, H: buttonH, Text: "yes"}) {
		s.resolve(choice.Unit{})
	}

	if s.context.Hot != 1 {
		s.context.SetNextHot(1)
	}
}

func (s *State) doBoolChoice(env ui.Env, question string) {
	env.Commands.FullWindow()

	x, y := ui.CenterLine(len(question), ui.Interior)
	env.Commands.Print(question, x, y, ui.White)

	y = ui.ScreenHeight - (buttonH + ui.SpriteSize)
	if ui.DoButton(env, ui.ButtonSpec{ID: 1, X: ui.SpriteSize, Y: y, W: buttonW, H: buttonH, Text: "yes"}) {
		s.resolve(choice.Bool(true))
	}
	if ui.DoButton(env, ui.ButtonSpec{ID: 2, X: sideButtonX, Y: y, W: buttonW, H: buttonH, Text: "no"}) {
		s.resolve(choice.Bool(false))
	}

	ctx := &s.context
	switch {
	case ctx.Hot != 1 && ctx.Hot != 2:
		ctx.SetNextHot(1)
	case env.Input.PressedThisFrame(ui.ButtonLeft), env.Input.PressedThisFrame(ui.ButtonRight):
		ctx.SetNextHot(3 - ctx.Hot)
	}
}

func (s *State) doSuitChoice(env ui.Env) {
	env.Commands.FullWindow()

	text := "choose a suit for the 8 to be"
	x, _ := ui.CenterLine(len(text), ui.Interior)
	env.Commands.Print(text, x, ui.SpriteSize*2, ui.White)

	for i, suit := range cards.Suits {
		id := ui.ID(i + 1)
		spec := ui.ButtonSpec{
			ID: id,
			X:  ui.SpriteSize, Y: buttonH * int(id),
			W: ui.InteriorSize, H: buttonH,
			Text: suit.String(),
		}
		if ui.DoButton(env, spec) {
			s.resolve(choice.SuitValue(suit))
		}
	}

	ui.Cycle(env, cards.SuitCount)
}

// Rule editor ids.
const (
	firstCardButton  ui.ID = 4
	cardButtonCount        = 4
	firstCheckbox    ui.ID = 3
	checkboxRows           = 10
	checkboxCols           = 2
	lastCheckbox           = firstCheckbox + checkboxRows*checkboxCols - 1
	checkboxRowSpace       = ui.FontSize + 2
)

func (s *State) doGraphChoice(env ui.Env, session *rules.Session) {
	switch session.Layer {
	case rules.LayerCard:
		s.chooseCard(env, session)
	case rules.LayerEdges:
		s.chooseEdges(env, session)
	}
}

func (s *State) chooseCard(env ui.Env, session *rules.Session) {
	cmds, ctx, input := env.Commands, env.Context, env.Input
	cmds.FullWindow()

	text := "choose a card to change."
	x, _ := ui.CenterLine(len(text), ui.Interior)
	cmds.Print(text, x, ui.SpriteSize*2, ui.White)

	if ui.DoButton(env, ui.ButtonSpec{ID: 1, X: sideButtonX, Y: ui.SpriteSize * 4, W: buttonW, H: buttonH, Text: "reset"}) {
		session.Reset()
	}
	if ui.DoButton(env, ui.ButtonSpec{ID: 2, X: sideButtonX, Y: ui.SpriteSize * 7, W: buttonW, H: buttonH, Text: "cancel"}) {
		s.resolve(choice.GraphValue(session.Cancel()))
		return
	}

	changes := len(session.Changes)
	sideButtons := ui.ID(2)
	if changes > 0 {
		sideButtons = 3
		if ui.DoButton(env, ui.ButtonSpec{ID: 3, X: sideButtonX, Y: ui.SpriteSize * 10, W: buttonW, H: buttonH, Text: "done"}) {
			s.resolve(choice.GraphValue(session.Done()))
			return
		}
	}

	label := "changes."
	if changes == 1 {
		label = "change."
	}
	cmds.Print(strconv.Itoa(changes), ui.SpriteSize*11, ui.SpriteSize*13, ui.White)
	cmds.Print(label, ui.SpriteSize*11, ui.SpriteSize*13+ui.FontSize, ui.White)

	w := ui.SpriteSize * 10
	for i := range cardButtonCount {
		id := firstCardButton + ui.ID(i)
		card := session.CardScroll.Next(i)
		spec := ui.ButtonSpec{
			ID: id,
			X:  ui.SpriteSize, Y: buttonH*(i+1) + ui.SpriteSize/2,
			W: w, H: buttonH,
			Text: card.String(),
		}
		if ui.DoButton(env, spec) {
			session.Open(&s.rules, card)
			ctx.SetNextHot(1)
			return
		}
	}

	lastCardButton := firstCardButton + cardButtonCount - 1
	switch {
	case ctx.Hot == 0 || ctx.Hot > lastCardButton || (ctx.Hot < firstCardButton && ctx.Hot > sideButtons):
		ctx.SetNextHot(1)
	case ctx.Hot < firstCardButton:
		switch {
		case input.PressedThisFrame(ui.ButtonUp):
			ctx.SetNextHot(ui.DiceMod(ctx.Hot-1, sideButtons))
		case input.PressedThisFrame(ui.ButtonDown):
			ctx.SetNextHot(ui.DiceMod(ctx.Hot+1, sideButtons))
		case input.PressedThisFrame(ui.ButtonLeft), input.PressedThisFrame(ui.ButtonRight):
			ctx.SetNextHot(firstCardButton - 1 + ctx.Hot)
		}
	default:
		if input.PressedThisFrame(ui.ButtonLeft) || input.PressedThisFrame(ui.ButtonRight) {
			ctx.SetNextHot(min(ctx.Hot-firstCardButton+1, sideButtons))
			return
		}
		offset := ctx.Hot - firstCardButton
		switch {
		case input.PressedThisFrame(ui.ButtonUp):
			if offset == 0 {
				session.CardScroll = session.CardScroll.Next(-1)
			} else {
				offset--
			}
		case input.PressedThisFrame(ui.ButtonDown):
			if offset == cardButtonCount-1 {
				session.CardScroll = session.CardScroll.Next(1)
			} else {
				offset++
			}
		}
		ctx.SetNextHot(offset + firstCardButton)
	}
}

func headingY(i int) int { return ui.SpriteSize*2 + ui.FontSize*i }

func (s *State) chooseEdges(env ui.Env, session *rules.Session) {
	cmds, ctx, input := env.Commands, env.Context, env.Input
	cmds.FullWindow()

	maxHeadingY := headingY(-1)
	text := ui.Reflow(fmt.Sprintf("choose the cards the %s can be played on.", session.Card), ui.InteriorWidthInChars)
	for i, line := range strings.Split(text, "\n") {
		x, _ := ui.CenterLine(len(line), ui.Interior)
		maxHeadingY = headingY(i)
		cmds.Print(line, x, maxHeadingY, ui.White)
	}

	if ui.DoButton(env, ui.ButtonSpec{ID: 1, X: sideButtonX, Y: ui.SpriteSize * 4, W: buttonW, H: buttonH, Text: "ok"}) {
		session.Stage()
		ctx.SetNextHot(1)
		return
	}
	if ui.DoButton(env, ui.ButtonSpec{ID: 2, X: sideButtonX, Y: ui.SpriteSize * 7, W: buttonW, H: buttonH, Text: "cancel"}) {
		session.Back()
		ctx.SetNextHot(1)
		return
	}

	colWidth := ui.SpriteSize*2 + 3*ui.FontAdvance
	for row := range checkboxRows {
		for col := range checkboxCols {
			i := col + row*checkboxCols
			card := session.EdgeScroll.Next(i)
			spec := ui.CheckboxSpec{
				ID:      firstCheckbox + ui.ID(i),
				X:       ui.SpriteSize + colWidth*col,
				Y:       maxHeadingY + checkboxRowSpace*(row+1) + ui.SpriteSize/2,
				Text:    card.Short(),
				Checked: session.Edges.Has(card),
			}
			if ui.DoCheckbox(env, spec) {
				session.Edges.Toggle(card)
			}
		}
	}

	// Ids below lowerHalf sit next to "ok", the rest next to "cancel".
	const lowerHalf = firstCheckbox + 3*checkboxCols
	switch {
	case ctx.Hot == 0 || ctx.Hot > lastCheckbox:
		ctx.SetNextHot(1)
	case ctx.Hot < firstCheckbox:
		switch {
		case input.PressedThisFrame(ui.ButtonUp):
			ctx.SetNextHot(ui.DiceMod(ctx.Hot-1, 2))
		case input.PressedThisFrame(ui.ButtonDown):
			ctx.SetNextHot(ui.DiceMod(ctx.Hot+1, 2))
		case input.PressedThisFrame(ui.ButtonRight):
			if ctx.Hot == 1 {
				ctx.SetNextHot(firstCheckbox)
			} else {
				ctx.SetNextHot(lowerHalf)
			}
		case input.PressedThisFrame(ui.ButtonLeft):
			if ctx.Hot == 1 {
				ctx.SetNextHot(firstCheckbox + 1)
			} else {
				ctx.SetNextHot(lowerHalf + 1)
			}
		}
	default:
		leftColumn := (ctx.Hot-firstCheckbox)%checkboxCols == 0
		toButtons := ui.ID(1)
		if ctx.Hot > lowerHalf {
			toButtons = 2
		}
		switch {
		case input.PressedThisFrame(ui.ButtonLeft):
			if leftColumn {
				ctx.SetNextHot(toButtons)
			} else {
				ctx.SetNextHot(ctx.Hot - 1)
			}
			return
		case input.PressedThisFrame(ui.ButtonRight):
			if leftColumn {
				ctx.SetNextHot(ctx.Hot + 1)
			} else {
				ctx.SetNextHot(toButtons)
			}
			return
		}
		offset := ctx.Hot - firstCheckbox
		switch {
		case input.PressedThisFrame(ui.ButtonUp):
			if offset < checkboxCols {
				session.EdgeScroll = session.EdgeScroll.Next(-checkboxCols)
			} else {
				offset -= checkboxCols
			}
		case input.PressedThisFrame(ui.ButtonDown):
			if offset/checkboxCols >= checkboxRows-1 {
				session.EdgeScroll = session.EdgeScroll.Next(checkboxCols)
			} else {
				offset += checkboxCols
			}
		}
		ctx.SetNextHot(offset + firstCheckbox)
	}
}
