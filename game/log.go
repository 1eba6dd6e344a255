package game

import (
	"strings"

	"github.com/SvenDH/go-bartog/ui"
)

// Logger receives event log lines and diagnostics. A nil Logger discards
// them.
type Logger func(string)

func (l Logger) log(msg string) {
	if l != nil {
		l(msg)
	}
}

type LogHeading uint8

const (
	LogUp LogHeading = iota
	LogDown
)

// logWidth is how many characters fit on one line of the log panel.
const logWidth = ui.InteriorWidthInChars

// EventLog keeps every line shown in the log panel, oldest first.
type EventLog struct {
	lines []string
}

// Push adds an entry, wrapped to the panel width.
func (l *EventLog) Push(entry string) {
	l.lines = append(l.lines, strings.Split(ui.Reflow(entry, logWidth), "\n")...)
}

func (l *EventLog) Len() int { return len(l.lines) }

// Window returns the lines from top on.
func (l *EventLog) Window(top int) []string {
	if top < 0 || top >= len(l.lines) {
		return nil
	}
	return l.lines[top:]
}

func (l *EventLog) Lines() []string { return l.lines }

// event records a line in the event log and passes it on to the logger.
func (s *State) event(entry string) {
	s.eventLog.Push(entry)
	s.logger.log(entry)
}

func (s *State) updateLogPanel(input ui.Input) {
	switch s.logHeading {
	case LogUp:
		s.logHeight = max(s.logHeight-ui.SpriteSize, 0)
	case LogDown:
		if s.logHeight <= ui.ScreenHeight-ui.SpriteSize {
			s.logHeight += ui.SpriteSize
		}
	}

	if input.PressedThisFrame(ui.ButtonStart) {
		if s.logHeading == LogUp {
			s.logHeading = LogDown
		} else {
			s.logHeading = LogUp
		}
	}
}

func (s *State) scrollLog(input ui.Input) {
	if input.PressedThisFrame(ui.ButtonUp) {
		s.logTop = max(s.logTop-1, 0)
	} else if input.PressedThisFrame(ui.ButtonDown) && s.logTop < s.eventLog.Len() {
		s.logTop++
	}
}

func (s *State) drawEventLog(cmds *ui.Commands) {
	cmds.Push(ui.Panel{X: 0, Y: 0, W: ui.ScreenWidth, H: s.logHeight})
	y := ui.SpriteSize
	for _, line := range s.eventLog.Window(s.logTop) {
		if y+ui.FontSize > s.logHeight {
			break
		}
		cmds.Print(line, ui.SpriteSize, y, ui.White)
		y += ui.FontSize
	}
}
