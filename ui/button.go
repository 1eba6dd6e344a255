package ui

// Button is a set of logical buttons, one bit each.
type Button uint8

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

func (b Button) Contains(other Button) bool { return b&other == other }

func (b *Button) Insert(other Button) { *b |= other }

func (b *Button) Remove(other Button) { *b &^= other }

func (b Button) String() string {
	names := []string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}
	out := ""
	for i, name := range names {
		if b&(1<<i) != 0 {
			if out != "" {
				out += "+"
			}
			out += name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

// Input is what is held this frame and what was held last frame.
type Input struct {
	Gamepad  Button
	Previous Button
}

func (in Input) PressedThisFrame(b Button) bool {
	return !in.Previous.Contains(b) && in.Gamepad.Contains(b)
}

func (in Input) ReleasedThisFrame(b Button) bool {
	return in.Previous.Contains(b) && !in.Gamepad.Contains(b)
}

func (in Input) Held(b Button) bool { return in.Gamepad.Contains(b) }
