package ui

// Env is what a widget reads and writes during one frame.
type Env struct {
	Commands *Commands
	Context  *Context
	Input    Input
	Speaker  *Speaker
}

type ButtonSpec struct {
	ID         ID
	X, Y, W, H int
	Text       string
}

type CheckboxSpec struct {
	ID      ID
	X, Y    int
	Text    string
	Checked bool
}

// CheckboxSize is the side of the box part of a checkbox.
const CheckboxSize = SpriteSize

// interact runs the hot/active state machine for one widget and reports
// whether it was activated this frame.
func interact(env Env, id ID) bool {
	ctx := env.Context
	activated := false
	if ctx.Active == id {
		if env.Input.ReleasedThisFrame(ButtonA) {
			activated = ctx.Hot == id
			ctx.SetNotActive()
		}
		ctx.SetNextHot(id)
	} else if ctx.Hot == id {
		if env.Input.PressedThisFrame(ButtonA) {
			ctx.SetActive(id)
			env.Speaker.Request(ButtonPress)
		}
		ctx.SetNextHot(id)
	}
	return activated
}

func look(env Env, id ID) Look {
	switch {
	case env.Context.Active == id && env.Input.Held(ButtonA):
		return LookPressed
	case env.Context.Hot == id:
		return LookHot
	}
	return LookNormal
}

// DoButton draws a button and reports whether it was activated: A pressed
// while hot and released while still hot.
func DoButton(env Env, spec ButtonSpec) bool {
	activated := interact(env, spec.ID)
	env.Commands.Push(ButtonChrome{
		X: spec.X, Y: spec.Y, W: spec.W, H: spec.H,
		Text: spec.Text,
		Look: look(env, spec.ID),
	})
	return activated
}

// DoCheckbox draws a checkbox and reports whether it was activated. The
// caller owns the checked state and toggles it.
func DoCheckbox(env Env, spec CheckboxSpec) bool {
	activated := interact(env, spec.ID)
	env.Commands.Push(Checkbox{
		X: spec.X, Y: spec.Y,
		Text:    spec.Text,
		Checked: spec.Checked,
		Look:    look(env, spec.ID),
	})
	return activated
}
