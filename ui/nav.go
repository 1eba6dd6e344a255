package ui

// DiceMod wraps x into 1..m, the way ids of a group of m widgets wrap.
// Zero maps to m so stepping back from the first id lands on the last.
func DiceMod(x, m ID) ID {
	if x == 0 {
		return m
	}
	return (x-1)%m + 1
}

// Cycle moves hot within ids 1..m on Up and Down, forcing 1 when nothing
// in range is hot.
func Cycle(env Env, m ID) {
	ctx := env.Context
	switch {
	case ctx.Hot == 0 || ctx.Hot > m:
		ctx.SetNextHot(1)
	case env.Input.PressedThisFrame(ButtonUp):
		ctx.SetNextHot(DiceMod(ctx.Hot-1, m))
	case env.Input.PressedThisFrame(ButtonDown):
		ctx.SetNextHot(DiceMod(ctx.Hot+1, m))
	}
}
