package ui

// Keys remembers which physical keys hold each button down. A button bound
// to several keys is released only when the last of them goes up.
type Keys[K comparable] struct {
	held map[K]Button
}

func (k *Keys[K]) Down(key K, b Button) {
	if k.held == nil {
		k.held = map[K]Button{}
	}
	k.held[key] = b
}

// Up forgets key and returns the button to release, if no other key still
// holds it.
func (k *Keys[K]) Up(key K) (Button, bool) {
	b, ok := k.held[key]
	if !ok {
		return 0, false
	}
	delete(k.held, key)
	for _, other := range k.held {
		if other == b {
			return 0, false
		}
	}
	return b, true
}
