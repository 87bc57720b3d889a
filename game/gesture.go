package game

import "github.com/CodeYimin/Simon-Arduino-Game/constant"

// awaitGesture blocks until one full press-then-release gesture
// completes and reports which pad it was on. A pad already held when
// the wait begins is drained first and never counts as the awaited
// gesture. onPressed fires the instant the press is seen, onReleased
// the instant the pad clears; either callback may be nil. There is no
// timeout: within a running game a gesture is awaited indefinitely.
func (g *Game) awaitGesture(onPressed, onReleased func(Control)) (Control, error) {
	// Drain a press held over from a prior state.
	for {
		if g.stopped() {
			return 0, ErrStopped
		}
		if _, held := g.reader.Poll(); !held {
			break
		}
		g.clock.Sleep(constant.PollInterval)
	}

	// Armed: wait for the press.
	var pad Control
	for {
		if g.stopped() {
			return 0, ErrStopped
		}
		var pressed bool
		if pad, pressed = g.reader.Poll(); pressed {
			break
		}
		g.clock.Sleep(constant.PollInterval)
	}
	if onPressed != nil {
		onPressed(pad)
	}

	// Wait for the release.
	for {
		if g.stopped() {
			return 0, ErrStopped
		}
		if _, held := g.reader.Poll(); !held {
			break
		}
		g.clock.Sleep(constant.PollInterval)
	}
	if onReleased != nil {
		onReleased(pad)
	}
	return pad, nil
}
