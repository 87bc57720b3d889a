package game

import (
	"strconv"
	"time"
)

// playSequence flashes every pad of seq in order: tone on for the on
// duration, silence for the gap. Once started it runs to completion.
func (g *Game) playSequence(seq Sequence, on, gap time.Duration) {
	for _, pad := range seq {
		g.emitter.Emit(pad, pad.Tone())
		g.clock.Sleep(on)
		g.emitter.Silence(pad)
		g.clock.Sleep(gap)
	}
}

// playLevel runs one machine-playback-then-player-replay cycle and
// reports whether the player reproduced the whole sequence. The replay
// comparison is prefix-exact: the first wrong pad ends the level on the
// spot and no further gesture is awaited. A wrong pad is the normal
// losing outcome, not an error; the only error is ErrStopped.
func (g *Game) playLevel(rs *roundState) (bool, error) {
	level := strconv.Itoa(rs.level())

	rs.phase = phaseMachinePlaying
	g.display.ShowText("Level "+level, "Watch closely...")
	g.playSequence(rs.seq, rs.speed.OnDuration(), rs.speed.GapDuration())

	rs.phase = phasePlayerReplaying
	g.display.ShowText("Level "+level, "Your turn!")
	for cursor := 0; cursor < len(rs.seq); cursor++ {
		pad, err := g.awaitGesture(g.lightPad, g.clearPad)
		if err != nil {
			return false, err
		}
		if pad != rs.seq[cursor] {
			return false, nil
		}
	}
	return true, nil
}

// lightPad and clearPad are the press/release feedback hooks: the pad
// the player is holding sounds and lights until released.
func (g *Game) lightPad(pad Control) { g.emitter.Emit(pad, pad.Tone()) }
func (g *Game) clearPad(pad Control) { g.emitter.Silence(pad) }
