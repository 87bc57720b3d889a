package game

import "time"

// Reader reports the pad currently actuated on the control surface.
// Poll is instantaneous and non-blocking; deciding a single winner among
// ambiguous readings is the reader's concern, not the core's.
type Reader interface {
	Poll() (Control, bool)
}

// Emitter drives the light/sound output for pads. Repeated Emit and
// Silence calls for the same pad must be idempotent.
type Emitter interface {
	Emit(c Control, tone Frequency)
	EmitAll(tone Frequency)
	Silence(c Control)
	SilenceAll()
}

// Display presents two short lines of status text.
type Display interface {
	ShowText(line0, line1 string)
}

// Clock paces playback flashes and the input poll tick. Substituting a
// recording clock keeps the tests instantaneous.
type Clock interface {
	Sleep(d time.Duration)
}

// Rand draws uniform ints in [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SystemClock sleeps on the wall clock.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
