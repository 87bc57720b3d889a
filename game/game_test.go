package game

import (
	"sync"
	"time"
)

// pollResult is one scripted Reader reading.
type pollResult struct {
	pad  Control
	held bool
}

// gesture builds the poll script for one full press-then-release: an
// idle read for the drain loop, a held read, a released read.
func gesture(pad Control) []pollResult {
	return []pollResult{{}, {pad: pad, held: true}, {}}
}

func concat(scripts ...[]pollResult) []pollResult {
	var all []pollResult
	for _, s := range scripts {
		all = append(all, s...)
	}
	return all
}

// scriptedReader replays canned poll results. Once the script runs out
// it reports no actuation and, when wired with a stop channel, closes
// it so Run winds down.
type scriptedReader struct {
	script []pollResult
	pos    int
	polls  int
	stop   chan struct{}
	once   sync.Once
}

func (r *scriptedReader) Poll() (Control, bool) {
	r.polls++
	if r.pos >= len(r.script) {
		if r.stop != nil {
			r.once.Do(func() { close(r.stop) })
		}
		return 0, false
	}
	res := r.script[r.pos]
	r.pos++
	return res.pad, res.held
}

// emitCall records one Emitter invocation.
type emitCall struct {
	op   string // emit, emitAll, silence, silenceAll
	pad  Control
	tone Frequency
}

type recordingEmitter struct {
	calls []emitCall
}

func (e *recordingEmitter) Emit(c Control, t Frequency) {
	e.calls = append(e.calls, emitCall{op: "emit", pad: c, tone: t})
}

func (e *recordingEmitter) EmitAll(t Frequency) {
	e.calls = append(e.calls, emitCall{op: "emitAll", tone: t})
}

func (e *recordingEmitter) Silence(c Control) {
	e.calls = append(e.calls, emitCall{op: "silence", pad: c})
}

func (e *recordingEmitter) SilenceAll() {
	e.calls = append(e.calls, emitCall{op: "silenceAll"})
}

type recordingDisplay struct {
	lines [][2]string
}

func (d *recordingDisplay) ShowText(line0, line1 string) {
	d.lines = append(d.lines, [2]string{line0, line1})
}

// recordingClock captures every sleep without waiting.
type recordingClock struct {
	slept []time.Duration
}

func (c *recordingClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
}

// scriptedRand returns canned draws and fails loudly past the script
// end or on an out-of-range value.
type scriptedRand struct {
	vals []int
	pos  int
}

func (r *scriptedRand) Intn(n int) int {
	if r.pos >= len(r.vals) {
		panic("scriptedRand: out of values")
	}
	v := r.vals[r.pos]
	r.pos++
	if v < 0 || v >= n {
		panic("scriptedRand: value out of range")
	}
	return v
}

// testGame wires a core with recording fakes.
func testGame(reader Reader, em Emitter, rnd Rand, stop <-chan struct{}) (*Game, *recordingDisplay, *recordingClock) {
	disp := &recordingDisplay{}
	clk := &recordingClock{}
	g := New(Config{
		Reader:  reader,
		Emitter: em,
		Display: disp,
		Clock:   clk,
		Rand:    rnd,
		Stop:    stop,
	})
	return g, disp, clk
}
