package game

import (
	"testing"
	"time"
)

func TestMachinePlaybackOrderAndTempo(t *testing.T) {
	em := &recordingEmitter{}
	g, _, clk := testGame(&scriptedReader{}, em, &scriptedRand{}, nil)

	g.playSequence(Sequence{ControlGreen, ControlBlue}, 650*time.Millisecond, 130*time.Millisecond)

	want := []emitCall{
		{op: "emit", pad: ControlGreen, tone: ControlGreen.Tone()},
		{op: "silence", pad: ControlGreen},
		{op: "emit", pad: ControlBlue, tone: ControlBlue.Tone()},
		{op: "silence", pad: ControlBlue},
	}
	if len(em.calls) != len(want) {
		t.Fatalf("Expected %d emitter calls, got %d: %v", len(want), len(em.calls), em.calls)
	}
	for i := range want {
		if em.calls[i] != want[i] {
			t.Errorf("Call %d = %+v, want %+v", i, em.calls[i], want[i])
		}
	}

	wantSlept := []time.Duration{650 * time.Millisecond, 130 * time.Millisecond, 650 * time.Millisecond, 130 * time.Millisecond}
	if len(clk.slept) != len(wantSlept) {
		t.Fatalf("Expected %d sleeps, got %d: %v", len(wantSlept), len(clk.slept), clk.slept)
	}
	for i := range wantSlept {
		if clk.slept[i] != wantSlept[i] {
			t.Errorf("Sleep %d = %v, want %v", i, clk.slept[i], wantSlept[i])
		}
	}
}

func TestReplayFailsAtFirstMismatch(t *testing.T) {
	seq := Sequence{ControlGreen, ControlRed, ControlYellow}
	// Third gesture is wrong; the sentinel fourth must never be read.
	reader := &scriptedReader{script: concat(
		gesture(ControlGreen),
		gesture(ControlRed),
		gesture(ControlBlue),
		gesture(ControlGreen),
	)}
	g, _, _ := testGame(reader, &recordingEmitter{}, &scriptedRand{}, nil)

	ok, err := g.playLevel(&roundState{seq: seq, speed: 5})
	if err != nil {
		t.Fatalf("playLevel returned error: %v", err)
	}
	if ok {
		t.Fatal("Expected level failure on mismatched third pad")
	}
	if reader.pos != 9 {
		t.Errorf("Expected exactly 3 gestures (9 polls) consumed, got %d", reader.pos)
	}
}

func TestReplayCompletesOnExactMatch(t *testing.T) {
	seq := Sequence{ControlGreen, ControlRed, ControlYellow}
	reader := &scriptedReader{script: concat(
		gesture(ControlGreen),
		gesture(ControlRed),
		gesture(ControlYellow),
	)}
	em := &recordingEmitter{}
	g, disp, _ := testGame(reader, em, &scriptedRand{}, nil)

	ok, err := g.playLevel(&roundState{seq: seq, speed: 5})
	if err != nil {
		t.Fatalf("playLevel returned error: %v", err)
	}
	if !ok {
		t.Fatal("Expected level success on exact replay")
	}

	// Playback flashes all three pads, then each held pad lights as
	// feedback: six emits total, six silences.
	var emits, silences int
	for _, c := range em.calls {
		switch c.op {
		case "emit":
			emits++
		case "silence":
			silences++
		}
	}
	if emits != 6 || silences != 6 {
		t.Errorf("Expected 6 emits and 6 silences, got %d/%d", emits, silences)
	}

	if len(disp.lines) != 2 {
		t.Fatalf("Expected 2 status updates, got %v", disp.lines)
	}
	if disp.lines[0] != [2]string{"Level 3", "Watch closely..."} {
		t.Errorf("Playback status = %v", disp.lines[0])
	}
	if disp.lines[1] != [2]string{"Level 3", "Your turn!"} {
		t.Errorf("Replay status = %v", disp.lines[1])
	}
}
