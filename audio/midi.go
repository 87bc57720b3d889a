package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/CodeYimin/Simon-Arduino-Game/game"
)

// ErrNoMIDIOutput means no usable MIDI output port was found.
var ErrNoMIDIOutput = errors.New("audio: no MIDI output port")

// excludedPorts are virtual/system ports never picked automatically.
var excludedPorts = []string{"Midi Through", "Through Port", "Dummy"}

const (
	midiChannel  = 0
	midiVelocity = 100
)

// MIDIOut emits pad tones as MIDI notes on an external output port, for
// players who would rather hear the game through a synth than through
// sine waves. Emit sends NoteOn for the nearest equal-tempered note to
// the tone frequency, Silence the matching NoteOff.
type MIDIOut struct {
	mu     sync.Mutex
	drv    *rtmididrv.Driver
	out    drivers.Out
	send   func(midi.Message) error
	active [voiceCount]int16 // current note per voice, -1 when quiet
}

// NewMIDIOut opens the first output port whose name contains portName,
// or the first non-excluded port when portName is empty.
func NewMIDIOut(portName string) (*MIDIOut, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}

	out, err := pickPort(drv, portName)
	if err != nil {
		drv.Close()
		return nil, err
	}
	if err := out.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("open %q: %w", out.String(), err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		out.Close()
		drv.Close()
		return nil, fmt.Errorf("send to %q: %w", out.String(), err)
	}

	m := &MIDIOut{drv: drv, out: out, send: send}
	for i := range m.active {
		m.active[i] = -1
	}
	log.Printf("midi: connected to %q", out.String())
	return m, nil
}

func pickPort(drv *rtmididrv.Driver, portName string) (drivers.Out, error) {
	outs, err := drv.Outs()
	if err != nil {
		return nil, fmt.Errorf("list outputs: %w", err)
	}
	for _, out := range outs {
		name := out.String()
		if portName != "" {
			if containsCI(name, portName) {
				return out, nil
			}
			continue
		}
		if !excluded(name) {
			return out, nil
		}
	}
	return nil, ErrNoMIDIOutput
}

func excluded(name string) bool {
	for _, pat := range excludedPorts {
		if containsCI(name, pat) {
			return true
		}
	}
	return false
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (m *MIDIOut) Emit(pad game.Control, tone game.Frequency) {
	m.noteOn(int(pad), tone)
}

func (m *MIDIOut) EmitAll(tone game.Frequency) {
	m.noteOn(allVoice, tone)
}

func (m *MIDIOut) Silence(pad game.Control) {
	m.noteOff(int(pad))
}

func (m *MIDIOut) SilenceAll() {
	for v := 0; v < voiceCount; v++ {
		m.noteOff(v)
	}
}

// Close silences everything and releases the port and driver.
func (m *MIDIOut) Close() {
	m.SilenceAll()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.out.Close()
	m.drv.Close()
}

func (m *MIDIOut) noteOn(voice int, tone game.Frequency) {
	note := noteForFrequency(float64(tone))

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev := m.active[voice]; prev >= 0 {
		m.sendMsg(midi.NoteOff(midiChannel, uint8(prev)))
	}
	m.active[voice] = int16(note)
	m.sendMsg(midi.NoteOn(midiChannel, note, midiVelocity))
}

func (m *MIDIOut) noteOff(voice int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	note := m.active[voice]
	if note < 0 {
		return
	}
	m.active[voice] = -1
	m.sendMsg(midi.NoteOff(midiChannel, uint8(note)))
}

// sendMsg logs instead of failing: a vanished synth should not take the
// game down. Callers hold the mutex.
func (m *MIDIOut) sendMsg(msg midi.Message) {
	if err := m.send(msg); err != nil {
		log.Printf("midi: send: %v", err)
	}
}

// noteForFrequency returns the nearest equal-tempered MIDI note for a
// frequency in Hz, clamped to the valid note range. A4 (440 Hz) is 69.
func noteForFrequency(freq float64) uint8 {
	n := int(math.Round(69 + 12*math.Log2(freq/440)))
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return uint8(n)
}
