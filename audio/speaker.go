package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/CodeYimin/Simon-Arduino-Game/game"
)

const sampleRate = beep.SampleRate(44100)

// One voice per pad plus one for all-pad flourish tones.
const (
	allVoice   = game.ControlCount
	voiceCount = game.ControlCount + 1
)

// Speaker synthesizes pad tones as sine waves through the system audio
// device. A voice is an infinite sine wrapped in a beep.Ctrl that gets
// detached on Silence, at which point the speaker mixer drops it. Emit
// and Silence are idempotent.
type Speaker struct {
	mu     sync.Mutex
	voices [voiceCount]*beep.Ctrl
}

// NewSpeaker initializes the system audio device. Failure is expected
// on headless machines; callers should keep running silent.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Speaker{}, nil
}

// Emit starts the tone for one pad, replacing whatever that pad was
// already sounding.
func (s *Speaker) Emit(pad game.Control, tone game.Frequency) {
	s.start(int(pad), tone)
}

// EmitAll sounds a single tone for an all-pads flash.
func (s *Speaker) EmitAll(tone game.Frequency) {
	s.start(allVoice, tone)
}

// Silence stops one pad's tone. Silencing an already quiet pad is a
// no-op.
func (s *Speaker) Silence(pad game.Control) {
	s.stop(int(pad))
}

// SilenceAll stops every voice.
func (s *Speaker) SilenceAll() {
	for v := 0; v < voiceCount; v++ {
		s.stop(v)
	}
}

// Close tears down the audio device.
func (s *Speaker) Close() {
	s.SilenceAll()
	speaker.Close()
}

func (s *Speaker) start(voice int, tone game.Frequency) {
	sine, err := generators.SineTone(sampleRate, float64(tone))
	if err != nil {
		log.Printf("audio: sine %gHz: %v", float64(tone), err)
		return
	}
	ctrl := &beep.Ctrl{Streamer: sine}

	s.mu.Lock()
	prev := s.voices[voice]
	s.voices[voice] = ctrl
	s.mu.Unlock()

	if prev != nil {
		detach(prev)
	}
	speaker.Play(ctrl)
}

func (s *Speaker) stop(voice int) {
	s.mu.Lock()
	ctrl := s.voices[voice]
	s.voices[voice] = nil
	s.mu.Unlock()

	if ctrl != nil {
		detach(ctrl)
	}
}

// detach empties a playing Ctrl so the speaker mixer treats it as
// drained and drops it.
func detach(ctrl *beep.Ctrl) {
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
}
