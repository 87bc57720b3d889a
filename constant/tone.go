package constant

import "time"

// Pad Tones (Hz)
//
// One tone per pad, C major: C4, E4, G4, C5.
var PadTones = [ControlCount]float64{262, 330, 392, 523}

// Intro Flourish
var IntroTones = [3]float64{523, 659, 784}

const (
	IntroFlashOn  = 300 * time.Millisecond
	IntroFlashOff = 100 * time.Millisecond
)

// Game-Over Flourish (descending)
var GameOverTones = [4]float64{392, 330, 262, 196}

const (
	GameOverFlashOn  = 300 * time.Millisecond
	GameOverFlashOff = 80 * time.Millisecond
)
