package constant

import "time"

// Control Surface
const (
	// ControlCount is the number of pads on the board
	ControlCount = 4
)

// Input Timing
const (
	// PollInterval is the tick between input reads in busy-wait loops
	PollInterval = 10 * time.Millisecond

	// KeyHoldDuration is how long a keypress keeps a pad actuated.
	// Terminals deliver no key-up event; autorepeat extends the window.
	KeyHoldDuration = 150 * time.Millisecond
)

// Difficulty
const (
	SpeedMin = 1
	SpeedMax = 10
)

// PresetSpeeds maps the first three pads to fixed speed ratings.
// The fourth pad draws a random speed in [SpeedMin, SpeedMax].
var PresetSpeeds = [3]int{1, 5, 10}

// Round Pacing
const (
	// LevelPause separates a completed level from the next playback
	LevelPause = 500 * time.Millisecond

	// IntroPause separates the intro flourish from difficulty selection
	IntroPause = 500 * time.Millisecond

	// GameOverPause separates the flourish from the sequence reveal
	GameOverPause = 700 * time.Millisecond
)
