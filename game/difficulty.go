package game

import (
	"time"

	"github.com/CodeYimin/Simon-Arduino-Game/constant"
)

// Speed is the playback tempo rating, 1 (slow) to 10 (fast). Fixed for
// the whole round once difficulty is chosen.
type Speed int

// OnDuration is how long each flash of machine playback stays lit.
func (s Speed) OnDuration() time.Duration {
	return constant.FlashOnBase - time.Duration(s)*constant.FlashOnStep
}

// GapDuration is the silence between consecutive flashes.
func (s Speed) GapDuration() time.Duration {
	return constant.FlashGapBase - time.Duration(s)*constant.FlashGapStep
}

// ChooseSpeed maps a difficulty-select gesture to a speed rating. The
// first three pads are fixed presets; the last pad draws a random speed
// across the full range.
func ChooseSpeed(c Control, r Rand) Speed {
	if int(c) < len(constant.PresetSpeeds) {
		return Speed(constant.PresetSpeeds[c])
	}
	return Speed(constant.SpeedMin + r.Intn(constant.SpeedMax-constant.SpeedMin+1))
}
