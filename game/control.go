package game

import "github.com/CodeYimin/Simon-Arduino-Game/constant"

// Frequency is a tone pitch in Hz.
type Frequency float64

// Control identifies one pad on the board. Values outside the four
// named pads never occur; readers and the sequence model only ever
// produce members of this enumeration.
type Control uint8

const (
	ControlGreen Control = iota
	ControlRed
	ControlYellow
	ControlBlue
)

// ControlCount is the number of pads on the board.
const ControlCount = constant.ControlCount

// Tone returns the pad's fixed tone.
func (c Control) Tone() Frequency {
	return Frequency(constant.PadTones[c])
}

func (c Control) String() string {
	switch c {
	case ControlGreen:
		return "green"
	case ControlRed:
		return "red"
	case ControlYellow:
		return "yellow"
	case ControlBlue:
		return "blue"
	}
	return "unknown"
}
