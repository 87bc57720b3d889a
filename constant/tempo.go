package constant

import "time"

// Playback Tempo Formula
//
// Durations shrink linearly with the speed rating. Both stay positive
// across the whole [SpeedMin, SpeedMax] range: at speed 10 the flash is
// still 150ms on / 30ms gap.
const (
	FlashOnBase  = 1150 * time.Millisecond
	FlashOnStep  = 100 * time.Millisecond
	FlashGapBase = 230 * time.Millisecond
	FlashGapStep = 20 * time.Millisecond
)

// Reveal Tempo
//
// The post-game replay of the final sequence runs at a fixed slow tempo,
// not at the round's difficulty tempo.
const (
	RevealOnDuration  = 550 * time.Millisecond
	RevealGapDuration = 220 * time.Millisecond
)
