package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/CodeYimin/Simon-Arduino-Game/constant"
	"github.com/CodeYimin/Simon-Arduino-Game/game"
)

// padKeys maps keyboard runes to pads: the number row and the vi home
// row both work.
var padKeys = map[rune]game.Control{
	'1': game.ControlGreen,
	'2': game.ControlRed,
	'3': game.ControlYellow,
	'4': game.ControlBlue,
	'h': game.ControlGreen,
	'j': game.ControlRed,
	'k': game.ControlYellow,
	'l': game.ControlBlue,
}

// Keyboard adapts tcell key events into the actuation snapshot the game
// core polls. Terminals report presses only, never releases, so each
// press marks its pad actuated for a fixed hold window and key
// autorepeat keeps extending it. The latest press wins when two pads
// race.
//
// HandleEvent runs on the terminal event goroutine while Poll runs on
// the game goroutine; the mutex covers the handoff.
type Keyboard struct {
	mu    sync.Mutex
	pad   game.Control
	held  bool
	until time.Time

	now func() time.Time
}

func NewKeyboard() *Keyboard {
	return &Keyboard{now: time.Now}
}

// HandleEvent consumes one terminal event. It reports false when the
// player asked to quit (Escape, Ctrl+C or q).
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		r := key.Rune()
		if r == 'q' {
			return false
		}
		if pad, ok := padKeys[r]; ok {
			k.press(pad)
		}
	}
	return true
}

func (k *Keyboard) press(pad game.Control) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pad = pad
	k.held = true
	k.until = k.now().Add(constant.KeyHoldDuration)
}

// Poll reports the currently actuated pad, if any. Instantaneous and
// non-blocking.
func (k *Keyboard) Poll() (game.Control, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.held || k.now().After(k.until) {
		k.held = false
		return 0, false
	}
	return k.pad, true
}
