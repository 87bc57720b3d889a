package game

import "errors"

// ErrStopped reports that the stop channel closed while the game was
// waiting on input or between states. It is the only error the core
// produces; a wrong player input is a normal game outcome, never an
// error.
var ErrStopped = errors.New("game: stopped")

// Config wires the game core to its collaborators. Reader, Emitter,
// Display and Rand are required; Clock defaults to the wall clock and
// Stop may be nil for a game that never shuts down.
type Config struct {
	Reader  Reader
	Emitter Emitter
	Display Display
	Clock   Clock
	Rand    Rand
	Stop    <-chan struct{}
}

// Game owns the round loop. All of its methods run on the single
// goroutine that calls Run; collaborators are only ever touched from
// there.
type Game struct {
	reader  Reader
	emitter Emitter
	display Display
	clock   Clock
	rand    Rand
	stop    <-chan struct{}
}

func New(cfg Config) *Game {
	g := &Game{
		reader:  cfg.Reader,
		emitter: cfg.Emitter,
		display: cfg.Display,
		clock:   cfg.Clock,
		rand:    cfg.Rand,
		stop:    cfg.Stop,
	}
	if g.clock == nil {
		g.clock = SystemClock{}
	}
	return g
}

// stopped is checked between states and on every poll tick. Receiving
// on a nil channel blocks, so a nil stop channel falls through to the
// default branch forever.
func (g *Game) stopped() bool {
	select {
	case <-g.stop:
		return true
	default:
		return false
	}
}
