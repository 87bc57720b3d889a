package game

import (
	"strconv"

	"github.com/CodeYimin/Simon-Arduino-Game/constant"
)

// Run drives the round loop forever: intro flourish, difficulty
// selection, levels of growing length, game-over reveal, then a
// brand-new round. There is no terminal game state; Run returns only
// when the stop channel closes, and the result is always ErrStopped.
func (g *Game) Run() error {
	for {
		if err := g.playRound(); err != nil {
			return err
		}
	}
}

func (g *Game) playRound() error {
	g.intro()

	rs := &roundState{phase: phaseSelectingDifficulty}
	speed, err := g.selectDifficulty()
	if err != nil {
		return err
	}
	rs.speed = speed

	rs.seq = Generate(g.rand, 1, ControlCount)
	for {
		ok, err := g.playLevel(rs)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		rs.seq = rs.seq.Extend(g.rand, ControlCount)
		g.clock.Sleep(constant.LevelPause)
	}

	rs.phase = phaseRoundEnded
	g.gameOver(rs.seq)
	return nil
}

// intro plays the startup flourish: all pads flash together through the
// ascending intro tones. No input is accepted.
func (g *Game) intro() {
	g.display.ShowText("SIMON", "")
	for _, tone := range constant.IntroTones {
		g.emitter.EmitAll(Frequency(tone))
		g.clock.Sleep(constant.IntroFlashOn)
		g.emitter.SilenceAll()
		g.clock.Sleep(constant.IntroFlashOff)
	}
	g.clock.Sleep(constant.IntroPause)
}

// selectDifficulty waits for one gesture and maps it to a speed rating.
// The held pad lights as feedback; the choice commits on release.
func (g *Game) selectDifficulty() (Speed, error) {
	g.display.ShowText("Pick difficulty", "1 easy 2 mid 3 hard 4 ?")
	pad, err := g.awaitGesture(g.lightPad, g.clearPad)
	if err != nil {
		return 0, err
	}
	return ChooseSpeed(pad, g.rand), nil
}

// gameOver plays the descending flourish, then reveals the full final
// sequence once at the fixed slow tempo so the player can see what they
// missed. The difficulty tempo does not apply here.
func (g *Game) gameOver(seq Sequence) {
	g.display.ShowText("Game over", "Score: "+strconv.Itoa(len(seq)-1))
	for _, tone := range constant.GameOverTones {
		g.emitter.EmitAll(Frequency(tone))
		g.clock.Sleep(constant.GameOverFlashOn)
		g.emitter.SilenceAll()
		g.clock.Sleep(constant.GameOverFlashOff)
	}
	g.clock.Sleep(constant.GameOverPause)
	g.playSequence(seq, constant.RevealOnDuration, constant.RevealGapDuration)
}
