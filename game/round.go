package game

// phase is the turn phase within one round.
type phase int

const (
	phaseSelectingDifficulty phase = iota
	phaseMachinePlaying
	phasePlayerReplaying
	phaseRoundEnded
)

// roundState is the transient state of one round: the growing sequence,
// the committed speed and the current phase. A fresh value is built at
// round start and discarded at round end; nothing carries over into the
// next round.
type roundState struct {
	seq   Sequence
	speed Speed
	phase phase
}

// level is the current level index, which is always the sequence length.
func (rs *roundState) level() int { return len(rs.seq) }
