package game

// Sequence is the ordered target pattern of pads the player must
// reproduce. It only ever grows, one pad per completed level, and is
// discarded wholesale when a new round starts.
type Sequence []Control

// Generate draws a sequence of length independent uniform pads in
// [0, controlCount). Repeats are expected; this is sampling, not a
// shuffle.
func Generate(r Rand, length, controlCount int) Sequence {
	seq := make(Sequence, length)
	for i := range seq {
		seq[i] = Control(r.Intn(controlCount))
	}
	return seq
}

// Extend returns a copy of s with one more uniform random pad appended.
// s itself is never touched; callers holding the shorter sequence keep
// a valid value.
func (s Sequence) Extend(r Rand, controlCount int) Sequence {
	grown := make(Sequence, len(s), len(s)+1)
	copy(grown, s)
	return append(grown, Control(r.Intn(controlCount)))
}
