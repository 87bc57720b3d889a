package game

// MultiEmitter fans every call out to each backend in order. The board
// takes the light half, an audio backend the tone half.
type MultiEmitter []Emitter

func (m MultiEmitter) Emit(c Control, tone Frequency) {
	for _, e := range m {
		e.Emit(c, tone)
	}
}

func (m MultiEmitter) EmitAll(tone Frequency) {
	for _, e := range m {
		e.EmitAll(tone)
	}
}

func (m MultiEmitter) Silence(c Control) {
	for _, e := range m {
		e.Silence(c)
	}
}

func (m MultiEmitter) SilenceAll() {
	for _, e := range m {
		e.SilenceAll()
	}
}
