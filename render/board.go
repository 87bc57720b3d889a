package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/CodeYimin/Simon-Arduino-Game/game"
)

// Pad geometry, in cells.
const (
	padWidth  = 12
	padHeight = 5
	padGap    = 2
	boardLeft = 2
	boardTop  = 4
)

// padColors holds the lit and resting background per pad, laid out like
// the classic board: green/red on top, yellow/blue below.
var padColors = [game.ControlCount]struct{ lit, dim tcell.Color }{
	{tcell.ColorGreen, tcell.ColorDarkGreen},
	{tcell.ColorRed, tcell.ColorDarkRed},
	{tcell.ColorYellow, tcell.ColorOlive},
	{tcell.ColorBlue, tcell.ColorNavy},
}

var padLabels = [game.ControlCount]rune{'1', '2', '3', '4'}

// Board renders the four pads and two status lines on a tcell screen.
// It is the visual half of the emitter: Emit lights a pad, Silence
// clears it, tones are ignored here. Calls arrive from the game
// goroutine while Redraw arrives from the terminal event goroutine, so
// state is mutex-guarded; tcell screens are safe for concurrent use.
type Board struct {
	mu     sync.Mutex
	screen tcell.Screen
	lit    [game.ControlCount]bool
	line0  string
	line1  string
}

func NewBoard(screen tcell.Screen) *Board {
	b := &Board{screen: screen}
	b.Redraw()
	return b
}

func (b *Board) Emit(c game.Control, _ game.Frequency) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lit[c] = true
	b.draw()
}

func (b *Board) EmitAll(_ game.Frequency) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.lit {
		b.lit[i] = true
	}
	b.draw()
}

func (b *Board) Silence(c game.Control) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lit[c] = false
	b.draw()
}

func (b *Board) SilenceAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.lit {
		b.lit[i] = false
	}
	b.draw()
}

// ShowText presents two lines of status text above the board.
func (b *Board) ShowText(line0, line1 string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.line0 = line0
	b.line1 = line1
	b.draw()
}

// Redraw repaints the whole board, e.g. after a terminal resize.
func (b *Board) Redraw() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draw()
}

// draw repaints everything. Callers hold the mutex.
func (b *Board) draw() {
	b.screen.Clear()

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	b.puts(boardLeft, 1, b.line0, textStyle.Bold(true))
	b.puts(boardLeft, 2, b.line1, textStyle)

	for pad := game.Control(0); pad < game.ControlCount; pad++ {
		b.drawPad(pad)
	}

	legendY := boardTop + 2*padHeight + padGap + 1
	b.puts(boardLeft, legendY, "keys: 1-4 or hjkl    q quits", tcell.StyleDefault.Foreground(tcell.ColorGray))

	b.screen.Show()
}

func (b *Board) drawPad(pad game.Control) {
	col := int(pad) % 2
	row := int(pad) / 2
	x0 := boardLeft + col*(padWidth+padGap)
	y0 := boardTop + row*(padHeight+padGap/2)

	bg := padColors[pad].dim
	if b.lit[pad] {
		bg = padColors[pad].lit
	}
	style := tcell.StyleDefault.Background(bg)

	for y := y0; y < y0+padHeight; y++ {
		for x := x0; x < x0+padWidth; x++ {
			b.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	labelStyle := style.Foreground(tcell.ColorBlack)
	if b.lit[pad] {
		labelStyle = style.Foreground(tcell.ColorWhite).Bold(true)
	}
	b.screen.SetContent(x0+padWidth/2, y0+padHeight/2, padLabels[pad], nil, labelStyle)
}

func (b *Board) puts(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		b.screen.SetContent(x+i, y, r, nil, style)
	}
}
