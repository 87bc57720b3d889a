package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/CodeYimin/Simon-Arduino-Game/audio"
	"github.com/CodeYimin/Simon-Arduino-Game/game"
	"github.com/CodeYimin/Simon-Arduino-Game/input"
	"github.com/CodeYimin/Simon-Arduino-Game/render"
)

const (
	logDir      = "logs"
	logFileName = "simon-debug.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the stdlib logger to a debug file when enabled and
// discards it otherwise; the TUI owns stdout. A file past maxLogSize is
// rotated to .old first. Returns the open file, or nil when disabled.
func setupLogging(debugEnabled bool) *os.File {
	if !debugEnabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

var (
	debugFlag = flag.Bool("debug", false, "write debug logs to ./logs")
	noSound   = flag.Bool("no-sound", false, "disable tone synthesis")
	midiFlag  = flag.Bool("midi", false, "emit tones as MIDI notes instead of synthesized audio")
	midiPort  = flag.String("midi-port", "", "substring of the MIDI output port name to use")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash, or the trace is
	// unreadable in raw mode.
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "simon crashed: %v\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	board := render.NewBoard(screen)
	keyboard := input.NewKeyboard()

	emitter := game.MultiEmitter{board}
	switch {
	case *midiFlag:
		m, err := audio.NewMIDIOut(*midiPort)
		if err != nil {
			log.Printf("midi unavailable, continuing silent: %v", err)
		} else {
			emitter = append(emitter, m)
			defer m.Close()
		}
	case !*noSound:
		sp, err := audio.NewSpeaker()
		if err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		} else {
			emitter = append(emitter, sp)
			defer sp.Close()
		}
	}

	stop := make(chan struct{})
	g := game.New(game.Config{
		Reader:  keyboard,
		Emitter: emitter,
		Display: board,
		Clock:   game.SystemClock{},
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Stop:    stop,
	})

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash(r)
			}
		}()
		done <- g.Run()
	}()

	// Terminal event loop: feeds the keyboard snapshot the game polls,
	// repaints on resize, and winds the game down on a quit key.
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(stop)
			<-done
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			board.Redraw()
			continue
		}
		if !keyboard.HandleEvent(ev) {
			close(stop)
			<-done
			return
		}
	}
}
