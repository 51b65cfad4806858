// Command sim runs the pet eyes in a terminal. f/p/t are short presses on
// the feed, play and pet buttons, F/P/T long presses. Esc or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"nifri2/pet-eyes/cmd"
)

// keyButton is a button fed from another goroutine. Update never blocks.
type keyButton struct {
	events chan cmd.ButtonEvent
}

func newKeyButton() *keyButton {
	return &keyButton{events: make(chan cmd.ButtonEvent, 4)}
}

func (b *keyButton) push(ev cmd.ButtonEvent) {
	select {
	case b.events <- ev:
	default:
	}
}

func (b *keyButton) Update() cmd.ButtonEvent {
	select {
	case ev := <-b.events:
		return ev
	default:
		return cmd.NoPress
	}
}

var keyMap = map[rune]struct {
	button int
	event  cmd.ButtonEvent
}{
	'f': {int(cmd.ActionFeed), cmd.ShortPress},
	'p': {int(cmd.ActionPlay), cmd.ShortPress},
	't': {int(cmd.ActionPet), cmd.ShortPress},
	'F': {int(cmd.ActionFeed), cmd.LongPress},
	'P': {int(cmd.ActionPlay), cmd.LongPress},
	'T': {int(cmd.ActionPet), cmd.LongPress},
}

func main() {
	var (
		scriptPath = flag.String("script", "", "file of press/wait/quit commands to replay")
		seed       = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
		tick       = flag.Duration("tick", 0, "control loop tick, 0 keeps the default")
		blinkEvery = flag.Int("blink-every", -1, "loop iterations between idle blinks, -1 keeps the default")
		logPath    = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	settings := cmd.DefaultSettings()
	if *tick > 0 {
		settings.Tick = *tick
	}
	if *blinkEvery >= 0 {
		settings.BlinkEvery = *blinkEvery
	}
	settings.Seed = *seed
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		cmd.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var steps []scriptStep
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open script: %v\n", err)
			os.Exit(1)
		}
		steps, err = parseScript(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Bad script: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.Clear()

	done := make(chan struct{})
	var once sync.Once
	quit := func() { once.Do(func() { close(done) }) }

	buttons := []*keyButton{newKeyButton(), newKeyButton(), newKeyButton()}
	sources := make([]cmd.ButtonSource, len(buttons))
	for i, b := range buttons {
		sources[i] = b
	}

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					quit()
					continue
				}
				if ev.Key() != tcell.KeyRune {
					continue
				}
				if k, ok := keyMap[ev.Rune()]; ok {
					buttons[k.button].push(k.event)
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	if len(steps) > 0 {
		go runScript(steps, buttons, quit)
	}

	clock := cmd.NewSystemClock()
	sink := newTerminalSink(screen, cmd.DisplayWidth, cmd.DisplayHeight)
	go cmd.RunPet(settings, cmd.Hardware{
		Frame:   cmd.NewFrame(cmd.DisplayWidth, cmd.DisplayHeight, sink),
		Buttons: sources,
		Pet:     cmd.NewCare(clock),
		Clock:   clock,
		Rand:    rand.New(rand.NewSource(settings.Seed)),
	})

	<-done
	sink.close()
}
