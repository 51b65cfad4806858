package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/google/shlex"

	"nifri2/pet-eyes/cmd"
)

type stepKind int

const (
	stepPress stepKind = iota
	stepWait
	stepQuit
)

type scriptStep struct {
	kind   stepKind
	button int
	event  cmd.ButtonEvent
	wait   time.Duration
}

var buttonNames = map[string]int{
	"feed": int(cmd.ActionFeed),
	"play": int(cmd.ActionPlay),
	"pet":  int(cmd.ActionPet),
}

// parseScript reads one command per line:
//
//	press feed|play|pet [short|long]
//	wait 1.5s
//	quit
//
// Blank lines and # comments are skipped.
func parseScript(r io.Reader) ([]scriptStep, error) {
	var steps []scriptStep
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		words, err := shlex.Split(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(words) == 0 {
			continue
		}
		step, err := parseStep(words)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parseStep(words []string) (scriptStep, error) {
	switch words[0] {
	case "press":
		if len(words) < 2 || len(words) > 3 {
			return scriptStep{}, fmt.Errorf("usage: press <feed|play|pet> [short|long]")
		}
		b, ok := buttonNames[words[1]]
		if !ok {
			return scriptStep{}, fmt.Errorf("unknown button %q", words[1])
		}
		ev := cmd.ShortPress
		if len(words) == 3 {
			switch words[2] {
			case "short":
			case "long":
				ev = cmd.LongPress
			default:
				return scriptStep{}, fmt.Errorf("unknown press %q", words[2])
			}
		}
		return scriptStep{kind: stepPress, button: b, event: ev}, nil
	case "wait":
		if len(words) != 2 {
			return scriptStep{}, fmt.Errorf("usage: wait <duration>")
		}
		d, err := time.ParseDuration(words[1])
		if err != nil {
			return scriptStep{}, err
		}
		return scriptStep{kind: stepWait, wait: d}, nil
	case "quit":
		return scriptStep{kind: stepQuit}, nil
	}
	return scriptStep{}, fmt.Errorf("unknown command %q", words[0])
}

func runScript(steps []scriptStep, buttons []*keyButton, quit func()) {
	for _, s := range steps {
		switch s.kind {
		case stepWait:
			time.Sleep(s.wait)
		case stepPress:
			buttons[s.button].push(s.event)
		case stepQuit:
			quit()
			return
		}
	}
}
