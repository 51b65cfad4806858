package cmd

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLengthMismatch  = errors.New("emotion and hold counts differ")
	ErrUnknownSequence = errors.New("unknown sequence")
)

// Chance is the random source for blinks and idle picks. *rand.Rand
// satisfies it.
type Chance interface {
	Intn(n int) int
}

func hold(ms ...int) []time.Duration {
	out := make([]time.Duration, len(ms))
	for i, v := range ms {
		out[i] = time.Duration(v) * time.Millisecond
	}
	return out
}

func even(name string, d time.Duration, emotions ...string) Sequence {
	holds := make([]time.Duration, len(emotions))
	for i := range holds {
		holds[i] = d
	}
	return Sequence{Name: name, Emotions: emotions, Holds: holds}
}

const StartupSequence = "startup"

var sequences = map[string]Sequence{
	StartupSequence: {
		Name:     StartupSequence,
		Emotions: []string{"sleepy", "tired", Neutral, "look_left", "look_right", "happy", Neutral},
		Holds:    hold(1000, 600, 500, 400, 400, 800, 500),
	},

	"feed_good": even("feed_good", 600*time.Millisecond, "look_down", "happy", "heart_eyes", Neutral),
	"feed_bad":  even("feed_bad", 500*time.Millisecond, "unimpressed", "look_left", "look_right", Neutral),
	"play_good": even("play_good", 500*time.Millisecond, "excited", "glee", "happy", Neutral),
	"play_bad":  even("play_bad", 700*time.Millisecond, "tired", "sleepy", Neutral),
	"pet_good":  even("pet_good", 700*time.Millisecond, "heart_eyes", "happy", Neutral),
	"pet_bad":   even("pet_bad", 600*time.Millisecond, "suspicious", Neutral),

	"idle_look":    even("idle_look", 400*time.Millisecond, "look_left", "look_right", "look_up", Neutral),
	"idle_curious": even("idle_curious", 600*time.Millisecond, "confused", "suspicious", Neutral),
	"idle_sleepy":  even("idle_sleepy", 800*time.Millisecond, "tired", "sleepy", Neutral),
	"idle_smug":    even("idle_smug", 600*time.Millisecond, "skeptic", "focused", Neutral),
}

var idleSequences = []string{"idle_look", "idle_curious", "idle_sleepy", "idle_smug"}

// stateEmotions maps a pet emotional state to what the eyes show for it.
var stateEmotions = map[string][]string{
	Neutral:   {Neutral},
	"glee":    {"glee", "happy"},
	"sad":     {"sad", "look_down", "sad"},
	"tired":   {"tired", "sleepy", "tired"},
	"annoyed": {"annoyed", "angry"},
}

// LookupSequence returns the named sequence from the built-in catalogue.
func LookupSequence(name string) (Sequence, bool) {
	s, ok := sequences[name]
	return s, ok
}

func ReactionName(a Action, o Outcome) string {
	return a.String() + "_" + o.String()
}

// StateSequence builds the sequence shown for a pet state. Unknown states
// show neutral.
func StateSequence(state string, d time.Duration) Sequence {
	emotions, ok := stateEmotions[state]
	if !ok {
		emotions = stateEmotions[Neutral]
	}
	return even("state_"+state, d, emotions...)
}

type Sequencer struct {
	eyes  *Eyes
	rnd   Chance
	sleep func(time.Duration)
}

type SequencerOption func(*Sequencer)

func WithHoldSleep(fn func(time.Duration)) SequencerOption {
	return func(q *Sequencer) { q.sleep = fn }
}

func NewSequencer(eyes *Eyes, rnd Chance, opts ...SequencerOption) *Sequencer {
	q := &Sequencer{eyes: eyes, rnd: rnd, sleep: time.Sleep}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Sequencer) Eyes() *Eyes { return q.eyes }

// Play shows each emotion of seq for its hold time. After every step that
// does not land on neutral there is a one in three chance of a blink.
// Mismatched lengths are rejected before anything is drawn.
func (q *Sequencer) Play(seq Sequence) error {
	if len(seq.Emotions) != len(seq.Holds) {
		return fmt.Errorf("%w: sequence %q has %d emotions, %d holds",
			ErrLengthMismatch, seq.Name, len(seq.Emotions), len(seq.Holds))
	}

	logger.Debug("play sequence", "name", seq.Name, "steps", len(seq.Emotions))
	for i, name := range seq.Emotions {
		if err := q.eyes.SetEmotion(name); err != nil {
			return fmt.Errorf("sequence %q step %d: %w", seq.Name, i, err)
		}
		q.sleep(seq.Holds[i])

		if q.eyes.State().Emotion == Neutral {
			continue
		}
		if q.rnd.Intn(blinkSides) == blinkOutcome {
			logger.Debug("blink", "emotion", name)
			if err := q.eyes.Blink(); err != nil {
				return fmt.Errorf("sequence %q step %d blink: %w", seq.Name, i, err)
			}
		}
	}
	return nil
}

func (q *Sequencer) PlayNamed(name string) error {
	seq, ok := LookupSequence(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSequence, name)
	}
	return q.Play(seq)
}

func (q *Sequencer) PlayIdle() error {
	return q.PlayNamed(idleSequences[q.rnd.Intn(len(idleSequences))])
}
