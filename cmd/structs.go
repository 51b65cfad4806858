package cmd

import "time"

type Shape int

const (
	ShapeRounded Shape = 0x00 + iota
	ShapeHeart
	ShapeSparkle
	ShapeSleepy
	ShapeArc
)

func (s Shape) String() string {
	switch s {
	case ShapeHeart:
		return "heart"
	case ShapeSparkle:
		return "sparkle"
	case ShapeSleepy:
		return "sleepy"
	case ShapeArc:
		return "arc"
	default:
		return "rounded"
	}
}

type ButtonEvent int

const (
	NoPress ButtonEvent = 0x00 + iota
	ShortPress
	LongPress
)

type Action int

const (
	ActionFeed Action = 0x00 + iota
	ActionPlay
	ActionPet
)

func (a Action) String() string {
	switch a {
	case ActionFeed:
		return "feed"
	case ActionPlay:
		return "play"
	case ActionPet:
		return "pet"
	default:
		return "unknown"
	}
}

type Outcome int

const (
	OutcomeGood Outcome = 0x00 + iota
	OutcomeBad
)

func (o Outcome) String() string {
	if o == OutcomeGood {
		return "good"
	}
	return "bad"
}

// Descriptor is the static shape of one eye for a named emotion.
// Exactly one Shape is set; anything but ShapeRounded skips the generic
// rounded-rect path and its modifiers.
type Descriptor struct {
	Width     int
	Height    int
	Radius    int
	OffsetX   int
	OffsetY   int
	TopLid    int // static occlusion in pixels, generic path only
	BottomLid int
	Slant     bool
	Curve     bool // downturned top and bottom
	Shape     Shape
}

// EyeState is the mutable part of the renderer.
type EyeState struct {
	Emotion string
	Blink   float64 // 1 = open, 0 = closed
}

type Geometry struct {
	DisplayWidth  int
	DisplayHeight int
	EyeWidth      int
	EyeHeight     int
	Spacing       int
	LeftX, LeftY  int
	RightX        int
	RightY        int
}

type Sequence struct {
	Name     string
	Emotions []string
	Holds    []time.Duration
}

type Stat struct {
	Name  string
	Value float64
}

type Settings struct {
	DisplayAddress uint16
	Seed           int64
	Tick           time.Duration
	BlinkEvery     int   // loop iterations between idle blinks
	StateCheck     Ticks // ms between pet state polls
	IdleAfter      Ticks // ms without input before idle sequences may play
	IdleChance     int   // 1-in-N per loop once idle
	StateHold      time.Duration
	StatsHold      time.Duration
}

const (
	DisplayWidth  = 128
	DisplayHeight = 64

	EyeWidth   = 36
	EyeHeight  = 36
	EyeSpacing = 10

	DefaultRadius = 6

	BlinkSteps = 8
	BlinkPause = 20 * time.Millisecond

	// Intn(blinkSides) == blinkOutcome blinks after a sequence step.
	blinkSides   = 3
	blinkOutcome = 0

	DefaultDisplayAddress = 0x3C
)

func DefaultSettings() Settings {
	return Settings{
		DisplayAddress: DefaultDisplayAddress,
		Tick:           100 * time.Millisecond,
		BlinkEvery:     50,
		StateCheck:     10000,
		IdleAfter:      20000,
		IdleChance:     40,
		StateHold:      1500 * time.Millisecond,
		StatsHold:      3 * time.Second,
	}
}
