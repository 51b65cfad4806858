package cmd

// Pin is a digital input. machine.Pin satisfies it.
type Pin interface {
	Get() bool
}

type ButtonSource interface {
	Update() ButtonEvent
}

const (
	LongPressTicks Ticks = 1000
	DebounceTicks  Ticks = 20
)

// Button turns raw pin levels into short and long presses. A long press
// fires once while still held; a short press fires on release.
type Button struct {
	pin   Pin
	clock Clock

	longPress Ticks
	debounce  Ticks

	lastState   bool
	pressStart  Ticks
	lastRelease Ticks
	longFired   bool

	// settled is set once the debounce gap after the last release has
	// passed, so a press after a long idle never compares stale ticks.
	settled bool
	gapOK   bool
}

func NewButton(pin Pin, clock Clock) *Button {
	now := clock.Ticks()
	return &Button{
		pin:         pin,
		clock:       clock,
		longPress:   LongPressTicks,
		debounce:    DebounceTicks,
		lastRelease: now,
		settled:     true,
	}
}

func (b *Button) Update() ButtonEvent {
	now := b.clock.Ticks()
	pressed := b.pin.Get()
	ev := NoPress

	switch {
	case pressed && !b.lastState:
		b.pressStart = now
		b.gapOK = b.settled || Elapsed(now, b.lastRelease, b.debounce)
	case pressed && !b.longFired && Elapsed(now, b.pressStart, b.longPress):
		b.longFired = true
		ev = LongPress
	case !pressed && b.lastState:
		switch {
		case b.longFired:
		case Elapsed(now, b.pressStart, b.longPress):
			// held past the threshold between two polls
			ev = LongPress
		case b.gapOK && Elapsed(now, b.pressStart, b.debounce):
			ev = ShortPress
		}
		b.longFired = false
		b.lastRelease = now
		b.settled = false
	case !pressed && !b.settled && Elapsed(now, b.lastRelease, b.debounce):
		b.settled = true
	}

	b.lastState = pressed
	return ev
}
