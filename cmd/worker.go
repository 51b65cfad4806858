package cmd

import (
	"time"
)

// Hardware groups the collaborators of the control loop.
type Hardware struct {
	Frame   *Frame
	Buttons []ButtonSource // feed, play, pet; extras are ignored
	Pet     PetSource
	Clock   Clock
	Rand    Chance
	Sleep   func(time.Duration) // nil means time.Sleep
}

// Controller is the single control loop: poll, decide, animate, sleep.
// Animations block, so input arriving mid-sequence is seen on the next Step.
type Controller struct {
	settings Settings
	hw       Hardware
	eyes     *Eyes
	seq      *Sequencer

	iter       int
	lastState  string
	lastCheck  Ticks
	lastActive Ticks
}

func NewController(settings Settings, hw Hardware) *Controller {
	if hw.Sleep == nil {
		hw.Sleep = time.Sleep
	}
	eyes := NewEyes(hw.Frame, WithSleep(hw.Sleep))
	return &Controller{
		settings:  settings,
		hw:        hw,
		eyes:      eyes,
		seq:       NewSequencer(eyes, hw.Rand, WithHoldSleep(hw.Sleep)),
		lastState: Neutral,
	}
}

func (c *Controller) Eyes() *Eyes { return c.eyes }

// Start plays the startup sequence. It runs before any input is looked at.
func (c *Controller) Start() {
	logger.Info("starting pet eyes")
	c.report(c.seq.PlayNamed(StartupSequence))
	now := c.hw.Clock.Ticks()
	c.lastCheck = now
	c.lastActive = now
}

// Step runs one loop iteration and reports whether a sequence played.
func (c *Controller) Step() bool {
	played := c.pollButtons()

	if !played && Elapsed(c.hw.Clock.Ticks(), c.lastCheck, c.settings.StateCheck) {
		played = c.checkState()
	}

	if !played && c.settings.IdleChance > 0 &&
		Elapsed(c.hw.Clock.Ticks(), c.lastActive, c.settings.IdleAfter) &&
		c.hw.Rand.Intn(c.settings.IdleChance) == 0 {
		c.report(c.seq.PlayIdle())
		c.lastActive = c.hw.Clock.Ticks()
		played = true
	}

	c.iter++
	if c.settings.BlinkEvery > 0 && c.iter%c.settings.BlinkEvery == 0 {
		c.report(c.eyes.Blink())
	}

	c.hw.Sleep(c.settings.Tick)
	return played
}

func (c *Controller) pollButtons() bool {
	played := false
	for i, b := range c.hw.Buttons {
		if i > int(ActionPet) {
			break
		}
		switch b.Update() {
		case ShortPress:
			a := Action(i)
			out := c.hw.Pet.Perform(a)
			c.report(c.seq.PlayNamed(ReactionName(a, out)))
			played = true
		case LongPress:
			c.showStats()
			played = true
		default:
			continue
		}
		c.lastActive = c.hw.Clock.Ticks()
	}
	return played
}

func (c *Controller) checkState() bool {
	c.lastCheck = c.hw.Clock.Ticks()
	state := c.hw.Pet.EmotionalState()
	if state == c.lastState {
		return false
	}
	logger.Info("pet state changed", "from", c.lastState, "to", state)
	c.lastState = state
	c.report(c.seq.Play(StateSequence(state, c.settings.StateHold)))
	return true
}

func (c *Controller) showStats() {
	c.report(ShowStats(c.hw.Frame, c.hw.Pet.Stats()))
	c.hw.Sleep(c.settings.StatsHold)
	c.report(c.eyes.Draw())
}

func (c *Controller) report(err error) {
	if err != nil {
		logger.Warn("animation failed", "err", err)
	}
}

// RunPet never returns.
func RunPet(settings Settings, hw Hardware) {
	c := NewController(settings, hw)
	c.Start()
	for {
		c.Step()
	}
}
