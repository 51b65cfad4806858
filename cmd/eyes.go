package cmd

import "time"

func NewGeometry(w, h int) Geometry {
	g := Geometry{
		DisplayWidth:  w,
		DisplayHeight: h,
		EyeWidth:      EyeWidth,
		EyeHeight:     EyeHeight,
		Spacing:       EyeSpacing,
	}
	g.LeftX = (w - (2*g.EyeWidth + g.Spacing)) / 2
	g.LeftY = (h - g.EyeHeight) / 2
	g.RightX = g.LeftX + g.EyeWidth + g.Spacing
	g.RightY = g.LeftY
	return g
}

// Eyes owns the framebuffer and the expression state. It is not safe for
// concurrent use; the control loop is its only caller.
type Eyes struct {
	surface Surface
	geo     Geometry
	state   EyeState

	sleep      func(time.Duration)
	blinkSteps int
	blinkPause time.Duration
}

type EyesOption func(*Eyes)

// WithSleep replaces time.Sleep for the pauses between blink frames.
func WithSleep(fn func(time.Duration)) EyesOption {
	return func(e *Eyes) { e.sleep = fn }
}

func WithBlinkSteps(n int) EyesOption {
	return func(e *Eyes) {
		if n > 0 {
			e.blinkSteps = n
		}
	}
}

func WithBlinkPause(d time.Duration) EyesOption {
	return func(e *Eyes) { e.blinkPause = d }
}

func NewEyes(s Surface, opts ...EyesOption) *Eyes {
	w, h := s.Bounds()
	e := &Eyes{
		surface:    s,
		geo:        NewGeometry(w, h),
		state:      EyeState{Emotion: Neutral, Blink: 1},
		sleep:      time.Sleep,
		blinkSteps: BlinkSteps,
		blinkPause: BlinkPause,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Eyes) State() EyeState    { return e.state }
func (e *Eyes) Geometry() Geometry { return e.geo }

// SetEmotion switches expression, opens the eyes fully and redraws. Unknown
// names show neutral.
func (e *Eyes) SetEmotion(name string) error {
	e.state.Emotion = Resolve(name)
	e.state.Blink = 1
	return e.Draw()
}

func (e *Eyes) Draw() error {
	d := Lookup(e.state.Emotion)
	e.surface.Clear()
	drawEye(e.surface, e.geo.LeftX, e.geo.LeftY, d, e.state.Blink, true)
	drawEye(e.surface, e.geo.RightX, e.geo.RightY, d, e.state.Blink, false)
	return e.surface.Present()
}

// Blink closes and reopens the eyes over 2*steps frames. It blocks for the
// whole animation and always leaves the eyes open.
func (e *Eyes) Blink() (err error) {
	defer func() {
		e.state.Blink = 1
		if err != nil {
			// leave the panel showing open eyes, as the state says
			_ = e.Draw()
		}
	}()

	n := e.blinkSteps
	for i := 1; i <= n; i++ {
		if err := e.blinkFrame(1 - float64(i)/float64(n)); err != nil {
			return err
		}
	}
	for i := 1; i <= n; i++ {
		if err := e.blinkFrame(float64(i) / float64(n)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Eyes) blinkFrame(f float64) error {
	e.state.Blink = f
	if err := e.Draw(); err != nil {
		return err
	}
	e.sleep(e.blinkPause)
	return nil
}
