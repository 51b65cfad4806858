package cmd

import (
	"errors"
	"time"
)

var errTest = errors.New("test failure")

// countingSink records every frame pushed to it.
type countingSink struct {
	sets     int
	displays int
	dark     int // frames with no lit pixel
	last     []byte
	err      error
	// failAfter makes Display fail once this many frames succeeded.
	failAfter int
}

func (s *countingSink) SetBuffer(buf []byte) error {
	s.sets++
	s.last = append(s.last[:0], buf...)
	lit := false
	for _, b := range buf {
		if b != 0 {
			lit = true
			break
		}
	}
	if !lit {
		s.dark++
	}
	return nil
}

func (s *countingSink) Display() error {
	if s.err != nil {
		return s.err
	}
	if s.failAfter > 0 && s.displays >= s.failAfter {
		return errTest
	}
	s.displays++
	return nil
}

type fakeClock struct {
	now Ticks
}

func (c *fakeClock) Ticks() Ticks { return c.now }

func (c *fakeClock) advance(ms int) { c.now += Ticks(ms) }

// fixedChance answers v mod n and counts calls.
type fixedChance struct {
	v     int
	calls int
}

func (c *fixedChance) Intn(n int) int {
	c.calls++
	return c.v % n
}

type sleepRecorder struct {
	slept []time.Duration
}

func (r *sleepRecorder) sleep(d time.Duration) { r.slept = append(r.slept, d) }

func (r *sleepRecorder) total() time.Duration {
	var t time.Duration
	for _, d := range r.slept {
		t += d
	}
	return t
}

func noSleep(time.Duration) {}

func newTestEyes(sink Sink) (*Eyes, *Frame) {
	f := NewFrame(DisplayWidth, DisplayHeight, sink)
	return NewEyes(f, WithSleep(noSleep)), f
}

func litCount(f *Frame) int {
	w, h := f.Bounds()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if f.At(x, y) {
				n++
			}
		}
	}
	return n
}
