package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestNewGeometry(t *testing.T) {
	g := NewGeometry(128, 64)
	if g.LeftX != 23 || g.LeftY != 14 {
		t.Errorf("left anchor = (%d,%d), want (23,14)", g.LeftX, g.LeftY)
	}
	if g.RightX != 69 || g.RightY != 14 {
		t.Errorf("right anchor = (%d,%d), want (69,14)", g.RightX, g.RightY)
	}
}

func TestNewEyesState(t *testing.T) {
	sink := &countingSink{}
	e, _ := newTestEyes(sink)
	if got := e.State(); got != (EyeState{Emotion: Neutral, Blink: 1}) {
		t.Errorf("State() = %+v, want neutral and open", got)
	}
	if sink.displays != 0 {
		t.Errorf("NewEyes drew %d frames, want 0", sink.displays)
	}
}

func TestSetEmotion(t *testing.T) {
	sink := &countingSink{}
	e, f := newTestEyes(sink)

	if err := e.SetEmotion("angry"); err != nil {
		t.Fatalf("SetEmotion() = %v", err)
	}
	if got := e.State().Emotion; got != "angry" {
		t.Errorf("Emotion = %q, want angry", got)
	}
	if sink.displays != 1 {
		t.Errorf("displays = %d, want 1", sink.displays)
	}
	if litCount(f) == 0 {
		t.Error("nothing drawn")
	}

	if err := e.SetEmotion("no_such_mood"); err != nil {
		t.Fatalf("SetEmotion() = %v", err)
	}
	if got := e.State().Emotion; got != Neutral {
		t.Errorf("Emotion after unknown name = %q, want neutral", got)
	}
}

func TestDrawBothEyes(t *testing.T) {
	e, f := newTestEyes(nil)
	if err := e.Draw(); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	g := e.Geometry()
	if !f.At(g.LeftX+18, g.LeftY+18) || !f.At(g.RightX+18, g.RightY+18) {
		t.Error("eye centres not drawn")
	}
	if f.At(g.LeftX+g.EyeWidth+g.Spacing/2, g.LeftY+18) {
		t.Error("gap between the eyes is filled")
	}
	if n := litCount(f); n == 0 || n%2 != 0 {
		t.Errorf("lit %d pixels, want an even non-zero count for two equal eyes", n)
	}
}

func TestBlinkEndsOpen(t *testing.T) {
	for _, name := range Emotions() {
		sink := &countingSink{}
		e, _ := newTestEyes(sink)
		if err := e.SetEmotion(name); err != nil {
			t.Fatalf("SetEmotion(%q) = %v", name, err)
		}
		if err := e.Blink(); err != nil {
			t.Fatalf("%s: Blink() = %v", name, err)
		}
		if got := e.State().Blink; got != 1 {
			t.Errorf("%s: Blink = %v after blink, want 1", name, got)
		}
		if got := e.State().Emotion; got != name {
			t.Errorf("%s: blink changed emotion to %q", name, got)
		}
		if sink.displays != 1+2*BlinkSteps {
			t.Errorf("%s: displays = %d, want %d", name, sink.displays, 1+2*BlinkSteps)
		}
	}
}

func TestBlinkClosesFully(t *testing.T) {
	sink := &countingSink{}
	e, _ := newTestEyes(sink)
	if err := e.Blink(); err != nil {
		t.Fatalf("Blink() = %v", err)
	}
	if sink.dark != 1 {
		t.Errorf("%d fully closed frames, want 1", sink.dark)
	}
}

func TestBlinkPacing(t *testing.T) {
	rec := &sleepRecorder{}
	f := NewFrame(DisplayWidth, DisplayHeight, nil)
	e := NewEyes(f, WithSleep(rec.sleep), WithBlinkSteps(4), WithBlinkPause(5*time.Millisecond))
	if err := e.Blink(); err != nil {
		t.Fatalf("Blink() = %v", err)
	}
	if len(rec.slept) != 8 {
		t.Errorf("slept %d times, want 8", len(rec.slept))
	}
	if rec.total() != 40*time.Millisecond {
		t.Errorf("slept %v, want 40ms", rec.total())
	}
}

func TestBlinkErrorLeavesEyesOpen(t *testing.T) {
	sink := &countingSink{err: errors.New("nak")}
	e, _ := newTestEyes(sink)
	if err := e.Blink(); !errors.Is(err, sink.err) {
		t.Fatalf("Blink() = %v, want sink error", err)
	}
	if got := e.State().Blink; got != 1 {
		t.Errorf("Blink = %v after failed blink, want 1", got)
	}
}

func TestBlinkErrorRedrawsOpenEyes(t *testing.T) {
	sink := &countingSink{failAfter: 3}
	e, _ := newTestEyes(sink)
	if err := e.Blink(); !errors.Is(err, errTest) {
		t.Fatalf("Blink() = %v, want sink error", err)
	}

	ref, f := newTestEyes(nil)
	if err := ref.Draw(); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if !bytes.Equal(sink.last, f.Buffer()) {
		t.Error("last frame pushed after a failed blink is not the open eyes")
	}
}
