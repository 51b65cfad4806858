package cmd

import (
	"math"
	"testing"
)

func statValues(c *Care) (hunger, happiness, energy float64) {
	s := c.Stats()
	return s[0].Value, s[1].Value, s[2].Value
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCareStatsOrder(t *testing.T) {
	c := NewCare(&fakeClock{})
	want := []string{"Hunger", "Happiness", "Energy"}
	for i, st := range c.Stats() {
		if st.Name != want[i] {
			t.Errorf("stat %d = %q, want %q", i, st.Name, want[i])
		}
		if st.Value != 50 {
			t.Errorf("%s = %v, want 50", st.Name, st.Value)
		}
	}
}

func TestCareDecay(t *testing.T) {
	clock := &fakeClock{}
	c := NewCare(clock)
	clock.advance(100_000)

	h, hp, e := statValues(c)
	if !near(h, 45) || !near(hp, 47) || !near(e, 48) {
		t.Errorf("after 100s stats = %v/%v/%v, want 45/47/48", h, hp, e)
	}
}

// TestCareDecayDoesNotCompound polls halfway and expects the same result as
// a single poll at the end.
func TestCareDecayDoesNotCompound(t *testing.T) {
	clock := &fakeClock{}
	polled := NewCare(clock)
	once := NewCare(clock)

	clock.advance(50_000)
	polled.Stats()
	clock.advance(50_000)

	a1, a2, a3 := statValues(polled)
	b1, b2, b3 := statValues(once)
	if !near(a1, b1) || !near(a2, b2) || !near(a3, b3) {
		t.Errorf("polled %v/%v/%v, single %v/%v/%v", a1, a2, a3, b1, b2, b3)
	}
}

func TestCareDecayFloorsAtZero(t *testing.T) {
	clock := &fakeClock{}
	c := NewCare(clock)
	clock.advance(10_000_000)
	h, hp, e := statValues(c)
	if h != 0 || hp != 0 || e != 0 {
		t.Errorf("stats = %v/%v/%v, want 0/0/0", h, hp, e)
	}
}

func TestCareFeed(t *testing.T) {
	c := NewCare(&fakeClock{})
	for i, want := range []Outcome{OutcomeGood, OutcomeGood, OutcomeBad} {
		if got := c.Perform(ActionFeed); got != want {
			t.Errorf("feed %d = %v, want %v", i, got, want)
		}
	}
	h, hp, _ := statValues(c)
	if h != 90 || hp != 60 {
		t.Errorf("hunger/happiness = %v/%v, want 90/60", h, hp)
	}
}

func TestCarePlay(t *testing.T) {
	c := NewCare(&fakeClock{})
	for i, want := range []Outcome{OutcomeGood, OutcomeGood, OutcomeGood, OutcomeBad} {
		if got := c.Perform(ActionPlay); got != want {
			t.Errorf("play %d = %v, want %v", i, got, want)
		}
	}
	h, hp, e := statValues(c)
	if h != 35 || hp != 95 || e != 20 {
		t.Errorf("stats = %v/%v/%v, want 35/95/20", h, hp, e)
	}
}

func TestCarePetClamps(t *testing.T) {
	c := NewCare(&fakeClock{})
	for i := 0; i < 10; i++ {
		if got := c.Perform(ActionPet); got != OutcomeGood {
			t.Fatalf("pet = %v, want good", got)
		}
	}
	if _, hp, _ := statValues(c); hp != 100 {
		t.Errorf("happiness = %v, want 100", hp)
	}
}

func TestCareEmotionalState(t *testing.T) {
	t.Run("neutral", func(t *testing.T) {
		if got := NewCare(&fakeClock{}).EmotionalState(); got != Neutral {
			t.Errorf("EmotionalState() = %q, want neutral", got)
		}
	})
	t.Run("hungry is sad", func(t *testing.T) {
		clock := &fakeClock{}
		c := NewCare(clock)
		clock.advance(500_000)
		if got := c.EmotionalState(); got != "sad" {
			t.Errorf("EmotionalState() = %q, want sad", got)
		}
	})
	t.Run("tired", func(t *testing.T) {
		c := NewCare(&fakeClock{})
		for i := 0; i < 3; i++ {
			c.Perform(ActionPlay)
		}
		if got := c.EmotionalState(); got != "tired" {
			t.Errorf("EmotionalState() = %q, want tired", got)
		}
	})
}
