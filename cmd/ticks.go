package cmd

import "time"

// Ticks is a millisecond counter that wraps at 2^32.
type Ticks uint32

type Clock interface {
	Ticks() Ticks
}

// TicksDiff returns now-then as a signed distance, correct across one wrap
// of the counter as long as the real distance fits in an int32.
func TicksDiff(now, then Ticks) int32 {
	return int32(now - then)
}

// Elapsed reports whether at least d ticks have passed since then.
// A then that lies in the future counts as not elapsed.
func Elapsed(now, then, d Ticks) bool {
	diff := TicksDiff(now, then)
	if diff < 0 {
		return false
	}
	return Ticks(diff) >= d
}

type SystemClock struct {
	boot time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{boot: time.Now()}
}

func (c *SystemClock) Ticks() Ticks {
	return Ticks(uint32(time.Since(c.boot).Milliseconds()))
}
