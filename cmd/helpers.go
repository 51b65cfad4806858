package cmd

import (
	"strconv"
	"time"
)

// BuildFlags are the raw -ldflags "-X" strings baked into the firmware.
type BuildFlags struct {
	Address    string
	Seed       string
	Tick       string
	BlinkEvery string
}

// ParseSettings fills Settings from build flags. Empty or malformed values
// keep the default.
func ParseSettings(f BuildFlags) Settings {
	s := DefaultSettings()
	s.DisplayAddress = ParseAddress(f.Address)
	s.Seed = ParseSeed(f.Seed)
	s.Tick = ParseTick(f.Tick, s.Tick)
	s.BlinkEvery = ParseCount(f.BlinkEvery, s.BlinkEvery)
	return s
}

// ParseAddress accepts "0x3c", "0x3d" or a decimal I2C address.
func ParseAddress(a string) uint16 {
	switch a {
	case "":
		return DefaultDisplayAddress
	case "0x3c", "0x3C", "primary":
		return 0x3C
	case "0x3d", "0x3D", "secondary":
		return 0x3D
	}
	v, err := strconv.ParseUint(a, 0, 7)
	if err != nil {
		logger.Warn("bad display address, using default", "value", a, "err", err)
		return DefaultDisplayAddress
	}
	return uint16(v)
}

// ParseSeed returns 0 for an empty or bad seed; callers then seed from the
// clock.
func ParseSeed(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		logger.Warn("bad seed, ignoring", "value", s, "err", err)
		return 0
	}
	return v
}

func ParseTick(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		logger.Warn("bad tick, using default", "value", s, "default", def)
		return def
	}
	return d
}

func ParseCount(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		logger.Warn("bad count, using default", "value", s, "default", def)
		return def
	}
	return v
}
