package cmd

import "sort"

const Neutral = "neutral"

var catalog = newCatalog(EyeWidth, EyeHeight)

func scale(v int, f float64) int { return int(float64(v) * f) }

func newCatalog(w, h int) map[string]Descriptor {
	base := Descriptor{Width: w, Height: h, Radius: DefaultRadius}

	with := func(mod func(d *Descriptor)) Descriptor {
		d := base
		mod(&d)
		return d
	}

	return map[string]Descriptor{
		Neutral: base,
		"happy": with(func(d *Descriptor) {
			d.Height = scale(h, 0.6)
			d.Radius = 8
			d.Shape = ShapeArc
		}),
		"sad": with(func(d *Descriptor) {
			d.Height = scale(h, 0.7)
			d.Curve = true
			d.OffsetY = 5
		}),
		"angry": with(func(d *Descriptor) {
			d.Height = scale(h, 0.7)
			d.Radius = 4
			d.Slant = true
			d.OffsetY = -3
		}),
		"tired": with(func(d *Descriptor) {
			d.Height = scale(h, 0.4)
			d.OffsetY = 3
		}),
		"heart_eyes": with(func(d *Descriptor) {
			d.Radius = 0
			d.Shape = ShapeHeart
		}),
		"look_left":  with(func(d *Descriptor) { d.OffsetX = -8 }),
		"look_right": with(func(d *Descriptor) { d.OffsetX = 8 }),
		"look_up":    with(func(d *Descriptor) { d.OffsetY = -8 }),
		"look_down":  with(func(d *Descriptor) { d.OffsetY = 8 }),
		"suspicious": with(func(d *Descriptor) {
			d.Height = scale(h, 0.7)
			d.OffsetX = -5
			d.OffsetY = -3
			d.Slant = true
		}),
		// squint
		"confused": with(func(d *Descriptor) {
			d.OffsetX = 5
			d.OffsetY = -4
			d.BottomLid = 6
		}),
		"excited": with(func(d *Descriptor) {
			d.Width = scale(w, 1.2)
			d.Height = scale(h, 1.2)
			d.Radius = 5
			d.Shape = ShapeSparkle
		}),
		"sleepy": with(func(d *Descriptor) {
			d.Height = scale(h, 0.3)
			d.Radius = 4
			d.OffsetY = 4
			d.Shape = ShapeSleepy
		}),

		"glee": with(func(d *Descriptor) {
			d.Height = scale(h, 0.8)
			d.Radius = 8
			d.Shape = ShapeArc
		}),
		"unimpressed": with(func(d *Descriptor) {
			d.TopLid = scale(h, 0.4)
		}),
		"annoyed": with(func(d *Descriptor) {
			d.Height = scale(h, 0.8)
			d.Radius = 4
			d.TopLid = 6
			d.Slant = true
		}),
		"surprised": with(func(d *Descriptor) {
			d.Width = scale(w, 1.1)
			d.Height = scale(h, 1.1)
			d.Radius = 10
			d.OffsetY = -2
		}),
		"skeptic": with(func(d *Descriptor) {
			d.Height = scale(h, 0.8)
			d.OffsetX = -4
			d.BottomLid = 8
		}),
		"focused": with(func(d *Descriptor) {
			d.Height = scale(h, 0.55)
			d.Radius = 4
		}),
		"worried": with(func(d *Descriptor) {
			d.Height = scale(h, 0.8)
			d.Curve = true
			d.OffsetY = -3
		}),
	}
}

// Lookup returns the descriptor for name, or neutral when name is unknown.
func Lookup(name string) Descriptor {
	if d, ok := catalog[name]; ok {
		return d
	}
	return catalog[Neutral]
}

// Resolve maps unknown names to neutral.
func Resolve(name string) string {
	if Known(name) {
		return name
	}
	return Neutral
}

// Known reports whether name has its own catalog entry.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

func Emotions() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
