package cmd

import "math"

const (
	arcThickness = 4
	sparkleArm   = 3
	sleepyBar    = 2

	zGlyphs  = 3
	zWidth   = 6
	zHeight  = 8
	zShrink  = 0.7
	zStepX   = 4
	zStepY   = -4
	zOffsetX = 5
	zOffsetY = -10
)

// lidPixels is how far each of the top and bottom blink lids reaches in.
func lidPixels(h int, blink float64) int {
	if blink < 0 {
		blink = 0
	} else if blink > 1 {
		blink = 1
	}
	return int(float64(h) * (1 - blink) / 2)
}

// EffectiveHeight is the drawn height of a generic eye after blink lids and
// static lid bias. It never goes negative.
func EffectiveHeight(d Descriptor, blink float64) int {
	eh := d.Height - 2*lidPixels(d.Height, blink) - d.TopLid - d.BottomLid
	if eh < 0 {
		return 0
	}
	return eh
}

func drawEye(s Surface, x, y int, d Descriptor, blink float64, left bool) {
	lid := lidPixels(d.Height, blink)
	eh := EffectiveHeight(d, blink)
	xd := x + d.OffsetX
	yd := y + lid + d.TopLid + d.OffsetY

	// Special shapes are anchored on the open eye and ignore blink.
	switch d.Shape {
	case ShapeHeart:
		drawHeart(s, xd, y, d.Width, d.Height)
		return
	case ShapeSparkle:
		drawSparkle(s, xd, y, d.Width, d.Height)
		return
	case ShapeSleepy:
		drawSleepy(s, xd, y, d.Width, d.Height, left)
		return
	case ShapeArc:
		drawArc(s, xd, y, d.Width, d.Height)
		return
	}

	drawRounded(s, xd, yd, d.Width, eh, d.Radius)

	if d.Slant {
		eraseSlant(s, xd, yd, d.Width, eh, left)
	}
	if d.Curve {
		eraseCurve(s, xd, yd, d.Width, eh)
	}
}

func drawRounded(s Surface, x, y, w, h, r int) {
	if h <= 2*r {
		s.FillRect(x, y, w, h, true)
		return
	}
	FillCircle(s, x+r, y+r, r, true)
	FillCircle(s, x+w-1-r, y+r, r, true)
	FillCircle(s, x+r, y+h-1-r, r, true)
	FillCircle(s, x+w-1-r, y+h-1-r, r, true)

	s.FillRect(x+r, y, w-2*r, h, true)
	s.FillRect(x, y+r, w, h-2*r, true)
}

// eraseSlant cuts a wedge off the top, deepest on the inner side of each eye.
func eraseSlant(s Surface, x, y, w, h int, left bool) {
	depth := int(float64(h) * 0.4)
	for i := 0; i < w; i++ {
		c := i
		if !left {
			c = w - 1 - i
		}
		if n := depth * c / w; n > 0 {
			s.VLine(x+i, y, n, false)
		}
	}
}

func eraseCurve(s Surface, x, y, w, h int) {
	depth := float64(int(float64(h) * 0.3))
	half := float64(w) / 2
	for i := 0; i < w; i++ {
		rel := (float64(i) - half) / half
		f := math.Max(0, math.Min(1, 1-rel*rel))
		if top := int(depth * f); top > 0 {
			s.VLine(x+i, y, top, false)
		}
		if bottom := int(depth * 0.7 * f); bottom > 0 {
			s.VLine(x+i, y+h-bottom, bottom, false)
		}
	}
}

func drawHeart(s Surface, x, y, w, h int) {
	hw := int(float64(w) * 0.8)
	hh := int(float64(h) * 0.8)
	cx := x + w/2
	cy := y + h/2

	r := hw / 4
	FillCircle(s, cx-r, cy-r/2, r, true)
	FillCircle(s, cx+r, cy-r/2, r, true)

	half := float64(hh) / 2
	for i := 0; i < hh/2; i++ {
		lw := int(float64(hw) * math.Sqrt(1-float64(i)/half))
		s.HLine(cx-lw/2, cy+i, lw, true)
	}
}

func drawSparkle(s Surface, x, y, w, h int) {
	cx := x + w/2
	cy := y + h/2
	FillCircle(s, cx, cy, min(w, h)/3, true)

	// Cut out of the iris so the glint shows.
	s.HLine(cx-sparkleArm, cy, 2*sparkleArm+1, false)
	s.VLine(cx, cy-sparkleArm, 2*sparkleArm+1, false)
}

func drawSleepy(s Surface, x, y, w, h int, left bool) {
	s.FillRect(x, y+h/2, w, sleepyBar, true)
	if left {
		return
	}

	zx, zy := x+w+zOffsetX, y+zOffsetY
	zw, zh := zWidth, zHeight
	for i := 0; i < zGlyphs; i++ {
		s.HLine(zx, zy, zw, true)
		Line(s, zx+zw, zy, zx, zy+zh, true)
		s.HLine(zx, zy+zh, zw, true)

		zx += zStepX
		zy += zStepY
		zw = int(float64(zw) * zShrink)
		zh = int(float64(zh) * zShrink)
	}
}

// drawArc draws the curved lid of a smiling eye. Columns outside the unit
// circle get no offset.
func drawArc(s Surface, x, y, w, h int) {
	half := float64(w) / 2
	for t := 0; t < arcThickness; t++ {
		for i := 0; i < w; i++ {
			rel := (float64(i) - half) / half
			if math.Abs(rel) > 1 {
				continue
			}
			dy := 0
			if v := 1 - rel*rel; v >= 0 {
				dy = int(float64(h) * (1 - math.Sqrt(v)))
			}
			s.Pixel(x+i, y+dy+t, true)
		}
	}
}
