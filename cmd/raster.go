package cmd

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
)

// Surface is the drawing target for the eyes. Writes outside Bounds are
// dropped.
type Surface interface {
	Bounds() (w, h int)
	Pixel(x, y int, on bool)
	HLine(x, y, n int, on bool)
	VLine(x, y, n int, on bool)
	FillRect(x, y, w, h int, on bool)
	Clear()
	Present() error
}

// Sink receives a finished frame. *ssd1306.Device satisfies it.
type Sink interface {
	SetBuffer(buf []byte) error
	Display() error
}

var (
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black = color.RGBA{A: 0xFF}
)

// Frame is a 1-bit framebuffer in SSD1306 page layout: byte (y/8)*w+x holds
// column x of rows y&^7..y|7, least significant bit on top.
type Frame struct {
	w, h int
	buf  []byte
	sink Sink
}

var _ drivers.Displayer = (*Frame)(nil)

func NewFrame(w, h int, sink Sink) *Frame {
	return &Frame{
		w:    w,
		h:    h,
		buf:  make([]byte, w*((h+7)/8)),
		sink: sink,
	}
}

func (f *Frame) Bounds() (int, int) { return f.w, f.h }
func (f *Frame) Buffer() []byte     { return f.buf }

// At reports whether the pixel at (x, y) is lit. Outside the frame it is false.
func (f *Frame) At(x, y int) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	return f.buf[(y/8)*f.w+x]&(1<<uint(y%8)) != 0
}

func (f *Frame) Pixel(x, y int, on bool) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	i := (y/8)*f.w + x
	if on {
		f.buf[i] |= 1 << uint(y%8)
	} else {
		f.buf[i] &^= 1 << uint(y%8)
	}
}

func (f *Frame) HLine(x, y, n int, on bool) {
	if y < 0 || y >= f.h {
		return
	}
	x0, x1 := clip(x, x+n, f.w)
	for i := x0; i < x1; i++ {
		f.Pixel(i, y, on)
	}
}

func (f *Frame) VLine(x, y, n int, on bool) {
	if x < 0 || x >= f.w {
		return
	}
	y0, y1 := clip(y, y+n, f.h)
	for j := y0; j < y1; j++ {
		f.Pixel(x, j, on)
	}
}

func (f *Frame) FillRect(x, y, w, h int, on bool) {
	x0, x1 := clip(x, x+w, f.w)
	y0, y1 := clip(y, y+h, f.h)
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			f.Pixel(i, j, on)
		}
	}
}

func (f *Frame) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// Present pushes the frame to the sink. Without a sink it is a no-op.
func (f *Frame) Present() error {
	if f.sink == nil {
		return nil
	}
	if err := f.sink.SetBuffer(f.buf); err != nil {
		return fmt.Errorf("set buffer: %w", err)
	}
	if err := f.sink.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// Size, SetPixel and Display let tinyfont draw onto the frame.

func (f *Frame) Size() (int16, int16) { return int16(f.w), int16(f.h) }

func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	f.Pixel(int(x), int(y), c.R != 0 || c.G != 0 || c.B != 0)
}

func (f *Frame) Display() error { return f.Present() }

func clip(a, b, limit int) (int, int) {
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	if b < a {
		b = a
	}
	return a, b
}

// FillCircle draws a filled disc with the midpoint circle algorithm, four
// horizontal spans per step.
func FillCircle(s Surface, cx, cy, r int, on bool) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		s.HLine(cx-x, cy+y, 2*x+1, on)
		s.HLine(cx-x, cy-y, 2*x+1, on)
		s.HLine(cx-y, cy+x, 2*y+1, on)
		s.HLine(cx-y, cy-x, 2*y+1, on)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Line draws a Bresenham segment including both end points.
func Line(s Surface, x0, y0, x1, y1 int, on bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.Pixel(x0, y0, on)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
