package cmd

import (
	"fmt"

	"tinygo.org/x/tinyfont"
)

const (
	statRow       = 21
	statBaseline  = 6
	statBarTop    = 9
	statBarHeight = 7
	statMargin    = 2
)

var statFont = &tinyfont.TomThumb

// ShowStats replaces the eyes with one labelled bar per stat. Stats that do
// not fit on the panel are left out.
func ShowStats(f *Frame, stats []Stat) error {
	w, h := f.Bounds()
	f.Clear()
	for i, st := range stats {
		top := i * statRow
		if top+statBarTop+statBarHeight > h {
			break
		}
		label := fmt.Sprintf("%s: %d", st.Name, int(st.Value+0.5))
		tinyfont.WriteLine(f, statFont, statMargin, int16(top+statBaseline), label, White)
		drawBar(f, statMargin, top+statBarTop, w-2*statMargin, statBarHeight, st.Value)
	}
	return f.Present()
}

// drawBar draws an outlined bar filled to value out of 100.
func drawBar(s Surface, x, y, w, h int, value float64) {
	s.HLine(x, y, w, true)
	s.HLine(x, y+h-1, w, true)
	s.VLine(x, y, h, true)
	s.VLine(x+w-1, y, h, true)

	fill := int(clampStat(value) / statMax * float64(w-4))
	s.FillRect(x+2, y+2, fill, h-4, true)
}
