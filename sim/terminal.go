package main

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// terminalSink shows a page-layout 1-bit frame in the terminal, two pixel
// rows per character cell using the upper half block.
type terminalSink struct {
	mu     sync.Mutex
	closed bool
	screen tcell.Screen
	w, h   int
	buf    []byte
	on     tcell.Color
	off    tcell.Color
}

func newTerminalSink(screen tcell.Screen, w, h int) *terminalSink {
	return &terminalSink{
		screen: screen,
		w:      w,
		h:      h,
		buf:    make([]byte, w*((h+7)/8)),
		on:     tcell.NewRGBColor(120, 220, 255),
		off:    tcell.ColorBlack,
	}
}

func (t *terminalSink) SetBuffer(buf []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(buf) != len(t.buf) {
		return fmt.Errorf("frame is %d bytes, want %d", len(buf), len(t.buf))
	}
	copy(t.buf, buf)
	return nil
}

func (t *terminalSink) lit(x, y int) bool {
	if y >= t.h {
		return false
	}
	return t.buf[(y/8)*t.w+x]&(1<<uint(y%8)) != 0
}

func (t *terminalSink) color(on bool) tcell.Color {
	if on {
		return t.on
	}
	return t.off
}

func (t *terminalSink) Display() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	for row := 0; row*2 < t.h; row++ {
		for x := 0; x < t.w; x++ {
			style := tcell.StyleDefault.
				Foreground(t.color(t.lit(x, row*2))).
				Background(t.color(t.lit(x, row*2+1)))
			t.screen.SetContent(x, row, '▀', nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// close finalizes the screen. Frames pushed afterwards are dropped.
func (t *terminalSink) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}
