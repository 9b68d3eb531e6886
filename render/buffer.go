package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell with a depth sample
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Depth float64
}

// RenderBuffer is an off-screen cell grid with a depth buffer
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to background at infinite depth
func (b *RenderBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: RgbHUDText, Bg: RgbBackground, Depth: math.Inf(1)}
	}
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Get returns the cell at x, y
func (b *RenderBuffer) Get(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Shade paints a surface sample at depth
// Opaque samples depth-test and write depth; translucent samples depth-test and blend
func (b *RenderBuffer) Shade(x, y int, depth float64, color RGB, alpha float64) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	c := &b.cells[y*b.width+x]
	if depth >= c.Depth {
		return false
	}
	if alpha >= 1 {
		c.Bg = color
		c.Depth = depth
	} else {
		c.Bg = Blend(c.Bg, color, alpha)
	}
	c.Rune = ' '
	return true
}

// Text writes s starting at x, y over the existing background
func (b *RenderBuffer) Text(x, y int, s string, fg RGB) {
	if y < 0 || y >= b.height {
		return
	}
	for _, r := range s {
		if x >= b.width {
			return
		}
		if x >= 0 {
			c := &b.cells[y*b.width+x]
			c.Rune = r
			c.Fg = fg
		}
		x++
	}
}

// Flush copies the buffer to screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}
