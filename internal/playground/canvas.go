package playground

import (
	"strings"

	autosize "github.com/grindlemire/go-autosize"
)

// Canvas is a grid of runes in terminal cells.
type Canvas struct {
	width, height int
	cells         [][]rune
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) set(x, y int, r rune) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.cells[y][x] = r
	}
}

// Text writes s starting at (x, y), clipped to maxWidth and the canvas.
func (c *Canvas) Text(x, y, maxWidth int, s string) {
	i := 0
	for _, r := range s {
		if i >= maxWidth {
			return
		}
		c.set(x+i, y, r)
		i++
	}
}

// Frame draws a single-line border around box.
func (c *Canvas) Frame(box autosize.Box) {
	x0, y0 := int(box.X), int(box.Y)
	x1, y1 := x0+int(box.Width)-1, y0+int(box.Height)-1
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─')
		c.set(x, y1, '─')
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│')
		c.set(x1, y, '│')
	}
	c.set(x0, y0, '┌')
	c.set(x1, y0, '┐')
	c.set(x0, y1, '└')
	c.set(x1, y1, '┘')
}

// Lines returns the canvas rows with trailing spaces trimmed.
func (c *Canvas) Lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		out[y] = strings.TrimRight(string(row), " ")
	}
	return out
}

// Paint draws a rendered view: the container's border (if styled) and the
// content lines inside the container's content box.
func Paint(view autosize.View[[]string]) *Canvas {
	el := view.Container
	bounds := el.Bounds()
	if bounds.IsEmpty() {
		return NewCanvas(0, 0)
	}
	c := NewCanvas(int(bounds.Right()), int(bounds.Bottom()))
	if el.Style().Border {
		c.Frame(bounds)
	}
	content := el.ContentBox()
	x, y := int(content.X), int(content.Y)
	w, h := int(content.Width), int(content.Height)
	for i, line := range view.Content {
		if i >= h {
			break
		}
		c.Text(x, y+i, w, line)
	}
	return c
}

// ANSI renders the canvas as a full-screen redraw for a raw-mode terminal.
func (c *Canvas) ANSI() string {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")
	b.WriteString(strings.Join(c.Lines(), "\r\n"))
	return b.String()
}
