package autosize

// Box is a rectangle with fractional coordinates. X and Y are the top-left
// corner; Width and Height are dimensions.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// NewBox creates a Box with the given position and dimensions.
func NewBox(x, y, width, height float64) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// IsEmpty returns true if the box has zero or negative area.
func (b Box) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Inset returns a new Box shrunk by the given Edges.
// Width and height never go below zero.
func (b Box) Inset(e Edges) Box {
	out := Box{
		X:      b.X + e.Left,
		Y:      b.Y + e.Top,
		Width:  b.Width - e.Horizontal(),
		Height: b.Height - e.Vertical(),
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Edges holds spacing for the four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns the sum of two Edges.
func (e Edges) Add(o Edges) Edges {
	return Edges{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

// IsZero returns true if all edges are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}
