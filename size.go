package autosize

import (
	"fmt"
	"math"
)

// Size is a measured width and height in whole units (terminal cells or
// pixels, depending on the host). A Size is a value: every update produces a
// new one.
type Size struct {
	Width  int
	Height int
}

// SizeOf builds a Size from fractional measurements. Both values are
// truncated toward zero, never rounded. Negative and NaN inputs become 0.
func SizeOf(width, height float64) Size {
	return Size{Width: floorDim(width), Height: floorDim(height)}
}

// SizeOfBox returns the floored dimensions of b.
func SizeOfBox(b Box) Size {
	return SizeOf(b.Width, b.Height)
}

// IsZero reports whether both dimensions are 0.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// String renders the size as WIDTHxHEIGHT.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func floorDim(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Trunc(v))
}
