package autosize

import (
	"fmt"
	"sort"
	"strings"
)

// Style holds presentation attributes for an element.
type Style struct {
	// Sizing relative to the parent box.
	Width  Value
	Height Value

	// Padding sits inside the border and is excluded from the content box.
	Padding Edges

	// Border draws a one unit frame on every side when set.
	Border bool

	// Props carries extra presentation properties (color, background, ...)
	// that renderers may interpret. Keys are compared case-sensitively.
	Props map[string]string
}

// borderWidth is the space a border takes on each side.
const borderWidth = 1

// Frame returns the combined border and padding edges.
func (s Style) Frame() Edges {
	f := s.Padding
	if s.Border {
		f = f.Add(EdgeAll(borderWidth))
	}
	return f
}

// Prop returns the value of an extra property and whether it was set.
func (s Style) Prop(key string) (string, bool) {
	v, ok := s.Props[key]
	return v, ok
}

// clone returns a copy of s that shares no map with the original.
func (s Style) clone() Style {
	out := s
	if s.Props != nil {
		out.Props = make(map[string]string, len(s.Props))
		for k, v := range s.Props {
			out.Props[k] = v
		}
	}
	return out
}

// fullBleed merges the caller's style under the container's fixed sizing
// rules: width and height are always 100% of the parent, whatever the
// caller asked for. Width or height smuggled in through Props is dropped too.
func fullBleed(s Style) Style {
	out := s.clone()
	out.Width = Percent(100)
	out.Height = Percent(100)
	for k := range out.Props {
		if isSizeProp(k) {
			delete(out.Props, k)
		}
	}
	return out
}

// isSizeProp reports whether a property key names width or height in any
// spelling ("Width", " HEIGHT").
func isSizeProp(key string) bool {
	key = strings.TrimSpace(key)
	return strings.EqualFold(key, "width") || strings.EqualFold(key, "height")
}

// String renders the style as a declaration list. Width and height come
// first, then padding and border, then extra properties in key order.
func (s Style) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "width: %s; height: %s;", s.Width, s.Height)
	if !s.Padding.IsZero() {
		p := s.Padding
		fmt.Fprintf(&b, " padding: %g %g %g %g;", p.Top, p.Right, p.Bottom, p.Left)
	}
	if s.Border {
		b.WriteString(" border: single;")
	}
	keys := make([]string, 0, len(s.Props))
	for k := range s.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s: %s;", k, s.Props[k])
	}
	return b.String()
}
