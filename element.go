package autosize

import "sync"

// Element is a rendered box with a class and style. Hosts place it inside a
// parent box with Layout and measure it with ContentBox.
type Element struct {
	mu     sync.RWMutex
	class  string
	style  Style
	bounds Box
}

// NewElement creates an element with the given class and style.
func NewElement(class string, style Style) *Element {
	return &Element{class: class, style: style.clone()}
}

// Class returns the element's class attribute.
func (e *Element) Class() string {
	return e.class
}

// Style returns a copy of the element's style.
func (e *Element) Style() Style {
	return e.style.clone()
}

// Layout resolves the element's width and height against parent and stores
// the resulting bounds. The element is positioned at parent's origin.
func (e *Element) Layout(parent Box) Box {
	b := Box{
		X:      parent.X,
		Y:      parent.Y,
		Width:  e.style.Width.Resolve(parent.Width, parent.Width),
		Height: e.style.Height.Resolve(parent.Height, parent.Height),
	}
	if b.Width < 0 {
		b.Width = 0
	}
	if b.Height < 0 {
		b.Height = 0
	}
	e.mu.Lock()
	e.bounds = b
	e.mu.Unlock()
	return b
}

// Bounds returns the box computed by the last Layout call.
func (e *Element) Bounds() Box {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bounds
}

// ContentBox returns the bounds minus border and padding.
func (e *Element) ContentBox() Box {
	return e.Bounds().Inset(e.style.Frame())
}
