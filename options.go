package autosize

import "fmt"

// Option is a functional option for configuring an AutoSizer.
type Option func(*config) error

type config struct {
	initialWidth  int
	initialHeight int
	class         string
	style         Style
	onResize      func(Size)
	ref           *Ref
}

// WithInitialWidth sets the width exposed before the first measurement.
// Default is 0. Negative values are rejected.
func WithInitialWidth(w int) Option {
	return func(c *config) error {
		if w < 0 {
			return fmt.Errorf("initial width must be non-negative, got %d", w)
		}
		c.initialWidth = w
		return nil
	}
}

// WithInitialHeight sets the height exposed before the first measurement.
// Default is 0. Negative values are rejected.
func WithInitialHeight(h int) Option {
	return func(c *config) error {
		if h < 0 {
			return fmt.Errorf("initial height must be non-negative, got %d", h)
		}
		c.initialHeight = h
		return nil
	}
}

// WithInitialSize sets both initial dimensions.
func WithInitialSize(w, h int) Option {
	return func(c *config) error {
		if err := WithInitialWidth(w)(c); err != nil {
			return err
		}
		return WithInitialHeight(h)(c)
	}
}

// WithClass sets the container's class attribute.
func WithClass(class string) Option {
	return func(c *config) error {
		c.class = class
		return nil
	}
}

// WithStyle sets the container's style. Width and height are ignored: the
// container always fills its parent.
func WithStyle(s Style) Option {
	return func(c *config) error {
		c.style = s.clone()
		return nil
	}
}

// WithOnResize registers a callback invoked with every new measurement.
func WithOnResize(fn func(Size)) Option {
	return func(c *config) error {
		c.onResize = fn
		return nil
	}
}

// WithRef stores the container element in ref once the sizer is built.
func WithRef(ref *Ref) Option {
	return func(c *config) error {
		c.ref = ref
		return nil
	}
}
