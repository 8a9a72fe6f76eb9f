// Package autosize provides a component that measures its container and
// hands the measured size to a render function.
//
// An AutoSizer owns a container element that always fills its parent. When
// attached it asks a Host for the container's content box, then subscribes to
// the host's resize notifications. Every measurement is floored to whole
// units, stored in a reactive State[Size] and passed to the optional
// OnResize callback. Bindings on the sizer re-run the children function with
// the latest size.
//
// Example usage:
//
//	sizer, err := autosize.New(host, func(s autosize.Size) string {
//	    return fmt.Sprintf("%dx%d", s.Width, s.Height)
//	}, autosize.WithOnResize(func(s autosize.Size) {
//	    log.Printf("resized to %v", s)
//	}))
//	if err != nil {
//	    return err
//	}
//	if err := sizer.Attach(); err != nil {
//	    return err
//	}
//	defer sizer.Detach()
//
// Hosts that observe on background goroutines deliver their notifications
// through a Loop so handlers always run one at a time, in arrival order.
package autosize
