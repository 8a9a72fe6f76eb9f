// Package windowhost hosts autosize components in a resizable desktop
// window driven by Ebitengine.
//
// The window's outside size is the parent box. Ebitengine reports it through
// LayoutF on the game goroutine every frame; the host notifies observers
// only when the size actually changed. Update, Draw and LayoutF all run on
// the same goroutine, so queued functions and notifications never overlap.
package windowhost

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	autosize "github.com/grindlemire/go-autosize"
	"github.com/grindlemire/go-autosize/internal/debug"
)

// ErrNoLayout is returned by Measure before the window reported its size.
var ErrNoLayout = errors.New("windowhost: window has not been laid out yet")

// Host is an ebiten.Game whose window size drives autosize observers.
type Host struct {
	mu      sync.Mutex
	outside autosize.Box
	laidOut bool
	subs    []*subscription
	queue   []func()

	draw   func(screen *ebiten.Image)
	update func() error
}

type subscription struct {
	target    *autosize.Element
	onEntries func([]autosize.ResizeEntry)
	active    bool
}

var (
	_ autosize.Host       = (*Host)(nil)
	_ autosize.Dispatcher = (*Host)(nil)
	_ ebiten.Game         = (*Host)(nil)
	_ ebiten.LayoutFer    = (*Host)(nil)
)

// Option configures a Host.
type Option func(*Host)

// WithDraw sets the function that paints each frame.
func WithDraw(fn func(screen *ebiten.Image)) Option {
	return func(h *Host) {
		h.draw = fn
	}
}

// WithUpdate sets a function run once per tick after queued functions.
// Returning an error ends the game loop.
func WithUpdate(fn func() error) Option {
	return func(h *Host) {
		h.update = fn
	}
}

// New creates a window host.
func New(opts ...Option) *Host {
	h := &Host{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// QueueUpdate schedules fn for the next Update. Safe from any goroutine.
func (h *Host) QueueUpdate(fn func()) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.queue = append(h.queue, fn)
	return true
}

// Measure lays target out in the window and returns its content box.
func (h *Host) Measure(target *autosize.Element) (autosize.Box, error) {
	h.mu.Lock()
	outside, ok := h.outside, h.laidOut
	h.mu.Unlock()
	if !ok {
		return autosize.Box{}, ErrNoLayout
	}
	target.Layout(outside)
	return target.ContentBox(), nil
}

// Observe registers onEntries for window size changes.
func (h *Host) Observe(target *autosize.Element, onEntries func([]autosize.ResizeEntry)) (autosize.Disconnect, error) {
	if target == nil {
		return nil, fmt.Errorf("windowhost: nil target")
	}
	sub := &subscription{target: target, onEntries: onEntries, active: true}
	h.mu.Lock()
	h.subs = append(h.subs, sub)
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			sub.active = false
			kept := h.subs[:0]
			for _, s := range h.subs {
				if s.active {
					kept = append(kept, s)
				}
			}
			h.subs = kept
		})
	}, nil
}

// Update runs queued functions in order, then the update hook.
func (h *Host) Update() error {
	h.mu.Lock()
	queued := h.queue
	h.queue = nil
	h.mu.Unlock()

	for _, fn := range queued {
		fn()
	}
	if h.update != nil {
		return h.update()
	}
	return nil
}

// Draw paints the frame.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.draw != nil {
		h.draw(screen)
	}
}

// Layout satisfies ebiten.Game. Ebitengine calls LayoutF instead.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, hh := h.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(hh)
}

// LayoutF records the window's outside size and notifies observers when it
// changed. The screen is kept the same size as the window.
func (h *Host) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	outside := autosize.NewBox(0, 0, outsideWidth, outsideHeight)

	h.mu.Lock()
	changed := !h.laidOut || outside != h.outside
	h.outside = outside
	h.laidOut = true
	subs := make([]*subscription, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	if changed {
		debug.Log("windowhost: outside size %gx%g", outsideWidth, outsideHeight)
		for _, sub := range subs {
			if !h.isActive(sub) {
				continue
			}
			sub.target.Layout(outside)
			sub.onEntries([]autosize.ResizeEntry{{Target: sub.target, ContentRect: sub.target.ContentBox()}})
		}
	}
	return outsideWidth, outsideHeight
}

func (h *Host) isActive(sub *subscription) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return sub.active
}

// Run opens a resizable window and blocks until the game loop ends.
func (h *Host) Run(title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(h)
}
