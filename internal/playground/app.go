package playground

import (
	"fmt"

	autosize "github.com/grindlemire/go-autosize"
	"github.com/grindlemire/go-autosize/internal/debug"
)

// App shows one playground page inside an AutoSizer. All methods must run
// on the host's UI goroutine.
type App struct {
	host    autosize.Host
	cfg     Config
	page    string
	onFrame func(autosize.View[[]string])
	scale   autosize.Size

	sizer   *autosize.AutoSizer[[]string]
	unbind  autosize.Unbind
	resizes int
	status  string
}

// AppOption configures an App.
type AppOption func(*App)

// WithCellScale divides measured sizes before pages lay out text, for hosts
// that measure in pixels rather than cells.
func WithCellScale(cellWidth, cellHeight int) AppOption {
	return func(a *App) {
		a.scale = autosize.Size{Width: max(cellWidth, 1), Height: max(cellHeight, 1)}
	}
}

// NewApp creates an app that reports every rendered view to onFrame.
func NewApp(host autosize.Host, cfg Config, onFrame func(autosize.View[[]string]), opts ...AppOption) *App {
	a := &App{
		host:    host,
		cfg:     cfg,
		page:    cfg.Page,
		onFrame: onFrame,
		scale:   autosize.Size{Width: 1, Height: 1},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Mount builds the sizer for the current config and attaches it. Padding
// is given in cells and scaled like the measured size.
func (a *App) Mount() error {
	pad := float64(a.cfg.Padding)
	sizer, err := autosize.New(a.host, a.children,
		autosize.WithInitialSize(a.cfg.InitialWidth, a.cfg.InitialHeight),
		autosize.WithClass(a.cfg.Class),
		autosize.WithStyle(autosize.Style{
			Padding: autosize.EdgeSymmetric(pad*float64(a.scale.Height), pad*float64(a.scale.Width)),
			Border:  a.cfg.Border,
		}),
		autosize.WithOnResize(a.onResize),
	)
	if err != nil {
		return err
	}
	a.sizer = sizer
	a.unbind = sizer.Bind(a.onFrame)
	if err := sizer.Attach(); err != nil {
		a.Unmount()
		return err
	}
	a.Redraw()
	return nil
}

// Unmount detaches the current sizer.
func (a *App) Unmount() {
	if a.sizer == nil {
		return
	}
	a.unbind()
	a.sizer.Detach()
	a.sizer = nil
}

// Reload swaps in a new config by remounting the sizer.
func (a *App) Reload(cfg Config) {
	debug.Log("playground: reload, page %s", cfg.Page)
	a.Unmount()
	a.cfg = cfg
	a.page = cfg.Page
	a.status = "config reloaded"
	if err := a.Mount(); err != nil {
		a.status = fmt.Sprintf("reload failed: %v", err)
	}
}

// ReportError shows err in the status line.
func (a *App) ReportError(err error) {
	a.status = fmt.Sprintf("error: %v", err)
	a.Redraw()
}

// NextPage switches to the next page and redraws.
func (a *App) NextPage() {
	a.page = NextPage(a.page)
	a.status = ""
	a.Redraw()
}

// Page returns the page being shown.
func (a *App) Page() string {
	return a.page
}

// Size returns the sizer's current size, or zero when unmounted.
func (a *App) Size() autosize.Size {
	if a.sizer == nil {
		return autosize.Size{}
	}
	return a.sizer.Size()
}

// Resizes returns how many OnResize calls the current sizer made.
func (a *App) Resizes() int {
	return a.resizes
}

// Redraw renders the current view without a size change.
func (a *App) Redraw() {
	if a.sizer == nil {
		return
	}
	a.onFrame(a.sizer.Render())
}

func (a *App) onResize(s autosize.Size) {
	a.resizes++
	debug.Log("playground: resize #%d to %v", a.resizes, s)
}

func (a *App) children(s autosize.Size) []string {
	cells := autosize.Size{Width: s.Width / a.scale.Width, Height: s.Height / a.scale.Height}
	// The last line is the status bar.
	lines := Render(a.page, autosize.Size{Width: cells.Width, Height: max(cells.Height-1, 0)}, a.cfg)
	if len(lines) > cells.Height-1 {
		lines = lines[:max(cells.Height-1, 0)]
	}
	for len(lines) < cells.Height-1 {
		lines = append(lines, "")
	}
	status := fmt.Sprintf("[%s] %v  n: next page  q: quit", a.page, s)
	if a.status != "" {
		status += "  " + a.status
	}
	if cells.Height > 0 {
		lines = append(lines, status)
	}
	return lines
}
