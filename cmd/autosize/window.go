package main

import (
	"errors"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/sync/errgroup"

	autosize "github.com/grindlemire/go-autosize"
	"github.com/grindlemire/go-autosize/host/windowhost"
	"github.com/grindlemire/go-autosize/internal/debug"
	"github.com/grindlemire/go-autosize/internal/playground"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var borderColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// runWindow implements the window subcommand.
func runWindow(args []string) error {
	opts, err := parseOptions("window", args, nil)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	var (
		app     *playground.App
		view    autosize.View[[]string]
		mounted bool
	)

	host := windowhost.New(
		windowhost.WithDraw(func(screen *ebiten.Image) {
			if view.Container != nil {
				drawView(screen, view)
			}
		}),
		windowhost.WithUpdate(func() error {
			if !mounted {
				err := app.Mount()
				if errors.Is(err, windowhost.ErrNoLayout) {
					return nil
				}
				if err != nil {
					return err
				}
				mounted = true
			}
			switch {
			case inpututil.IsKeyJustPressed(ebiten.KeyQ):
				return ebiten.Termination
			case inpututil.IsKeyJustPressed(ebiten.KeyN):
				app.NextPage()
			}
			return nil
		}),
	)
	app = playground.NewApp(host, cfg, func(v autosize.View[[]string]) {
		view = v
	}, playground.WithCellScale(glyphWidth, glyphHeight))

	var g errgroup.Group
	w, err := playground.WatchConfig(opts.configPath)
	if err != nil {
		debug.Log("window: config watch disabled: %v", err)
	} else {
		g.Go(func() error {
			for cfg := range w.Configs {
				host.QueueUpdate(func() { app.Reload(cfg) })
			}
			return nil
		})
		g.Go(func() error {
			for err := range w.Errors {
				host.QueueUpdate(func() { app.ReportError(err) })
			}
			return nil
		})
	}

	runErr := host.Run("autosize playground", 640, 400)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	if w != nil {
		runErr = errors.Join(runErr, w.Close())
	}
	return errors.Join(runErr, g.Wait())
}

// drawView paints the container border and the content lines.
func drawView(screen *ebiten.Image, view autosize.View[[]string]) {
	el := view.Container
	if el.Style().Border {
		b := el.Bounds()
		vector.StrokeRect(screen, float32(b.X)+0.5, float32(b.Y)+0.5, float32(b.Width)-1, float32(b.Height)-1, 1, borderColor, false)
	}
	content := el.ContentBox()
	ebitenutil.DebugPrintAt(screen, strings.Join(view.Content, "\n"), int(content.X), int(content.Y))
}
