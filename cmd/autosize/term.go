package main

import (
	"context"
	"errors"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	autosize "github.com/grindlemire/go-autosize"
	"github.com/grindlemire/go-autosize/host/termhost"
	"github.com/grindlemire/go-autosize/internal/debug"
	"github.com/grindlemire/go-autosize/internal/playground"
)

const (
	keyCtrlC = 3
	keyNext  = 'n'
	keyQuit  = 'q'
)

// runTerm implements the term subcommand. A failure to put the terminal
// back is returned alongside any run error.
func runTerm(args []string) (err error) {
	opts, err := parseOptions("term", args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	loop, err := autosize.NewLoop()
	if err != nil {
		return err
	}
	host, err := termhost.NewStdout(loop)
	if err != nil {
		return err
	}

	restore, err := termhost.EnableRawMode(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, restoreScreen(os.Stdout, restore))
	}()
	writeScreen(os.Stdout, enterScreen)

	app := playground.NewApp(host, cfg, func(v autosize.View[[]string]) {
		writeScreen(os.Stdout, playground.Paint(v).ANSI())
	})

	keys := make(chan byte, 16)
	go readKeys(os.Stdin, keys)
	loop.AddWatcher(autosize.Watch(keys, func(k byte) {
		switch k {
		case keyQuit, keyCtrlC:
			loop.Stop()
		case keyNext:
			app.NextPage()
		}
	}))

	g, ctx := errgroup.WithContext(context.Background())

	if w, err := playground.WatchConfig(opts.configPath); err != nil {
		debug.Log("term: config watch disabled: %v", err)
	} else {
		loop.AddWatcher(autosize.Watch(w.Configs, app.Reload))
		loop.AddWatcher(autosize.Watch(w.Errors, app.ReportError))
		g.Go(func() error {
			<-loop.Done()
			return w.Close()
		})
	}

	var mountErr error
	loop.QueueUpdate(func() {
		if err := app.Mount(); err != nil {
			mountErr = err
			loop.Stop()
		}
	})

	g.Go(func() error {
		err := loop.Run(ctx)
		app.Unmount()
		return err
	})

	return errors.Join(g.Wait(), mountErr)
}

// readKeys forwards single bytes from r until it fails.
func readKeys(r io.Reader, keys chan<- byte) {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			close(keys)
			return
		}
		if n == 1 {
			keys <- buf[0]
		}
	}
}
