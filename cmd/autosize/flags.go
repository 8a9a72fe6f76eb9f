package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/grindlemire/go-autosize/internal/playground"
)

// options are the flags shared by the term and window commands.
type options struct {
	configPath string
	page       string
}

func parseOptions(name string, args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", playground.DefaultConfigFile, "playground config file")
	fs.StringVar(&opts.page, "page", "", "page to start on")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// loadConfig reads the config file and applies the -page override.
func loadConfig(opts options) (playground.Config, error) {
	cfg, err := playground.Load(opts.configPath)
	if err != nil {
		return playground.Config{}, err
	}
	if opts.page != "" {
		cfg.Page = opts.page
		if err := cfg.Validate(); err != nil {
			return playground.Config{}, err
		}
	}
	return cfg, nil
}
