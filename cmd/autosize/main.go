// Package main provides the autosize playground.
//
// Usage:
//
//	autosize term [-config path] [-page name]    Run the terminal playground
//	autosize window [-config path] [-page name]  Run the window playground
//	autosize help                                Show help
//
// Examples:
//
//	autosize term                     Show the basic page in this terminal
//	autosize term -page grid          Start on the grid page
//	autosize window -config demo.yaml Open a window using demo.yaml
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `autosize - playground for the autosize component

Usage:
  autosize <command> [options]

Commands:
  term        Run the playground in this terminal
  window      Run the playground in a resizable window
  version     Print version information
  help        Show this help message

Options:
  -config     Playground config file (default playground.yaml)
  -page       Page to start on: basic, chart, grid, list

Keys:
  n           Next page
  q, Ctrl+C   Quit

The config file is reloaded whenever it changes on disk.
Set AUTOSIZE_DEBUG=/path/to/file to write a debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "term":
		if err := runTerm(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "window":
		if err := runWindow(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("autosize version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
