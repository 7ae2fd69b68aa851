// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --print, --rpc, --format, --keys, --zoom, --cols, --rows, --verbose, --version

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

type cliArgs struct {
	print   bool
	rpc     bool
	format  string
	keys    string
	zoom    float64
	cols    int
	rows    int
	verbose bool
	version bool
	page    string
}

func parseFlags(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs

	fs.BoolVar(&args.print, "print", false, "Non-interactive print mode (implied when stdout is not a terminal)")
	fs.BoolVar(&args.rpc, "rpc", false, "Serve hint mode as JSONL RPC on stdin/stdout")
	fs.StringVar(&args.format, "format", "text", "Print mode output: text or json")
	fs.StringVar(&args.keys, "keys", "", `Key script for print mode; Go escapes allowed (e.g. "d\x7fj")`)
	fs.Float64Var(&args.zoom, "zoom", 0, "Zoom factor (default from config)")
	fs.IntVar(&args.cols, "cols", 0, "Viewport width in cells (default terminal width)")
	fs.IntVar(&args.rows, "rows", 0, "Viewport height in cells (default terminal height)")
	fs.BoolVar(&args.verbose, "verbose", false, "Debug logging to stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	switch fs.NArg() {
	case 0:
		args.page = "-"
	case 1:
		args.page = fs.Arg(0)
	default:
		return args, fmt.Errorf("expected one page, got %d", fs.NArg())
	}

	if args.rpc && args.page == "-" {
		return args, fmt.Errorf("--rpc reads requests from stdin; pass the page as a file")
	}

	keys, err := decodeKeys(args.keys)
	if err != nil {
		return args, fmt.Errorf("--keys: %w", err)
	}
	args.keys = keys
	return args, nil
}

// decodeKeys interprets Go string escapes so control keys can be scripted.
func decodeKeys(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	return strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
}
