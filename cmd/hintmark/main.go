// ABOUTME: CLI entry point for hintmark: labels a page's clickable elements with hints
// ABOUTME: Loads config and keybindings, extracts elements, dispatches to interactive or print mode

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/hintmark/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/hintmark/internal/config"
	"github.com/mauromedda/hintmark/internal/dom"
	"github.com/mauromedda/hintmark/internal/keybindings"
	hmlog "github.com/mauromedda/hintmark/internal/log"
	"github.com/mauromedda/hintmark/internal/mode/interactive"
	"github.com/mauromedda/hintmark/internal/mode/print"
	"github.com/mauromedda/hintmark/internal/mode/rpc"
	"github.com/mauromedda/hintmark/internal/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	defaultCols = 80
	defaultRows = 24
)

// errCancelled ends the process quietly with a non-zero status.
var errCancelled = errors.New("cancelled")

func main() {
	args, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("hintmark %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, os.Stdout); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and the page, then runs the selected mode.
func run(args cliArgs, stdout *os.File) error {
	if args.verbose {
		hmlog.SetLevel(hmlog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if args.zoom != 0 {
		settings.Zoom = args.zoom
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	keys := keybindings.New(config.GlobalKeybindingsFile(), config.LocalKeybindingsFile(cwd))

	elements, err := loadPage(args.page)
	if err != nil {
		return err
	}
	hmlog.Debug("%d hintable elements in %s", len(elements), args.page)

	if args.rpc {
		return rpc.Serve(os.Stdin, stdout, elements, settings.BaseZ, theme.Plain().Canvas)
	}

	styles := theme.Build(settings.Theme)
	tty := term.IsTerminal(int(stdout.Fd()))

	if args.print || !tty {
		cols, rows := viewportSize(args, stdout)
		cfg := print.Config{
			Format: args.format,
			Keys:   args.keys,
			Cols:   cols,
			Rows:   rows,
			Zoom:   settings.Zoom,
			BaseZ:  settings.BaseZ,
			Styles: styles,
		}
		res, err := print.Run(stdout, cfg, keys, elements)
		if err != nil {
			return err
		}
		if res.Cancelled {
			return errCancelled
		}
		return nil
	}

	if len(elements) == 0 {
		return fmt.Errorf("no hintable elements in %s", args.page)
	}

	res, err := interactive.Run(interactive.Deps{
		Elements: elements,
		Keys:     keys,
		Styles:   styles,
		Zoom:     settings.Zoom,
		BaseZ:    settings.BaseZ,
	})
	if err != nil {
		return err
	}
	if res.Activated == nil {
		return errCancelled
	}
	el := res.Activated
	fmt.Fprintf(stdout, "%s\t%s\t%s\n", el.Hint, el.Kind, el.Text)
	return nil
}

// loadPage reads and extracts the page at path; "-" is stdin.
func loadPage(path string) ([]dom.Element, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening page: %w", err)
		}
		defer f.Close()
		r = f
	}
	elements, err := dom.Extract(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return elements, nil
}

// viewportSize prefers flags, then the terminal size, then 80x24.
func viewportSize(args cliArgs, out *os.File) (cols, rows int) {
	cols, rows = defaultCols, defaultRows
	if w, h, err := term.GetSize(int(out.Fd())); err == nil && w > 0 && h > 0 {
		cols, rows = w, h
	}
	if args.cols > 0 {
		cols = args.cols
	}
	if args.rows > 0 {
		rows = args.rows
	}
	return cols, rows
}
