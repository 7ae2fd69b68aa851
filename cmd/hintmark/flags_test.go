// ABOUTME: Tests for CLI flag parsing and key script decoding
// ABOUTME: Uses a fresh FlagSet per case so tests can run in parallel

package main

import (
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (cliArgs, error) {
	t.Helper()
	fs := flag.NewFlagSet("hintmark", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseFlags(fs, argv)
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	args, err := parse(t)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if args.page != "-" || args.format != "text" || args.print || args.zoom != 0 {
		t.Errorf("defaults = %+v", args)
	}
}

func TestParseFlags_All(t *testing.T) {
	t.Parallel()

	args, err := parse(t, "--print", "--format", "json", "--keys", `d\x7fj`,
		"--zoom", "1.5", "--cols", "100", "--rows", "40", "--verbose", "page.html")
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !args.print || args.format != "json" || args.zoom != 1.5 || args.cols != 100 || args.rows != 40 || !args.verbose {
		t.Errorf("args = %+v", args)
	}
	if args.keys != "d\x7fj" {
		t.Errorf("keys = %q; want %q", args.keys, "d\x7fj")
	}
	if args.page != "page.html" {
		t.Errorf("page = %q; want page.html", args.page)
	}
}

func TestParseFlags_TooManyPages(t *testing.T) {
	t.Parallel()

	if _, err := parse(t, "a.html", "b.html"); err == nil {
		t.Error("expected error for two pages")
	}
}

func TestDecodeKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{"df", "df", false},
		{`a"b`, `a"b`, false},
		{`\x1b`, "\x1b", false},
		{`\té`, "\té", false},
		{`\q`, "", true},
	}
	for _, tt := range tests {
		got, err := decodeKeys(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("decodeKeys(%q) err = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("decodeKeys(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFlags_RPCNeedsPageFile(t *testing.T) {
	t.Parallel()

	if _, err := parse(t, "--rpc"); err == nil {
		t.Error("expected error for --rpc without a page file")
	}
	args, err := parse(t, "--rpc", "page.html")
	if err != nil || !args.rpc {
		t.Errorf("--rpc page.html: args=%+v err=%v", args, err)
	}
}
