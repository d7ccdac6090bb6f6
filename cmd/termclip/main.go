// Package main is the entry point for termclip.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jdlouhy/termclip/internal/clipboard"
	"github.com/jdlouhy/termclip/internal/plugin/lua"
	"github.com/jdlouhy/termclip/internal/sanitize"
	"github.com/jdlouhy/termclip/internal/ui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	copyMode  bool
	pasteMode bool
	uiMode    bool
	raw       bool
	osc52     bool
	rulesDir  string
	history   int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, done := parseFlags()
	if done {
		return 0
	}

	// Lua rules extend the default pipeline; lexical file order decides
	// rule order.
	if opts.rulesDir != "" {
		rules, err := lua.LoadRuleDir(opts.rulesDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load rules: %v\n", err)
			return 1
		}
		for _, rule := range rules {
			sanitize.AppendRule(rule)
		}
	}

	switch {
	case opts.uiMode:
		return runUI(opts)
	case opts.copyMode:
		return runCopy(opts)
	case opts.pasteMode:
		return runPaste(opts)
	default:
		return runFilter(opts)
	}
}

// newProvider selects the clipboard transport.
func newProvider(opts options) (clipboard.Provider, error) {
	if opts.osc52 {
		return clipboard.NewOSC52(os.Stdout), nil
	}
	return clipboard.Detect()
}

// runFilter is the default mode: stdin through the outbound pipeline to
// stdout.
func runFilter(opts options) int {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read stdin: %v\n", err)
		return 1
	}

	text := string(input)
	if !opts.raw {
		text = sanitize.Outbound(text)
	}
	if _, err := os.Stdout.WriteString(text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write stdout: %v\n", err)
		return 1
	}
	return 0
}

// runCopy sends stdin to the system clipboard.
func runCopy(opts options) int {
	provider, err := newProvider(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read stdin: %v\n", err)
		return 1
	}

	boundary := clipboard.NewBoundary(provider)
	if opts.raw {
		err = boundary.CopyRaw(string(input))
	} else {
		err = boundary.Copy(string(input))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: copy: %v\n", err)
		return 1
	}
	return 0
}

// runPaste prints the clipboard content to stdout.
func runPaste(opts options) int {
	provider, err := newProvider(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	boundary := clipboard.NewBoundary(provider)
	var text string
	if opts.raw {
		text, err = boundary.PasteRaw()
	} else {
		text, err = boundary.Paste()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: paste: %v\n", err)
		return 1
	}

	if _, err := os.Stdout.WriteString(text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write stdout: %v\n", err)
		return 1
	}
	return 0
}

// runUI starts the interactive history screen.
func runUI(opts options) int {
	provider, err := newProvider(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	boundary := clipboard.NewBoundary(provider)
	history := clipboard.NewHistory(opts.history)

	// Seed with the current clipboard content when readable.
	if current, err := boundary.Paste(); err == nil && current != "" {
		history.Record(current)
	}

	screen, err := ui.New(boundary, history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	defer screen.Close()

	if err := screen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.BoolVar(&opts.copyMode, "copy", false, "Copy stdin to the system clipboard")
	flag.BoolVar(&opts.pasteMode, "paste", false, "Print the system clipboard to stdout")
	flag.BoolVar(&opts.uiMode, "ui", false, "Interactive clipboard history screen")
	flag.BoolVar(&opts.raw, "raw", false, "Bypass the sanitization pipeline")
	flag.BoolVar(&opts.osc52, "osc52", false, "Copy via OSC 52 escape sequences instead of external tools")
	flag.StringVar(&opts.rulesDir, "rules", "", "Directory of *.lua rules appended to the pipeline")
	flag.IntVar(&opts.history, "history", 0, "History capacity for -ui (0 = default)")
	flag.BoolVar(&showVersion, "version", false, "Print version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "termclip - clipboard sanitization for terminal workflows\n\n")
		fmt.Fprintf(os.Stderr, "Usage: termclip [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Without -copy, -paste or -ui, termclip filters stdin to stdout\n")
		fmt.Fprintf(os.Stderr, "through the outbound sanitization pipeline.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("termclip %s (%s, built %s)\n", version, commit, date)
		return opts, true
	}
	return opts, false
}
