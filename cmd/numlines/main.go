package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/Veraticus/numlines/pkg/config"
	"github.com/Veraticus/numlines/pkg/output"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}))
}

// options are the command line flags
type options struct {
	configPath   string
	input        string
	format       string
	patterns     []string
	quiet        bool
	verbose      bool
	listPatterns bool
	help         bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("numlines", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	fs.StringVarP(&opts.input, "input", "i", "", "Input file, - for stdin (default "+config.DefaultInput+")")
	fs.StringVarP(&opts.format, "format", "f", "", "Output format: "+strings.Join(output.Formats(), ", ")+" (default raw)")
	fs.StringSliceVarP(&opts.patterns, "pattern", "p", nil, "Enable only the named patterns (repeatable)")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the summary on stderr")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	fs.BoolVar(&opts.listPatterns, "list-patterns", false, "List configured patterns and exit")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help message")
	return fs
}

func run(args []string, streams Streams) int {
	var opts options
	fs := newFlagSet(&opts, streams.Err)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(streams.Out, fs)
			return exitOK
		}
		return exitUsage
	}

	if opts.help {
		printUsage(streams.Out, fs)
		return exitOK
	}

	if fs.NArg() > 1 {
		fmt.Fprintf(streams.Err, "Error: expected at most one input file, got %d\n", fs.NArg())
		return exitUsage
	}

	// The config path has to be known before loading
	if opts.configPath != "" {
		if err := os.Setenv("NUMLINES_CONFIG", opts.configPath); err != nil {
			fmt.Fprintf(streams.Err, "Error setting config path: %v\n", err)
			return exitError
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(streams.Err, "Error loading config: %v\n", err)
		return exitError
	}

	// Validation waits until flags have had a chance to override bad values
	if err := applyFlags(cfg, &opts, fs); err != nil {
		fmt.Fprintf(streams.Err, "Error: %v\n", err)
		return exitError
	}

	if opts.listPatterns {
		printPatterns(streams.Out, cfg)
		return exitOK
	}

	deps, err := NewDependencies(cfg, streams)
	if err != nil {
		fmt.Fprintf(streams.Err, "Error creating dependencies: %v\n", err)
		return exitError
	}

	// Run reports its own failures
	if err := NewApplication(deps).Run(); err != nil {
		return exitError
	}

	return exitOK
}

// applyFlags overrides cfg with the flags that were set, then compiles and
// validates the result
func applyFlags(cfg *config.Config, opts *options, fs *flag.FlagSet) error {
	if opts.input != "" {
		cfg.Input = opts.input
	}
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}
	if fs.Changed("quiet") {
		cfg.Quiet = opts.quiet
	}
	if fs.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if len(opts.patterns) > 0 {
		if err := cfg.EnablePatterns(opts.patterns); err != nil {
			return err
		}
	}

	return config.Finalize(cfg)
}

func printPatterns(w io.Writer, cfg *config.Config) {
	for _, p := range cfg.Patterns {
		state := "disabled"
		if p.Enabled {
			state = "enabled"
		}
		fmt.Fprintf(w, "%-12s %-8s %s\n", p.Name, state, p.Regex)
	}
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "numlines - print the lines of a file that consist only of digits")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: numlines [OPTIONS] [FILE]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  NUMLINES_INPUT     Input file (default ./test.txt)")
	fmt.Fprintln(w, "  NUMLINES_FORMAT    Output format (default raw)")
	fmt.Fprintln(w, "  NUMLINES_QUIET     Suppress the summary (true/false)")
	fmt.Fprintln(w, "  NUMLINES_VERBOSE   Log diagnostics (true/false)")
	fmt.Fprintln(w, "  NUMLINES_CONFIG    Path to config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/numlines/config.yaml")
	fmt.Fprintln(w, "A .env file in the working directory is loaded first.")
}
