package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"darkdelve/pkg/game/generator"
)

// ExitError is an error that carries the process exit code
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options is the parsed command line
type options struct {
	mapName    string
	seed       uint64
	level      int
	width      int
	height     int
	configPath string
	pipeline   string
	dumpPath   string
	htmlPath   string
	history    bool
	legend     bool
	noColor    bool
	check      bool
	list       bool
	logLevel   string
	logFormat  string
	localesDir string
	lang       string
}

// parseArgs processes command-line arguments. It returns the options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	flagSet := flag.NewFlagSet("darkdelve", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
darkdelve - seed-deterministic dungeon map generator.

Usage:
  darkdelve [options]

Examples:
  darkdelve -map cellular -seed 42
  darkdelve -seed 42 -level 3
  darkdelve -config caves.hcl -pipeline deep -dump map.txt

Options:
`)
		flagSet.PrintDefaults()
	}

	opts := &options{}
	flagSet.StringVar(&opts.mapName, "map", "rooms", "Built-in map preset: "+presetNames()+".")
	flagSet.Uint64Var(&opts.seed, "seed", 0, "Random seed. 0 picks one from the clock.")
	flagSet.IntVar(&opts.level, "level", 0, "Generate this level (1-based) of a descent seeded by -seed. Overrides -map.")
	flagSet.IntVar(&opts.width, "width", generator.DefaultWidth, "Map width for -map presets.")
	flagSet.IntVar(&opts.height, "height", generator.DefaultHeight, "Map height for -map presets.")
	flagSet.StringVar(&opts.configPath, "config", "", "Path to an HCL pipeline file.")
	flagSet.StringVar(&opts.pipeline, "pipeline", "", "Pipeline name from -config, or from the built-in pipelines.")
	flagSet.StringVar(&opts.dumpPath, "dump", "", "Write a text debug dump of the map to this path.")
	flagSet.StringVar(&opts.htmlPath, "html", "", "Write an HTML rendering of the map to this path.")
	flagSet.BoolVar(&opts.history, "history", false, "Print every build snapshot before the final map.")
	flagSet.BoolVar(&opts.legend, "legend", false, "Print the symbol legend and a summary under the map.")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colours.")
	flagSet.BoolVar(&opts.check, "check", false, "Fail if a spawn or room cannot be reached from the start.")
	flagSet.BoolVar(&opts.list, "list", false, "List presets, built-in pipelines and stage types, then exit.")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&opts.localesDir, "locales", "", "Directory holding <lang>/default.po catalogues.")
	flagSet.StringVar(&opts.lang, "lang", "en", "Language of user-facing labels.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	if opts.level != 0 && (opts.configPath != "" || opts.pipeline != "") {
		return nil, false, &ExitError{Code: 2, Message: "-level cannot be combined with -config or -pipeline"}
	}

	opts.logFormat = strings.ToLower(opts.logFormat)
	if opts.logFormat != "text" && opts.logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	opts.logLevel = strings.ToLower(opts.logLevel)
	switch opts.logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if opts.width <= 0 || opts.height <= 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid map size %dx%d", opts.width, opts.height)}
	}

	return opts, false, nil
}

func presetNames() string {
	presets := generator.AllPresets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
