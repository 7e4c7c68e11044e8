package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"darkdelve/locales"
	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/terminal"
	"darkdelve/pkg/game/config"
	"darkdelve/pkg/game/depth"
	"darkdelve/pkg/game/devtools"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/validate"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run generates one map and prints it. Logs go to stderr.
func run(stdout, stderr io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(opts.logLevel, opts.logFormat, stderr)

	if opts.localesDir != "" {
		locales.UseDir(opts.localesDir, opts.lang)
	} else if err := locales.Use(opts.lang); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if opts.list {
		return writeList(stdout)
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		logger.Warn("no seed given, using clock seed", "seed", seed)
	}

	var (
		name  string
		chain *generator.BuilderChain
	)
	if opts.level != 0 {
		level, err := depth.Plan(seed, opts.level)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		if chain, err = level.Chain(opts.width, opts.height); err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		name = level.Theme.Preset().String()
		logger.Info("descending", "level", level.Number, "title", level.Title(), "final", level.Final, "run_seed", seed)
		seed = level.Seed
	} else {
		name, chain, err = selectChain(opts)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
	}
	logger.Info("generating map", "pipeline", name, "seed", seed, "width", chain.Width(), "height", chain.Height())

	if !opts.history && opts.dumpPath == "" {
		chain.WithoutHistory()
	}
	res, err := chain.WithLogger(logger).Build(random.New(seed))
	if err != nil {
		return fmt.Errorf("generating %s map with seed %d: %w", name, seed, err)
	}

	preview := previewOptions(stdout, opts, res.Grid.Width())
	if opts.history {
		if err := devtools.WriteHistory(stdout, res, preview); err != nil {
			return err
		}
	}
	if err := devtools.WritePreview(stdout, res, preview); err != nil {
		return err
	}

	info := devtools.DumpInfo{Pipeline: name, Seed: seed, Stages: chain.Stages()}
	if opts.dumpPath != "" {
		path, err := devtools.DumpMapToFile(res, info, opts.dumpPath)
		if err != nil {
			return fmt.Errorf("writing map dump: %w", err)
		}
		logger.Info("map dump written", "path", path)
	}
	if opts.htmlPath != "" {
		path, err := devtools.SaveScreenshotHTML(res, info, opts.htmlPath)
		if err != nil {
			return fmt.Errorf("writing HTML map: %w", err)
		}
		logger.Info("HTML map written", "path", path)
	}

	if opts.check {
		return checkMap(res, logger)
	}
	return nil
}

// selectChain picks the pipeline to run: a pipeline from -config, a named
// built-in pipeline, or a -map preset sized by -width and -height.
func selectChain(opts *options) (string, *generator.BuilderChain, error) {
	switch {
	case opts.configPath != "":
		file, err := config.Load(opts.configPath)
		if err != nil {
			return "", nil, err
		}
		return pipelineChain(file, opts.pipeline)
	case opts.pipeline != "":
		file, err := config.Builtin()
		if err != nil {
			return "", nil, err
		}
		return pipelineChain(file, opts.pipeline)
	}

	preset, err := generator.ParsePreset(opts.mapName)
	if err != nil {
		return "", nil, err
	}
	chain, err := preset.Chain(opts.width, opts.height)
	if err != nil {
		return "", nil, err
	}
	return preset.String(), chain, nil
}

// pipelineChain returns the named pipeline, or the first one in file when
// name is empty
func pipelineChain(file *config.File, name string) (string, *generator.BuilderChain, error) {
	if name == "" {
		names := file.Names()
		if len(names) == 0 {
			return "", nil, fmt.Errorf("%w: %s defines no pipelines", config.ErrUnknownPipeline, file.Filename)
		}
		name = names[0]
	}
	chain, err := file.Chain(name)
	if err != nil {
		return "", nil, err
	}
	return name, chain, nil
}

// previewOptions enables colour and cropping only when w is a terminal
func previewOptions(w io.Writer, opts *options, mapWidth int) devtools.PreviewOptions {
	preview := devtools.PreviewOptions{Legend: opts.legend}
	f, ok := w.(*os.File)
	if !ok || !terminal.IsTerminal(f) {
		return preview
	}
	preview.Color = !opts.noColor
	if !terminal.Fits(f, mapWidth) {
		preview.MaxWidth, _ = terminal.Size(f)
	}
	return preview
}

func checkMap(res *generator.Result, logger *slog.Logger) error {
	report := validate.Check(res, validate.Options{})
	if !report.OK() {
		return &ExitError{Code: 3, Message: report.Err().Error()}
	}
	logger.Info("map check passed", "floor", report.Floor, "reachable", report.Reachable)
	return nil
}

func writeList(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("presets: " + presetNames() + "\n")

	builtin, err := config.Builtin()
	if err != nil {
		return err
	}
	sb.WriteString("pipelines: " + strings.Join(builtin.Names(), ", ") + "\n")

	initial, modifiers := config.StageTypes()
	sb.WriteString("initial stages: " + strings.Join(initial, ", ") + "\n")
	sb.WriteString("modifier stages: " + strings.Join(modifiers, ", ") + "\n")
	sb.WriteString("languages: " + strings.Join(locales.Languages(), ", ") + "\n")

	_, err = io.WriteString(w, sb.String())
	return err
}
