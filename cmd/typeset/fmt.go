package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"typeset/internal/diagfmt"
	"typeset/internal/driver"
	"typeset/internal/format"
	"typeset/internal/observ"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format Rust source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("wrap", false, "break lines longer than 100 columns")
	fmtCmd.Flags().Int("jobs", 0, "number of files formatted in parallel (0 = GOMAXPROCS)")
	fmtCmd.Flags().Bool("cache", false, "skip files recorded as already formatted")
	fmtCmd.Flags().Var(new(uiMode), "ui", "progress display")
}

type fmtSettings struct {
	check        bool
	stdout       bool
	quiet        bool
	timings      bool
	color        bool
	outputFormat string
	ui           uiMode
	opts         driver.FormatOptions
}

func readFmtSettings(cmd *cobra.Command) (fmtSettings, error) {
	var s fmtSettings
	var err error
	flags := cmd.Flags()

	if s.check, err = flags.GetBool("check"); err != nil {
		return s, err
	}
	if s.stdout, err = flags.GetBool("stdout"); err != nil {
		return s, err
	}
	if s.outputFormat, err = flags.GetString("format"); err != nil {
		return s, err
	}
	if mode, ok := flags.Lookup("ui").Value.(*uiMode); ok {
		s.ui = *mode
	}
	if s.stdout && s.check {
		return s, fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if s.stdout && s.outputFormat != "text" {
		return s, fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	if s.outputFormat != "text" && s.outputFormat != "json" {
		return s, fmt.Errorf("fmt: unsupported output format %q", s.outputFormat)
	}

	root := cmd.Root().PersistentFlags()
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return s, err
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, err
	}
	maxDiagnostics, err := root.GetInt("max-diagnostics")
	if err != nil {
		return s, err
	}
	configPath, err := root.GetString("config")
	if err != nil {
		return s, err
	}

	cfg, err := loadConfig(configPath, ".")
	if err != nil {
		return s, err
	}

	// флаги перекрывают значения из typeset.toml
	wrap, jobs, useCache := cfg.Format.Wrap, cfg.Run.Jobs, cfg.Run.Cache
	if flags.Changed("wrap") {
		if wrap, err = flags.GetBool("wrap"); err != nil {
			return s, err
		}
	}
	if flags.Changed("jobs") {
		if jobs, err = flags.GetInt("jobs"); err != nil {
			return s, err
		}
	}
	if flags.Changed("cache") {
		if useCache, err = flags.GetBool("cache"); err != nil {
			return s, err
		}
	}

	s.color = useColor(cmd, os.Stderr)
	s.opts = driver.FormatOptions{
		Check:          s.check,
		Stdout:         s.stdout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Options:        format.Options{Rewrap: wrap},
		Extensions:     cfg.Format.Extensions,
		Exclude:        cfg.Format.Exclude,
	}
	if useCache {
		cache, cacheErr := driver.OpenDiskCache("typeset")
		if cacheErr != nil {
			fmt.Fprintf(os.Stderr, "fmt: cache disabled: %v\n", cacheErr)
		} else {
			s.opts.Cache = cache
		}
	}
	if s.timings {
		s.opts.Timer = observ.NewTimer()
	}
	return s, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	s, err := readFmtSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var collectIdx int
	if s.opts.Timer != nil {
		collectIdx = s.opts.Timer.Begin("collect")
	}
	files, err := driver.CollectSourceFiles(ctx, args, s.opts.Extensions, s.opts.Exclude)
	if err != nil {
		return err
	}
	if s.opts.Timer != nil {
		s.opts.Timer.End(collectIdx, fmt.Sprintf("%d files", len(files)))
	}
	if len(files) == 0 {
		return driver.ErrNoSourceFiles
	}

	var runIdx int
	if s.opts.Timer != nil {
		runIdx = s.opts.Timer.Begin("format")
	}
	var results []driver.FormatResult
	var runErr error
	if !s.stdout && s.outputFormat == "text" && !s.quiet && s.ui.shouldUseTUI(len(files)) {
		results, runErr = runFormatWithUI(ctx, "typeset fmt", files, s.opts)
	} else {
		results, runErr = driver.FormatFiles(ctx, files, s.opts)
	}
	if s.opts.Timer != nil {
		s.opts.Timer.End(runIdx, "")
	}

	var hasErrors, hasChanges bool
	switch s.outputFormat {
	case "json":
		if err := renderFmtJSON(os.Stdout, results, s.check); err != nil {
			return err
		}
		hasErrors, hasChanges = summarize(results)
	default:
		if s.stdout {
			hasErrors = renderFmtStdout(os.Stdout, os.Stderr, results, s.color)
		} else {
			hasErrors, hasChanges = renderFmtText(os.Stdout, os.Stderr, results, s.check, s.quiet, s.color)
		}
	}

	if s.opts.Timer != nil {
		printTimings(os.Stderr, s.opts.Timer)
	}

	switch {
	case hasErrors:
		return fmt.Errorf("fmt: failed to format some files")
	case runErr != nil:
		return runErr
	case s.check && hasChanges:
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func summarize(results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		hasErrors = hasErrors || res.Err != nil
		hasChanges = hasChanges || res.Changed
	}
	return hasErrors, hasChanges
}

func reportFileError(errOut io.Writer, res driver.FormatResult, useColor bool) {
	if res.Bag != nil && res.Bag.Len() > 0 {
		res.Bag.Sort()
		diagfmt.Pretty(errOut, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: useColor, Context: 1, ShowNotes: true})
	}
	fmt.Fprintf(errOut, "fmt: %v\n", res.Err)
}

func renderFmtStdout(out, errOut io.Writer, results []driver.FormatResult, useColor bool) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFileError(errOut, res, useColor)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(out, errOut io.Writer, results []driver.FormatResult, check, quiet, useColor bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			reportFileError(errOut, res, useColor)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(out, res.Path)
		} else {
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path        string                   `json:"path"`
		Changed     bool                     `json:"changed"`
		Cached      bool                     `json:"cached,omitempty"`
		Error       string                   `json:"error,omitempty"`
		CheckRun    bool                     `json:"check"`
		Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		if res.Bag != nil && res.Bag.Len() > 0 {
			jr.Diagnostics = diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{IncludePositions: true}).Diagnostics
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
