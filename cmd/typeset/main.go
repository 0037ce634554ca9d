package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"typeset/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "typeset",
	Short: "Whitespace and line-break formatter for Rust source",
	Long: `typeset re-lays out Rust source files token by token: it rewrites
whitespace, line breaks and indentation and leaves every other byte alone.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyColorFlag(cmd); err != nil {
			return err
		}
		stopProfiling, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		stopTracing, err := setupTracing(cmd)
		if err != nil {
			stopProfiling()
			return err
		}
		cleanup = func() {
			stopTracing()
			stopProfiling()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		runCleanup()
	},
}

// cleanup stops the tracer and profilers started in PersistentPreRunE.
var cleanup func()

func runCleanup() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

// main initializes the CLI by registering subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Plain()
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "", "write a trace to this file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to this file")
	rootCmd.PersistentFlags().String("config", "", "path to typeset.toml (default: search upwards from the working directory)")

	if err := rootCmd.Execute(); err != nil {
		runCleanup()
		fmt.Fprintf(os.Stderr, "typeset: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for the given stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func applyColorFlag(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	return nil
}
