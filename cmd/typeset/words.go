package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"typeset/internal/diagfmt"
	"typeset/internal/driver"
	"typeset/internal/format"
)

var wordsCmd = &cobra.Command{
	Use:   "words [flags] file.rs",
	Short: "Dump the word sequence after a formatting stage",
	Long: `Words runs the formatting pipeline on one file up to the given stage and
prints the resulting word sequence. Stages: ` + strings.Join(format.StageNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().String("stage", "layout", "last stage to run")
	wordsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runWords(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	stage, err := cmd.Flags().GetString("stage")
	if err != nil {
		return err
	}
	if !slices.Contains(format.StageNames(), stage) {
		return fmt.Errorf("unknown stage %q (expected one of %s)", stage, strings.Join(format.StageNames(), "|"))
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if outputFormat != "pretty" && outputFormat != "json" {
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	res, err := driver.Words(args[0], stage, maxDiagnostics, format.Options{})
	if errors.Is(err, format.ErrLex) {
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 1})
		return err
	}
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return diagfmt.FormatWordsJSON(os.Stdout, res.Words)
	}
	return diagfmt.FormatWordsPretty(os.Stdout, res.Words)
}
