package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"typeset/internal/driver"
	"typeset/internal/format"
	"typeset/internal/version"
)

const versionTagline = "every token in its place"

// versionReport is what `typeset version` prints. Build fields stay empty unless requested.
type versionReport struct {
	Tool       string   `json:"tool"`
	Version    string   `json:"version"`
	Tagline    string   `json:"tagline"`
	GitCommit  string   `json:"git_commit,omitempty"`
	GitMessage string   `json:"git_message,omitempty"`
	BuildDate  string   `json:"build_date,omitempty"`
	Layout     *layout  `json:"layout,omitempty"`
	Stages     []string `json:"stages,omitempty"`
}

type layout struct {
	IndentWidth   int      `json:"indent_width"`
	MaxLineLength int      `json:"max_line_length"`
	MaxIndent     int      `json:"max_indent"`
	Extensions    []string `json:"extensions"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show typeset build fingerprints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		full, _ := flags.GetBool("full")
		has := func(name string) bool {
			v, _ := flags.GetBool(name)
			return v || full
		}
		outFormat, _ := flags.GetString("format")

		rep := buildVersionReport(has("hash"), has("message"), has("date"), has("layout"))
		switch strings.ToLower(outFormat) {
		case "json":
			return writeVersionJSON(cmd.OutOrStdout(), rep)
		case "pretty":
			writeVersionPretty(cmd.OutOrStdout(), version.Colored(), rep)
			return nil
		}
		return fmt.Errorf("unsupported format %q (must be pretty or json)", outFormat)
	},
}

func init() {
	f := versionCmd.Flags()
	f.Bool("hash", false, "include git commit hash")
	f.Bool("message", false, "include git commit message")
	f.Bool("date", false, "include build timestamp")
	f.Bool("layout", false, "include layout constants and pipeline stages")
	f.Bool("full", false, "show everything")
	f.String("format", "pretty", "output format (pretty|json)")
}

func buildVersionReport(hash, message, date, withLayout bool) versionReport {
	rep := versionReport{Tool: "typeset", Version: version.Plain(), Tagline: versionTagline}
	known := func(s string) string {
		if s = strings.TrimSpace(s); s == "" {
			return "unknown"
		}
		return s
	}
	if hash {
		rep.GitCommit = known(version.GitCommit)
	}
	if message {
		rep.GitMessage = known(version.GitMessage)
	}
	if date {
		rep.BuildDate = known(version.BuildDate)
	}
	if withLayout {
		rep.Layout = &layout{
			IndentWidth:   format.IndentWidth,
			MaxLineLength: format.MaxLineLength,
			MaxIndent:     format.MaxIndent,
			Extensions:    driver.DefaultExtensions,
		}
		rep.Stages = format.StageNames()
	}
	return rep
}

// writeVersionPretty печатает отчёт; banner это версия, возможно раскрашенная.
func writeVersionPretty(out io.Writer, banner string, rep versionReport) {
	fmt.Fprintf(out, "typeset %s: %s\n", banner, rep.Tagline)
	extra := false
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(out, "%-8s %s\n", label+":", value)
			extra = true
		}
	}
	line("commit", rep.GitCommit)
	line("message", rep.GitMessage)
	line("built", rep.BuildDate)
	if l := rep.Layout; l != nil {
		line("indent", fmt.Sprintf("%d spaces, at most %d columns", l.IndentWidth, l.MaxIndent))
		line("width", fmt.Sprintf("%d columns (fmt --wrap)", l.MaxLineLength))
		line("files", strings.Join(l.Extensions, " "))
		line("stages", strings.Join(rep.Stages, " -> "))
	}
	if !extra {
		fmt.Fprintln(out, "set --hash, --message, --date, --layout or --full for more")
	}
}

func writeVersionJSON(out io.Writer, rep versionReport) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
