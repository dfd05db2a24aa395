package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Alexandre-Santos-Lima/csvprof/internal/profiler"
	"github.com/Alexandre-Santos-Lima/csvprof/internal/render"
	"github.com/Alexandre-Santos-Lima/csvprof/internal/rowsource"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	profileDelimiter string
	profileTop       int
	profileJSON      bool
	profileOutput    string
)

var profileCmd = &cobra.Command{
	Use:   "profile [file]",
	Short: "Profile a single delimited data file",
	Long: `Profile a single CSV, TSV or XLSX file: row and column counts,
per-column empty/distinct counts, the predominant data type and the
most frequent values with their share of non-empty entries.

Examples:
  csvprof profile sales.csv
  csvprof profile sales.csv --delimiter ";" --top 10
  csvprof profile sales.csv --json --output profile.json`,

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			log.Fatalf("Usage: csvprof profile <path-to-file>")
		}
		path := args[0]

		if !supportedFile(path) {
			log.Fatalf("Unsupported file type (expected .csv, .tsv or .xlsx): %s", path)
		}

		applyEnvDefaults(cmd)

		delimiter, err := parseDelimiter(profileDelimiter)
		if err != nil {
			log.Fatalf("%v", err)
		}

		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription(fmt.Sprintf("[cyan][reset] Profiling %s...", filepath.Base(path))),
			progressbar.OptionSetWidth(20),
		)

		fp, err := profileFile(path, delimiter, profileTop, bar)
		bar.Finish()
		fmt.Fprintln(os.Stderr)
		if err != nil {
			if errors.Is(err, rowsource.ErrNoHeader) {
				log.Fatalf("File %s is empty or has no header row", path)
			}
			log.Fatalf("Failed to profile %s: %v", path, err)
		}

		out := io.Writer(os.Stdout)
		if profileOutput != "" {
			file, err := os.Create(profileOutput)
			if err != nil {
				log.Fatalf("Failed to create output file %s: %v", profileOutput, err)
			}
			defer file.Close()
			out = file
		}

		if profileJSON {
			if err := render.JSON(out, fp); err != nil {
				log.Fatalf("Failed to write report: %v", err)
			}
		} else {
			render.Text(out, fp)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVarP(&profileDelimiter, "delimiter", "d", ",",
		"Field delimiter for .csv files (single character, or 'tab')")
	profileCmd.Flags().IntVar(&profileTop, "top", profiler.DefaultTopValues,
		"How many most-frequent values to report per column")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false,
		"Emit the report as JSON instead of text")
	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "",
		"Output file to save the report (default: stdout)")
}

// applyEnvDefaults lets CSVPROF_DELIMITER and CSVPROF_TOP (usually loaded
// from a .env file) stand in for flags the user did not pass.
func applyEnvDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("delimiter") {
		if v := os.Getenv("CSVPROF_DELIMITER"); v != "" {
			profileDelimiter = v
		}
	}
	if !cmd.Flags().Changed("top") {
		if v := os.Getenv("CSVPROF_TOP"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				profileTop = n
			}
		}
	}
}

func supportedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".xlsx":
		return true
	}
	return false
}

func parseDelimiter(s string) (rune, error) {
	if s == "tab" || s == "\\t" {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}

// profileFile runs the whole pipeline for one file: open a row source, feed
// every row through a table profiler, and build the report. The progress bar
// may be nil.
func profileFile(path string, delimiter rune, topN int, bar *progressbar.ProgressBar) (render.FileProfile, error) {
	fp := render.FileProfile{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return fp, err
	}
	fp.SizeBytes = info.Size()

	source, err := rowsource.Open(path, delimiter)
	if err != nil {
		return fp, err
	}
	defer source.Close()

	table, err := profiler.NewTableProfiler(source.Headers())
	if err != nil {
		return fp, err
	}

	for {
		row, err := source.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fp, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := table.IngestRow(row); err != nil {
			return fp, err
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	fp.Report = profiler.BuildReport(table, topN)
	return fp, nil
}
