package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csvprof",
	Short: "Quick profiler for delimited data files",
	Long: `A command-line profiler for CSV and other delimited data files.
Reports row and column counts, empty/distinct value counts, the
predominant data type of each column and its most frequent values.`,
}

func Execute() {
	// Optional .env with CSVPROF_* defaults. Flags always win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
