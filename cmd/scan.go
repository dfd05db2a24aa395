package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/Alexandre-Santos-Lima/csvprof/internal/connectors"
	"github.com/Alexandre-Santos-Lima/csvprof/internal/profiler"
	"github.com/Alexandre-Santos-Lima/csvprof/internal/render"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	scanDir       string
	scanRecursive bool
	scanWorkers   int
	scanMinSize   int64
	scanMaxSize   int64
	scanTop       int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Profile every CSV file in a directory",
	Long: `Scan a directory for CSV files and print a profile of each one.

Examples:
  csvprof scan --dir ./data
  csvprof scan --dir ./data --recursive --workers 4
  csvprof scan --dir ./data --min-size 1024`,

	Run: func(cmd *cobra.Command, args []string) {
		options := connectors.DiscoveryOptions{
			Recursive: scanRecursive,
			MinSize:   scanMinSize,
			MaxSize:   scanMaxSize,
		}

		files, err := connectors.DiscoverFiles(scanDir, "csv", options)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		if len(files) == 0 {
			fmt.Printf("No CSV files found in %s\n", scanDir)
			return
		}
		fmt.Printf("Found %d CSV files\n", len(files))

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Profiling files..."),
			progressbar.OptionSetWidth(20),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)

		results := scanFiles(files, scanWorkers, scanTop, bar)
		bar.Finish()

		for _, result := range results {
			if result.err != nil {
				log.Printf("Failed to profile %s: %v", result.path, result.err)
				continue
			}
			render.Text(os.Stdout, result.profile)
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"Search directories recursively")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0,
		"Number of parallel workers (default: number of CPU cores)")
	scanCmd.Flags().Int64Var(&scanMinSize, "min-size", 0,
		"Minimum file size in bytes")
	scanCmd.Flags().Int64Var(&scanMaxSize, "max-size", 0,
		"Maximum file size in bytes")
	scanCmd.Flags().IntVar(&scanTop, "top", profiler.DefaultTopValues,
		"How many most-frequent values to report per column")

	scanCmd.MarkFlagRequired("dir")
}

type scanResult struct {
	path    string
	profile render.FileProfile
	err     error
}

// scanFiles profiles the discovered files with a bounded worker pool. Each
// file gets its own profiler, so workers share nothing; results come back
// sorted by path so the output order is stable.
func scanFiles(files []connectors.FileMeta, workers, topN int, bar *progressbar.ProgressBar) []scanResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	semaphore := make(chan struct{}, workers)
	out := make(chan scanResult, len(files))

	var wg sync.WaitGroup
	for _, file := range files {
		wg.Add(1)
		go func(f connectors.FileMeta) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			profile, err := profileFile(f.Path, ',', topN, nil)
			out <- scanResult{path: f.Path, profile: profile, err: err}
			bar.Add(1)
		}(file)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var results []scanResult
	for result := range out {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].path < results[j].path
	})
	return results
}
