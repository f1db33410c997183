package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/metanewsx/metanewsx/internal/pipeline"
	"github.com/metanewsx/metanewsx/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// htmlInput and noCache are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple article files from a list in parallel",
	Long: `Batch analyzes multiple articles concurrently:
- Read article file paths from the input file (one per line)
- Analyze articles in parallel with configurable worker count
- Identical articles are analyzed once (content-hash cache)
- Write one brief per article to the output directory

Example:
  metanewsx batch articles.txt
  metanewsx batch articles.txt --concurrency 8 --output-dir ./briefs
  metanewsx batch pages.txt --html`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./metanewsx-briefs", "output directory for briefs")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&htmlInput, "html", false, "treat articles as HTML and extract visible text")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the content-hash brief cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  MetaNewsX Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := buildConfig()
	cfg.Input.HTML = htmlInput
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline and batch processor
	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Reading article list...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d articles\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Analyzing articles with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	renderer := p.Renderer()
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		outPath := filepath.Join(outputDir, briefFilename(result.Path))
		out, err := os.Create(outPath)
		if err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: create brief: %v\n", result.Path, err)
			continue
		}
		renderErr := renderer.RenderText(out, result.Brief)
		if closeErr := out.Close(); renderErr == nil {
			renderErr = closeErr
		}
		if renderErr != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write brief: %v\n", result.Path, renderErr)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s → %s\n", result.Path, outPath)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d articles\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// briefFilename derives a sanitized output filename from an article path
func briefFilename(articlePath string) string {
	base := filepath.Base(articlePath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}

	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	base = replacer.Replace(base)

	if len(base) > 100 {
		base = base[:100]
	}
	if base == "" || base == "." {
		base = "article"
	}

	return base + ".brief.txt"
}
