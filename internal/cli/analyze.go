package cli

import (
	"fmt"
	"os"

	"github.com/metanewsx/metanewsx/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON   string
	outMD     string
	htmlInput bool
	noCache   bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Analyze raw article text and generate a Decision-Grade Brief",
	Long: `Analyze runs the heuristic pipeline over the provided text:
- Split the text into sentences
- Select up to 5 candidate factual claims
- Build a headline from the first sentence
- Note overall confidence and derive watch items and uncertainty flags

The assembled brief is written to stdout. The same input always produces
byte-identical output.

Example:
  metanewsx analyze "Sales grew 20%. Analysts are optimistic."
  metanewsx analyze "$(cat article.txt)" --json brief.json --md brief.md
  metanewsx analyze "$(cat article.html)" --html`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Input flags
	analyzeCmd.Flags().BoolVar(&htmlInput, "html", false, "treat input as HTML and extract visible text")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := args[0]

	// Build configuration from flags
	cfg := buildConfig()
	cfg.Input.HTML = htmlInput

	p := pipeline.NewPipeline(cfg)

	brief, err := p.AnalyzeInput(text)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Selected %d claims\n", len(brief.Claims))
		fmt.Fprintf(os.Stderr, "✓ Derived %d watch items, %d uncertainty flags\n",
			len(brief.WatchItems), len(brief.Flags))
		fmt.Fprintln(os.Stderr)
	}

	renderer := p.Renderer()
	if err := renderer.RenderText(os.Stdout, brief); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if outJSON != "" {
		if err := renderer.RenderJSON(brief, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(brief, outMD); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	return nil
}
