package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/metanewsx/metanewsx/internal/model"
)

// Analyzer defines the interface for analyzing one article's raw input
type Analyzer interface {
	AnalyzeInput(input string) (*model.Brief, error)
}

// AnalyzeJob analyzes a single article file
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute reads the article file and runs the analysis
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}

	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: fmt.Errorf("read article: %w", err)}
	}

	brief, err := j.Analyzer.AnalyzeInput(string(data))
	if err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}

	return &AnalyzeResult{Path: j.Path, Brief: brief}
}

// AnalyzeResult represents the result of an analyze job
type AnalyzeResult struct {
	Path  string
	Brief *model.Brief
	Error error
}

// GetError returns the error from the analyze result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple article files concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given article files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, 0, len(results))
	for _, result := range results {
		analyzeResults = append(analyzeResults, result.(*AnalyzeResult))
	}

	return analyzeResults
}

// ProcessFile reads article paths from a list file and analyzes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read article list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads article file paths from a file (one per line).
// Blank lines and #-comments are skipped; duplicates are removed.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
