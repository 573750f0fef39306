package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/crosscheck/internal/model"
)

// Analyzer runs one full analysis; satisfied by the pipeline
type Analyzer interface {
	Analyze(ctx context.Context, input string) (*model.Analysis, error)
}

// AnalysisJob analyzes one input line from a batch file
type AnalysisJob struct {
	Input    string
	Analyzer Analyzer
}

// Execute runs the analysis
func (j *AnalysisJob) Execute(ctx context.Context) Result {
	analysis, err := j.Analyzer.Analyze(ctx, j.Input)
	return &AnalysisResult{Input: j.Input, Analysis: analysis, Error: err}
}

// AnalysisResult is the outcome of one batch entry
type AnalysisResult struct {
	Input    string
	Analysis *model.Analysis
	Error    error
}

// Err returns the analysis error, if any
func (r *AnalysisResult) Err() error { return r.Error }

// BatchProcessor analyzes many inputs concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessInputs analyzes the inputs across the worker pool
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*AnalysisResult {
	if len(inputs) == 0 {
		return []*AnalysisResult{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()
	for _, input := range inputs {
		pool.Submit(&AnalysisJob{Input: input, Analyzer: b.analyzer})
	}

	results := pool.Wait()
	out := make([]*AnalysisResult, 0, len(results))
	for _, result := range results {
		if r, ok := result.(*AnalysisResult); ok {
			out = append(out, r)
		}
	}
	return out
}

// ProcessFile reads inputs from a file (one per line) and analyzes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*AnalysisResult, error) {
	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}
	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads one input per line, skipping blanks, comments,
// and duplicates
func ReadInputsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || seen[line] {
			continue
		}
		seen[line] = true
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return inputs, nil
}
