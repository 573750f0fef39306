package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/crosscheck/internal/model"
)

// fakeAnalyzer implements Analyzer
type fakeAnalyzer struct {
	failOn string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, input string) (*model.Analysis, error) {
	if input == f.failOn {
		return nil, errors.New("analysis failed")
	}
	return &model.Analysis{ID: "id-" + input, Input: input}, nil
}

func TestBatchProcessor_ProcessInputs(t *testing.T) {
	processor := NewBatchProcessor(&fakeAnalyzer{failOn: "bad"}, 2)
	inputs := []string{"one", "two", "bad", "three"}

	results := processor.ProcessInputs(context.Background(), inputs)
	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}

	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
			continue
		}
		if r.Analysis == nil || r.Analysis.Input != r.Input {
			t.Errorf("result for %q carries wrong analysis", r.Input)
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

// deadlineAnalyzer records whether the analysis context carried a deadline
type deadlineAnalyzer struct {
	sawDeadline atomic.Bool
}

func (d *deadlineAnalyzer) Analyze(ctx context.Context, input string) (*model.Analysis, error) {
	if _, ok := ctx.Deadline(); ok {
		d.sawDeadline.Store(true)
	}
	return &model.Analysis{Input: input}, nil
}

func TestBatchProcessor_ContextReachesJobs(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	analyzer := &deadlineAnalyzer{}
	processor := NewBatchProcessor(analyzer, 2)

	results := processor.ProcessInputs(ctx, []string{"one", "two"})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !analyzer.sawDeadline.Load() {
		t.Error("caller deadline did not reach the analysis context")
	}
}

func TestBatchProcessor_ProcessInputsEmpty(t *testing.T) {
	processor := NewBatchProcessor(&fakeAnalyzer{}, 2)
	results := processor.ProcessInputs(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadInputsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	content := `https://example.com/a

# a comment
https://example.com/b
https://example.com/a
some free-text claim
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("ReadInputsFromFile: %v", err)
	}

	want := []string{"https://example.com/a", "https://example.com/b", "some free-text claim"}
	if len(inputs) != len(want) {
		t.Fatalf("got %d inputs %v, want %d", len(inputs), inputs, len(want))
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], want[i])
		}
	}
}

func TestReadInputsFromFileMissing(t *testing.T) {
	if _, err := ReadInputsFromFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&fakeAnalyzer{}, 2)
	results, err := processor.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}
