package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// mockResult implements Result
type mockResult struct {
	err error
}

func (r *mockResult) Err() error { return r.err }

// mockJob implements Job
type mockJob struct {
	duration  time.Duration
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{err: errors.New("job error")}
	}
	return &mockResult{}
}

func TestNewPool(t *testing.T) {
	p1 := NewPool(5)
	if p1.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p1.workers)
	}

	p2 := NewPool(0)
	if p2.workers != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", p2.workers)
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int32
	count := 10

	for i := 0; i < count; i++ {
		pool.Submit(&mockJob{executed: &executed})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if atomic.LoadInt32(&executed) != int32(count) {
		t.Errorf("expected %d executed jobs, got %d", count, executed)
	}
}

func TestPool_ErrorsSurface(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&mockJob{shouldErr: true})
	pool.Submit(&mockJob{})

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	errored := 0
	for _, r := range results {
		if r.Err() != nil {
			errored++
		}
	}
	if errored != 1 {
		t.Errorf("expected 1 errored result, got %d", errored)
	}
}

// ctxJob hands its execution context back to the test
type ctxJob struct {
	seen chan context.Context
}

func (j *ctxJob) Execute(ctx context.Context) Result {
	j.seen <- ctx
	<-ctx.Done()
	return &mockResult{err: ctx.Err()}
}

func TestPool_ContextPropagation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	pool := NewPoolWithContext(parent, 1)
	pool.Start()

	seen := make(chan context.Context, 1)
	pool.Submit(&ctxJob{seen: seen})

	jobCtx := <-seen
	if jobCtx.Err() != nil {
		t.Fatal("job context canceled before the parent was")
	}

	cancel()
	select {
	case <-jobCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("parent cancellation did not reach the job context")
	}
	pool.Shutdown()
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	for i := 0; i < 4; i++ {
		pool.Submit(&mockJob{duration: time.Second})
	}

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Shutdown did not return in time")
	}
}
