package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// mockResult implements Result
type mockResult struct {
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

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
	return &mockResult{err: nil}
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

	p3 := NewPool(-1)
	if p3.workers != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", p3.workers)
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

// Submission must keep making progress well past the channel buffers:
// a single worker with many queued jobs used to wedge with Submit
// blocked on the full queue while nothing drained results.
func TestPool_SubmitBeyondQueueCapacity(t *testing.T) {
	pool := NewPool(1)
	pool.Start()

	var executed int32
	count := 25

	done := make(chan []Result, 1)
	go func() {
		for i := 0; i < count; i++ {
			pool.Submit(&mockJob{executed: &executed})
		}
		done <- pool.Wait()
	}()

	select {
	case results := <-done:
		if len(results) != count {
			t.Errorf("expected %d results, got %d", count, len(results))
		}
		if atomic.LoadInt32(&executed) != int32(count) {
			t.Errorf("expected %d executed jobs, got %d", count, executed)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("pool wedged: %d jobs on a 1-worker pool did not complete", count)
	}
}

func TestPool_ErrorsPropagate(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&mockJob{shouldErr: true})
	pool.Submit(&mockJob{})

	results := pool.Wait()

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	errCount := 0
	for _, result := range results {
		if result.GetError() != nil {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("expected 1 error result, got %d", errCount)
	}
}

// concurrencyJob tracks concurrent executions
type concurrencyJob struct {
	mu      *sync.Mutex
	active  *int
	maxSeen *int
}

func (j *concurrencyJob) Execute(ctx context.Context) Result {
	j.mu.Lock()
	*j.active++
	if *j.active > *j.maxSeen {
		*j.maxSeen = *j.active
	}
	j.mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	j.mu.Lock()
	*j.active--
	j.mu.Unlock()

	return &mockResult{}
}

func TestPool_ConcurrencyBound(t *testing.T) {
	workers := 3
	pool := NewPool(workers)
	pool.Start()

	var mu sync.Mutex
	active := 0
	maxSeen := 0

	for i := 0; i < 12; i++ {
		pool.Submit(&concurrencyJob{mu: &mu, active: &active, maxSeen: &maxSeen})
	}

	pool.Wait()

	if maxSeen > workers {
		t.Errorf("expected at most %d concurrent jobs, saw %d", workers, maxSeen)
	}
	if maxSeen == 0 {
		t.Error("expected jobs to run")
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var executed int32
	pool.Submit(&mockJob{duration: time.Second, executed: &executed})

	// Give the worker a moment to pick up the job
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not complete in time")
	}
}
