package parallel

import (
	"sync/atomic"
	"testing"
)

// TestExecuteAll_RunsEveryTask verifies all submitted work completes
// before ExecuteAll returns.
func TestExecuteAll_RunsEveryTask(t *testing.T) {
	p := New(4)
	defer p.Close()

	var ran atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { ran.Add(1) }
	}

	p.ExecuteAll(work)
	if got := ran.Load(); got != 100 {
		t.Errorf("ran %d tasks, want 100", got)
	}
}

// TestExecuteAll_DisjointWrites verifies tasks writing disjoint slice
// ranges produce a fully-written buffer with no coordination beyond the
// join.
func TestExecuteAll_DisjointWrites(t *testing.T) {
	p := New(3)
	defer p.Close()

	buf := make([]int, 1000)
	const bandSize = 100
	work := make([]func(), 0, len(buf)/bandSize)
	for start := 0; start < len(buf); start += bandSize {
		s := start
		work = append(work, func() {
			for i := s; i < s+bandSize; i++ {
				buf[i] = i
			}
		})
	}

	p.ExecuteAll(work)
	for i, v := range buf {
		if v != i {
			t.Fatalf("buf[%d] = %d, want %d", i, v, i)
		}
	}
}

// TestExecuteAll_MoreTasksThanQueue verifies submission does not
// deadlock when the batch is much larger than the queue buffer.
func TestExecuteAll_MoreTasksThanQueue(t *testing.T) {
	p := New(1)
	defer p.Close()

	var ran atomic.Int64
	work := make([]func(), 500)
	for i := range work {
		work[i] = func() { ran.Add(1) }
	}
	p.ExecuteAll(work)
	if got := ran.Load(); got != 500 {
		t.Errorf("ran %d tasks, want 500", got)
	}
}

// TestExecuteAll_Empty verifies an empty batch is a no-op.
func TestExecuteAll_Empty(t *testing.T) {
	p := New(2)
	defer p.Close()
	p.ExecuteAll(nil)
}

// TestClose_Idempotent verifies Close can be called repeatedly.
func TestClose_Idempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()
}

// TestExecuteAll_AfterClose verifies work still runs (inline) once the
// pool is closed, so late callers are not silently dropped.
func TestExecuteAll_AfterClose(t *testing.T) {
	p := New(2)
	p.Close()

	var ran atomic.Int64
	p.ExecuteAll([]func(){
		func() { ran.Add(1) },
		func() { ran.Add(1) },
	})
	if got := ran.Load(); got != 2 {
		t.Errorf("ran %d tasks after Close, want 2", got)
	}
}

// TestNew_DefaultWorkers verifies a non-positive worker count falls
// back to GOMAXPROCS.
func TestNew_DefaultWorkers(t *testing.T) {
	p := New(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}

	p4 := New(4)
	defer p4.Close()
	if p4.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p4.Workers())
	}
}
