// Package concurrency demonstrates shared-state protection: mutex-guarded
// and atomic counters driven by many goroutines, coordinated with a
// WaitGroup.
package concurrency

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 7)
}

const (
	workers    = 8
	increments = 1000
)

// mutexCounter serializes access with a lock; correct for arbitrary
// critical sections.
type mutexCounter struct {
	mu sync.Mutex
	n  int
}

func (c *mutexCounter) inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Sample runs both counters to the same deterministic total.
type Sample struct{}

func (s *Sample) Name() string { return "Concurrency: mutexes, atomics, and WaitGroup" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintf(out, "%d goroutines each increment a shared counter %d times.\n", workers, increments)
	fmt.Fprintln(out, "Unsynchronized that loses updates; these two versions do not.")
	fmt.Fprintln(out)

	var wg sync.WaitGroup
	locked := &mutexCounter{}
	var atomicN atomic.Int64

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				locked.inc()
				atomicN.Add(1)
			}
		}()
	}
	wg.Wait()

	want := workers * increments
	fmt.Fprintf(out, "mutex counter:  %d (want %d)\n", locked.n, want)
	fmt.Fprintf(out, "atomic counter: %d (want %d)\n", atomicN.Load(), want)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Atomics suit single-word updates; a mutex protects whole")
	fmt.Fprintln(out, "invariants. Either way: share memory by communicating first.")
	return nil
}
