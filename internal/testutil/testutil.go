// Package testutil provides shared helpers for exercising the sampler in
// tests: a race-safe output buffer and stub sample modules.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/vk/goidioms/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements fmt.Stringer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// StubSample is a canned Runnable that records nothing and prints one line.
type StubSample struct {
	Label string
	Err   error
}

// Name implements registry.Runnable.
func (s *StubSample) Name() string { return s.Label }

// Run implements registry.Runnable.
func (s *StubSample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintf(out, "ran %s\n", s.Label)
	return s.Err
}

// StubModule registers a single StubSample under a chosen order key. When
// Built is non-nil it is incremented once per factory invocation, letting
// tests count constructions.
type StubModule struct {
	Label string
	Order int
	Err   error
	Built *int
}

// Register implements registry.Module.
func (m *StubModule) Register(r *registry.Registry) {
	r.MustRegister(m.Label, m.Order, func() registry.Runnable {
		if m.Built != nil {
			*m.Built++
		}
		return &StubSample{Label: m.Label, Err: m.Err}
	})
}
