// Package streams demonstrates io composition: readers wrapping readers,
// writers fanned out with MultiWriter, and fmt.Stringer hooking a type
// into the printing verbs.
package streams

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 11)
}

// upperReader wraps any io.Reader and upper-cases what flows through.
type upperReader struct {
	inner io.Reader
}

func (u *upperReader) Read(p []byte) (int, error) {
	n, err := u.inner.Read(p)
	for i := 0; i < n; i++ {
		if p[i] >= 'a' && p[i] <= 'z' {
			p[i] -= 'a' - 'A'
		}
	}
	return n, err
}

// temperature plugs into fmt via the Stringer interface.
type temperature float64

func (t temperature) String() string {
	return fmt.Sprintf("%.1f°C", float64(t))
}

// Sample composes the pieces over an in-memory stream.
type Sample struct{}

func (s *Sample) Name() string { return "Streams: io.Reader/Writer composition and Stringer" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Anything with Read/Write composes: wrappers transform streams")
	fmt.Fprintln(out, "without knowing what is on either side.")
	fmt.Fprintln(out)

	src := strings.NewReader("streams compose like pipes\n")
	if _, err := io.Copy(out, &upperReader{inner: src}); err != nil {
		return fmt.Errorf("copying: %w", err)
	}
	fmt.Fprintln(out)

	// MultiWriter duplicates one write to several sinks.
	var capture bytes.Buffer
	both := io.MultiWriter(out, &capture)
	fmt.Fprintln(both, "this line went to the console and a buffer at once")
	fmt.Fprintf(out, "buffer captured %d bytes\n", capture.Len())
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(strings.NewReader("one\ntwo\nthree\n"))
	lines := 0
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	fmt.Fprintf(out, "bufio.Scanner counted %d lines\n", lines)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Stringer in action: the water boiled at %v\n", temperature(100))
	return nil
}
