// Package cleanup demonstrates deterministic resource release with defer:
// the Go counterpart of scope-bound ownership.
package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 1)
}

// Sample walks through defer-based cleanup: acquisition paired with
// release at the acquisition site, LIFO ordering, and surfacing close
// errors with errors.Join.
type Sample struct{}

func (s *Sample) Name() string { return "Deterministic cleanup with defer" }

func (s *Sample) Run(ctx context.Context, out io.Writer) (err error) {
	fmt.Fprintln(out, "defer pairs a resource release with its acquisition site.")
	fmt.Fprintln(out, "Deferred calls run when the function returns, last-in first-out.")
	fmt.Fprintln(out)

	dir, err := os.MkdirTemp("", "cleanup-sample-*")
	if err != nil {
		return fmt.Errorf("acquiring scratch directory: %w", err)
	}
	fmt.Fprintln(out, "acquired: scratch directory")
	defer func() {
		err = errors.Join(err, os.RemoveAll(dir))
		fmt.Fprintln(out, "released: scratch directory (deferred, runs second)")
	}()

	file, err := os.Create(filepath.Join(dir, "notes.txt"))
	if err != nil {
		return fmt.Errorf("acquiring file: %w", err)
	}
	fmt.Fprintln(out, "acquired: notes.txt")
	defer func() {
		// Close errors matter for writers; fold them into the result
		// instead of dropping them.
		err = errors.Join(err, file.Close())
		fmt.Fprintln(out, "released: notes.txt (deferred, runs first)")
	}()

	n, err := file.WriteString("cleanup happens in reverse acquisition order\n")
	if err != nil {
		return fmt.Errorf("writing: %w", err)
	}
	fmt.Fprintf(out, "wrote %d bytes; both releases below are automatic\n", n)

	return nil
}
