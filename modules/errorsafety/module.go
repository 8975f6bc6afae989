// Package errorsafety demonstrates Go's error discipline: sentinel errors,
// wrapping with context, inspection via errors.Is/As, and the
// panic/recover boundary.
package errorsafety

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 6)
}

// errQuotaExceeded is a sentinel: callers match it by identity.
var errQuotaExceeded = errors.New("quota exceeded")

// pathError carries structure callers can extract with errors.As.
type pathError struct {
	path string
	op   string
}

func (e *pathError) Error() string {
	return fmt.Sprintf("%s %s: not permitted", e.op, e.path)
}

func store(key string) error {
	switch key {
	case "too-big":
		// Each wrapping layer adds context and keeps the cause reachable.
		return fmt.Errorf("storing %q: %w", key, errQuotaExceeded)
	case "forbidden":
		return fmt.Errorf("storing %q: %w", key, &pathError{path: "/var/data", op: "write"})
	default:
		return nil
	}
}

// safely converts a panic in fn into an error at the package boundary,
// keeping the invariant that this package reports failure by return value.
func safely(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	fn()
	return nil
}

// Sample walks through the inspection tools against wrapped errors.
type Sample struct{}

func (s *Sample) Name() string { return "Errors: sentinels, wrapping, and recover" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Errors are values: wrap them with %w going up, inspect with")
	fmt.Fprintln(out, "errors.Is (identity) and errors.As (structure) at the top.")
	fmt.Fprintln(out)

	err := store("too-big")
	fmt.Fprintf(out, "wrapped error: %v\n", err)
	fmt.Fprintf(out, "errors.Is(err, errQuotaExceeded) = %v\n", errors.Is(err, errQuotaExceeded))
	fmt.Fprintln(out)

	err = store("forbidden")
	var pe *pathError
	if errors.As(err, &pe) {
		fmt.Fprintf(out, "errors.As found a *pathError: op=%s path=%s\n", pe.op, pe.path)
	}
	fmt.Fprintln(out)

	err = safely(func() { panic("index out of range") })
	fmt.Fprintf(out, "panic converted at the boundary: %v\n", err)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Panics are for broken invariants; recover belongs at package")
	fmt.Fprintln(out, "boundaries, not sprinkled through business logic.")
	return nil
}
