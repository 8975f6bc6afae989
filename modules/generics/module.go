// Package generics demonstrates type parameters and constraints: one body
// of code specialized at compile time for every type satisfying the
// constraint.
package generics

import (
	"cmp"
	"context"
	"fmt"
	"io"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 2)
}

// Number constrains to types usable with arithmetic. The ~ forms admit
// user-defined types whose underlying type matches.
type Number interface {
	~int | ~int64 | ~float64
}

// sum works for any Number; the compiler checks every call site.
func sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// maxOf works for anything with a total order, strings included.
func maxOf[T cmp.Ordered](values []T) T {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// Meters shows the ~ constraint admitting a named type.
type Meters float64

// Sample exercises the generic helpers over several element types.
type Sample struct{}

func (s *Sample) Name() string { return "Generics: constraints instead of overloads" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "One generic function replaces a family of per-type overloads.")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "sum of ints:    %d\n", sum([]int{1, 2, 3, 4}))
	fmt.Fprintf(out, "sum of floats:  %.1f\n", sum([]float64{1.5, 2.5}))
	fmt.Fprintf(out, "sum of Meters:  %.1f (named type, admitted via ~float64)\n", sum([]Meters{100, 42.2}))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "max of ints:    %d\n", maxOf([]int{3, 9, 4}))
	fmt.Fprintf(out, "max of strings: %s (cmp.Ordered covers strings too)\n", maxOf([]string{"ant", "bee", "cat"}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "A call like sum([]bool{...}) fails to compile: the constraint")
	fmt.Fprintln(out, "is checked where the code is written, not where it runs.")
	return nil
}
