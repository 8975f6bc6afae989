// Package interfaces demonstrates implicit interface satisfaction and type
// erasure: callers depend on small capability sets, never on concrete
// types.
package interfaces

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 3)
}

// Shape is satisfied by any type with an Area method; no declaration of
// intent is needed on the implementing side.
type Shape interface {
	Area() float64
}

// Named is an optional extra capability some shapes also have.
type Named interface {
	ShapeName() string
}

type circle struct{ radius float64 }

func (c circle) Area() float64     { return math.Pi * c.radius * c.radius }
func (c circle) ShapeName() string { return "circle" }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

// describe sees only the Shape capability; the concrete type is erased.
// The optional Named capability is recovered with a type assertion.
func describe(out io.Writer, sh Shape) {
	name := "unnamed shape"
	if n, ok := sh.(Named); ok {
		name = n.ShapeName()
	}
	fmt.Fprintf(out, "%-13s area=%.2f\n", name, sh.Area())
}

// Sample shows interface values holding unrelated concrete types.
type Sample struct{}

func (s *Sample) Name() string { return "Interfaces: implicit satisfaction and type erasure" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Neither circle nor square mentions Shape, yet both satisfy it:")
	fmt.Fprintln(out)

	shapes := []Shape{circle{radius: 1}, square{side: 3}}
	for _, sh := range shapes {
		describe(out, sh)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "describe() compiles against two methods, not two structs.")
	fmt.Fprintln(out, "The Named assertion recovers an optional capability at runtime,")
	fmt.Fprintln(out, "the same pattern io.Copy uses to find io.WriterTo.")
	return nil
}
