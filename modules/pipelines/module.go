// Package pipelines demonstrates goroutine pipelines: stages connected by
// channels, with errgroup propagating the first failure and cancelling the
// rest.
package pipelines

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 8)
}

// Sample builds a three-stage pipeline: generate -> square -> sum.
type Sample struct{}

func (s *Sample) Name() string { return "Pipelines: channels and errgroup" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Each stage is a goroutine; channels carry values downstream.")
	fmt.Fprintln(out, "errgroup waits for all stages and surfaces the first error.")
	fmt.Fprintln(out)

	g, ctx := errgroup.WithContext(ctx)

	nums := make(chan int)
	g.Go(func() error {
		defer close(nums)
		for i := 1; i <= 5; i++ {
			select {
			case nums <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	squares := make(chan int)
	g.Go(func() error {
		defer close(squares)
		for n := range nums {
			select {
			case squares <- n * n:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var total int
	g.Go(func() error {
		for sq := range squares {
			total += sq
			fmt.Fprintf(out, "received %d\n", sq)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "sum of squares 1..5 = %d\n", total)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Closing a channel ends the downstream range loop, so shutdown")
	fmt.Fprintln(out, "flows through the pipeline in the same direction as the data.")
	return nil
}
