package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/goidioms/internal/ctxlog"
	"github.com/vk/goidioms/internal/registry"
)

// Run executes the selected lifecycle: list the catalog when no sample was
// selected, run every sample for "all", otherwise dispatch the 1-based
// index. A sample's own failure is logged but never changes the process
// exit code; invalid selections print a message and likewise return nil.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	entries := a.catalog()

	switch a.selection {
	case "":
		a.printCatalog(entries)
		return nil
	case "all":
		a.runAll(ctx, entries)
		return nil
	default:
		return a.dispatch(ctx, entries)
	}
}

func (a *App) printCatalog(entries []registry.Entry) {
	fmt.Fprintln(a.outW, "Available samples:")
	for i, e := range entries {
		fmt.Fprintf(a.outW, "%d: %s\n", i+1, e.Name)
	}
	fmt.Fprintln(a.outW, "Run with: goidioms <number>")
}

func (a *App) runAll(ctx context.Context, entries []registry.Entry) {
	for i, e := range entries {
		fmt.Fprintf(a.outW, "=== %d: %s ===\n", i+1, e.Name)
		a.runSample(ctx, e)
	}
}

func (a *App) dispatch(ctx context.Context, entries []registry.Entry) error {
	n, err := strconv.Atoi(a.selection)
	if err != nil {
		a.logger.Debug("Selection did not parse as an integer.", "selection", a.selection)
		fmt.Fprintln(a.outW, "Invalid argument. Please provide a number.")
		return nil
	}
	if n < 1 || n > len(entries) {
		fmt.Fprintf(a.outW, "Invalid sample number. Available samples: 1-%d\n", len(entries))
		return nil
	}

	a.runSample(ctx, entries[n-1])
	return nil
}

// runSample constructs the sample from its factory and runs it. Sample
// errors are reported via the logger only.
func (a *App) runSample(ctx context.Context, e registry.Entry) {
	a.logger.Debug("Running sample.", "order", e.Order, "name", e.Name)
	sample := e.New()
	if err := sample.Run(ctx, a.outW); err != nil {
		a.logger.Error("Sample finished with an error.", "name", e.Name, "error", err)
		return
	}
	a.logger.Debug("Sample finished.", "name", e.Name)
}
