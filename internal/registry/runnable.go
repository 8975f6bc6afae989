package registry

import (
	"context"
	"io"
)

// Runnable is the capability every demonstration sample implements. A sample
// writes its narration to out and side-effects nothing else.
type Runnable interface {
	// Name returns the human-readable label shown in the sample listing.
	Name() string
	// Run executes the demonstration, writing explanatory output to out.
	Run(ctx context.Context, out io.Writer) error
}

// Factory constructs one fresh, caller-owned Runnable. Factories must be
// pure construction: no observable side effects beyond object setup.
type Factory func() Runnable

// Module is the interface a sample package implements to be wired into the
// application. Register is expected to add exactly one entry with an order
// key unique across all modules; it panics (via MustRegister) on collision.
type Module interface {
	Register(r *Registry)
}

// RegisterDefault registers a factory producing a zero-value *T for each
// call. The display name is taken from the sample itself, so a module states
// its name exactly once.
func RegisterDefault[T any, PT interface {
	*T
	Runnable
}](r *Registry, order int) error {
	factory := func() Runnable { return PT(new(T)) }
	return r.Register(factory().Name(), order, factory)
}

// MustRegisterDefault is RegisterDefault that panics on error. Sample
// modules call it from Register so that a duplicate order key aborts
// application construction.
func MustRegisterDefault[T any, PT interface {
	*T
	Runnable
}](r *Registry, order int) {
	if err := RegisterDefault[T, PT](r, order); err != nil {
		panic(err)
	}
}
