// Package typeswitch demonstrates closed sum types: a sealed interface
// whose variants are visited with a type switch.
package typeswitch

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 4)
}

// event is sealed: the unexported marker method keeps outside packages
// from adding variants, so the type switch below covers every case.
type event interface {
	isEvent()
}

type deposited struct{ amount int }
type withdrawn struct{ amount int }
type frozen struct{ reason string }

func (deposited) isEvent() {}
func (withdrawn) isEvent() {}
func (frozen) isEvent()    {}

// account replays events with a type switch: the visitor.
type account struct {
	balance int
	active  bool
}

func (a *account) apply(out io.Writer, ev event) {
	switch e := ev.(type) {
	case deposited:
		a.balance += e.amount
		fmt.Fprintf(out, "deposited %4d -> balance %d\n", e.amount, a.balance)
	case withdrawn:
		a.balance -= e.amount
		fmt.Fprintf(out, "withdrew  %4d -> balance %d\n", e.amount, a.balance)
	case frozen:
		a.active = false
		fmt.Fprintf(out, "frozen (%s)\n", e.reason)
	default:
		// Unreachable while event stays sealed.
		panic(fmt.Sprintf("unhandled event %T", ev))
	}
}

// Sample replays a short event history through the visitor.
type Sample struct{}

func (s *Sample) Name() string { return "Sum types: sealed interface plus type switch" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "A sealed interface models 'one of these variants'; a type")
	fmt.Fprintln(out, "switch visits them with the concrete type in scope per case.")
	fmt.Fprintln(out)

	history := []event{
		deposited{amount: 100},
		withdrawn{amount: 30},
		deposited{amount: 5},
		frozen{reason: "suspicious activity"},
	}

	acct := &account{active: true}
	for _, ev := range history {
		acct.apply(out, ev)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "final state: balance=%d active=%v\n", acct.balance, acct.active)
	return nil
}
