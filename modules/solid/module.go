// Package solid demonstrates dependency inversion in Go: high-level policy
// depends on a small interface it defines, and concrete senders plug in
// from below.
package solid

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
	registry.MustRegisterDefault[Sample](r, 9)
}

// Sender is owned by the policy layer: the consumer defines the interface,
// sized to exactly what it needs.
type Sender interface {
	Send(to, message string) error
}

// alerter is the high-level policy. It knows nothing about transports.
type alerter struct {
	sender Sender
}

func (a *alerter) alert(to string) error {
	return a.sender.Send(to, "disk usage above 90%")
}

// emailSender and smsSender are low-level details, swappable without
// touching alerter.
type emailSender struct{ out io.Writer }

func (e *emailSender) Send(to, message string) error {
	fmt.Fprintf(e.out, "email to %s: %s\n", to, message)
	return nil
}

type smsSender struct{ out io.Writer }

func (s *smsSender) Send(to, message string) error {
	fmt.Fprintf(s.out, "sms to %s: %s\n", to, message)
	return nil
}

// Sample wires the same policy to two transports.
type Sample struct{}

func (s *Sample) Name() string { return "Dependency inversion with consumer-owned interfaces" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "The inverted version: alerter depends on Sender, an interface")
	fmt.Fprintln(out, "it owns. Transports implement it without being named by policy.")
	fmt.Fprintln(out)

	for _, sender := range []Sender{&emailSender{out: out}, &smsSender{out: out}} {
		a := &alerter{sender: sender}
		if err := a.alert("oncall@example.com"); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "The non-inverted version would construct an emailSender inside")
	fmt.Fprintln(out, "alert(), welding policy to transport: adding SMS then means")
	fmt.Fprintln(out, "editing the policy. Here it meant adding one type.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Go nudges this way: interfaces are satisfied implicitly, so the")
	fmt.Fprintln(out, "consumer can define them and the details never import the policy.")
	return nil
}
