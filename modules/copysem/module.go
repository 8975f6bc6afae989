// Package copysem demonstrates value versus reference semantics: which
// assignments copy data and which merely alias it.
package copysem

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 5)
}

// roster has a slice field, so a plain struct copy is shallow.
type roster struct {
	team  string
	names []string
}

// clone makes the copy deep by cloning the slice too.
func (r roster) clone() roster {
	r.names = slices.Clone(r.names)
	return r
}

// Sample contrasts shallow aliasing with explicit deep copies.
type Sample struct{}

func (s *Sample) Name() string { return "Copy semantics: aliasing vs deep copies" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Assigning a slice or map copies the header, not the elements.")
	fmt.Fprintln(out)

	original := []string{"a", "b", "c"}
	alias := original
	alias[0] = "MUTATED"
	fmt.Fprintf(out, "after writing through the alias: original=%v\n", original)

	deep := slices.Clone(original)
	deep[1] = "independent"
	fmt.Fprintf(out, "after writing through the clone: original=%v clone=%v\n", original, deep)
	fmt.Fprintln(out)

	counts := map[string]int{"x": 1}
	aliasMap := counts
	aliasMap["x"] = 99
	cloneMap := maps.Clone(counts)
	cloneMap["x"] = 7
	fmt.Fprintf(out, "map alias sees the write: counts[x]=%d; map clone keeps its own: clone[x]=%d\n",
		counts["x"], cloneMap["x"])
	fmt.Fprintln(out)

	home := roster{team: "home", names: []string{"ada", "grace"}}
	shallow := home
	shallow.names[0] = "SHARED"
	deepRoster := home.clone()
	deepRoster.names[1] = "private"
	fmt.Fprintf(out, "struct copy shares the slice: home.names=%v\n", home.names)
	fmt.Fprintf(out, "clone() detaches it:          clone.names=%v\n", deepRoster.names)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Rule of thumb: a struct copy is as deep as its shallowest field.")
	return nil
}
