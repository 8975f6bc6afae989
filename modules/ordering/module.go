// Package ordering demonstrates comparison and sorting: three-way
// comparison with cmp.Compare, lexicographic tie-breaking with cmp.Or, and
// sorting by projection with slices.SortFunc.
package ordering

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/vk/goidioms/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sample with the catalog.
func (m *Module) Register(r *registry.Registry) {
	registry.MustRegisterDefault[Sample](r, 10)
}

type release struct {
	major, minor, patch int
}

// compare is the three-way comparison: the first non-zero component
// decides, exactly like comparing tuples field by field.
func (r release) compare(other release) int {
	return cmp.Or(
		cmp.Compare(r.major, other.major),
		cmp.Compare(r.minor, other.minor),
		cmp.Compare(r.patch, other.patch),
	)
}

func (r release) String() string {
	return fmt.Sprintf("v%d.%d.%d", r.major, r.minor, r.patch)
}

type person struct {
	name string
	age  int
}

// Sample sorts structs by projected keys and searches in the result.
type Sample struct{}

func (s *Sample) Name() string { return "Ordering: cmp.Compare and sort by projection" }

func (s *Sample) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "cmp.Compare returns -1/0/+1; cmp.Or chains components so the")
	fmt.Fprintln(out, "first decisive one wins.")
	fmt.Fprintln(out)

	a, b := release{1, 4, 2}, release{1, 5, 0}
	fmt.Fprintf(out, "%s vs %s -> %d\n", a, b, a.compare(b))
	fmt.Fprintf(out, "%s vs %s -> %d\n", b, a, b.compare(a))
	fmt.Fprintf(out, "%s vs %s -> %d\n", a, a, a.compare(a))
	fmt.Fprintln(out)

	people := []person{
		{"carol", 35},
		{"alice", 28},
		{"bob", 35},
		{"dave", 28},
	}
	// The projection lives in the comparison function, not in the data:
	// sort by age, ties broken by name.
	slices.SortFunc(people, func(x, y person) int {
		return cmp.Or(cmp.Compare(x.age, y.age), cmp.Compare(x.name, y.name))
	})
	fmt.Fprintln(out, "sorted by (age, name):")
	for _, p := range people {
		fmt.Fprintf(out, "  %-6s %d\n", p.name, p.age)
	}
	fmt.Fprintln(out)

	idx, found := slices.BinarySearchFunc(people, person{age: 35, name: "bob"},
		func(x, y person) int {
			return cmp.Or(cmp.Compare(x.age, y.age), cmp.Compare(x.name, y.name))
		})
	fmt.Fprintf(out, "binary search for bob/35: index=%d found=%v\n", idx, found)
	return nil
}
