package registry

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSample is a minimal Runnable whose Run records nothing and whose
// mutable field lets tests prove instances are independent.
type stubSample struct {
	label string
	runs  int
}

func (s *stubSample) Name() string { return s.label }

func (s *stubSample) Run(ctx context.Context, out io.Writer) error {
	s.runs++
	fmt.Fprintln(out, s.label)
	return nil
}

func stubFactory(label string) Factory {
	return func() Runnable { return &stubSample{label: label} }
}

func TestEntries_AscendingKeyOrder(t *testing.T) {
	t.Parallel()

	r := New()
	for _, order := range []int{5, 1, 3} {
		require.NoError(t, r.Register(fmt.Sprintf("sample-%d", order), order, stubFactory("s")))
	}

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"sample-1", "sample-3", "sample-5"},
		[]string{entries[0].Name, entries[1].Name, entries[2].Name})
	assert.Equal(t, []int{1, 3, 5},
		[]int{entries[0].Order, entries[1].Order, entries[2].Order})
}

func TestCreateAll_OrderAndFreshInstances(t *testing.T) {
	t.Parallel()

	r := New()
	var built int
	require.NoError(t, r.Register("b", 2, func() Runnable {
		built++
		return &stubSample{label: "b"}
	}))
	require.NoError(t, r.Register("a", 1, func() Runnable {
		built++
		return &stubSample{label: "a"}
	}))

	first := r.CreateAll()
	second := r.CreateAll()
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, 4, built, "each factory runs exactly once per CreateAll call")
	assert.Equal(t, "a", first[0].Name())
	assert.Equal(t, "b", first[1].Name())

	// Mutating an instance from the first call must not leak into the second.
	first[0].(*stubSample).runs = 99
	assert.Zero(t, second[0].(*stubSample).runs)
}

func TestRegister_DuplicateKeyRejected(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Register("first", 7, stubFactory("first")))

	err := r.Register("second", 7, stubFactory("second"))
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), `"first"`, "collision message names the existing entry")

	// The original entry stays reachable and the key counts once.
	assert.Equal(t, 1, r.Count())
	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Name)
}

func TestRegister_InvalidEntry(t *testing.T) {
	t.Parallel()

	r := New()
	require.ErrorIs(t, r.Register("", 1, stubFactory("x")), ErrInvalid)
	require.ErrorIs(t, r.Register("x", 1, nil), ErrInvalid)
	assert.Zero(t, r.Count())
}

func TestMustRegister_PanicsOnCollision(t *testing.T) {
	t.Parallel()

	r := New()
	r.MustRegister("a", 1, stubFactory("a"))
	require.Panics(t, func() {
		r.MustRegister("b", 1, stubFactory("b"))
	})
}

func TestEmptyRegistry(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Zero(t, r.Count())
	assert.Empty(t, r.CreateAll())
	assert.Empty(t, r.Entries())
}

type defaultSample struct{ touched bool }

func (s *defaultSample) Name() string { return "default-constructed" }

func (s *defaultSample) Run(ctx context.Context, out io.Writer) error {
	s.touched = true
	return nil
}

func TestRegisterDefault(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, RegisterDefault[defaultSample](r, 4))

	entries := r.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "default-constructed", entries[0].Name)
	assert.Equal(t, 4, entries[0].Order)

	one := entries[0].New().(*defaultSample)
	two := entries[0].New().(*defaultSample)
	one.touched = true
	assert.False(t, two.touched, "factories hand out independent instances")

	require.Panics(t, func() {
		MustRegisterDefault[defaultSample](r, 4)
	})
}

func TestRegister_ConcurrentDistinctKeys(t *testing.T) {
	t.Parallel()

	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(order int) {
			defer wg.Done()
			_ = r.Register(fmt.Sprintf("s-%d", order), order, stubFactory("s"))
		}(i)
	}
	wg.Wait()

	require.Equal(t, 32, r.Count())
	entries := r.Entries()
	for i, e := range entries {
		assert.Equal(t, i, e.Order)
	}
}
