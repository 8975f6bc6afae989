package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrDuplicate indicates an attempt to register an order key that is
	// already taken. Duplicate keys would make one sample unreachable, so
	// they are rejected instead of overwritten.
	ErrDuplicate = errors.New("registry: duplicate order key")
	// ErrInvalid indicates a registration with an empty name or nil factory.
	ErrInvalid = errors.New("registry: invalid entry")
)

// Entry is one registered sample: its sort/dispatch key, display name, and
// construction function.
type Entry struct {
	Order int
	Name  string
	New   Factory
}

// Registry is an ordered catalog of sample factories keyed by an integer
// order value. Iteration is always in ascending key order, regardless of
// the order in which modules registered. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[int]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[int]Entry)}
}

// Register adds a factory under the given order key. It returns ErrInvalid
// for an empty name or nil factory, and ErrDuplicate if the key is already
// taken; the existing entry is left untouched in that case.
func (r *Registry) Register(name string, order int, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("%w: name and factory are required", ErrInvalid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, taken := r.entries[order]; taken {
		return fmt.Errorf("%w: order %d is held by %q, cannot register %q",
			ErrDuplicate, order, existing.Name, name)
	}
	r.entries[order] = Entry{Order: order, Name: name, New: factory}
	return nil
}

// MustRegister panics on registration error. Used during application
// startup, where a collision is a programmer error.
func (r *Registry) MustRegister(name string, order int, factory Factory) {
	if err := r.Register(name, order, factory); err != nil {
		panic(err)
	}
}

// Entries returns a snapshot of all registered entries in ascending key
// order, without invoking any factory.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Order < entries[j].Order })
	return entries
}

// CreateAll invokes every registered factory in ascending key order and
// returns the fresh instances in that order. Each call constructs anew;
// instances are never cached or shared between calls.
func (r *Registry) CreateAll() []Runnable {
	entries := r.Entries()
	samples := make([]Runnable, 0, len(entries))
	for _, e := range entries {
		samples = append(samples, e.New())
	}
	return samples
}

// Count returns the number of distinct registered order keys.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
