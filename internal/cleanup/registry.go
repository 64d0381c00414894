// Package cleanup tracks resources a test run creates against live systems
// (registered shop users, bookings) so teardown can remove them. The
// registry's lifecycle is explicit: the suite creates one at start and
// drains it at the end, rather than relying on process-wide state.
package cleanup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Func removes one previously created resource.
type Func func(ctx context.Context) error

type entry struct {
	id    uuid.UUID
	label string
	fn    Func
}

// Registry collects cleanup work. Safe for concurrent Add; parallel test
// workers share one registry.
type Registry struct {
	mu      sync.Mutex
	entries []entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers fn under a human-readable label and returns the entry's id.
func (r *Registry) Add(label string, fn Func) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.entries = append(r.entries, entry{id: id, label: label, fn: fn})
	r.mu.Unlock()
	return id
}

// Remove drops a pending entry without running it, for resources the test
// already deleted itself.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of pending entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Drain runs every pending cleanup in reverse registration order, newest
// first, so dependents are removed before their dependencies. Every entry
// runs even when earlier ones fail; failures are joined into one error.
// The registry is empty afterwards.
func (r *Registry) Drain(ctx context.Context) error {
	r.mu.Lock()
	pending := r.entries
	r.entries = nil
	r.mu.Unlock()

	var errs []error
	for i := len(pending) - 1; i >= 0; i-- {
		e := pending[i]
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("cleanup %q abandoned: %w", e.label, err))
			continue
		}
		if err := e.fn(ctx); err != nil {
			log.Printf("cleanup %q failed: %v", e.label, err)
			errs = append(errs, fmt.Errorf("cleanup %q: %w", e.label, err))
		}
	}
	return errors.Join(errs...)
}
