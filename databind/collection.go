// Package databind bridges view code and an entity service. A Collection
// loads a snapshot of a remote collection once, tracks its load state and
// reconciles mutation results into the snapshot without refetching — the
// pattern every entity screen shares.
package databind

import (
	"strings"
	"sync"
)

// State is the load state of a Collection. Mutations never change it;
// only Load and Reload do.
type State int

const (
	Loading State = iota
	Ready
	Errored
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Errored:
		return "errored"
	default:
		return "loading"
	}
}

// Service is the asynchronous boundary a Collection binds to. Calls either
// resolve or fail exactly once; a failure is terminal for that call (no
// retry policy lives here).
type Service[T, N, U any] interface {
	GetAll() ([]T, error)
	Create(fields N) (T, error)
	Update(id string, fields U) (T, error)
	Delete(id string) error
}

// Collection keeps a local snapshot of a remote collection.
//
// Reconciliation is optimistic and last-writer-wins: a successful mutation
// patches the snapshot by id, and two racing updates to the same id are
// resolved by whichever call returns last. There is no server-side
// ordering to arbitrate.
type Collection[T, N, U any] struct {
	svc Service[T, N, U]
	id  func(T) string

	mu    sync.Mutex
	state State
	err   error
	items []T
}

// NewCollection binds a service; id extracts a record's identifier.
// The collection starts in Loading until the first Load resolves.
func NewCollection[T, N, U any](svc Service[T, N, U], id func(T) string) *Collection[T, N, U] {
	return &Collection[T, N, U]{svc: svc, id: id, state: Loading}
}

// Load fetches the snapshot. On failure the collection is Errored and the
// caller re-issues the load by explicit action (Reload); nothing retries
// automatically.
func (c *Collection[T, N, U]) Load() error {
	items, err := c.svc.GetAll()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = Errored
		c.err = err
		return err
	}
	c.state = Ready
	c.err = nil
	c.items = items
	return nil
}

// Reload re-issues the same load call.
func (c *Collection[T, N, U]) Reload() error {
	c.mu.Lock()
	c.state = Loading
	c.mu.Unlock()
	return c.Load()
}

func (c *Collection[T, N, U]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Collection[T, N, U]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Items returns a copy of the snapshot in insertion order.
func (c *Collection[T, N, U]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Create appends the created record to the snapshot on success. On failure
// the snapshot is untouched and the error is returned for the caller's
// form to surface.
func (c *Collection[T, N, U]) Create(fields N) (T, error) {
	created, err := c.svc.Create(fields)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, created)
	return created, nil
}

// Update replaces the matching record in the snapshot on success.
func (c *Collection[T, N, U]) Update(id string, fields U) (T, error) {
	updated, err := c.svc.Update(id, fields)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.id(item) == id {
			c.items[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the matching record from the snapshot on success.
func (c *Collection[T, N, U]) Delete(id string) error {
	if err := c.svc.Delete(id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.id(item) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return nil
}

// Filter returns the records whose extracted text contains `term`
// case-insensitively, preserving order. The snapshot itself is untouched;
// an empty term returns the full snapshot.
func (c *Collection[T, N, U]) Filter(term string, extract func(T) string) []T {
	items := c.Items()
	if term == "" {
		return items
	}
	term = strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(extract(item)), term) {
			out = append(out, item)
		}
	}
	return out
}
