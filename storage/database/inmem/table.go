package inmemdb

import (
	"sync"
	"time"
)

// table is one collection of records. Insertion order is preserved for
// listing; lookups are by id.
type table[T any] struct {
	mu      sync.RWMutex
	rows    map[string]*T
	order   []string
	latency time.Duration
}

func newTable[T any](latency time.Duration) *table[T] {
	return &table[T]{
		rows:    make(map[string]*T),
		latency: latency,
	}
}

// simulate stands in for the network round-trip of the future real API.
// Exactly one sleep per repository operation; not cancellable, not retried.
func (t *table[T]) simulate() {
	if t.latency > 0 {
		time.Sleep(t.latency)
	}
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.rows[id])
	}
	return out
}

func (t *table[T]) insert(id string, rec T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows[id] = &rec
	t.order = append(t.order, id)
	return rec
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if rec, ok := t.rows[id]; ok {
		return *rec, true
	}
	var zero T
	return zero, false
}

// mutate applies fn to the stored record under the write lock and returns
// the merged copy.
func (t *table[T]) mutate(id string, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(rec)
	return *rec, true
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}
