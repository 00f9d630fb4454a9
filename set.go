package jsoncache

import (
	"context"
	"encoding/json"
	"iter"
	"slices"
	"sync"
)

// SetCache holds unique elements, persisted as a JSON array in insertion order.
// Duplicates found in a loaded document collapse to their first occurrence.
//
// Elements are deep-copied on the way in and out, like SequenceCache.
//
// Callbacks passed to Map and Filter run under the cache lock and must not call
// back into the cache.
type SetCache[T comparable] struct {
	*store

	mu      sync.RWMutex
	members map[T]struct{}
	order   []T // insertion order; same elements as members
}

var _ Manager = (*SetCache[string])(nil)

// NewSet returns a set holding the distinct elements of initial.
func NewSet[T comparable](opts Options, initial ...T) (*SetCache[T], error) {
	sc := &SetCache[T]{}
	sc.replace(cloneAll(initial))
	st, err := newStore(sc, opts)
	if err != nil {
		return nil, err
	}
	sc.store = st
	return sc, nil
}

func (sc *SetCache[T]) Has(item T) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	_, ok := sc.members[item]
	return ok
}

// Get returns the element at an iteration-order index (negative counts from
// the end). Convenience only: the order is insertion order for this
// implementation and is not part of the stored format's contract.
func (sc *SetCache[T]) Get(index int) (T, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	v, ok := at(sc.order, index)
	return clone(v), ok
}

// Add inserts item if absent, then persists.
func (sc *SetCache[T]) Add(ctx context.Context, item T) error {
	sc.mu.Lock()
	if _, ok := sc.members[item]; !ok {
		item = clone(item)
		sc.members[item] = struct{}{}
		sc.order = append(sc.order, item)
	}
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Delete removes item if present, then persists.
func (sc *SetCache[T]) Delete(ctx context.Context, item T) error {
	sc.mu.Lock()
	if _, ok := sc.members[item]; ok {
		delete(sc.members, item)
		if i := slices.Index(sc.order, item); i >= 0 {
			sc.order = slices.Delete(sc.order, i, i+1)
		}
	}
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Map rebuilds the set from fn(element), then persists.
// Elements that map to the same value collapse into one.
func (sc *SetCache[T]) Map(ctx context.Context, fn func(T) T) error {
	sc.mu.Lock()
	out := make([]T, len(sc.order))
	for i, v := range sc.order {
		out[i] = clone(fn(v))
	}
	sc.replace(out)
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Filter keeps the elements for which keep returns true, then persists.
func (sc *SetCache[T]) Filter(ctx context.Context, keep func(T) bool) error {
	sc.mu.Lock()
	out := make([]T, 0, len(sc.order))
	for _, v := range sc.order {
		if keep(v) {
			out = append(out, v)
		}
	}
	sc.replace(out)
	sc.mu.Unlock()
	return sc.Save(ctx)
}

func (sc *SetCache[T]) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.order)
}

// Snapshot returns the elements in iteration order.
func (sc *SetCache[T]) Snapshot() []T {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return cloneAll(sc.order)
}

// All iterates over a snapshot, so the loop body may mutate the cache.
func (sc *SetCache[T]) All() iter.Seq[T] {
	return slices.Values(sc.Snapshot())
}

// replace installs the distinct elements of items. Caller holds mu (or owns sc).
func (sc *SetCache[T]) replace(items []T) {
	order := dedupe(items)
	members := make(map[T]struct{}, len(order))
	for _, v := range order {
		members[v] = struct{}{}
	}
	sc.members, sc.order = members, order
}

func (sc *SetCache[T]) shape() Shape { return ShapeArray }

func (sc *SetCache[T]) encode() ([]byte, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return json.Marshal(sc.order)
}

func (sc *SetCache[T]) decode(doc []byte) error {
	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		return err
	}
	sc.mu.Lock()
	sc.replace(items)
	sc.mu.Unlock()
	return nil
}
