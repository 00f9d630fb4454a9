package jsoncache

import (
	"context"
	"encoding/json"
	"iter"
	"slices"
	"sync"
)

// SequenceCache is an ordered list persisted as a JSON array.
// Duplicates are allowed; Add suppresses them, Push does not.
//
// Elements are deep-copied on the way in and out, so callers never share
// slices, maps or pointees with the cache. Pointer elements therefore compare
// by address only within the cache, not against returned copies.
//
// Callbacks passed to Map and Filter run under the cache lock and must not call
// back into the cache.
type SequenceCache[T comparable] struct {
	*store

	mu    sync.RWMutex
	items []T
}

var _ Manager = (*SequenceCache[string])(nil)

// NewSequence returns a sequence holding a copy of initial. Nothing is read from
// storage until Load or LoadSync is called.
func NewSequence[T comparable](opts Options, initial ...T) (*SequenceCache[T], error) {
	sc := &SequenceCache[T]{items: cloneAll(initial)}
	st, err := newStore(sc, opts)
	if err != nil {
		return nil, err
	}
	sc.store = st
	return sc, nil
}

func (sc *SequenceCache[T]) Has(item T) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return slices.Contains(sc.items, item)
}

// Get returns the element at index. Negative indexes count from the end
// (-1 is the last element). Out of range yields ok=false.
func (sc *SequenceCache[T]) Get(index int) (T, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	v, ok := at(sc.items, index)
	return clone(v), ok
}

// Add appends item unless an equal element is already present, then persists.
// It persists even when nothing was appended; check Has first to avoid the write.
func (sc *SequenceCache[T]) Add(ctx context.Context, item T) error {
	sc.mu.Lock()
	if !slices.Contains(sc.items, item) {
		sc.items = append(sc.items, clone(item))
	}
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Push appends item unconditionally, then persists.
func (sc *SequenceCache[T]) Push(ctx context.Context, item T) error {
	sc.mu.Lock()
	sc.items = append(sc.items, clone(item))
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Delete removes every element equal to item, then persists.
func (sc *SequenceCache[T]) Delete(ctx context.Context, item T) error {
	sc.mu.Lock()
	sc.items = slices.DeleteFunc(sc.items, func(v T) bool { return v == item })
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Map replaces every element with fn(element), then persists.
func (sc *SequenceCache[T]) Map(ctx context.Context, fn func(T) T) error {
	sc.mu.Lock()
	out := make([]T, len(sc.items))
	for i, v := range sc.items {
		out[i] = clone(fn(v))
	}
	sc.items = out
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Filter keeps the elements for which keep returns true, then persists.
func (sc *SequenceCache[T]) Filter(ctx context.Context, keep func(T) bool) error {
	sc.mu.Lock()
	out := make([]T, 0, len(sc.items))
	for _, v := range sc.items {
		if keep(v) {
			out = append(out, v)
		}
	}
	sc.items = out
	sc.mu.Unlock()
	return sc.Save(ctx)
}

// Distinct returns a new slice without duplicates; the first occurrence wins
// and order is preserved. The cache itself is not changed or persisted.
func (sc *SequenceCache[T]) Distinct() []T {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return cloneAll(dedupe(sc.items))
}

func (sc *SequenceCache[T]) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.items)
}

// Snapshot returns a deep copy of the current elements.
func (sc *SequenceCache[T]) Snapshot() []T {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return cloneAll(sc.items)
}

// All iterates over a snapshot, so the loop body may mutate the cache.
func (sc *SequenceCache[T]) All() iter.Seq[T] {
	return slices.Values(sc.Snapshot())
}

func (sc *SequenceCache[T]) shape() Shape { return ShapeArray }

func (sc *SequenceCache[T]) encode() ([]byte, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	if sc.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(sc.items)
}

func (sc *SequenceCache[T]) decode(doc []byte) error {
	var items []T
	if err := json.Unmarshal(doc, &items); err != nil {
		return err
	}
	sc.mu.Lock()
	sc.items = items
	sc.mu.Unlock()
	return nil
}

func at[T any](items []T, index int) (T, bool) {
	if index < 0 {
		index += len(items)
	}
	if index < 0 || index >= len(items) {
		var zero T
		return zero, false
	}
	return items[index], true
}

// dedupe keeps the first occurrence of each element, in order.
func dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
