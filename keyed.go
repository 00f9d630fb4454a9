package jsoncache

import (
	"context"
	"encoding/json"
	"iter"
	"maps"
	"slices"
	"sync"
)

// KeyedCache is a string-keyed map persisted as a JSON object.
//
// Add is insert-if-absent and skips the write when the key already exists;
// Set always writes. SequenceCache.Add, in contrast, always persists.
//
// Values are deep-copied on the way in and out, so callers never share
// slices, maps or pointees with the cache.
type KeyedCache[V any] struct {
	*store

	mu sync.RWMutex
	m  map[string]V
}

var _ Manager = (*KeyedCache[int])(nil)

// NewKeyed returns a keyed cache holding a copy of initial (which may be nil).
func NewKeyed[V any](opts Options, initial map[string]V) (*KeyedCache[V], error) {
	kc := &KeyedCache[V]{m: make(map[string]V, len(initial))}
	for k, v := range initial {
		kc.m[k] = clone(v)
	}
	st, err := newStore(kc, opts)
	if err != nil {
		return nil, err
	}
	kc.store = st
	return kc, nil
}

func (kc *KeyedCache[V]) Has(key string) bool {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	_, ok := kc.m[key]
	return ok
}

// Get returns a copy of the value for key.
func (kc *KeyedCache[V]) Get(key string) (V, bool) {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	v, ok := kc.m[key]
	return clone(v), ok
}

// Set stores value under key, replacing any previous value, then persists.
func (kc *KeyedCache[V]) Set(ctx context.Context, key string, value V) error {
	value = clone(value)
	kc.mu.Lock()
	kc.m[key] = value
	kc.mu.Unlock()
	return kc.Save(ctx)
}

// Add stores value only if key is absent. An existing value is kept and
// nothing is written.
func (kc *KeyedCache[V]) Add(ctx context.Context, key string, value V) error {
	kc.mu.Lock()
	if _, ok := kc.m[key]; ok {
		kc.mu.Unlock()
		return nil
	}
	kc.m[key] = clone(value)
	kc.mu.Unlock()
	return kc.Save(ctx)
}

// Delete removes key, then persists (even if key was absent).
func (kc *KeyedCache[V]) Delete(ctx context.Context, key string) error {
	kc.mu.Lock()
	delete(kc.m, key)
	kc.mu.Unlock()
	return kc.Save(ctx)
}

func (kc *KeyedCache[V]) Len() int {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	return len(kc.m)
}

// Keys returns the keys in ascending order.
func (kc *KeyedCache[V]) Keys() []string {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	return slices.Sorted(maps.Keys(kc.m))
}

// Snapshot returns a deep copy of the map.
func (kc *KeyedCache[V]) Snapshot() map[string]V {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	out := make(map[string]V, len(kc.m))
	for k, v := range kc.m {
		out[k] = clone(v)
	}
	return out
}

// All iterates over a snapshot in key order.
func (kc *KeyedCache[V]) All() iter.Seq2[string, V] {
	snap := kc.Snapshot()
	return func(yield func(string, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(snap)) {
			if !yield(k, snap[k]) {
				return
			}
		}
	}
}

func (kc *KeyedCache[V]) shape() Shape { return ShapeObject }

func (kc *KeyedCache[V]) encode() ([]byte, error) {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	return json.Marshal(kc.m)
}

func (kc *KeyedCache[V]) decode(doc []byte) error {
	m := make(map[string]V)
	if err := json.Unmarshal(doc, &m); err != nil {
		return err
	}
	kc.mu.Lock()
	kc.m = m
	kc.mu.Unlock()
	return nil
}
