// Package asynchook moves hook delivery off the cache's executor.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{PersistedEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	seen, _ := jsoncache.NewSet[string](jsoncache.Options{
//	    Path:  "seen.json",
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
//
// Events are dropped when the queue is full; Dropped reports how many.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/jsoncache"
)

type Hooks struct {
	inner   jsoncache.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex // guards closed against sends on a closed queue
	closed  bool
	dropped atomic.Uint64
}

var _ jsoncache.Hooks = (*Hooks)(nil)

func New(inner jsoncache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to be delivered.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped is the number of events discarded because the queue was full or closed.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) Persisted(loc string, n int)         { h.try(func() { h.inner.Persisted(loc, n) }) }
func (h *Hooks) PersistFailed(loc string, err error) { h.try(func() { h.inner.PersistFailed(loc, err) }) }
func (h *Hooks) Loaded(loc string, n int)            { h.try(func() { h.inner.Loaded(loc, n) }) }
func (h *Hooks) LoadSkipped(loc, reason string)      { h.try(func() { h.inner.LoadSkipped(loc, reason) }) }
func (h *Hooks) LoadRejected(loc, reason string, err error) {
	h.try(func() { h.inner.LoadRejected(loc, reason, err) })
}
