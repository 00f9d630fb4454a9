package jsoncache

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	pr "github.com/unkn0wn-root/jsoncache/provider"
)

type memProvider struct {
	mu     sync.Mutex
	doc    []byte
	exists bool
	puts   int
	gets   int
	putErr error
	getErr error
}

var _ pr.Provider = (*memProvider)(nil)

func newMemProvider() *memProvider { return &memProvider{} }

func (p *memProvider) Get(_ context.Context) ([]byte, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gets++
	if p.getErr != nil {
		return nil, false, p.getErr
	}
	if !p.exists {
		return nil, false, nil
	}
	return append([]byte(nil), p.doc...), true, nil
}

func (p *memProvider) Put(_ context.Context, doc []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.puts++
	if p.putErr != nil {
		return p.putErr
	}
	p.doc = append([]byte(nil), doc...)
	p.exists = true
	return nil
}

func (p *memProvider) Location() string { return "mem" }

func (p *memProvider) store(doc string) {
	p.mu.Lock()
	p.doc, p.exists = []byte(doc), true
	p.mu.Unlock()
}

func (p *memProvider) content() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return string(p.doc)
}

func (p *memProvider) putCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.puts
}

// recHooks records every event as a short string.
type recHooks struct {
	mu     sync.Mutex
	events []string
}

var _ Hooks = (*recHooks)(nil)

func (h *recHooks) add(s string) {
	h.mu.Lock()
	h.events = append(h.events, s)
	h.mu.Unlock()
}

func (h *recHooks) Persisted(loc string, _ int)       { h.add("persisted:" + loc) }
func (h *recHooks) PersistFailed(loc string, _ error) { h.add("persist_failed:" + loc) }
func (h *recHooks) Loaded(loc string, _ int)          { h.add("loaded:" + loc) }
func (h *recHooks) LoadSkipped(_, reason string)      { h.add("skipped:" + reason) }
func (h *recHooks) LoadRejected(_, reason string, _ error) {
	h.add("rejected:" + reason)
}

func (h *recHooks) list() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.events...)
}

// recLogger collects messages per level.
type recLogger struct {
	mu   sync.Mutex
	msgs []string
}

var _ Logger = (*recLogger)(nil)

func (l *recLogger) rec(level, msg string, f Fields) {
	l.mu.Lock()
	l.msgs = append(l.msgs, fmt.Sprintf("%s %s location=%v", level, msg, f["location"]))
	l.mu.Unlock()
}

func (l *recLogger) Debug(msg string, f Fields) { l.rec("debug", msg, f) }
func (l *recLogger) Info(msg string, f Fields)  { l.rec("info", msg, f) }
func (l *recLogger) Warn(msg string, f Fields)  { l.rec("warn", msg, f) }
func (l *recLogger) Error(msg string, f Fields) { l.rec("error", msg, f) }

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "cache.json")
}
