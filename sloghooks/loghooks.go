// Package sloghooks reports jsoncache persistence events as slog records.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/jsoncache"
)

type Options struct {
	// Sampling to avoid floods on hot caches; 0/1 = log all.
	PersistedEvery uint64
	LoadedEvery    uint64
	// Optional location redactor (paths may reveal user names).
	// nil logs the location as-is.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	persistedCtr atomic.Uint64
	loadedCtr    atomic.Uint64
}

var _ jsoncache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

// HashRedact replaces a location with a short SHA-256 prefix.
func HashRedact(loc string) string {
	sum := sha256.Sum256([]byte(loc))
	return hex.EncodeToString(sum[:8])
}

func (h *Hooks) redact(loc string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(loc)
	}
	return loc
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Persisted(location string, bytes int) {
	if h.l == nil || !sample(h.opts.PersistedEvery, &h.persistedCtr) {
		return
	}
	h.l.Debug("jsoncache.persisted",
		"location", h.redact(location),
		"bytes", bytes)
}

func (h *Hooks) PersistFailed(location string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("jsoncache.persist_failed",
		"location", h.redact(location),
		"err", err)
}

func (h *Hooks) Loaded(location string, bytes int) {
	if h.l == nil || !sample(h.opts.LoadedEvery, &h.loadedCtr) {
		return
	}
	h.l.Info("jsoncache.loaded",
		"location", h.redact(location),
		"bytes", bytes)
}

func (h *Hooks) LoadSkipped(location, reason string) {
	if h.l == nil {
		return
	}
	h.l.Debug("jsoncache.load_skipped",
		"location", h.redact(location),
		"reason", reason)
}

func (h *Hooks) LoadRejected(location, reason string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("jsoncache.load_rejected",
		"location", h.redact(location),
		"reason", reason,
		"err", err)
}
