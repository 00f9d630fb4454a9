package jsoncache

import (
	"context"
	"io/fs"

	c "github.com/unkn0wn-root/jsoncache/codec"
	pr "github.com/unkn0wn-root/jsoncache/provider"
)

// Manager is the persistence contract shared by all cache variants.
type Manager interface {
	// Load replaces the in-memory value with the stored document.
	// It returns false (and keeps the in-memory value) when nothing is stored yet
	// or the stored document is empty. Queued behind any pending Save.
	Load(ctx context.Context) (bool, error)

	// LoadSync is Load without the executor, for startup paths.
	// It must not run concurrently with other operations on the same instance.
	LoadSync() (bool, error)

	// Save persists the whole in-memory value. Queued in FIFO order.
	// If ctx ends first Save returns ctx.Err(), but the write still happens.
	Save(ctx context.Context) error

	// Location identifies the stored document (the file path by default).
	Location() string
}

// Options configure a cache manager.
// Only one of Path or Provider is required; others have sensible defaults.
type Options struct {
	Path     string      // file holding the document; uses the atomic file provider
	Provider pr.Provider // overrides Path, e.g. provider/redis

	Codec    c.Codec     // on-disk representation; nil => codec.JSON
	Logger   Logger      // nil => NopLogger
	Hooks    Hooks       // nil => NopHooks
	FileMode fs.FileMode // file provider only; 0 => 0o644
}
