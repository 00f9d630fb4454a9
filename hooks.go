package jsoncache

// Hooks lightweight callbacks for persistence events.
// Implementations MUST be cheap and non-blocking; they run synchronously on the
// goroutine doing the load or save, before the caller gets its result. For Load
// and Save that is the instance's executor; LoadSync calls them on the caller's
// goroutine.
type Hooks interface {
	// The document was written.
	Persisted(location string, bytes int)

	// Writing the document failed; the in-memory value is ahead of storage.
	PersistFailed(location string, err error)

	// A document was read and installed.
	Loaded(location string, bytes int)

	// Load found nothing to read.
	// reason ∈ {"missing", "empty"}
	LoadSkipped(location, reason string)

	// Load failed and the in-memory value was kept.
	// reason ∈ {"io", "parse", "shape"}
	LoadRejected(location, reason string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Persisted(string, int)              {}
func (NopHooks) PersistFailed(string, error)        {}
func (NopHooks) Loaded(string, int)                 {}
func (NopHooks) LoadSkipped(string, string)         {}
func (NopHooks) LoadRejected(string, string, error) {}
