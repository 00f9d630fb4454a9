// Package jsoncache keeps an in-memory collection in sync with a single JSON
// document on disk, so in-process caches survive restarts.
//
// Variants:
//   - SequenceCache[T]: ordered list, duplicates allowed unless suppressed.
//   - SetCache[T]: unique elements, stored as a JSON array.
//   - KeyedCache[V]: string-keyed map, stored as a JSON object.
//
// Every mutation updates memory first and then persists the whole collection.
// Load and Save calls on one instance run through a private FIFO executor, so a
// reload never interleaves with an in-flight save. Writes are atomic: the
// document is written to "<path>.tmp" and renamed onto path.
//
// Usage:
//
//	seen, _ := jsoncache.NewSet[string](jsoncache.Options{Path: "seen.json"})
//	if _, err := seen.Load(ctx); err != nil { ... } // false when nothing is on disk yet
//	_ = seen.Add(ctx, "id-42")
//
// Limitations: two managers (in one or several processes) pointed at the same
// document are not synchronized. Use one manager per path per process lifetime.
package jsoncache
