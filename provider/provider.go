// Package provider defines the durable byte store a jsoncache manager persists through.
//
// A provider holds exactly one document. Implementations MUST be byte-for-byte
// transparent: Get returns exactly the []byte last passed to Put.
//
// Put MUST replace the document atomically: a concurrent Get observes either the
// previous document or the new one, never a partial write. A failed Put MUST leave
// the previous document intact.
//
// Providers are not coordinated across instances. One manager per document per
// process lifetime is a caller contract.
package provider

import "context"

// Provider is a single-document byte store.
type Provider interface {
	// Get returns (doc, true, nil) when the document exists; (nil, false, nil) when
	// it does not. Any other failure is returned as (nil, false, err).
	Get(ctx context.Context) ([]byte, bool, error)

	// Put atomically replaces the stored document with doc.
	Put(ctx context.Context, doc []byte) error

	// Location identifies the document in logs and errors (a path, a key, ...).
	Location() string
}
