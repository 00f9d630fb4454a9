// Package codec converts the canonical JSON document of a cache to the bytes
// stored by a provider and back.
//
// The document is always produced and consumed as JSON by jsoncache; a Codec only
// changes its on-disk representation. JSON is the default and keeps the file a
// plain JSON document.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Codec transcodes a JSON document to storage bytes and back.
// Decode(Encode(doc)) must yield JSON equivalent to doc.
type Codec interface {
	Encode(doc []byte) ([]byte, error)
	Decode(b []byte) ([]byte, error)
}

// jsonValue parses doc into a generic tree. Integral numbers become int64
// (float64 otherwise) so binary formats keep them exact.
func jsonValue(doc []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("codec: trailing data after JSON document")
	}
	return normalize(v), nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case []any:
		for i := range t {
			t[i] = normalize(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalize(t[k])
		}
		return t
	default:
		return v
	}
}
