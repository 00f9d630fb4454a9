package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack stores the document as MessagePack using vmihailenco/msgpack/v5.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(doc []byte) ([]byte, error) {
	v, err := jsonValue(doc)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(v)
}

// Decode reads exactly one MessagePack value; trailing bytes are an error.
func (Msgpack) Decode(b []byte) ([]byte, error) {
	r := bytes.NewReader(b)
	var v any
	if err := msgpack.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("msgpack: %d trailing bytes after document", r.Len())
	}
	return json.Marshal(v)
}
