package codec

import "fmt"

// Limit wraps another codec to enforce a maximum stored size at Decode time.
// Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: refuse to load an unexpectedly huge cache file.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted length (in bytes) of stored data.
	MaxDecode int
}

var _ Codec = Limit{}

func (c Limit) Encode(doc []byte) ([]byte, error) { return c.Inner.Encode(doc) }
func (c Limit) Decode(b []byte) ([]byte, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return nil, fmt.Errorf("document too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
