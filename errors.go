package jsoncache

import (
	"fmt"
)

// ParseError reports a stored document that could not be decoded: the codec
// failed, the bytes are not valid JSON, or the elements do not fit the cache's
// element type. The in-memory value is left unchanged.
type ParseError struct {
	Location string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsoncache: parse %s: %v", e.Location, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeMismatchError reports a valid JSON document whose top-level kind is not
// the one the cache stores (e.g. an object read by a SetCache). It usually means
// the wrong file, not a corrupt one. The in-memory value is left unchanged.
type ShapeMismatchError struct {
	Location string
	Want     Shape
	Got      Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("jsoncache: %s holds a JSON %s, want %s", e.Location, e.Got, e.Want)
}
